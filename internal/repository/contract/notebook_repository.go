package contract

import (
	"context"

	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/entity"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/repository/specification"

	"github.com/google/uuid"
)

type NotebookRepository interface {
	Create(ctx context.Context, notebook *entity.Notebook) error
	// Update writes the title of an existing row and never inserts.
	Update(ctx context.Context, notebook *entity.Notebook) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Notebook, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notebook, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
