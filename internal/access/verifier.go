// Package access holds the ownership-scoped lookups every notebook and page
// operation goes through. The notebook is always resolved against its owner
// before any page is looked up, and both misses surface as the same opaque
// not-found-or-unauthorized error.
package access

import (
	"context"

	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/entity"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/apperror"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/repository/specification"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type Verifier struct{}

func NewVerifier() *Verifier {
	return &Verifier{}
}

// Notebook returns the notebook only if it exists and belongs to userId.
func (v *Verifier) Notebook(ctx context.Context, uow unitofwork.UnitOfWork, userId, notebookId uuid.UUID) (*entity.Notebook, error) {
	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: notebookId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, apperror.ErrNotebookNotFound
	}
	return notebook, nil
}

// Page resolves the notebook first, then the page inside it.
func (v *Verifier) Page(ctx context.Context, uow unitofwork.UnitOfWork, userId, notebookId, pageId uuid.UUID) (*entity.Notebook, *entity.Page, error) {
	notebook, err := v.Notebook(ctx, uow, userId, notebookId)
	if err != nil {
		return nil, nil, err
	}

	page, err := uow.PageRepository().FindOne(ctx,
		specification.ByID{ID: pageId},
		specification.ByNotebookID{NotebookID: notebook.Id},
	)
	if err != nil {
		return nil, nil, err
	}
	if page == nil {
		return nil, nil, apperror.ErrPageNotFound
	}
	return notebook, page, nil
}
