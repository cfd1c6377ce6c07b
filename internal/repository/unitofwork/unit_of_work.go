package unitofwork

import (
	"context"

	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NotebookRepository() contract.NotebookRepository
	PageRepository() contract.PageRepository
}
