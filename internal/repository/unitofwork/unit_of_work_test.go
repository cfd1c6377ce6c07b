package unitofwork

import (
	"context"
	"testing"

	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/entity"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/testutil"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWorkCommit(t *testing.T) {
	ctx := context.Background()
	factory := NewRepositoryFactory(testutil.NewDB(t))

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	user := &entity.User{Id: uuid.New(), Name: "alice", Password: "p1"}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	require.NoError(t, uow.Commit())

	got, err := factory.NewUnitOfWork(ctx).UserRepository().FindOne(ctx, specification.ByID{ID: user.Id})
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestUnitOfWorkRollback(t *testing.T) {
	ctx := context.Background()
	factory := NewRepositoryFactory(testutil.NewDB(t))

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))

	notebook := &entity.Notebook{Id: uuid.New(), UserId: uuid.New(), Title: "Trip"}
	require.NoError(t, uow.NotebookRepository().Create(ctx, notebook))
	require.NoError(t, uow.Rollback())

	count, err := factory.NewUnitOfWork(ctx).NotebookRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestUnitOfWorkStateErrors(t *testing.T) {
	ctx := context.Background()
	uow := NewRepositoryFactory(testutil.NewDB(t)).NewUnitOfWork(ctx)

	assert.ErrorIs(t, uow.Commit(), ErrNoTransaction)
	assert.ErrorIs(t, uow.Rollback(), ErrNoTransaction)

	require.NoError(t, uow.Begin(ctx))
	assert.ErrorIs(t, uow.Begin(ctx), ErrTransactionStarted)
	require.NoError(t, uow.Commit())
	assert.ErrorIs(t, uow.Rollback(), ErrNoTransaction, "deferred rollback after commit is harmless")
}
