package implementation

import (
	"context"
	"testing"
	"time"

	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/entity"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/testutil"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testutil.NewDB(t))

	alice := &entity.User{Id: uuid.New(), Name: "alice", Password: "p1"}
	require.NoError(t, repo.Create(ctx, alice))
	assert.False(t, alice.CreatedAt.IsZero(), "timestamps are filled on create")

	t.Run("find by id", func(t *testing.T) {
		got, err := repo.FindOne(ctx, specification.ByID{ID: alice.Id})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "alice", got.Name)
		assert.Equal(t, "p1", got.Password)
	})

	t.Run("missing row is nil without error", func(t *testing.T) {
		got, err := repo.FindOne(ctx, specification.ByID{ID: uuid.New()})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("credentials are case sensitive", func(t *testing.T) {
		got, err := repo.FindOne(ctx, specification.ByCredentials{Name: "Alice", Password: "p1"})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete reports affected rows", func(t *testing.T) {
		n, err := repo.Delete(ctx, alice.Id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = repo.Delete(ctx, alice.Id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})
}

func TestNotebookRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewNotebookRepository(testutil.NewDB(t))
	owner := uuid.New()

	first := &entity.Notebook{Id: uuid.New(), UserId: owner, Title: "Trip"}
	require.NoError(t, repo.Create(ctx, first))
	time.Sleep(2 * time.Millisecond)
	second := &entity.Notebook{Id: uuid.New(), UserId: owner, Title: "Work"}
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, &entity.Notebook{Id: uuid.New(), UserId: uuid.New(), Title: "Other"}))

	t.Run("owned list in creation order", func(t *testing.T) {
		got, err := repo.FindAll(ctx, specification.UserOwnedBy{UserID: owner}, specification.CreationOrder{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Trip", got[0].Title)
		assert.Equal(t, "Work", got[1].Title)
	})

	t.Run("scoped lookup misses other owner", func(t *testing.T) {
		got, err := repo.FindOne(ctx, specification.ByID{ID: first.Id}, specification.UserOwnedBy{UserID: uuid.New()})
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update only touches existing rows", func(t *testing.T) {
		first.Title = "Holiday"
		n, err := repo.Update(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		got, err := repo.FindOne(ctx, specification.ByID{ID: first.Id})
		require.NoError(t, err)
		assert.Equal(t, "Holiday", got.Title)

		n, err = repo.Update(ctx, &entity.Notebook{Id: uuid.New(), UserId: owner, Title: "ghost"})
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		count, err := repo.Count(ctx, specification.UserOwnedBy{UserID: owner})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count, "update must not upsert")
	})

	t.Run("delete", func(t *testing.T) {
		n, err := repo.Delete(ctx, second.Id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		count, err := repo.Count(ctx, specification.UserOwnedBy{UserID: owner})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestPageRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPageRepository(testutil.NewDB(t))
	notebookID := uuid.New()

	page := &entity.Page{Id: uuid.New(), NotebookId: notebookID, Title: "Day1", Content: "hi"}
	require.NoError(t, repo.Create(ctx, page))
	require.NoError(t, repo.Create(ctx, &entity.Page{Id: uuid.New(), NotebookId: uuid.New(), Title: "elsewhere"}))

	got, err := repo.FindAll(ctx, specification.ByNotebookID{NotebookID: notebookID}, specification.CreationOrder{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, page.Id, got[0].Id)

	page.Title, page.Content = "Day 1", ""
	n, err := repo.Update(ctx, page)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	reloaded, err := repo.FindOne(ctx, specification.ByID{ID: page.Id}, specification.ByNotebookID{NotebookID: notebookID})
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, "Day 1", reloaded.Title)
	assert.Equal(t, "", reloaded.Content, "empty content is written, not skipped")

	n, err = repo.Delete(ctx, page.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	reloaded, err = repo.FindOne(ctx, specification.ByID{ID: page.Id})
	assert.NoError(t, err)
	assert.Nil(t, reloaded)
}
