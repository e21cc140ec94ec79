package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"todo-server/internal/domain"
	"todo-server/internal/repository"
)

func openTestDB(t *testing.T) (repository.UserRepository, repository.TodoRepository) {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := NewUserRepository(db)
	todos := NewTodoRepository(db)
	require.NoError(t, users.Init(context.Background()))
	require.NoError(t, todos.Init(context.Background()))
	return users, todos
}

func TestUserRepository_EmailUnique(t *testing.T) {
	users, _ := openTestDB(t)
	ctx := context.Background()

	first := &domain.User{Email: "a@b.com", PasswordHash: "h1"}
	require.NoError(t, users.Create(ctx, first))
	require.NotEmpty(t, first.ID)
	require.False(t, first.CreatedAt.IsZero())

	second := &domain.User{Email: "a@b.com", PasswordHash: "h2"}
	err := users.Create(ctx, second)
	require.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestUserRepository_GetMissing(t *testing.T) {
	users, _ := openTestDB(t)
	ctx := context.Background()

	_, err := users.GetByEmail(ctx, "nobody@b.com")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = users.GetByID(ctx, "missing-id")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTodoRepository_ListInsertionOrder(t *testing.T) {
	users, todos := openTestDB(t)
	ctx := context.Background()

	owner := &domain.User{Email: "a@b.com", PasswordHash: "h"}
	require.NoError(t, users.Create(ctx, owner))

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		todo := &domain.Todo{
			Title:       title,
			Description: "d",
			Status:      domain.TodoStatusPending,
			OwnerID:     owner.ID,
		}
		require.NoError(t, todos.Create(ctx, todo))
		// created_at is the sort key
		time.Sleep(5 * time.Millisecond)
	}

	list, err := todos.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, len(titles))
	for i, title := range titles {
		require.Equal(t, title, list[i].Title)
	}
}

func TestTodoRepository_UpdateBumpsUpdatedAt(t *testing.T) {
	users, todos := openTestDB(t)
	ctx := context.Background()

	owner := &domain.User{Email: "a@b.com", PasswordHash: "h"}
	require.NoError(t, users.Create(ctx, owner))

	todo := &domain.Todo{Title: "T", Description: "D", Status: domain.TodoStatusPending, OwnerID: owner.ID}
	require.NoError(t, todos.Create(ctx, todo))

	created := todo.UpdatedAt
	time.Sleep(5 * time.Millisecond)

	todo.Status = domain.TodoStatusCompleted
	require.NoError(t, todos.Update(ctx, todo))
	require.True(t, todo.UpdatedAt.After(created))

	stored, err := todos.Get(ctx, todo.ID)
	require.NoError(t, err)
	require.Equal(t, domain.TodoStatusCompleted, stored.Status)
	require.Equal(t, todo.CreatedAt.Unix(), stored.CreatedAt.Unix())
}

func TestTodoRepository_DeleteMissing(t *testing.T) {
	_, todos := openTestDB(t)

	err := todos.Delete(context.Background(), "missing-id")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
