package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"todo-server/internal/domain"
)

func newTodoFixture(t *testing.T) (TodoService, domain.Identity) {
	t.Helper()

	users, todos := newTestRepos(t)
	ctx := context.Background()

	user := &domain.User{Email: "a@b.com", PasswordHash: "x"}
	require.NoError(t, users.Create(ctx, user))

	return NewTodoService(todos), domain.Identity{ID: user.ID, Email: user.Email}
}

func strPtr(s string) *string { return &s }

func TestCreateTodo_Defaults(t *testing.T) {
	svc, identity := newTodoFixture(t)

	todo, err := svc.Create(context.Background(), identity, "T", "D")
	require.NoError(t, err)
	require.NotEmpty(t, todo.ID)
	require.Equal(t, "T", todo.Title)
	require.Equal(t, "D", todo.Description)
	require.Equal(t, domain.TodoStatusPending, todo.Status)
	require.Equal(t, identity.ID, todo.OwnerID)
}

func TestListTodos_OwnerScoped(t *testing.T) {
	svc, identity := newTodoFixture(t)
	ctx := context.Background()

	list, err := svc.List(ctx, identity)
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = svc.Create(ctx, identity, "first", "d1")
	require.NoError(t, err)
	_, err = svc.Create(ctx, identity, "second", "d2")
	require.NoError(t, err)

	other := domain.Identity{ID: "someone-else", Email: "c@d.com"}
	list, err = svc.List(ctx, other)
	require.NoError(t, err)
	require.Empty(t, list)

	list, err = svc.List(ctx, identity)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestGetTodo_NotFound(t *testing.T) {
	svc, _ := newTodoFixture(t)

	_, err := svc.Get(context.Background(), "missing-id")
	require.ErrorIs(t, err, ErrTodoNotFound)
}

func TestUpdateTodo_PartialFields(t *testing.T) {
	svc, identity := newTodoFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, identity, "T", "D")
	require.NoError(t, err)

	status := domain.TodoStatusCompleted
	updated, err := svc.Update(ctx, created.ID, TodoUpdate{Status: &status})
	require.NoError(t, err)
	require.Equal(t, domain.TodoStatusCompleted, updated.Status)
	require.Equal(t, "T", updated.Title)
	require.Equal(t, "D", updated.Description)

	updated, err = svc.Update(ctx, created.ID, TodoUpdate{Title: strPtr("T2")})
	require.NoError(t, err)
	require.Equal(t, "T2", updated.Title)
	require.Equal(t, "D", updated.Description)
	require.Equal(t, domain.TodoStatusCompleted, updated.Status)
}

func TestUpdateTodo_NotFound(t *testing.T) {
	svc, _ := newTodoFixture(t)

	_, err := svc.Update(context.Background(), "missing-id", TodoUpdate{Title: strPtr("x")})
	require.ErrorIs(t, err, ErrTodoNotFound)
}

func TestDeleteTodo(t *testing.T) {
	svc, identity := newTodoFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, identity, "T", "D")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrTodoNotFound)
}

func TestDeleteTodo_MissingLeavesStoreUnchanged(t *testing.T) {
	svc, identity := newTodoFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, identity, "keep", "me")
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, "missing-id"), ErrTodoNotFound)

	list, err := svc.List(ctx, identity)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
