package service

import (
	"context"
	"errors"

	"todo-server/internal/domain"
	"todo-server/internal/repository"
)

// ErrTodoNotFound indicates the referenced todo id does not exist.
var ErrTodoNotFound = errors.New("todo not found")

// TodoUpdate carries the subset of fields to change; nil fields are
// left untouched.
type TodoUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TodoStatus
}

// TodoService coordinates todo CRUD backed by the repository.
//
// Get, Update and Delete operate on the todo id alone: any
// authenticated caller can reach any todo. Only List and Create are
// scoped to the calling identity. This matches the current API
// contract; see DESIGN.md before tightening it.
type TodoService interface {
	Create(ctx context.Context, identity domain.Identity, title, description string) (*domain.Todo, error)
	List(ctx context.Context, identity domain.Identity) ([]domain.Todo, error)
	Get(ctx context.Context, id string) (*domain.Todo, error)
	Update(ctx context.Context, id string, update TodoUpdate) (*domain.Todo, error)
	Delete(ctx context.Context, id string) error
}

type todoService struct {
	todos repository.TodoRepository
}

func NewTodoService(todos repository.TodoRepository) TodoService {
	return &todoService{todos: todos}
}

func (s *todoService) Create(ctx context.Context, identity domain.Identity, title, description string) (*domain.Todo, error) {
	todo := &domain.Todo{
		Title:       title,
		Description: description,
		Status:      domain.TodoStatusPending,
		OwnerID:     identity.ID,
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *todoService) List(ctx context.Context, identity domain.Identity) ([]domain.Todo, error) {
	return s.todos.ListByOwner(ctx, identity.ID)
}

func (s *todoService) Get(ctx context.Context, id string) (*domain.Todo, error) {
	todo, err := s.todos.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	return todo, nil
}

func (s *todoService) Update(ctx context.Context, id string, update TodoUpdate) (*domain.Todo, error) {
	todo, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		todo.Title = *update.Title
	}
	if update.Description != nil {
		todo.Description = *update.Description
	}
	if update.Status != nil {
		todo.Status = *update.Status
	}

	if err := s.todos.Update(ctx, todo); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	return todo, nil
}

func (s *todoService) Delete(ctx context.Context, id string) error {
	if err := s.todos.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTodoNotFound
		}
		return err
	}
	return nil
}
