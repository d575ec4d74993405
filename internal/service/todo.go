package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/todoapp/todo-api-go/internal/model"
	"github.com/todoapp/todo-api-go/internal/repository"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrTodoNotFound  = errors.New("todo not found")
)

// TodoService handles todo item business logic. Every operation takes the
// authenticated owner's user ID and scopes all store access to it.
type TodoService struct {
	repo repository.TodoRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(repo repository.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

// List returns all of the user's todo items, newest first. An empty result
// is a valid, empty list.
func (s *TodoService) List(ctx context.Context, userID int64) ([]model.TodoResponse, error) {
	todos, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]model.TodoResponse, len(todos))
	for i := range todos {
		responses[i] = model.NewTodoResponse(&todos[i])
	}
	return responses, nil
}

// Get returns a single todo item owned by the user.
func (s *TodoService) Get(ctx context.Context, userID, id int64) (model.TodoResponse, error) {
	todo, err := s.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return model.TodoResponse{}, mapRepoErr(err)
	}
	return model.NewTodoResponse(todo), nil
}

// Create persists a new todo item owned by the user. Completed defaults to
// false when absent from the request.
func (s *TodoService) Create(ctx context.Context, userID int64, req model.CreateTodoRequest) (model.TodoResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return model.TodoResponse{}, ErrTitleRequired
	}

	now := time.Now().UTC()
	todo := &model.Todo{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
	}

	if err := s.repo.Create(ctx, todo); err != nil {
		return model.TodoResponse{}, err
	}

	return model.NewTodoResponse(todo), nil
}

// Update applies a partial update: only fields present in the request
// overwrite stored values. The updated timestamp is always refreshed.
func (s *TodoService) Update(ctx context.Context, userID, id int64, req model.UpdateTodoRequest) (model.TodoResponse, error) {
	todo, err := s.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return model.TodoResponse{}, mapRepoErr(err)
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return model.TodoResponse{}, ErrTitleRequired
		}
		todo.Title = *req.Title
	}
	if req.Description != nil {
		todo.Description = req.Description
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
	}
	todo.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, todo); err != nil {
		return model.TodoResponse{}, mapRepoErr(err)
	}

	return model.NewTodoResponse(todo), nil
}

// Delete permanently removes a todo item owned by the user.
func (s *TodoService) Delete(ctx context.Context, userID, id int64) error {
	return mapRepoErr(s.repo.Delete(ctx, id, userID))
}

// Toggle flips the item's completed flag and refreshes the updated timestamp.
func (s *TodoService) Toggle(ctx context.Context, userID, id int64) (model.TodoResponse, error) {
	todo, err := s.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return model.TodoResponse{}, mapRepoErr(err)
	}

	todo.Completed = !todo.Completed
	todo.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, todo); err != nil {
		return model.TodoResponse{}, mapRepoErr(err)
	}

	return model.NewTodoResponse(todo), nil
}

func mapRepoErr(err error) error {
	if errors.Is(err, repository.ErrTodoNotFound) {
		return ErrTodoNotFound
	}
	return err
}
