// Package repository provides MySQL persistence for users and todo items.
package repository

import (
	"context"
	"errors"

	"github.com/todoapp/todo-api-go/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrTodoNotFound      = errors.New("todo not found")
)

// UserRepository persists account records.
type UserRepository interface {
	// Create inserts a new user and sets the generated ID on the struct.
	// Unique-constraint violations map to ErrDuplicateUsername or
	// ErrDuplicateEmail.
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// TodoRepository persists todo items. Every lookup and mutation is scoped
// to the owning user: an item owned by someone else is indistinguishable
// from one that does not exist.
type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) error
	GetByIDAndUser(ctx context.Context, id, userID int64) (*model.Todo, error)
	// ListByUser returns the user's items ordered by creation time, newest first.
	ListByUser(ctx context.Context, userID int64) ([]model.Todo, error)
	Update(ctx context.Context, todo *model.Todo) error
	Delete(ctx context.Context, id, userID int64) error
}
