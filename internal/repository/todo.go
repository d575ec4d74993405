package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/todoapp/todo-api-go/internal/model"
)

type todoRepository struct {
	db *sql.DB
}

// NewTodoRepository creates a MySQL-backed TodoRepository.
func NewTodoRepository(db *sql.DB) TodoRepository {
	return &todoRepository{db: db}
}

// Create inserts a new todo item and sets the generated ID on the struct.
// Timestamps are supplied by the caller.
func (r *todoRepository) Create(ctx context.Context, todo *model.Todo) error {
	query := `INSERT INTO todos (user_id, title, description, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		todo.UserID, todo.Title, todo.Description, todo.Completed, todo.CreatedAt, todo.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	todo.ID = id
	return nil
}

// GetByIDAndUser retrieves a todo item by ID, scoped to the owning user.
func (r *todoRepository) GetByIDAndUser(ctx context.Context, id, userID int64) (*model.Todo, error) {
	query := `SELECT id, user_id, title, description, completed, created_at, updated_at
		FROM todos WHERE id = ? AND user_id = ?`

	todo := &model.Todo{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&todo.ID, &todo.UserID, &todo.Title, &todo.Description,
		&todo.Completed, &todo.CreatedAt, &todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}

	return todo, nil
}

// ListByUser retrieves all todo items for a user, newest first.
func (r *todoRepository) ListByUser(ctx context.Context, userID int64) ([]model.Todo, error) {
	query := `SELECT id, user_id, title, description, completed, created_at, updated_at
		FROM todos WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Description,
			&t.Completed, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}

	return todos, rows.Err()
}

// Update writes the item's mutable fields, scoped to the owning user.
func (r *todoRepository) Update(ctx context.Context, todo *model.Todo) error {
	query := `UPDATE todos SET title = ?, description = ?, completed = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query,
		todo.Title, todo.Description, todo.Completed, todo.UpdatedAt,
		todo.ID, todo.UserID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// Delete permanently removes a todo item, scoped to the owning user.
func (r *todoRepository) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}
