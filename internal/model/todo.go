package model

import (
	"strings"
	"time"
)

// Todo represents a todo item in the database. Description is nullable.
type Todo struct {
	ID          int64
	UserID      int64
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateTodoRequest represents a request to create a todo item.
type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// Validate returns a field-to-message map of constraint violations.
func (r CreateTodoRequest) Validate() map[string]string {
	violations := make(map[string]string)
	if strings.TrimSpace(r.Title) == "" {
		violations["title"] = "title is required"
	}
	return violations
}

// UpdateTodoRequest represents a partial update of a todo item.
// Absent fields leave the stored values unchanged.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TodoResponse represents a todo item in API responses.
type TodoResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTodoResponse converts a Todo into its API representation.
func NewTodoResponse(t *Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
