package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/todoapp/todo-api-go/internal/crypto"
	"github.com/todoapp/todo-api-go/internal/model"
	"github.com/todoapp/todo-api-go/internal/repository"
	"github.com/todoapp/todo-api-go/internal/service"
)

var testSigningKey = []byte("0123456789abcdef0123456789abcdef")

type memUserRepo struct {
	nextID  int64
	byName  map[string]*model.User
	byEmail map[string]*model.User
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		nextID:  1,
		byName:  make(map[string]*model.User),
		byEmail: make(map[string]*model.User),
	}
}

func (m *memUserRepo) Create(_ context.Context, user *model.User) error {
	if _, ok := m.byName[user.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	if _, ok := m.byEmail[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	m.byName[user.Username] = &stored
	m.byEmail[user.Email] = &stored
	return nil
}

func (m *memUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	user, ok := m.byName[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *memUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, user := range m.byName {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := m.byName[username]
	return ok, nil
}

func (m *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

type memTodoRepo struct {
	nextID int64
	todos  map[int64]*model.Todo
}

var _ repository.TodoRepository = (*memTodoRepo)(nil)

func newMemTodoRepo() *memTodoRepo {
	return &memTodoRepo{nextID: 1, todos: make(map[int64]*model.Todo)}
}

func (m *memTodoRepo) Create(_ context.Context, todo *model.Todo) error {
	todo.ID = m.nextID
	m.nextID++
	stored := *todo
	m.todos[todo.ID] = &stored
	return nil
}

func (m *memTodoRepo) GetByIDAndUser(_ context.Context, id, userID int64) (*model.Todo, error) {
	todo, ok := m.todos[id]
	if !ok || todo.UserID != userID {
		return nil, repository.ErrTodoNotFound
	}
	copied := *todo
	return &copied, nil
}

func (m *memTodoRepo) ListByUser(_ context.Context, userID int64) ([]model.Todo, error) {
	var todos []model.Todo
	for _, todo := range m.todos {
		if todo.UserID == userID {
			todos = append(todos, *todo)
		}
	}
	sort.Slice(todos, func(i, j int) bool {
		if !todos[i].CreatedAt.Equal(todos[j].CreatedAt) {
			return todos[i].CreatedAt.After(todos[j].CreatedAt)
		}
		return todos[i].ID > todos[j].ID
	})
	return todos, nil
}

func (m *memTodoRepo) Update(_ context.Context, todo *model.Todo) error {
	existing, ok := m.todos[todo.ID]
	if !ok || existing.UserID != todo.UserID {
		return repository.ErrTodoNotFound
	}
	stored := *todo
	m.todos[todo.ID] = &stored
	return nil
}

func (m *memTodoRepo) Delete(_ context.Context, id, userID int64) error {
	existing, ok := m.todos[id]
	if !ok || existing.UserID != userID {
		return repository.ErrTodoNotFound
	}
	delete(m.todos, id)
	return nil
}

// env runs the fully wired router against in-memory stores.
type env struct {
	t      *testing.T
	router *chi.Mux
}

func newEnv(t *testing.T) *env {
	t.Helper()

	tokens, err := crypto.NewTokenService(testSigningKey, time.Hour)
	require.NoError(t, err)

	users := newMemUserRepo()
	todos := newMemTodoRepo()

	authHandler := NewAuthHandler(service.NewAuthService(users, crypto.NewHasher(), tokens))
	todoHandler := NewTodoHandler(service.NewTodoService(todos))

	return &env{
		t:      t,
		router: NewRouter(authHandler, todoHandler, tokens, users, nil),
	}
}

// do issues a request against the router. A non-empty token is sent as a
// Bearer credential; a non-nil body is JSON-encoded.
func (e *env) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(e.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account and returns its session token.
func (e *env) register(username, email, password string) string {
	e.t.Helper()

	rec := e.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(e.t, http.StatusOK, rec.Code, "register failed: %s", rec.Body.String())

	var resp model.AuthResponse
	require.NoError(e.t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(e.t, resp.Token)
	return resp.Token
}

// createTodo creates a todo item and returns its decoded response.
func (e *env) createTodo(token string, body map[string]any) model.TodoResponse {
	e.t.Helper()

	rec := e.do(http.MethodPost, "/api/todos", token, body)
	require.Equal(e.t, http.StatusCreated, rec.Code, "create failed: %s", rec.Body.String())

	var todo model.TodoResponse
	require.NoError(e.t, json.Unmarshal(rec.Body.Bytes(), &todo))
	return todo
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func todoPath(id int64) string { return fmt.Sprintf("/api/todos/%d", id) }
