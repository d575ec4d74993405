package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/todoapp/todo-api-go/internal/crypto"
	"github.com/todoapp/todo-api-go/internal/middleware"
	"github.com/todoapp/todo-api-go/internal/repository"
)

// NewRouter wires middleware and routes into the API's HTTP handler.
func NewRouter(
	authHandler *AuthHandler,
	todoHandler *TodoHandler,
	tokens *crypto.TokenService,
	users repository.UserRepository,
	allowedOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()

	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Authenticate(tokens, users))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.HandleRegister)
		r.Post("/login", authHandler.HandleLogin)
		r.With(middleware.RequireAuth).Get("/me", authHandler.HandleMe)
	})

	r.Route("/api/todos", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", todoHandler.HandleList)
		r.Post("/", todoHandler.HandleCreate)
		r.Get("/{id}", todoHandler.HandleGet)
		r.Put("/{id}", todoHandler.HandleUpdate)
		r.Delete("/{id}", todoHandler.HandleDelete)
		r.Patch("/{id}/toggle", todoHandler.HandleToggle)
	})

	return r
}
