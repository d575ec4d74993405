package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/todoapp/todo-api-go/internal/config"
	"github.com/todoapp/todo-api-go/internal/crypto"
	"github.com/todoapp/todo-api-go/internal/handler"
	"github.com/todoapp/todo-api-go/internal/migrate"
	"github.com/todoapp/todo-api-go/internal/repository"
	"github.com/todoapp/todo-api-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrate.Up(context.Background(), db); err != nil {
		slog.Error("running migrations failed", "error", err)
		os.Exit(1)
	}

	tokens, err := crypto.NewTokenService(cfg.SigningKey, cfg.TokenTTL)
	if err != nil {
		slog.Error("invalid token configuration", "error", err)
		os.Exit(1)
	}
	hasher := crypto.NewHasher()

	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	authService := service.NewAuthService(userRepo, hasher, tokens)
	todoService := service.NewTodoService(todoRepo)

	authHandler := handler.NewAuthHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)

	r := handler.NewRouter(authHandler, todoHandler, tokens, userRepo, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
