// Package service contains the business logic for authentication and todos.
package service

import (
	"context"
	"errors"

	"github.com/todoapp/todo-api-go/internal/crypto"
	"github.com/todoapp/todo-api-go/internal/model"
	"github.com/todoapp/todo-api-go/internal/repository"
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrEmailTaken    = errors.New("email is already registered")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so login failures cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService handles registration and login.
type AuthService struct {
	users  repository.UserRepository
	hasher *crypto.Hasher
	tokens *crypto.TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, hasher *crypto.Hasher, tokens *crypto.TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a new account and returns a session token for it.
// The plaintext password is hashed immediately and never stored or logged.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	taken, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if taken {
		return model.AuthResponse{}, ErrUsernameTaken
	}

	taken, err = s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if taken {
		return model.AuthResponse{}, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the existence checks
		// above; the database unique constraints settle the race.
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return model.AuthResponse{}, ErrUsernameTaken
		case errors.Is(err, repository.ErrDuplicateEmail):
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, Username: user.Username, Email: user.Email}, nil
}

// Login verifies credentials and returns a session token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := s.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: token, Username: user.Username, Email: user.Email}, nil
}
