package model

import (
	"net/mail"
	"strings"
	"time"
)

// User represents a registered account in the database.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate returns a field-to-message map of constraint violations.
// An empty map means the request is valid.
func (r RegisterRequest) Validate() map[string]string {
	violations := make(map[string]string)

	username := strings.TrimSpace(r.Username)
	switch {
	case username == "":
		violations["username"] = "username is required"
	case len(username) < 3 || len(username) > 50:
		violations["username"] = "username must be between 3 and 50 characters"
	}

	email := strings.TrimSpace(r.Email)
	if email == "" {
		violations["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		violations["email"] = "email must be a valid email address"
	}

	if r.Password == "" {
		violations["password"] = "password is required"
	} else if len(r.Password) < 8 {
		violations["password"] = "password must be at least 8 characters"
	}

	return violations
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate returns a field-to-message map of constraint violations.
func (r LoginRequest) Validate() map[string]string {
	violations := make(map[string]string)
	if strings.TrimSpace(r.Username) == "" {
		violations["username"] = "username is required"
	}
	if r.Password == "" {
		violations["password"] = "password is required"
	}
	return violations
}

// AuthResponse represents a successful authentication response.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
