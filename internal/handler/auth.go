// Package handler contains the HTTP layer: request decoding, validation
// dispatch, and response encoding.
package handler

import (
	"net/http"

	"github.com/todoapp/todo-api-go/internal/middleware"
	"github.com/todoapp/todo-api-go/internal/model"
	"github.com/todoapp/todo-api-go/internal/service"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /api/auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if violations := req.Validate(); len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrorResponse(violations))
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleLogin handles POST /api/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if violations := req.Validate(); len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrorResponse(violations))
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleMe handles GET /api/auth/me requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("authentication required"))
		return
	}

	writeJSON(w, http.StatusOK, model.UserResponse{Username: user.Username, Email: user.Email})
}
