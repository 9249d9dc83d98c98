package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"hackathon/backend/services/auth-service/internal/service"
)

// NewSignupHandler handles POST /auth/signup.
func NewSignupHandler(authService *service.AuthService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeCredentials(w, r)
		if !ok {
			return
		}

		user, err := authService.Signup(r.Context(), req.Email, req.Password, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingFields):
				writeError(w, http.StatusBadRequest, "Email and password are required")
			case errors.Is(err, service.ErrRoleRequired):
				writeError(w, http.StatusBadRequest, "Role is required")
			case errors.Is(err, service.ErrInvalidRole):
				writeError(w, http.StatusBadRequest, "Invalid role")
			case errors.Is(err, service.ErrEmailInUse):
				writeError(w, http.StatusConflict, "Email already exists")
			default:
				logger.Error("signup failed", zap.Error(err))
				writeError(w, http.StatusInternalServerError, "Failed to create user")
			}
			return
		}

		writeJSON(w, http.StatusCreated, authResponse("User created successfully", user))
	}
}
