package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"hackathon/backend/services/auth-service/internal/service"
)

// NewSigninHandler handles POST /auth/signin.
func NewSigninHandler(authService *service.AuthService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeCredentials(w, r)
		if !ok {
			return
		}

		user, err := authService.Signin(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingFields):
				writeError(w, http.StatusBadRequest, "Email and password are required")
			case errors.Is(err, service.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
			default:
				logger.Error("signin failed", zap.Error(err))
				writeError(w, http.StatusInternalServerError, "Failed to sign in")
			}
			return
		}

		writeJSON(w, http.StatusOK, authResponse("Sign in successful", user))
	}
}
