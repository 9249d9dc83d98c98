package handlers

import (
	"encoding/json"
	"net/http"

	"hackathon/backend/libs/authclient"
	"hackathon/backend/libs/httpclient"
	"hackathon/backend/services/auth-service/internal/models"
)

const maxBodyBytes = 1 << 20

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (credentialsRequest, bool) {
	var req credentialsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return req, false
	}
	return req, true
}

func authResponse(message string, user *models.User) authclient.AuthResponse {
	return authclient.AuthResponse{
		Message: message,
		Email:   user.Email,
		Role:    authclient.Role(user.Role).Ptr(),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, httpclient.ErrorEnvelope{Error: message})
}
