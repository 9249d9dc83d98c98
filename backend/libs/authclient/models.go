package authclient

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap/zapcore"
)

// Credentials is the payload of a sign-in or sign-up attempt. Role is nil for
// sign-in and must be set for sign-up.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     *Role  `json:"role,omitempty"`
}

// SignInCredentials builds credentials without a role.
func SignInCredentials(email, password string) Credentials {
	return Credentials{Email: email, Password: password}
}

// SignUpCredentials builds credentials carrying the chosen role.
func SignUpCredentials(email, password string, role Role) Credentials {
	return Credentials{Email: email, Password: password, Role: role.Ptr()}
}

// MarshalLogObject logs credentials without the password.
func (c Credentials) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("email", c.Email)
	if c.Role != nil {
		enc.AddString("role", c.Role.String())
	}
	return nil
}

// AuthResponse is the success body of both auth endpoints.
type AuthResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
	Role    *Role  `json:"role,omitempty"`
}

// UnmarshalJSON requires message and email; role is optional.
func (r *AuthResponse) UnmarshalJSON(data []byte) error {
	var wire struct {
		Message *string `json:"message"`
		Email   *string `json:"email"`
		Role    *Role   `json:"role"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Message == nil {
		return errors.New("authclient: response is missing \"message\"")
	}
	if wire.Email == nil {
		return errors.New("authclient: response is missing \"email\"")
	}
	*r = AuthResponse{Message: *wire.Message, Email: *wire.Email, Role: wire.Role}
	return nil
}

// RequireRole returns the role, or ErrRoleMissing when the server sent none.
func (r *AuthResponse) RequireRole() (Role, error) {
	if r == nil || r.Role == nil {
		return "", ErrRoleMissing
	}
	return *r.Role, nil
}
