package authclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"hackathon/backend/libs/httpclient"
)

// ValidationError is raised before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	// ErrRoleRequired is returned by SignUp when no role was chosen.
	ErrRoleRequired = &ValidationError{Field: "role", Message: "role selection is required for sign up"}

	// ErrRoleMissing is returned by RequireRole when the response had no role.
	ErrRoleMissing = errors.New("authclient: response carries no role")
)

// Operation names a user-facing auth action.
type Operation string

const (
	OpSignIn Operation = "Sign In"
	OpSignUp Operation = "Sign Up"
)

const invalidCredentialsMessage = "Invalid email or password."

// UserMessage renders err for display after op. Rejected sign-ins never echo
// the server detail so the message cannot be used to probe which emails exist.
func UserMessage(op Operation, err error) string {
	if err == nil {
		return ""
	}

	var validation *ValidationError
	if errors.As(err, &validation) {
		return sentence(validation.Message)
	}

	netErr, ok := httpclient.AsError(err)
	if !ok {
		return fmt.Sprintf("%s Failed: %s", op, sentence(err.Error()))
	}

	switch netErr.Kind {
	case httpclient.KindRequestFailure:
		if op == OpSignIn {
			return fmt.Sprintf("%s Failed: %s", op, invalidCredentialsMessage)
		}
		return fmt.Sprintf("%s Failed: %s", op, sentence(netErr.Detail))
	case httpclient.KindDecodeFailure:
		return fmt.Sprintf("%s Failed: unexpected response from server.", op)
	case httpclient.KindInvalidEndpoint:
		return fmt.Sprintf("%s Failed: the server address is invalid.", op)
	default:
		return fmt.Sprintf("%s Failed: could not reach the server.", op)
	}
}

func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	s = strings.ToUpper(string(r)) + s[size:]
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}

// requestFailureDetail picks the most useful detail for a rejected request:
// the envelope's error field, then readable body text, then a status message.
// An envelope whose error field is blank carries no detail.
func requestFailureDetail(status int, body []byte) string {
	var envelope struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		if strings.TrimSpace(*envelope.Error) != "" {
			return *envelope.Error
		}
		return fmt.Sprintf("Authentication failed with status code: %d", status)
	}
	if len(bytes.TrimSpace(body)) > 0 && utf8.Valid(body) {
		return string(body)
	}
	return fmt.Sprintf("Authentication failed with status code: %d", status)
}
