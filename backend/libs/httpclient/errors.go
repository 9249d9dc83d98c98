package httpclient

import (
	"errors"
	"fmt"
)

// Kind classifies a failed exchange.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidEndpoint
	KindDecodeFailure
	KindRequestFailure
	KindAuthenticationRequired
)

func (k Kind) String() string {
	switch k {
	case KindInvalidEndpoint:
		return "invalid_endpoint"
	case KindDecodeFailure:
		return "decode_failure"
	case KindRequestFailure:
		return "request_failure"
	case KindAuthenticationRequired:
		return "authentication_required"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching against an *Error of the same kind.
var (
	ErrUnknown                = errors.New("unknown network error")
	ErrInvalidEndpoint        = errors.New("invalid endpoint")
	ErrDecodeFailure          = errors.New("decode failure")
	ErrRequestFailure         = errors.New("request failure")
	ErrAuthenticationRequired = errors.New("authentication required")
)

// Error is returned by every Client operation.
//
// Status and Body are only set for KindRequestFailure. Body holds the raw
// response payload so callers can attempt structured extraction of their own.
type Error struct {
	Kind   Kind
	Status int
	Detail string
	Body   []byte
	Cause  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidEndpoint:
		return fmt.Sprintf("invalid endpoint: %s", e.Detail)
	case KindDecodeFailure:
		return fmt.Sprintf("failed to decode response: %s", e.Detail)
	case KindRequestFailure:
		return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Detail)
	case KindAuthenticationRequired:
		return "authentication is required to perform this action"
	default:
		return fmt.Sprintf("unknown network error: %s", e.Detail)
	}
}

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidEndpoint:
		return ErrInvalidEndpoint
	case KindDecodeFailure:
		return ErrDecodeFailure
	case KindRequestFailure:
		return ErrRequestFailure
	case KindAuthenticationRequired:
		return ErrAuthenticationRequired
	default:
		return ErrUnknown
	}
}

// ErrorEnvelope is the structured failure body served by the backend.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// AsError unwraps err into an *Error.
func AsError(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

func invalidEndpoint(detail string, cause error) *Error {
	return &Error{Kind: KindInvalidEndpoint, Detail: detail, Cause: cause}
}

func unknown(detail string, cause error) *Error {
	return &Error{Kind: KindUnknown, Detail: detail, Cause: cause}
}
