package errors

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrUnauthenticated is returned when no valid token accompanies a request.
	ErrUnauthenticated = errors.New("Unauthorized")
	// ErrForbidden is returned when the caller's role does not permit the operation.
	ErrForbidden = errors.New("Unauthorized")
	// ErrUserNotFound is returned when a user lookup matches nothing.
	ErrUserNotFound = errors.New("User not found")
	// ErrEmailTaken is returned when registering or updating to an email already in use.
	ErrEmailTaken = errors.New("User with this email already exists")
)

// Envelope is the uniform response wrapper returned by every local API route.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK builds a success envelope.
func OK(data interface{}, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// Fail builds a failure envelope.
func Fail(message string) Envelope {
	return Envelope{Success: false, Error: message}
}

// ValidationError carries the joined field level complaints for a 400 response.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// NewValidationError wraps field complaints; returns nil when there are none.
func NewValidationError(msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Messages: msgs}
}

// StatusFor maps a domain error to its HTTP status code. Unknown errors are
// treated as internal failures; their detail stays server side.
func StatusFor(err error) int {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// MessageFor returns the client-visible message for an error. Internal
// failures collapse to a generic fallback.
func MessageFor(err error, fallback string) string {
	if StatusFor(err) == http.StatusInternalServerError {
		return fallback
	}
	return err.Error()
}
