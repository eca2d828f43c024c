// apperror/apperror.go - typed error taxonomy shared by services and handlers
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds. Services wrap these; handlers map them to status codes
// without ever inspecting raw store errors.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrBusy       = errors.New("store busy")
	ErrStore      = errors.New("store error")
)

type Error struct {
	Kind    error  // one of the sentinels above
	Message string // safe to return to the client
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(message string) *Error {
	return &Error{Kind: ErrConflict, Message: message}
}

func NotFound(resource string, id uint) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("%s %d not found", resource, id)}
}

// FromStore classifies a database error. Constraint violations become client
// errors with the supplied domain message; anything else stays a store error
// whose raw text never reaches the client.
func FromStore(err error, conflictMessage string) *Error {
	text := err.Error()
	switch {
	case strings.Contains(text, "UNIQUE constraint failed"):
		return Conflict(conflictMessage)
	case strings.Contains(text, "FOREIGN KEY constraint failed"),
		strings.Contains(text, "CHECK constraint failed"),
		strings.Contains(text, "NOT NULL constraint failed"):
		return &Error{Kind: ErrConflict, Message: conflictMessage}
	case strings.Contains(text, "database is locked"),
		strings.Contains(text, "SQLITE_BUSY"):
		// Retryable. Callers running a transaction retry on this kind.
		return &Error{Kind: ErrBusy, Message: "storage busy"}
	default:
		return &Error{Kind: ErrStore, Message: "storage operation failed"}
	}
}
