package portfolio

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when a mutating operation is attempted
// without an authenticated admin session.
var ErrUnauthorized = errors.New("unauthorized")

// ValidationError reports malformed or missing user input. Handlers map it
// to a 400 response.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// StorageError reports a filesystem or content-document problem. Corrupt is
// set when the document exists but does not parse as the expected shape.
type StorageError struct {
	Op      string // "load", "save", "write", "delete"
	Err     error
	Corrupt bool
}

func (e *StorageError) Error() string {
	if e.Corrupt {
		return fmt.Sprintf("content store corrupt: %v", e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// DownstreamError wraps a failure from an external service (Gemini, SMTP).
type DownstreamError struct {
	Service string
	Err     error
}

func (e *DownstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *DownstreamError) Unwrap() error { return e.Err }

// jsonError writes the {success:false, error} envelope with a status code
// mapped from the error type. Every JSON handler funnels failures through
// here so clients always get the same shape.
func jsonError(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		code = http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		code = http.StatusUnauthorized
	}
	return c.JSON(code, echo.Map{"success": false, "error": err.Error()})
}
