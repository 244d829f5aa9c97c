package response

import (
	"errors"
)

// Error carries the HTTP status a domain error should surface with.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	if ok := errors.As(target, &t); !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{Code: code, Err: errors.New(err)}
}

// CodeOf extracts the status code from err, falling back to 500 for
// errors that did not originate from this package.
func CodeOf(err error) int {
	var t *Error
	if errors.As(err, &t) {
		return t.Code
	}
	return 500
}
