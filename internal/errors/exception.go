package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
	Fields     map[string]string
}

func (e *Exception) Error() string {
	return e.Message
}

// Validation builds a 422 carrying per-field detail for the client.
func Validation(fields map[string]string) *Exception {
	return &Exception{
		Message:    "validation failed",
		StatusCode: http.StatusUnprocessableEntity,
		Fields:     fields,
	}
}

func AsException(err error) (*Exception, bool) {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
