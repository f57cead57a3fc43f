package errors

import "net/http"

var ErrForbidden = &Exception{
	Message:    "you do not own this task",
	StatusCode: http.StatusForbidden,
}
