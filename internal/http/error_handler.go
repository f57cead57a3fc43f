package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "tasklight.app/tasklight/internal/errors"
)

// ErrorHandler maps service errors onto the HTTP taxonomy. Unexpected
// errors are logged and surfaced as a generic 500; no internals cross
// the boundary.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if ex, ok := apperrors.AsException(err); ok {
		body := echo.Map{"message": ex.Message}
		if len(ex.Fields) > 0 {
			body["fields"] = ex.Fields
		}
		_ = c.JSON(ex.StatusCode, body)
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, echo.Map{"message": fmt.Sprintf("%v", httpErr.Message)})
		return
	}

	c.Logger().Error(err)
	_ = c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
}
