package middleware

import (
	"github.com/labstack/echo/v4"

	apperrors "tasklight.app/tasklight/internal/errors"
	"tasklight.app/tasklight/internal/services"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "tasklight_token"

const userIDKey = "tasklight.user_id"

// Session resolves the caller from the session cookie and stores the
// user ID in the request context. Requests without a valid token are
// rejected before any handler runs.
func Session(auth *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return apperrors.ErrUnauthenticated
			}

			userID, err := auth.Authenticate(cookie.Value)
			if err != nil {
				return err
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// UserID returns the authenticated caller's ID, or "" outside Session.
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}
