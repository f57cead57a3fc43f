package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "tasklight.app/tasklight/internal/http/middlewares"
	"tasklight.app/tasklight/internal/services"
)

func Register(e *echo.Echo, auth *AuthHandler, tasks *TaskHandler, quotes *QuoteHandler, authService *services.AuthService) {
	e.HTTPErrorHandler = ErrorHandler

	session := middleware.Session(authService)
	api := e.Group("/api")

	a := api.Group("/auth")
	a.POST("/register", auth.Register)
	a.POST("/login", auth.Login)
	a.POST("/logout", auth.Logout)
	a.GET("/me", auth.Me, session)

	t := api.Group("/tasks", session)
	t.GET("", tasks.ListTasks)
	t.POST("", tasks.CreateTask)
	t.GET("/:id", tasks.GetTask)
	t.PATCH("/:id", tasks.UpdateTask)
	t.DELETE("/:id", tasks.DeleteTask)

	q := api.Group("/quotes")
	q.GET("/daily", quotes.Daily)
	q.GET("/daily/:refresh", quotes.Daily)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
}
