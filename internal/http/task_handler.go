package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "tasklight.app/tasklight/internal/data_models"
	apperrors "tasklight.app/tasklight/internal/errors"
	middleware "tasklight.app/tasklight/internal/http/middlewares"
	"tasklight.app/tasklight/internal/http/validators"
	model "tasklight.app/tasklight/internal/models"
	"tasklight.app/tasklight/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	if tasks == nil {
		tasks = []model.Task{}
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.Create(c.Request().Context(), middleware.UserID(c), services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    model.TaskPriority(req.Priority),
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return apperrors.ErrTaskIDRequired
	}

	task, err := h.taskService.Get(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return apperrors.ErrTaskIDRequired
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	in := services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
		Category:    req.Category,
	}
	if req.Priority != nil {
		priority := model.TaskPriority(*req.Priority)
		in.Priority = &priority
	}

	task, err := h.taskService.Update(c.Request().Context(), middleware.UserID(c), id, in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return apperrors.ErrTaskIDRequired
	}

	if err := h.taskService.Delete(c.Request().Context(), middleware.UserID(c), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}
