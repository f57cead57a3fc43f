package validators

import (
	dto "tasklight.app/tasklight/internal/data_models"
	apperrors "tasklight.app/tasklight/internal/errors"
	model "tasklight.app/tasklight/internal/models"
)

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	fields := map[string]string{}
	if r.Title != nil && *r.Title == "" {
		fields["title"] = "title must not be empty"
	}
	if r.Priority != nil && !model.TaskPriority(*r.Priority).Valid() {
		fields["priority"] = "priority must be one of low, medium, high"
	}
	if len(fields) > 0 {
		return apperrors.Validation(fields)
	}
	return nil
}
