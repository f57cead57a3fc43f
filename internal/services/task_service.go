package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "tasklight.app/tasklight/internal/errors"
	model "tasklight.app/tasklight/internal/models"
	repository "tasklight.app/tasklight/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    model.TaskPriority
	Category    string
}

// UpdateTaskInput is a partial merge: nil means the field was omitted
// and keeps its prior value.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Completed   *bool
	Priority    *model.TaskPriority
	Category    *string
}

func (s *TaskService) List(ctx context.Context, ownerID string) ([]model.Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *TaskService) Create(ctx context.Context, ownerID string, in CreateTaskInput) (*model.Task, error) {
	priority := in.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	task := &model.Task{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Completed:   false,
		Priority:    priority,
		Category:    in.Category,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Get(ctx context.Context, ownerID, id string) (*model.Task, error) {
	return s.fetchOwned(ctx, ownerID, id)
}

func (s *TaskService) Update(ctx context.Context, ownerID, id string, in UpdateTaskInput) (*model.Task, error) {
	if _, err := s.fetchOwned(ctx, ownerID, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.DueDate != nil {
		updates["due_date"] = *in.DueDate
	}
	if in.Completed != nil {
		updates["completed"] = *in.Completed
	}
	if in.Priority != nil {
		updates["priority"] = *in.Priority
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}

	task, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.fetchOwned(ctx, ownerID, id); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrTaskNotFound
	}

	return nil
}

// fetchOwned checks existence before ownership: an absent task is a 404,
// someone else's task is a 403, and neither response leaks content.
func (s *TaskService) fetchOwned(ctx context.Context, ownerID, id string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	if task.OwnerID != ownerID {
		return nil, apperrors.ErrForbidden
	}

	return task, nil
}
