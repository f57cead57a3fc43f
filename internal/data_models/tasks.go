package dto

import "time"

type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
}

// UpdateTaskRequest uses pointers so an omitted field can be told apart
// from a zero value; omitted fields keep their stored value.
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Completed   *bool      `json:"completed"`
	Priority    *string    `json:"priority"`
	Category    *string    `json:"category"`
}
