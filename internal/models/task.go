package model

import "time"

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          string       `gorm:"primaryKey;size:36" json:"id"`
	OwnerID     string       `gorm:"size:36;not null;index" json:"owner_id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `json:"description"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	Completed   bool         `gorm:"not null;default:false" json:"completed"`
	Priority    TaskPriority `gorm:"type:varchar(10);not null" json:"priority"`
	Category    string       `json:"category"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
