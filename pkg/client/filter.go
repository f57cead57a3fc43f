package client

import (
	"slices"
	"strings"
)

type CompletionMode string

const (
	CompletionAll       CompletionMode = "all"
	CompletionActive    CompletionMode = "active"
	CompletionCompleted CompletionMode = "completed"
)

// Filters narrows a task list. Criteria AND across dimensions and OR
// within one; an empty slice or string leaves that dimension open.
type Filters struct {
	Search     string
	Priorities []string
	Categories []string
	Completion CompletionMode
}

// ApplyFilters is a pure function of its inputs: the same filters on
// the same tasks always yield the same subset, in the original order.
func ApplyFilters(tasks []Task, f Filters) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func (f Filters) matches(t Task) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			return false
		}
	}

	if len(f.Priorities) > 0 && !slices.Contains(f.Priorities, t.Priority) {
		return false
	}

	if len(f.Categories) > 0 && !slices.Contains(f.Categories, t.Category) {
		return false
	}

	switch f.Completion {
	case CompletionActive:
		return !t.Completed
	case CompletionCompleted:
		return t.Completed
	}

	return true
}
