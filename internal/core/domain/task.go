package domain

import "time"

type Task struct {
	ID          uint64
	Title       string
	Description *string
	Completed   bool
	Priority    Priority
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// TaskInput carries the caller-editable fields of a task. Identity, timestamps
// and completion state are owned by the store.
type TaskInput struct {
	Title       string
	Description *string
	Priority    Priority
}
