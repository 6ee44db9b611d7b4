package dto

import "encoding/json"

type TaskItem struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Completed   bool    `json:"completed"`
	Priority    string  `json:"priority"`
	CreatedAt   string  `json:"created_at"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

// TaskRequest is the body of both POST /tasks and PUT /tasks/:id. Fields such as
// id, created_at or completed are not part of it and are ignored when sent.
type TaskRequest struct {
	Title       string  `json:"title" binding:"required,notblank,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	// Priority is a name ("high"), a rank string ("2") or a rank number (2).
	Priority json.RawMessage `json:"priority" binding:"omitempty,priority"`
}
