package mapper

import (
	"time"

	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/dto"
	"github.com/Sofiardb/cicd-demo-csharp/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		Priority:  task.Priority.String(),
		CreatedAt: task.CreatedAt.UTC().Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.CompletedAt != nil {
		value := task.CompletedAt.UTC().Format(time.RFC3339)
		item.CompletedAt = &value
	}

	return item
}
