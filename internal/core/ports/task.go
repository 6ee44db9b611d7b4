package ports

import (
	"context"

	"github.com/Sofiardb/cicd-demo-csharp/internal/core/domain"
)

type TaskRepository interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.TaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.TaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
	CompleteTask(ctx context.Context, id uint64) (domain.Task, error)
	ListTasksByPriority(ctx context.Context, priority domain.Priority) ([]domain.Task, error)
	ListPendingTasks(ctx context.Context) ([]domain.Task, error)
	ListCompletedTasks(ctx context.Context) ([]domain.Task, error)
}

type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.TaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.TaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
	CompleteTask(ctx context.Context, id uint64) (domain.Task, error)
	ListTasksByPriority(ctx context.Context, priority domain.Priority) ([]domain.Task, error)
	ListPendingTasks(ctx context.Context) ([]domain.Task, error)
	ListCompletedTasks(ctx context.Context) ([]domain.Task, error)
}

// TaskCounter reports the size of the task store for health checks.
type TaskCounter interface {
	CountTasks(ctx context.Context) (int, error)
}
