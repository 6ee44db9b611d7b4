package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Sofiardb/cicd-demo-csharp/internal/core/domain"
	"github.com/Sofiardb/cicd-demo-csharp/internal/core/ports"
)

// TaskRepository keeps tasks in insertion order for the lifetime of the process.
// Every returned task is a copy; stored records never leave the repository.
type TaskRepository struct {
	mu     sync.RWMutex
	tasks  []taskRecord
	nextID uint64
	now    func() time.Time
}

type taskRecord struct {
	ID          uint64
	Title       string
	Description *string
	Completed   bool
	Priority    domain.Priority
	CreatedAt   time.Time
	CompletedAt *time.Time
}

type Option func(*TaskRepository)

// WithClock replaces the time source used for creation and completion timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *TaskRepository) {
		r.now = now
	}
}

var (
	_ ports.TaskRepository = (*TaskRepository)(nil)
	_ ports.TaskCounter    = (*TaskRepository)(nil)
)

func NewTaskRepository(opts ...Option) *TaskRepository {
	r := &TaskRepository{
		nextID: 1,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *TaskRepository) ListTasks(_ context.Context) ([]domain.Task, error) {
	return r.filter(func(taskRecord) bool { return true }), nil
}

func (r *TaskRepository) GetTask(_ context.Context, id uint64) (domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return mapTaskRecordToDomainTask(r.tasks[idx]), nil
}

func (r *TaskRepository) CreateTask(_ context.Context, input domain.TaskInput) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := taskRecord{
		ID:          r.nextID,
		Title:       input.Title,
		Description: cloneString(input.Description),
		Priority:    input.Priority,
		CreatedAt:   r.now(),
	}
	r.nextID++
	r.tasks = append(r.tasks, record)

	return mapTaskRecordToDomainTask(record), nil
}

func (r *TaskRepository) UpdateTask(_ context.Context, id uint64, input domain.TaskInput) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	record := &r.tasks[idx]
	record.Title = input.Title
	record.Description = cloneString(input.Description)
	record.Priority = input.Priority

	return mapTaskRecordToDomainTask(*record), nil
}

func (r *TaskRepository) DeleteTask(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return domain.ErrTaskNotFound
	}

	r.tasks = append(r.tasks[:idx], r.tasks[idx+1:]...)
	return nil
}

func (r *TaskRepository) CompleteTask(_ context.Context, id uint64) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	completedAt := r.now()
	record := &r.tasks[idx]
	record.Completed = true
	record.CompletedAt = &completedAt

	return mapTaskRecordToDomainTask(*record), nil
}

func (r *TaskRepository) ListTasksByPriority(_ context.Context, priority domain.Priority) ([]domain.Task, error) {
	return r.filter(func(record taskRecord) bool { return record.Priority == priority }), nil
}

func (r *TaskRepository) ListPendingTasks(_ context.Context) ([]domain.Task, error) {
	return r.filter(func(record taskRecord) bool { return !record.Completed }), nil
}

func (r *TaskRepository) ListCompletedTasks(_ context.Context) ([]domain.Task, error) {
	return r.filter(func(record taskRecord) bool { return record.Completed }), nil
}

func (r *TaskRepository) CountTasks(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks), nil
}

func (r *TaskRepository) filter(keep func(taskRecord) bool) []domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(r.tasks))
	for _, record := range r.tasks {
		if keep(record) {
			tasks = append(tasks, mapTaskRecordToDomainTask(record))
		}
	}
	return tasks
}

// indexOf must be called with r.mu held.
func (r *TaskRepository) indexOf(id uint64) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func mapTaskRecordToDomainTask(record taskRecord) domain.Task {
	task := domain.Task{
		ID:          record.ID,
		Title:       record.Title,
		Description: cloneString(record.Description),
		Completed:   record.Completed,
		Priority:    record.Priority,
		CreatedAt:   record.CreatedAt,
	}

	if record.CompletedAt != nil {
		value := *record.CompletedAt
		task.CompletedAt = &value
	}

	return task
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
