package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Sofiardb/cicd-demo-csharp/internal/core/domain"
	"github.com/Sofiardb/cicd-demo-csharp/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.ListTasks(ctx)
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	return s.taskRepository.GetTask(ctx, id)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.TaskInput) (domain.Task, error) {
	input, err := normalizeTaskInput(input)
	if err != nil {
		return domain.Task{}, err
	}

	task, err := s.taskRepository.CreateTask(ctx, input)
	if err != nil {
		return domain.Task{}, err
	}

	zap.L().Debug("task created", zap.Uint64("task_id", task.ID), zap.Stringer("priority", task.Priority))
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.TaskInput) (domain.Task, error) {
	input, err := normalizeTaskInput(input)
	if err != nil {
		return domain.Task{}, err
	}

	task, err := s.taskRepository.UpdateTask(ctx, id, input)
	if err != nil {
		return domain.Task{}, err
	}

	zap.L().Debug("task updated", zap.Uint64("task_id", task.ID))
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	if err := s.taskRepository.DeleteTask(ctx, id); err != nil {
		return err
	}

	zap.L().Debug("task deleted", zap.Uint64("task_id", id))
	return nil
}

func (s *TaskService) CompleteTask(ctx context.Context, id uint64) (domain.Task, error) {
	task, err := s.taskRepository.CompleteTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	zap.L().Debug("task completed", zap.Uint64("task_id", task.ID))
	return task, nil
}

func (s *TaskService) ListTasksByPriority(ctx context.Context, priority domain.Priority) ([]domain.Task, error) {
	if !priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}
	return s.taskRepository.ListTasksByPriority(ctx, priority)
}

func (s *TaskService) ListPendingTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.ListPendingTasks(ctx)
}

func (s *TaskService) ListCompletedTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.ListCompletedTasks(ctx)
}

func normalizeTaskInput(input domain.TaskInput) (domain.TaskInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" || !input.Priority.IsValid() {
		return domain.TaskInput{}, domain.ErrInvalidTaskInput
	}
	return input, nil
}

var _ ports.TaskService = (*TaskService)(nil)
