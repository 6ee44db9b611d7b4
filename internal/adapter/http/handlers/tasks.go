package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/dto"
	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/mapper"
	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/validation"
	"github.com/Sofiardb/cicd-demo-csharp/internal/core/domain"
	"github.com/Sofiardb/cicd-demo-csharp/internal/core/ports"
	"github.com/Sofiardb/cicd-demo-csharp/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	validation.RegisterValidators()
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	h.listTasks(c, h.taskService.ListTasks)
}

func (h *TaskHandler) ListPendingTasks(c *gin.Context) {
	h.listTasks(c, h.taskService.ListPendingTasks)
}

func (h *TaskHandler) ListCompletedTasks(c *gin.Context) {
	h.listTasks(c, h.taskService.ListCompletedTasks)
}

func (h *TaskHandler) ListTasksByPriority(c *gin.Context) {
	priority, err := domain.ParsePriority(c.Param("priority"))
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidPriority)
		return
	}

	h.listTasks(c, func(ctx context.Context) ([]domain.Task, error) {
		return h.taskService.ListTasksByPriority(ctx, priority)
	})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		h.respondTaskError(c, err, taskID, apierrors.MsgFailGetTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	input, ok := bindTaskInput(c)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		h.respondTaskError(c, err, 0, apierrors.MsgFailCreateTask)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/tasks/%d", task.ID))
	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	input, ok := bindTaskInput(c)
	if !ok {
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		h.respondTaskError(c, err, taskID, apierrors.MsgFailUpdateTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		h.respondTaskError(c, err, taskID, apierrors.MsgFailDeleteTask)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.CompleteTask(c.Request.Context(), taskID)
	if err != nil {
		h.respondTaskError(c, err, taskID, apierrors.MsgFailCompleteTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) listTasks(c *gin.Context, list func(context.Context) ([]domain.Task, error)) {
	tasks, err := list(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPriority) {
			respondError(c, http.StatusBadRequest, apierrors.MsgInvalidPriority)
			return
		}

		zap.L().Error("failed to list tasks", zap.String("path", c.FullPath()), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) respondTaskError(c *gin.Context, err error, taskID uint64, failMsgKey string) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		respondError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
	case errors.Is(err, domain.ErrInvalidTaskInput):
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
	default:
		zap.L().Error("task operation failed",
			zap.String("method", c.Request.Method),
			zap.Uint64("task_id", taskID),
			zap.Error(err),
		)
		respondError(c, http.StatusInternalServerError, failMsgKey)
	}
}

func parseTaskID(c *gin.Context) (uint64, bool) {
	taskID, err := validation.ParseTaskID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return 0, false
	}
	return taskID, true
}

func bindTaskInput(c *gin.Context) (domain.TaskInput, bool) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return domain.TaskInput{}, false
	}

	input, err := validation.BuildTaskInput(req)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return domain.TaskInput{}, false
	}

	return input, true
}
