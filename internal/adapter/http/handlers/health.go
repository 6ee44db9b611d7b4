package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/middleware"
	"github.com/Sofiardb/cicd-demo-csharp/internal/core/ports"
)

const (
	StatusOk           = "ok"
	StatusDown         = "down"
	healthStoreTimeout = 2 * time.Second
	systemTimeLayout   = "2006-01-02 15:04:05"
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	TaskStore string `json:"task_store"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
	TaskCount         int            `json:"task_count"`
}

type AppInfo struct {
	Name    string
	Version string
}

type HealthHandler struct {
	info  AppInfo
	tasks ports.TaskCounter
}

func NewHealthHandler(info AppInfo, tasks ports.TaskCounter) *HealthHandler {
	if info.Version == "" {
		info.Version = "dev"
	}
	return &HealthHandler{info: info, tasks: tasks}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if _, ok := h.countTasks(c.Request.Context()); !ok {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           h.info.Name,
		AppVersion:        h.info.Version,
		CurrentSystemTime: time.Now().Format(systemTimeLayout),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	storeStatus := StatusDown
	count, ok := h.countTasks(c.Request.Context())
	if ok {
		storeStatus = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           h.info.Name,
		AppVersion:        h.info.Version,
		CurrentSystemTime: time.Now().Format(systemTimeLayout),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			TaskStore: storeStatus,
		},
		TaskCount: count,
	})
}

func (h *HealthHandler) countTasks(ctx context.Context) (int, bool) {
	if h.tasks == nil {
		return 0, false
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, healthStoreTimeout)
	defer cancel()

	count, err := h.tasks.CountTasks(timeoutCtx)
	if err != nil {
		zap.L().Warn("task store health check failed", zap.Error(err))
		return 0, false
	}
	return count, true
}
