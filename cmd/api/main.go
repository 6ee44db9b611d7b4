package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	httpadapter "github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http"
	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/handlers"
	httpmiddleware "github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/middleware"
	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/memory"
	"github.com/Sofiardb/cicd-demo-csharp/internal/app/service"
	"github.com/Sofiardb/cicd-demo-csharp/internal/config"
	"github.com/Sofiardb/cicd-demo-csharp/pkg/translator"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr, translator.LanguageEs},
	})

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	taskRepository := memory.NewTaskRepository()
	taskService := service.NewTaskService(taskRepository)
	calculatorService := service.NewCalculatorService()

	healthHandler := handlers.NewHealthHandler(handlers.AppInfo{Name: cfg.AppName, Version: cfg.AppVersion}, taskRepository)
	taskHandler := handlers.NewTaskHandler(taskService)
	calculatorHandler := handlers.NewCalculatorHandler(calculatorService)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("trusted_proxies", cfg.TrustedProxies), zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.RequestIDMiddleware(), httpmiddleware.GinZapMiddleware(logger))
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, calculatorHandler)

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting server",
			zap.String("addr", server.Addr),
			zap.String("app", cfg.AppName),
			zap.String("version", cfg.AppVersion),
			zap.String("env", cfg.AppEnv),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				logger.Info("shutting down server")
				return server.Shutdown(ctx)
			},
		},
	)

	exitCode := <-wait
	logger.Info("server stopped", zap.Int("exit_code", exitCode))
	_ = logger.Sync()
	os.Exit(exitCode)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
