package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/handlers"
	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	calculatorHandler *handlers.CalculatorHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}

	tasks := api.Group("/tasks")
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/pending", taskHandler.ListPendingTasks)
		tasks.GET("/completed", taskHandler.ListCompletedTasks)
		tasks.GET("/priority/:priority", taskHandler.ListTasksByPriority)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
		tasks.PATCH("/:id/complete", taskHandler.CompleteTask)
	}

	calculator := api.Group("/calculator")
	{
		calculator.GET("/add", calculatorHandler.Add)
		calculator.GET("/subtract", calculatorHandler.Subtract)
		calculator.GET("/multiply", calculatorHandler.Multiply)
		calculator.GET("/divide", calculatorHandler.Divide)
		calculator.GET("/power", calculatorHandler.Power)
		calculator.GET("/sqrt", calculatorHandler.SquareRoot)
		calculator.GET("/is-prime/:number", calculatorHandler.IsPrime)
		calculator.GET("/factorial/:number", calculatorHandler.Factorial)
	}
}
