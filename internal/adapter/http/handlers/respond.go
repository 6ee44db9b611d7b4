package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/middleware"
	"github.com/Sofiardb/cicd-demo-csharp/pkg/apierrors"
)

func respondError(c *gin.Context, status int, msgKey string) {
	c.JSON(status, apierrors.CreateError(status, msgKey, middleware.GetLang(c)))
}
