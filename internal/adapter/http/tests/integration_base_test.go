package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	httpadapter "github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http"
	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/handlers"
	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/middleware"
	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/memory"
	appservice "github.com/Sofiardb/cicd-demo-csharp/internal/app/service"
	"github.com/Sofiardb/cicd-demo-csharp/pkg/apierrors"
	"github.com/Sofiardb/cicd-demo-csharp/pkg/translator"
)

// IntegrationSuiteBase serves the full route table over a fresh in-memory
// store for every test.
type IntegrationSuiteBase struct {
	suite.Suite

	Repository *memory.TaskRepository
	router     *gin.Engine
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  filepath.Join(projectRoot(s.T()), "pkg", "translator", "translation"),
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr, translator.LanguageEs},
	})
}

func (s *IntegrationSuiteBase) SetupTest() {
	s.ResetStore()
}

func (s *IntegrationSuiteBase) ResetStore() {
	s.Repository = memory.NewTaskRepository(memory.WithClock(fixedClock()))

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())

	healthHandler := handlers.NewHealthHandler(handlers.AppInfo{Name: "task-calculator-api", Version: "test"}, s.Repository)
	taskHandler := handlers.NewTaskHandler(appservice.NewTaskService(s.Repository))
	calculatorHandler := handlers.NewCalculatorHandler(appservice.NewCalculatorService())
	httpadapter.RegisterRoutes(router, healthHandler, taskHandler, calculatorHandler)

	s.router = router
}

func (s *IntegrationSuiteBase) Do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept-Language", translator.LanguageEn)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *IntegrationSuiteBase) DecodeJSON(rec *httptest.ResponseRecorder, target any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), target))
}

func (s *IntegrationSuiteBase) RequireError(rec *httptest.ResponseRecorder, status int, message string) {
	s.Require().Equal(status, rec.Code)

	var got apierrors.JsonErr
	s.DecodeJSON(rec, &got)
	s.Require().Equal(status, got.ErrDetails.Code)
	s.Require().Equal(message, got.ErrDetails.Message)
}

func fixedClock() func() time.Time {
	current := time.Date(2026, 2, 13, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

func projectRoot(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}
