package tests

// Mock generation for handler tests. The tests in this package use
// hand-written testify mocks; regenerate with mockery when the ports grow.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name Calculator --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename calculator_mock.go --with-expecter
