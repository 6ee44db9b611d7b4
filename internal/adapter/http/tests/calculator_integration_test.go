package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/dto"
)

type CalculatorIntegrationSuite struct {
	IntegrationSuiteBase
}

func TestCalculatorIntegrationSuite(t *testing.T) {
	suite.Run(t, new(CalculatorIntegrationSuite))
}

func (s *CalculatorIntegrationSuite) TestAdd() {
	rec := s.Do(http.MethodGet, "/api/calculator/add?a=1.5&b=2.25", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.OperationResult
	s.DecodeJSON(rec, &got)
	s.Require().Equal("addition", got.Operation)
	s.Require().Equal(3.75, got.Result)
}

func (s *CalculatorIntegrationSuite) TestDivide_ReturnsBadRequestOnZeroDivisor() {
	rec := s.Do(http.MethodGet, "/api/calculator/divide?a=5&b=0", "")
	s.RequireError(rec, http.StatusBadRequest, "Cannot divide by zero")
}

func (s *CalculatorIntegrationSuite) TestDivide_NegativeZeroDivisorIsZero() {
	rec := s.Do(http.MethodGet, "/api/calculator/divide?a=5&b=-0", "")
	s.RequireError(rec, http.StatusBadRequest, "Cannot divide by zero")
}

func (s *CalculatorIntegrationSuite) TestPower_ReturnsUnprocessableWhenResultOverflows() {
	rec := s.Do(http.MethodGet, "/api/calculator/power?base=1e300&exponent=2", "")
	s.RequireError(rec, http.StatusUnprocessableEntity, "The result is not a finite number")
}

func (s *CalculatorIntegrationSuite) TestSquareRoot() {
	rec := s.Do(http.MethodGet, "/api/calculator/sqrt?number=2", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.SquareRootResult
	s.DecodeJSON(rec, &got)
	s.Require().InDelta(1.41421356, got.Result, 1e-8)

	rec = s.Do(http.MethodGet, "/api/calculator/sqrt?number=-1", "")
	s.RequireError(rec, http.StatusBadRequest, "Cannot compute the square root of a negative number")
}

func (s *CalculatorIntegrationSuite) TestIsPrime() {
	cases := map[string]bool{
		"0":  false,
		"1":  false,
		"2":  true,
		"9":  false,
		"17": true,
	}

	for number, want := range cases {
		rec := s.Do(http.MethodGet, "/api/calculator/is-prime/"+number, "")
		s.Require().Equal(http.StatusOK, rec.Code)

		var got dto.PrimeResult
		s.DecodeJSON(rec, &got)
		s.Require().Equal(want, got.IsPrime, number)
	}
}

func (s *CalculatorIntegrationSuite) TestFactorial() {
	rec := s.Do(http.MethodGet, "/api/calculator/factorial/5", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.FactorialResult
	s.DecodeJSON(rec, &got)
	s.Require().Equal(uint64(120), got.Factorial)

	rec = s.Do(http.MethodGet, "/api/calculator/factorial/-3", "")
	s.RequireError(rec, http.StatusBadRequest, "Cannot compute the factorial of a negative number")
}

func (s *CalculatorIntegrationSuite) TestBlankOperandsAreRejected() {
	for _, target := range []string{
		"/api/calculator/add?a=&b=5",
		"/api/calculator/divide?a=5&b=",
		"/api/calculator/power?base=&exponent=2",
		"/api/calculator/sqrt?number=",
	} {
		rec := s.Do(http.MethodGet, target, "")
		s.RequireError(rec, http.StatusBadRequest, "Invalid operand, a finite number is required")
	}
}

func (s *CalculatorIntegrationSuite) TestIsPrime_LargeInput() {
	rec := s.Do(http.MethodGet, "/api/calculator/is-prime/9223372036854775783", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.PrimeResult
	s.DecodeJSON(rec, &got)
	s.Require().True(got.IsPrime)
	s.Require().Equal(int64(9223372036854775783), got.Number)
}

func (s *CalculatorIntegrationSuite) TestUnknownRouteIsNotFound() {
	rec := s.Do(http.MethodGet, "/api/calculator/modulo?a=1&b=2", "")
	s.Require().Equal(http.StatusNotFound, rec.Code)
}
