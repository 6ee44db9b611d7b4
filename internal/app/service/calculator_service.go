package service

import (
	"math"
	"math/big"

	"github.com/Sofiardb/cicd-demo-csharp/internal/core/domain"
	"github.com/Sofiardb/cicd-demo-csharp/internal/core/ports"
)

// Below this bound trial division needs at most about 5e5 steps.
const trialDivisionLimit int64 = 1 << 40

// CalculatorService is stateless; the zero value is ready to use.
type CalculatorService struct{}

func NewCalculatorService() *CalculatorService {
	return &CalculatorService{}
}

func (s *CalculatorService) Add(a, b float64) float64 {
	return a + b
}

func (s *CalculatorService) Subtract(a, b float64) float64 {
	return a - b
}

func (s *CalculatorService) Multiply(a, b float64) float64 {
	return a * b
}

func (s *CalculatorService) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, domain.ErrDivisionByZero
	}
	return a / b, nil
}

func (s *CalculatorService) Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

func (s *CalculatorService) SquareRoot(x float64) (float64, error) {
	if x < 0 {
		return 0, domain.ErrNegativeSquareRoot
	}
	return math.Sqrt(x), nil
}

func (s *CalculatorService) IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	if n >= trialDivisionLimit {
		// Exact for every input below 2^64.
		return big.NewInt(n).ProbablyPrime(0)
	}

	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func (s *CalculatorService) Factorial(n int64) (uint64, error) {
	if n < 0 {
		return 0, domain.ErrNegativeFactorial
	}
	if n > domain.MaxFactorialInput {
		return 0, domain.ErrFactorialOverflow
	}

	result := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		result *= i
	}
	return result, nil
}

var _ ports.Calculator = (*CalculatorService)(nil)
