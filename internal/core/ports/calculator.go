package ports

type Calculator interface {
	Add(a, b float64) float64
	Subtract(a, b float64) float64
	Multiply(a, b float64) float64
	Divide(a, b float64) (float64, error)
	Power(base, exponent float64) float64
	SquareRoot(x float64) (float64, error)
	IsPrime(n int64) bool
	Factorial(n int64) (uint64, error)
}
