package domain

const (
	OperationAddition       = "addition"
	OperationSubtraction    = "subtraction"
	OperationMultiplication = "multiplication"
	OperationDivision       = "division"
	OperationPower          = "power"
)

// OperationResult echoes the operands of a binary arithmetic operation together
// with its outcome.
type OperationResult struct {
	Value1    float64
	Value2    float64
	Operation string
	Result    float64
}

// MaxFactorialInput is the largest n whose factorial fits in a uint64.
const MaxFactorialInput = 20
