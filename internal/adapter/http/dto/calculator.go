package dto

// Operands are bound as text so a present but empty value is rejected
// instead of decoding to zero.

type BinaryOperands struct {
	A string `form:"a" binding:"required"`
	B string `form:"b" binding:"required"`
}

func (o *BinaryOperands) Values() []string { return []string{o.A, o.B} }

type PowerOperands struct {
	Base     string `form:"base" binding:"required"`
	Exponent string `form:"exponent" binding:"required"`
}

func (o *PowerOperands) Values() []string { return []string{o.Base, o.Exponent} }

type SquareRootOperand struct {
	Number string `form:"number" binding:"required"`
}

func (o *SquareRootOperand) Values() []string { return []string{o.Number} }

type OperationResult struct {
	Value1    float64 `json:"value1"`
	Value2    float64 `json:"value2"`
	Operation string  `json:"operation"`
	Result    float64 `json:"result"`
}

type SquareRootResult struct {
	Number float64 `json:"number"`
	Result float64 `json:"result"`
}

type PrimeResult struct {
	Number  int64 `json:"number"`
	IsPrime bool  `json:"is_prime"`
}

type FactorialResult struct {
	Number    int64  `json:"number"`
	Factorial uint64 `json:"factorial"`
}
