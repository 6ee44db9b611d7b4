package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/dto"
	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/mapper"
	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/validation"
	"github.com/Sofiardb/cicd-demo-csharp/internal/core/domain"
	"github.com/Sofiardb/cicd-demo-csharp/internal/core/ports"
	"github.com/Sofiardb/cicd-demo-csharp/pkg/apierrors"
)

type CalculatorHandler struct {
	calculator ports.Calculator
}

func NewCalculatorHandler(calculator ports.Calculator) *CalculatorHandler {
	return &CalculatorHandler{calculator: calculator}
}

type binaryOperation func(a, b float64) (float64, error)

func infallible(op func(a, b float64) float64) binaryOperation {
	return func(a, b float64) (float64, error) {
		return op(a, b), nil
	}
}

func (h *CalculatorHandler) Add(c *gin.Context) {
	h.binary(c, domain.OperationAddition, infallible(h.calculator.Add))
}

func (h *CalculatorHandler) Subtract(c *gin.Context) {
	h.binary(c, domain.OperationSubtraction, infallible(h.calculator.Subtract))
}

func (h *CalculatorHandler) Multiply(c *gin.Context) {
	h.binary(c, domain.OperationMultiplication, infallible(h.calculator.Multiply))
}

func (h *CalculatorHandler) Divide(c *gin.Context) {
	h.binary(c, domain.OperationDivision, h.calculator.Divide)
}

func (h *CalculatorHandler) Power(c *gin.Context) {
	operands, ok := bindOperands(c, &dto.PowerOperands{})
	if !ok {
		return
	}

	h.respondOperation(c, domain.OperationPower, operands[0], operands[1], infallible(h.calculator.Power))
}

func (h *CalculatorHandler) SquareRoot(c *gin.Context) {
	operands, ok := bindOperands(c, &dto.SquareRootOperand{})
	if !ok {
		return
	}
	number := operands[0]

	result, err := h.calculator.SquareRoot(number)
	if err != nil {
		respondCalculationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SquareRootResult{Number: number, Result: result})
}

func (h *CalculatorHandler) IsPrime(c *gin.Context) {
	number, err := validation.ParseInteger(c.Param("number"))
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidOperand)
		return
	}

	c.JSON(http.StatusOK, dto.PrimeResult{Number: number, IsPrime: h.calculator.IsPrime(number)})
}

func (h *CalculatorHandler) Factorial(c *gin.Context) {
	number, err := validation.ParseInteger(c.Param("number"))
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidOperand)
		return
	}

	result, err := h.calculator.Factorial(number)
	if err != nil {
		respondCalculationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FactorialResult{Number: number, Factorial: result})
}

func (h *CalculatorHandler) binary(c *gin.Context, operation string, op binaryOperation) {
	operands, ok := bindOperands(c, &dto.BinaryOperands{})
	if !ok {
		return
	}

	h.respondOperation(c, operation, operands[0], operands[1], op)
}

type operandRequest interface {
	Values() []string
}

func bindOperands(c *gin.Context, req operandRequest) ([]float64, bool) {
	if err := c.ShouldBindQuery(req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidOperand)
		return nil, false
	}

	operands, err := validation.ParseOperands(req.Values()...)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidOperand)
		return nil, false
	}
	return operands, true
}

func (h *CalculatorHandler) respondOperation(c *gin.Context, operation string, a, b float64, op binaryOperation) {
	result, err := op(a, b)
	if err != nil {
		respondCalculationError(c, err)
		return
	}

	if validation.RequireFinite(result) != nil {
		respondError(c, http.StatusUnprocessableEntity, apierrors.MsgResultNotFinite)
		return
	}

	c.JSON(http.StatusOK, mapper.ToOperationResult(domain.OperationResult{
		Value1:    a,
		Value2:    b,
		Operation: operation,
		Result:    result,
	}))
}

func respondCalculationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDivisionByZero):
		respondError(c, http.StatusBadRequest, apierrors.MsgDivisionByZero)
	case errors.Is(err, domain.ErrNegativeSquareRoot):
		respondError(c, http.StatusBadRequest, apierrors.MsgNegativeSquareRoot)
	case errors.Is(err, domain.ErrNegativeFactorial):
		respondError(c, http.StatusBadRequest, apierrors.MsgNegativeFactorial)
	case errors.Is(err, domain.ErrFactorialOverflow):
		respondError(c, http.StatusBadRequest, apierrors.MsgFactorialOverflow)
	case errors.Is(err, domain.ErrInvalidArgument):
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidOperand)
	default:
		zap.L().Error("calculation failed", zap.String("path", c.FullPath()), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailCalculation)
	}
}
