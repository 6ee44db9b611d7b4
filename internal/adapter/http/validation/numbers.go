package validation

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidOperand = errors.New("invalid operand")
	ErrInvalidTaskID  = errors.New("invalid task id")
)

// RequireFinite rejects NaN and infinities, which strconv accepts but JSON
// cannot represent.
func RequireFinite(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidOperand
		}
	}
	return nil
}

// ParseOperands parses each value as a finite float64. Blank values are
// rejected.
func ParseOperands(raw ...string) ([]float64, error) {
	values := make([]float64, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			return nil, ErrInvalidOperand
		}

		v, err := strconv.ParseFloat(r, 64)
		if err != nil {
			return nil, ErrInvalidOperand
		}
		values = append(values, v)
	}

	if err := RequireFinite(values...); err != nil {
		return nil, err
	}
	return values, nil
}

func ParseInteger(raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ErrInvalidOperand
	}
	return n, nil
}

func ParseTaskID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidTaskID
	}
	return id, nil
}
