package calculator

import (
	"errors"
	"fmt"
	"math"
)

// Operator is a pending binary operation; the zero value means none is pending
type Operator string

const (
	OperatorNone     Operator = ""
	OperatorAdd      Operator = "add"
	OperatorSubtract Operator = "subtract"
	OperatorMultiply Operator = "multiply"
	OperatorDivide   Operator = "divide"
	OperatorPower    Operator = "power"
)

var (
	// ErrArithmetic is the only failure a computation can surface to the display
	ErrArithmetic = errors.New("arithmetic error")
	// ErrDivisionByZero is returned when the right operand of a division is zero
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrArithmetic)
	// ErrNonFinite is returned when a computation yields NaN or an infinity
	ErrNonFinite = fmt.Errorf("%w: result is not finite", ErrArithmetic)
)

var operatorSymbols = map[Operator]string{
	OperatorAdd:      "+",
	OperatorSubtract: "−",
	OperatorMultiply: "×",
	OperatorDivide:   "÷",
	OperatorPower:    "^",
}

// Symbol returns the glyph shown on the expression line
func (o Operator) Symbol() string {
	return operatorSymbols[o]
}

// operatorFor maps a binary action to its operator
func operatorFor(action ActionID) (Operator, bool) {
	switch action {
	case ActionAdd:
		return OperatorAdd, true
	case ActionSubtract:
		return OperatorSubtract, true
	case ActionMultiply:
		return OperatorMultiply, true
	case ActionDivide:
		return OperatorDivide, true
	case ActionPower:
		return OperatorPower, true
	default:
		return OperatorNone, false
	}
}

// evaluate applies lhs op rhs. Any failure wraps ErrArithmetic.
func evaluate(op Operator, lhs, rhs float64) (float64, error) {
	var result float64
	switch op {
	case OperatorAdd:
		result = lhs + rhs
	case OperatorSubtract:
		result = lhs - rhs
	case OperatorMultiply:
		result = lhs * rhs
	case OperatorDivide:
		if rhs == 0 {
			return 0, ErrDivisionByZero
		}
		result = lhs / rhs
	case OperatorPower:
		result = math.Pow(lhs, rhs)
	default:
		return 0, fmt.Errorf("%w: unknown operator %q", ErrArithmetic, string(op))
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, ErrNonFinite
	}
	return result, nil
}
