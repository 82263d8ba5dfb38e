package calculator

import (
	"fmt"
	"log/slog"
	"math"
)

// scientificFunction is a unary keypad function and the label it leaves on the expression line
type scientificFunction struct {
	fn     func(float64) float64
	symbol string
}

var scientificFunctions = map[ActionID]scientificFunction{
	ActionSin:       {math.Sin, "sin"},
	ActionCos:       {math.Cos, "cos"},
	ActionTan:       {math.Tan, "tan"},
	ActionAsin:      {math.Asin, "sin⁻¹"},
	ActionAcos:      {math.Acos, "cos⁻¹"},
	ActionAtan:      {math.Atan, "tan⁻¹"},
	ActionLog:       {math.Log10, "log"},
	ActionLn:        {math.Log, "ln"},
	ActionSqrt:      {math.Sqrt, "√"},
	ActionExp:       {math.Exp, "e^"},
	ActionFactorial: {Factorial, "x!"},
}

var constants = map[ActionID]struct {
	value  float64
	symbol string
}{
	ActionPi: {math.Pi, "π"},
	ActionE:  {math.E, "e"},
}

// Engine owns one calculator state. It is not safe for concurrent use;
// the host serializes input events.
type Engine struct {
	state State
}

// NewEngine creates an engine in the power-on state
func NewEngine() *Engine {
	return &Engine{state: NewState()}
}

// Dispatch applies a single action and returns the new display
func (e *Engine) Dispatch(action ActionID, payload string) DisplayState {
	e.state = Apply(e.state, action, payload)
	return e.state.DisplayState()
}

// PressKey dispatches the action bound to a keyboard key. Unbound keys are ignored.
func (e *Engine) PressKey(key string) (DisplayState, bool) {
	action, payload, ok := KeyAction(key)
	if !ok {
		return e.state.DisplayState(), false
	}
	return e.Dispatch(action, payload), true
}

// State returns a copy of the current state
func (e *Engine) State() State {
	return e.state
}

// Apply is the pure transition function: it returns the state that results
// from applying action to s. Unknown actions return s unchanged.
func Apply(s State, action ActionID, payload string) State {
	if op, ok := operatorFor(action); ok {
		s.handleOperator(op)
		return s
	}
	if fn, ok := scientificFunctions[action]; ok {
		s.applyFunction(fn)
		return s
	}
	if c, ok := constants[action]; ok {
		s.insertConstant(c.value, c.symbol)
		return s
	}

	switch action {
	case ActionDigit:
		s.inputDigit(payload)
	case ActionDecimal:
		if !s.HasDecimal && !s.WaitingForNewInput {
			s.CurrentInput += "."
			s.Display += "."
			s.HasDecimal = true
		}
	case ActionClear:
		s.setInput("0")
		s.HasDecimal = false
	case ActionAllClear:
		s = NewState()
	case ActionNegate:
		s.negate()
	case ActionEquals:
		s.calculate()
	case ActionMemoryClear:
		s.Memory = 0
	case ActionMemoryRecall:
		recalled := NumberString(s.Memory)
		s.setInput(recalled)
		s.HasDecimal = containsDecimal(recalled)
	case ActionMemoryAdd:
		s.Memory += memoryOperand(s.CurrentInput)
	case ActionMemorySubtract:
		s.Memory -= memoryOperand(s.CurrentInput)
	case ActionOpenParen:
		if s.CurrentInput == "0" {
			s.setInput("(")
		} else {
			s.setInput(s.CurrentInput + "(")
		}
		s.Parentheses++
	case ActionCloseParen:
		if s.Parentheses > 0 {
			s.CurrentInput += ")"
			s.Display += ")"
			s.Parentheses--
		}
	default:
		slog.Debug("Ignoring unknown calculator action", "action", action)
	}
	return s
}

func (s *State) inputDigit(token string) {
	if len(token) != 1 || token[0] < '0' || token[0] > '9' {
		slog.Debug("Ignoring invalid digit payload", "payload", token)
		return
	}

	if s.WaitingForNewInput {
		s.setInput(token)
		s.WaitingForNewInput = false
		s.HasDecimal = false
		return
	}

	if s.CurrentInput == "0" {
		s.setInput(token)
	} else {
		s.setInput(s.CurrentInput + token)
	}
}

func (s *State) negate() {
	if s.CurrentInput == "0" || s.CurrentInput == ErrorDisplay {
		return
	}
	if len(s.CurrentInput) > 0 && s.CurrentInput[0] == '-' {
		s.setInput(s.CurrentInput[1:])
	} else {
		s.setInput("-" + s.CurrentInput)
	}
}

func (s *State) applyFunction(f scientificFunction) {
	value := ParseNumber(s.CurrentInput)
	result := f.fn(value)
	if math.IsNaN(result) || math.IsInf(result, 0) {
		s.fail()
		return
	}

	formatted := FormatResult(result)
	s.setInput(formatted)
	s.setExpression(fmt.Sprintf("%s(%s)", f.symbol, NumberString(value)))
	s.WaitingForNewInput = true
	s.HasDecimal = containsDecimal(formatted)
}

func (s *State) insertConstant(value float64, symbol string) {
	formatted := FormatResult(value)
	s.setInput(formatted)
	s.setExpression(symbol)
	s.WaitingForNewInput = true
	s.HasDecimal = containsDecimal(formatted)
}

// handleOperator registers a binary operator, first resolving any pending
// operation whose right operand has been typed. Chaining runs strictly left
// to right. A failure here only replaces the input token; the expression
// line is rewritten from that token below.
func (s *State) handleOperator(op Operator) {
	if s.Operator != OperatorNone && !s.WaitingForNewInput {
		result, err := evaluate(s.Operator, ParseNumber(s.PreviousInput), ParseNumber(s.CurrentInput))
		if err != nil {
			slog.Debug("Chained operation failed", "operator", s.Operator, "error", err)
			s.setInput(ErrorDisplay)
		} else {
			s.setInput(FormatResult(result))
		}
	}

	s.PreviousInput = s.CurrentInput
	s.Operator = op
	s.setExpression(fmt.Sprintf("%s %s", s.CurrentInput, op.Symbol()))
	s.WaitingForNewInput = true
	s.HasDecimal = false
}

// calculate resolves the pending operation for the equals key
func (s *State) calculate() {
	if s.Operator == OperatorNone || s.PreviousInput == "" {
		return
	}

	rhs := ParseNumber(s.CurrentInput)
	result, err := evaluate(s.Operator, ParseNumber(s.PreviousInput), rhs)
	if err != nil {
		slog.Debug("Operation failed", "operator", s.Operator, "error", err)
		s.fail()
		return
	}

	formatted := FormatResult(result)
	s.setInput(formatted)
	s.setExpression(fmt.Sprintf("%s %s %s =", s.PreviousInput, s.Operator.Symbol(), NumberString(rhs)))
	s.Operator = OperatorNone
	s.PreviousInput = ""
	s.WaitingForNewInput = true
	s.HasDecimal = containsDecimal(formatted)
}

// memoryOperand reads the input token for M+ and M−; unparseable input counts as zero
func memoryOperand(token string) float64 {
	value := ParseNumber(token)
	if math.IsNaN(value) {
		return 0
	}
	return value
}
