package calculator

import "strings"

// Mode is the interaction state implied by the field combination of a State
type Mode string

const (
	ModeIdle            Mode = "idle"
	ModeAwaitingOperand Mode = "awaiting_operand"
	ModeErrorDisplayed  Mode = "error_displayed"
)

// State is the full calculator record. It holds only value fields, so
// copying a State yields an independent snapshot.
type State struct {
	Display            string   `json:"display"`
	Expression         string   `json:"expression"`
	ExpressionHistory  string   `json:"expression_history"`
	CurrentInput       string   `json:"current_input"`
	PreviousInput      string   `json:"previous_input"`
	Operator           Operator `json:"operator"`
	WaitingForNewInput bool     `json:"waiting_for_new_input"`
	Memory             float64  `json:"memory"`
	HasDecimal         bool     `json:"has_decimal"`
	Parentheses        int      `json:"parentheses"`
}

// DisplayState is the two-line view rendered by a front end
type DisplayState struct {
	Display    string `json:"display"`
	Expression string `json:"expression"`
}

// NewState returns the power-on state
func NewState() State {
	return State{
		Display:      "0",
		CurrentInput: "0",
	}
}

// DisplayState returns the renderable part of the state
func (s State) DisplayState() DisplayState {
	return DisplayState{
		Display:    s.Display,
		Expression: s.Expression,
	}
}

// Mode derives the interaction mode; it is never stored
func (s State) Mode() Mode {
	switch {
	case s.Display == ErrorDisplay:
		return ModeErrorDisplayed
	case s.Operator != OperatorNone:
		return ModeAwaitingOperand
	default:
		return ModeIdle
	}
}

func (s *State) setInput(token string) {
	s.CurrentInput = token
	s.Display = token
}

func (s *State) setExpression(expression string) {
	s.Expression = expression
	s.ExpressionHistory = expression
}

// fail collapses every textual field to the sticky error value
func (s *State) fail() {
	s.setInput(ErrorDisplay)
	s.setExpression(ErrorDisplay)
}

func containsDecimal(token string) bool {
	return strings.Contains(token, ".")
}
