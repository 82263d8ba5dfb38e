package calculator

// ActionID identifies a single input event understood by the engine
type ActionID string

const (
	ActionDigit   ActionID = "digit"
	ActionDecimal ActionID = "decimal"

	ActionClear    ActionID = "clear"
	ActionAllClear ActionID = "all-clear"
	ActionNegate   ActionID = "negate"

	ActionAdd      ActionID = "add"
	ActionSubtract ActionID = "subtract"
	ActionMultiply ActionID = "multiply"
	ActionDivide   ActionID = "divide"
	ActionPower    ActionID = "power"
	ActionEquals   ActionID = "equals"

	ActionSin       ActionID = "sin"
	ActionCos       ActionID = "cos"
	ActionTan       ActionID = "tan"
	ActionAsin      ActionID = "asin"
	ActionAcos      ActionID = "acos"
	ActionAtan      ActionID = "atan"
	ActionLog       ActionID = "log"
	ActionLn        ActionID = "ln"
	ActionSqrt      ActionID = "sqrt"
	ActionExp       ActionID = "exp"
	ActionFactorial ActionID = "factorial"

	ActionPi ActionID = "pi"
	ActionE  ActionID = "e"

	ActionMemoryClear    ActionID = "memory-clear"
	ActionMemoryRecall   ActionID = "memory-recall"
	ActionMemoryAdd      ActionID = "memory-add"
	ActionMemorySubtract ActionID = "memory-subtract"

	ActionOpenParen  ActionID = "open-paren"
	ActionCloseParen ActionID = "close-paren"
)

var allActions = []ActionID{
	ActionDigit, ActionDecimal,
	ActionClear, ActionAllClear, ActionNegate,
	ActionAdd, ActionSubtract, ActionMultiply, ActionDivide, ActionPower, ActionEquals,
	ActionSin, ActionCos, ActionTan, ActionAsin, ActionAcos, ActionAtan,
	ActionLog, ActionLn, ActionSqrt, ActionExp, ActionFactorial,
	ActionPi, ActionE,
	ActionMemoryClear, ActionMemoryRecall, ActionMemoryAdd, ActionMemorySubtract,
	ActionOpenParen, ActionCloseParen,
}

// AllActions returns every action the engine handles, in keypad order
func AllActions() []ActionID {
	out := make([]ActionID, len(allActions))
	copy(out, allActions)
	return out
}

// IsKnown reports whether the engine has a transition for the action
func (a ActionID) IsKnown() bool {
	for _, known := range allActions {
		if a == known {
			return true
		}
	}
	return false
}

// String returns the wire name of the action
func (a ActionID) String() string {
	return string(a)
}
