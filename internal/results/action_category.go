package results

import "github.com/averycrespi/calc-mcp/internal/calculator"

// ActionCategory groups actions by the keypad section they belong to
type ActionCategory string

const (
	ActionCategoryEntry    ActionCategory = "entry"
	ActionCategoryControl  ActionCategory = "control"
	ActionCategoryOperator ActionCategory = "operator"
	ActionCategoryFunction ActionCategory = "function"
	ActionCategoryConstant ActionCategory = "constant"
	ActionCategoryMemory   ActionCategory = "memory"
	ActionCategoryGrouping ActionCategory = "grouping"
	ActionCategoryUnknown  ActionCategory = "unknown"
)

var actionCategoryMap = map[calculator.ActionID]ActionCategory{
	calculator.ActionDigit:   ActionCategoryEntry,
	calculator.ActionDecimal: ActionCategoryEntry,
	calculator.ActionNegate:  ActionCategoryEntry,

	calculator.ActionClear:    ActionCategoryControl,
	calculator.ActionAllClear: ActionCategoryControl,

	calculator.ActionAdd:      ActionCategoryOperator,
	calculator.ActionSubtract: ActionCategoryOperator,
	calculator.ActionMultiply: ActionCategoryOperator,
	calculator.ActionDivide:   ActionCategoryOperator,
	calculator.ActionPower:    ActionCategoryOperator,
	calculator.ActionEquals:   ActionCategoryOperator,

	calculator.ActionSin:       ActionCategoryFunction,
	calculator.ActionCos:       ActionCategoryFunction,
	calculator.ActionTan:       ActionCategoryFunction,
	calculator.ActionAsin:      ActionCategoryFunction,
	calculator.ActionAcos:      ActionCategoryFunction,
	calculator.ActionAtan:      ActionCategoryFunction,
	calculator.ActionLog:       ActionCategoryFunction,
	calculator.ActionLn:        ActionCategoryFunction,
	calculator.ActionSqrt:      ActionCategoryFunction,
	calculator.ActionExp:       ActionCategoryFunction,
	calculator.ActionFactorial: ActionCategoryFunction,

	calculator.ActionPi: ActionCategoryConstant,
	calculator.ActionE:  ActionCategoryConstant,

	calculator.ActionMemoryClear:    ActionCategoryMemory,
	calculator.ActionMemoryRecall:   ActionCategoryMemory,
	calculator.ActionMemoryAdd:      ActionCategoryMemory,
	calculator.ActionMemorySubtract: ActionCategoryMemory,

	calculator.ActionOpenParen:  ActionCategoryGrouping,
	calculator.ActionCloseParen: ActionCategoryGrouping,
}

// NewActionCategory returns the ActionCategory for an action name
func NewActionCategory(action string) ActionCategory {
	category, ok := actionCategoryMap[calculator.ActionID(action)]
	if !ok {
		return ActionCategoryUnknown
	}
	return category
}
