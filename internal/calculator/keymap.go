package calculator

// keyActions binds physical keyboard keys to actions; digits are handled separately
var keyActions = map[string]ActionID{
	".":         ActionDecimal,
	"+":         ActionAdd,
	"-":         ActionSubtract,
	"*":         ActionMultiply,
	"/":         ActionDivide,
	"Enter":     ActionEquals,
	"=":         ActionEquals,
	"Escape":    ActionAllClear,
	"Backspace": ActionClear,
	"(":         ActionOpenParen,
	")":         ActionCloseParen,
}

// KeyAction maps a keyboard key name to an action and its payload
func KeyAction(key string) (ActionID, string, bool) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return ActionDigit, key, true
	}

	action, ok := keyActions[key]
	if !ok {
		return "", "", false
	}
	return action, "", true
}
