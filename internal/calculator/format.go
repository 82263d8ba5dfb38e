package calculator

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// ErrorDisplay is the sticky value shown after an arithmetic failure
const ErrorDisplay = "Error"

const (
	exponentialDigits = 6
	fixedDigits       = 10

	smallMagnitude = 1e-6
	largeMagnitude = 999999999

	// exactFractionDigits covers the 1074 fraction digits of the smallest subnormal
	exactFractionDigits = 1100
)

// numericPrefix matches the longest leading numeric literal of a token
var numericPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// FormatResult turns a raw computation result into a display token.
// Every numeric value written to the display goes through here.
func FormatResult(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrorDisplay
	}

	abs := math.Abs(x)
	if (abs < smallMagnitude && x != 0) || abs > largeMagnitude {
		return formatExponential(x)
	}
	return formatFixed(x)
}

// formatFixed rounds to ten fraction digits, halves away from zero, and
// prints the shortest form of the rounded value.
func formatFixed(x float64) string {
	intPart, frac := exactDigits(math.Abs(x))
	rounded := roundDigits(intPart+frac, len(intPart)+fixedDigits)
	point := len(rounded) - fixedDigits

	value, err := strconv.ParseFloat(rounded[:point]+"."+rounded[point:], 64)
	if err != nil {
		return ErrorDisplay
	}
	if value == 0 {
		return "0"
	}
	if x < 0 {
		value = -value
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// formatExponential prints seven significant digits as d.dddddde±n,
// rounding halves away from zero.
func formatExponential(x float64) string {
	intPart, frac := exactDigits(math.Abs(x))
	digits := intPart + frac
	significant := strings.TrimLeft(digits, "0")
	exponent := len(intPart) - (len(digits) - len(significant)) - 1

	mantissa := roundDigits(significant, exponentialDigits+1)
	if len(mantissa) > exponentialDigits+1 {
		mantissa = mantissa[:exponentialDigits+1]
		exponent++
	}

	var b strings.Builder
	if x < 0 {
		b.WriteByte('-')
	}
	b.WriteString(mantissa[:1])
	b.WriteByte('.')
	b.WriteString(mantissa[1:])
	if exponent < 0 {
		b.WriteString("e-")
		exponent = -exponent
	} else {
		b.WriteString("e+")
	}
	b.WriteString(strconv.Itoa(exponent))
	return b.String()
}

// exactDigits returns the exact decimal expansion of a finite non-negative
// float64, split into integer and fraction digits.
func exactDigits(abs float64) (string, string) {
	text := new(big.Float).SetFloat64(abs).Text('f', exactFractionDigits)
	intPart, frac, _ := strings.Cut(text, ".")
	return intPart, frac
}

// roundDigits keeps the first n digits of a digit string, rounding up when
// the next digit is 5 or more. A carry out of the first digit makes the
// result one digit longer.
func roundDigits(digits string, n int) string {
	if len(digits) <= n {
		digits += strings.Repeat("0", n-len(digits)+1)
	}

	kept := []byte(digits[:n])
	if digits[n] < '5' {
		return string(kept)
	}
	for i := n - 1; i >= 0; i-- {
		if kept[i] < '9' {
			kept[i]++
			return string(kept)
		}
		kept[i] = '0'
	}
	return "1" + string(kept)
}

// Factorial returns n! for non-negative integers, NaN for any other input
// and +Inf once the product would overflow a float64.
func Factorial(n float64) float64 {
	if n < 0 || math.IsNaN(n) || math.IsInf(n, 0) || math.Trunc(n) != n {
		return math.NaN()
	}
	if n == 0 || n == 1 {
		return 1
	}
	if n > 170 {
		return math.Inf(1)
	}

	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return result
}

// ParseNumber reads the leading numeric literal of a token, ignoring any
// trailing garbage such as parentheses. Tokens with no numeric prefix are NaN.
func ParseNumber(token string) float64 {
	match := numericPrefix.FindString(strings.TrimLeft(token, " \t\n\r"))
	if match == "" {
		return math.NaN()
	}

	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return value
		}
		return math.NaN()
	}
	return value
}

// NumberString renders a float the way the keypad echoes raw values:
// shortest round-trip digits, exponential outside [1e-6, 1e21).
func NumberString(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}

	abs := math.Abs(x)
	if abs < smallMagnitude || abs >= 1e21 {
		return trimExponent(strconv.FormatFloat(x, 'e', -1, 64))
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// trimExponent rewrites Go's two-digit exponent ("e+09") as "e+9"
func trimExponent(s string) string {
	mantissa, exponent, found := strings.Cut(s, "e")
	if !found || len(exponent) < 2 {
		return s
	}

	sign, digits := exponent[:1], strings.TrimLeft(exponent[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
