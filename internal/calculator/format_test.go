package calculator

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "Zero", input: 0, expected: "0"},
		{name: "Negative zero", input: math.Copysign(0, -1), expected: "0"},
		{name: "Integer", input: 8, expected: "8"},
		{name: "Negative decimal", input: -5.5, expected: "-5.5"},
		{name: "Binary rounding noise", input: 0.1 + 0.2, expected: "0.3"},
		{name: "Repeating third", input: 1.0 / 3.0, expected: "0.3333333333"},
		{name: "Rounded up at tenth place", input: 2.0 / 3.0, expected: "0.6666666667"},
		{name: "Pi", input: math.Pi, expected: "3.1415926536"},
		{name: "Euler", input: math.E, expected: "2.7182818285"},
		{name: "Smallest fixed value", input: 1e-6, expected: "0.000001"},
		{name: "Tiny value", input: 1e-7, expected: "1.000000e-7"},
		{name: "Tiny negative value", input: -1.5e-9, expected: "-1.500000e-9"},
		{name: "Largest fixed value", input: 999999999, expected: "999999999"},
		{name: "Large value", input: 1234567890, expected: "1.234568e+9"},
		{name: "Huge value", input: 1e300, expected: "1.000000e+300"},
		{name: "Fixed tie rounds away from zero", input: 1.0 / 2048, expected: "0.0004882813"},
		{name: "Negative fixed tie", input: -2.75634765625, expected: "-2.7563476563"},
		{name: "Carry into integer part", input: 0.999999999999, expected: "1"},
		{name: "Exponential tie rounds away from zero", input: 1000000500, expected: "1.000001e+9"},
		{name: "Negative exponential tie", input: -1000000500, expected: "-1.000001e+9"},
		{name: "Exponential carry", input: 9999999500, expected: "1.000000e+10"},
		{name: "NaN", input: math.NaN(), expected: "Error"},
		{name: "Positive infinity", input: math.Inf(1), expected: "Error"},
		{name: "Negative infinity", input: math.Inf(-1), expected: "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatResult(tt.input))
		})
	}
}

func TestFormatResultRoundTrip(t *testing.T) {
	inputs := []float64{0.5, 123.456, -98765.4321, 1.0 / 7.0, 42, 0.000123, 999999998.25}

	for _, x := range inputs {
		formatted := FormatResult(x)

		if _, frac, found := strings.Cut(formatted, "."); found {
			assert.LessOrEqual(t, len(frac), 10, "%q has too many fraction digits", formatted)
		}

		parsed, err := strconv.ParseFloat(formatted, 64)
		require.NoError(t, err)
		assert.InDelta(t, x, parsed, 1e-10, "FormatResult(%v) = %q", x, formatted)
	}
}

func TestRoundDigits(t *testing.T) {
	tests := []struct {
		name     string
		digits   string
		n        int
		expected string
	}{
		{name: "Round down", digits: "12341", n: 4, expected: "1234"},
		{name: "Half rounds up", digits: "12345", n: 4, expected: "1235"},
		{name: "Just below half", digits: "123449999", n: 4, expected: "1234"},
		{name: "Carry", digits: "12995", n: 4, expected: "1300"},
		{name: "Carry out", digits: "99995", n: 4, expected: "10000"},
		{name: "Short input is padded", digits: "12", n: 4, expected: "1200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, roundDigits(tt.digits, tt.n))
		})
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Zero", input: 0, expected: 1},
		{name: "One", input: 1, expected: 1},
		{name: "Five", input: 5, expected: 120},
		{name: "Ten", input: 10, expected: 3628800},
		{name: "Overflow guard", input: 171, expected: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Factorial(tt.input))
		})
	}

	t.Run("Largest finite", func(t *testing.T) {
		result := Factorial(170)
		assert.False(t, math.IsInf(result, 0))
		assert.Greater(t, result, 7e306)
	})

	for _, invalid := range []float64{-1, 2.5, math.NaN(), math.Inf(1)} {
		assert.True(t, math.IsNaN(Factorial(invalid)), "Factorial(%v) should be NaN", invalid)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "Integer", input: "42", expected: 42},
		{name: "Negative decimal", input: "-2.5", expected: -2.5},
		{name: "Trailing point", input: "5.", expected: 5},
		{name: "Leading point", input: ".25", expected: 0.25},
		{name: "Exponential display", input: "1.000000e-7", expected: 1e-7},
		{name: "Trailing parenthesis", input: "3)", expected: 3},
		{name: "Dangling exponent", input: "2e", expected: 2},
		{name: "Infinity", input: "Infinity", expected: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseNumber(tt.input))
		})
	}

	for _, invalid := range []string{"", "(", "((5", "Error", "-"} {
		assert.True(t, math.IsNaN(ParseNumber(invalid)), "ParseNumber(%q) should be NaN", invalid)
	}
}

func TestNumberString(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{input: 0, expected: "0"},
		{input: 42, expected: "42"},
		{input: -3, expected: "-3"},
		{input: 0.5, expected: "0.5"},
		{input: 3.5, expected: "3.5"},
		{input: 1e-7, expected: "1e-7"},
		{input: 1e21, expected: "1e+21"},
		{input: math.Inf(1), expected: "Infinity"},
		{input: math.NaN(), expected: "NaN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NumberString(tt.input), "NumberString(%v)", tt.input)
	}
}
