package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{input: "12.5", expected: 12.5},
		{input: "12,50", expected: 12.5},
		{input: "1.234,56", expected: 1234.56},
		{input: "1,234.56", expected: 1234.56},
		{input: "€ 1.220,00", expected: 1220},
		{input: "1.234.567", expected: 1234567},
		{input: "-45,10", expected: -45.1},
		{input: "0", expected: 0},
		{input: " 150 ", expected: 150},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, amount, 1e-9)
		})
	}
}

func TestParseAmount_Invalido(t *testing.T) {
	for _, input := range []string{"", "abc", "NaN", "12a", "€", "1e400", "-1e400"} {
		_, err := ParseAmount(input)
		assert.Error(t, err, input)
	}
}
