package settlement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{value: 1234.5, expected: "€ 1.234,50"},
		{value: 0, expected: "€ 0,00"},
		{value: -12.3, expected: "€ -12,30"},
		{value: 1234567.891, expected: "€ 1.234.567,89"},
		{value: 999.999, expected: "€ 1.000,00"},
		{value: -1234.5, expected: "€ -1.234,50"},
		{value: 0.15, expected: "€ 0,15"},
		{value: 100, expected: "€ 100,00"},
		{value: 123456, expected: "€ 123.456,00"},
		{value: math.NaN(), expected: "€ nan"},
		{value: math.Inf(-1), expected: "€ -inf"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.value))
		})
	}
}
