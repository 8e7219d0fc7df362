package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	expected := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{name: "ISO", input: "2024-03-15"},
		{name: "Italiano com barra", input: "15/03/2024"},
		{name: "Italiano com hífen", input: "15-03-2024"},
		{name: "ISO com barra", input: "2024/03/15"},
		{name: "Com espaços", input: "  2024-03-15 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, expected.Equal(date))
		})
	}
}

func TestParseDate_Invalida(t *testing.T) {
	for _, input := range []string{"", "31/02/2024", "2024.03.15", "ieri"} {
		_, err := ParseDate(input)
		assert.Error(t, err, input)
	}
}

func TestMonthStartAndDay(t *testing.T) {
	ts := time.Date(2024, 5, 17, 18, 45, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), MonthStart(ts))
	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), Day(ts))
}
