package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateFormats são os formatos aceitos na entrada de datas, na ordem em que são testados
var DateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2006/01/02",
}

// ParseDate interpreta datas ISO e italianas (dd/mm/yyyy, dd-mm-yyyy)
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range DateFormats {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("data inválida: %q", dateStr)
}

// Day remove o horário, mantendo a data no fuso UTC
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthStart devolve o primeiro dia do mês de t
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
