package settlement

import (
	"math"
	"strconv"
	"strings"
)

const currencyPrefix = "€ "

// FormatCurrency formata no padrão italiano: ponto para milhares, vírgula
// para decimais e sempre duas casas. O sinal fica depois do símbolo.
//
//	FormatCurrency(1234.5) == "€ 1.234,50"
//	FormatCurrency(-12.3)  == "€ -12,30"
func FormatCurrency(value float64) string {
	switch {
	case math.IsNaN(value):
		return currencyPrefix + "nan"
	case math.IsInf(value, 1):
		return currencyPrefix + "inf"
	case math.IsInf(value, -1):
		return currencyPrefix + "-inf"
	}

	s := strconv.FormatFloat(value, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	return currencyPrefix + sign + groupThousands(intPart, ".") + "," + fracPart
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
