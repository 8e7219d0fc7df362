package ocr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
)

const (
	supplierNameWords  = 5
	supplierNameMaxLen = 50
)

var (
	invoiceNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:fattura|invoice|numero|num\.?|n\.?)\s*:?\s*([A-Z0-9\-/]*\d[A-Z0-9\-/]*)`),
		regexp.MustCompile(`(?i)\b(?:ft|fatt\.?)\s*:?\s*([A-Z0-9\-/]*\d[A-Z0-9\-/]*)`),
		regexp.MustCompile(`(?i)\b(?:doc\.?|documento)\s*:?\s*([A-Z0-9\-/]*\d[A-Z0-9\-/]*)`),
	}

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:data|del|date)\s*:?\s*(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`),
		regexp.MustCompile(`(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`),
	}
	dateSeparator = regexp.MustCompile(`[/\-.]`)

	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:\btotale|\btotal|\bimporto|\beuro|\beur|€)\s*:?\s*€?\s*(\d{1,3}(?:[.,]\d{3})*[.,]\d{2})`),
		regexp.MustCompile(`€\s*(\d{1,3}(?:[.,]\d{3})*[.,]\d{2})`),
		regexp.MustCompile(`(\d{1,3}(?:[.,]\d{3})*[.,]\d{2})\s*€`),
	}

	vatPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:p\.?\s*iva|partita\s+iva|vat)\s*:?\s*([0-9]{11})`),
		regexp.MustCompile(`(?i)\b(?:pi|p\.i\.)\s*:?\s*([0-9]{11})`),
	}

	nonLetters = regexp.MustCompile(`[^a-zA-Z\s]`)
)

// ExtractInvoiceData reconhece número, data, total, partita IVA e um palpite
// do nome do fornecedor no texto de uma fattura. Campos não encontrados ficam vazios.
func ExtractInvoiceData(text string) domain.InvoiceExtraction {
	clean := strings.Join(strings.Fields(text), " ")

	return domain.InvoiceExtraction{
		InvoiceNumber: firstSubmatch(invoiceNumberPatterns, clean),
		Date:          extractDate(clean),
		TotalAmount:   extractTotalAmount(clean),
		VATNumber:     firstSubmatch(vatPatterns, clean),
		SupplierName:  guessSupplierName(clean),
		RawText:       text,
	}
}

func firstSubmatch(patterns []*regexp.Regexp, text string) string {
	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractDate devolve a primeira data plausível no formato DD/MM/YYYY
func extractDate(text string) string {
	for _, pattern := range datePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			if date, ok := normalizeDate(m[1]); ok {
				return date
			}
		}
	}
	return ""
}

func normalizeDate(raw string) (string, bool) {
	parts := dateSeparator.Split(raw, -1)
	if len(parts) != 3 {
		return "", false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", false
	}

	year := parts[2]
	if len(year) == 2 {
		year = "20" + year
	}

	if day < 1 || day > 31 || month < 1 || month > 12 {
		return "", false
	}

	return fmt.Sprintf("%02d/%02d/%s", day, month, year), true
}

// extractTotalAmount escolhe o maior valor positivo encontrado, mantendo o texto original
func extractTotalAmount(text string) string {
	for _, pattern := range amountPatterns {
		var (
			best    decimal.Decimal
			bestRaw string
		)

		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			amount, err := normalizeAmount(m[1])
			if err != nil || !amount.IsPositive() {
				continue
			}
			if bestRaw == "" || amount.GreaterThan(best) {
				best = amount
				bestRaw = m[1]
			}
		}

		if bestRaw != "" {
			return bestRaw
		}
	}
	return ""
}

// normalizeAmount trata o último separador como decimal e remove os demais
func normalizeAmount(raw string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(raw, ",", ".")
	if strings.Count(normalized, ".") > 1 {
		idx := strings.LastIndex(normalized, ".")
		normalized = strings.ReplaceAll(normalized[:idx], ".", "") + normalized[idx:]
	}
	return decimal.NewFromString(normalized)
}

// guessSupplierName usa as primeiras palavras do documento, só com letras
func guessSupplierName(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	if len(words) > supplierNameWords {
		words = words[:supplierNameWords]
	}

	name := nonLetters.ReplaceAllString(strings.Join(words, " "), "")
	name = strings.Join(strings.Fields(name), " ")
	if len(name) <= 3 {
		return ""
	}
	if len(name) > supplierNameMaxLen {
		name = name[:supplierNameMaxLen]
	}
	return name
}
