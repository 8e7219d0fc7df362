package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
)

func TestExtractInvoiceData(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		validate func(t *testing.T, result domain.InvoiceExtraction)
	}{
		{
			name: "Fattura completa - deve extrair todos os campos",
			text: "Rossi Forniture SRL\nVia Roma 12\nP.IVA 01234567890\n" +
				"Fattura n. 2024/118 del 15/03/2024\nImponibile 1.011,93\nIVA 22% 222,63\nTotale: € 1.234,56",
			validate: func(t *testing.T, result domain.InvoiceExtraction) {
				assert.Equal(t, "2024/118", result.InvoiceNumber)
				assert.Equal(t, "15/03/2024", result.Date)
				assert.Equal(t, "1.234,56", result.TotalAmount)
				assert.Equal(t, "01234567890", result.VATNumber)
				assert.Equal(t, "Rossi Forniture SRL Via Roma", result.SupplierName)
				assert.Contains(t, result.RawText, "\n")
			},
		},
		{
			name: "Texto vazio - todos os campos vazios",
			text: "",
			validate: func(t *testing.T, result domain.InvoiceExtraction) {
				assert.Equal(t, domain.InvoiceExtraction{}, result)
			},
		},
		{
			name: "Palavra sem dígitos após FATTURA não é número",
			text: "FATTURA ELETTRONICA",
			validate: func(t *testing.T, result domain.InvoiceExtraction) {
				assert.Empty(t, result.InvoiceNumber)
			},
		},
		{
			name: "Número de documento com prefixo documento",
			text: "Documento: DDT-77",
			validate: func(t *testing.T, result domain.InvoiceExtraction) {
				assert.Equal(t, "DDT-77", result.InvoiceNumber)
			},
		},
		{
			name: "Maior total vence",
			text: "Totale 10,00 Totale 250,00 Totale 99,99",
			validate: func(t *testing.T, result domain.InvoiceExtraction) {
				assert.Equal(t, "250,00", result.TotalAmount)
			},
		},
		{
			name: "Valor seguido do símbolo do euro",
			text: "Ricevuta 45,90 €",
			validate: func(t *testing.T, result domain.InvoiceExtraction) {
				assert.Equal(t, "45,90", result.TotalAmount)
			},
		},
		{
			name: "Data inválida é ignorada e ano com dois dígitos é expandido",
			text: "32/13/2024 poi 05/06/24",
			validate: func(t *testing.T, result domain.InvoiceExtraction) {
				assert.Equal(t, "05/06/2024", result.Date)
			},
		},
		{
			name: "Data com hífen e sem zeros",
			text: "Data: 1-2-2025",
			validate: func(t *testing.T, result domain.InvoiceExtraction) {
				assert.Equal(t, "01/02/2025", result.Date)
			},
		},
		{
			name: "Partita IVA por extenso",
			text: "Partita IVA 98765432109",
			validate: func(t *testing.T, result domain.InvoiceExtraction) {
				assert.Equal(t, "98765432109", result.VATNumber)
			},
		},
		{
			name: "Nome curto demais não é fornecedor",
			text: "AB 12 34",
			validate: func(t *testing.T, result domain.InvoiceExtraction) {
				assert.Empty(t, result.SupplierName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ExtractInvoiceData(tt.text))
		})
	}
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"45,90", "45.9"},
		{"1.234.567,00", "1234567"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			amount, err := normalizeAmount(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, amount.String())
		})
	}
}
