package importing

import "github.com/vfg2006/gestionale-negozio-api/internal/domain"

var importFields = map[domain.ImportType][]domain.ImportField{
	domain.ImportTypeSales: {
		{Key: "date", Label: "Data", Required: true},
		{Key: "start_capital", Label: "Capitale Iniziale"},
		{Key: "cash_income", Label: "Incasso Contante"},
		{Key: "coin_income", Label: "Incasso Moneta"},
		{Key: "card_gross", Label: "Lordo Bancomat"},
		{Key: "card_percent_fee", Label: "Percentuale Bancomat"},
		{Key: "card_fixed_fee", Label: "Costo Fisso Bancomat"},
		{Key: "satispay_gross", Label: "Lordo Satispay"},
		{Key: "satispay_percent_fee", Label: "Percentuale Satispay"},
		{Key: "satispay_fixed_fee", Label: "Costo Fisso Satispay"},
		{Key: "notes", Label: "Note"},
	},
	domain.ImportTypeSuppliers: {
		{Key: "name", Label: "Nome Fornitore", Required: true},
		{Key: "notes", Label: "Note"},
	},
	domain.ImportTypePurchases: {
		{Key: "date", Label: "Data", Required: true},
		{Key: "supplier_name", Label: "Nome Fornitore", Required: true},
		{Key: "description", Label: "Descrizione"},
		{Key: "cash_payment", Label: "Pagamento Contante"},
		{Key: "bank_payment", Label: "Pagamento Bancario"},
		{Key: "notes", Label: "Note"},
	},
}

// Fields devolve as colunas aceitas por um tipo de importação
func Fields(importType domain.ImportType) ([]domain.ImportField, bool) {
	fields, ok := importFields[importType]
	return fields, ok
}
