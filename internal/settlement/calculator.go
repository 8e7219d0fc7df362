// Package settlement calcula o fechamento diário de caixa de uma venda.
//
// Todas as funções são puras e não arredondam valores. O arredondamento
// acontece apenas na formatação para exibição.
package settlement

import "github.com/vfg2006/gestionale-negozio-api/internal/domain"

// Result agrupa os valores derivados de uma única venda
type Result struct {
	CashTotal        float64 `json:"cash_total"`
	CardFees         float64 `json:"card_fees"`
	CardNet          float64 `json:"card_net"`
	SatispayFees     float64 `json:"satispay_fees"`
	SatispayNet      float64 `json:"satispay_net"`
	BankTotal        float64 `json:"bank_total"`
	Takings          float64 `json:"takings"`
	SupplierPayments float64 `json:"supplier_payments"`
	DailyProfit      float64 `json:"daily_profit"`
}

// FormattedResult é o Result pronto para exibição em euro
type FormattedResult struct {
	CashTotal        string `json:"cash_total"`
	CardFees         string `json:"card_fees"`
	CardNet          string `json:"card_net"`
	SatispayFees     string `json:"satispay_fees"`
	SatispayNet      string `json:"satispay_net"`
	BankTotal        string `json:"bank_total"`
	Takings          string `json:"takings"`
	SupplierPayments string `json:"supplier_payments"`
	DailyProfit      string `json:"daily_profit"`
}

// CashTotal soma notas e moedas
func CashTotal(sale *domain.Sale) float64 {
	return sale.CashIncome + sale.CoinIncome
}

// Fees aplica a taxa percentual sobre o bruto e soma a taxa fixa.
// percentFee é expresso em pontos percentuais (1.95 significa 1,95%).
// A taxa fixa é cobrada mesmo quando o bruto é zero.
func Fees(gross, percentFee, fixedFee float64) float64 {
	return gross*percentFee/100.0 + fixedFee
}

func CardFees(sale *domain.Sale) float64 {
	return Fees(sale.CardGross, sale.CardPercentFee, sale.CardFixedFee)
}

func CardNet(sale *domain.Sale) float64 {
	return sale.CardGross - CardFees(sale)
}

func SatispayFees(sale *domain.Sale) float64 {
	return Fees(sale.SatispayGross, sale.SatispayPercentFee, sale.SatispayFixedFee)
}

func SatispayNet(sale *domain.Sale) float64 {
	return sale.SatispayGross - SatispayFees(sale)
}

// BankTotal é o que efetivamente entra na conta bancária (POS + Satispay líquidos)
func BankTotal(sale *domain.Sale) float64 {
	return CardNet(sale) + SatispayNet(sale)
}

// Takings é o corrispettivo do dia: caixa mais banco
func Takings(sale *domain.Sale) float64 {
	return CashTotal(sale) + BankTotal(sale)
}

func DailyProfit(sale *domain.Sale, supplierPayments float64) float64 {
	return Takings(sale) - supplierPayments
}

// GrossReceipts soma todas as entradas antes das taxas
func GrossReceipts(sale *domain.Sale) float64 {
	return sale.CashIncome + sale.CoinIncome + sale.CardGross + sale.SatispayGross
}

// Calculate computa todos os valores a partir do mesmo snapshot da venda
func Calculate(sale *domain.Sale, supplierPayments float64) Result {
	cardFees := CardFees(sale)
	cardNet := sale.CardGross - cardFees
	satispayFees := SatispayFees(sale)
	satispayNet := sale.SatispayGross - satispayFees
	cashTotal := CashTotal(sale)
	bankTotal := cardNet + satispayNet
	takings := cashTotal + bankTotal

	return Result{
		CashTotal:        cashTotal,
		CardFees:         cardFees,
		CardNet:          cardNet,
		SatispayFees:     satispayFees,
		SatispayNet:      satispayNet,
		BankTotal:        bankTotal,
		Takings:          takings,
		SupplierPayments: supplierPayments,
		DailyProfit:      takings - supplierPayments,
	}
}

func (r Result) Format() FormattedResult {
	return FormattedResult{
		CashTotal:        FormatCurrency(r.CashTotal),
		CardFees:         FormatCurrency(r.CardFees),
		CardNet:          FormatCurrency(r.CardNet),
		SatispayFees:     FormatCurrency(r.SatispayFees),
		SatispayNet:      FormatCurrency(r.SatispayNet),
		BankTotal:        FormatCurrency(r.BankTotal),
		Takings:          FormatCurrency(r.Takings),
		SupplierPayments: FormatCurrency(r.SupplierPayments),
		DailyProfit:      FormatCurrency(r.DailyProfit),
	}
}
