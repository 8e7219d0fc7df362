package domain

import "time"

// Sale é o registro diário de caixa. Existe no máximo uma venda por data.
type Sale struct {
	ID                 int64     `json:"id"`
	Date               time.Time `json:"date"`
	StartCapital       float64   `json:"start_capital"`
	CashIncome         float64   `json:"cash_income"`
	CoinIncome         float64   `json:"coin_income"`
	CardGross          float64   `json:"card_gross"`
	CardPercentFee     float64   `json:"card_percent_fee"`
	CardFixedFee       float64   `json:"card_fixed_fee"`
	SatispayGross      float64   `json:"satispay_gross"`
	SatispayPercentFee float64   `json:"satispay_percent_fee"`
	SatispayFixedFee   float64   `json:"satispay_fixed_fee"`
	Notes              string    `json:"notes"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SaleInput carrega os valores informados pelo operador. Taxas nulas recebem os valores padrão.
type SaleInput struct {
	Date               time.Time
	StartCapital       float64
	CashIncome         float64
	CoinIncome         float64
	CardGross          float64
	CardPercentFee     *float64
	CardFixedFee       *float64
	SatispayGross      float64
	SatispayPercentFee *float64
	SatispayFixedFee   *float64
	Notes              string
}

// DateRange representa um intervalo fechado de datas
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Valid() bool {
	return !r.End.Before(r.Start)
}

// Days retorna as datas do intervalo em ordem crescente
func (r DateRange) Days() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
