package domain

import "time"

// Purchase é uma despesa com fornecedor, paga em dinheiro e/ou banco.
type Purchase struct {
	ID           int64     `json:"id"`
	Date         time.Time `json:"date"`
	SupplierID   int64     `json:"supplier_id"`
	SupplierName string    `json:"supplier_name,omitempty"`
	Description  string    `json:"description"`
	CashPayment  float64   `json:"cash_payment"`
	BankPayment  float64   `json:"bank_payment"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *Purchase) Total() float64 {
	return p.CashPayment + p.BankPayment
}

type PurchaseTotals struct {
	Cash  float64 `json:"cash"`
	Bank  float64 `json:"bank"`
	Total float64 `json:"total"`
}
