package domain

import "time"

type ReportSummary struct {
	TotalTakings        float64 `json:"total_takings"`
	CashTakings         float64 `json:"cash_takings"`
	BankTakings         float64 `json:"bank_takings"`
	TotalExpenses       float64 `json:"total_expenses"`
	CashExpenses        float64 `json:"cash_expenses"`
	BankExpenses        float64 `json:"bank_expenses"`
	NetProfit           float64 `json:"net_profit"`
	DaysCount           int     `json:"days_count"`
	AverageDailyTakings float64 `json:"average_daily_takings"`
}

type DailyReportRow struct {
	Date     time.Time `json:"date"`
	Cash     float64   `json:"cash"`
	Bank     float64   `json:"bank"`
	Fees     float64   `json:"fees"`
	Takings  float64   `json:"takings"`
	Expenses float64   `json:"expenses"`
	Net      float64   `json:"net"`
	Notes    string    `json:"notes"`
}

type SupplierExpense struct {
	SupplierID    int64   `json:"supplier_id"`
	SupplierName  string  `json:"supplier_name"`
	Cash          float64 `json:"cash"`
	Bank          float64 `json:"bank"`
	Total         float64 `json:"total"`
	PurchaseCount int     `json:"purchase_count"`
}

type PeriodReport struct {
	Start    time.Time          `json:"start"`
	End      time.Time          `json:"end"`
	Summary  ReportSummary      `json:"summary"`
	Days     []*DailyReportRow  `json:"days"`
	Expenses []*SupplierExpense `json:"expenses"`
}

type DailyAmount struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

type Dashboard struct {
	Date            time.Time          `json:"date"`
	SalesToday      float64            `json:"sales_today"`
	SalesMonth      float64            `json:"sales_month"`
	ExpensesMonth   float64            `json:"expenses_month"`
	ProfitMonth     float64            `json:"profit_month"`
	PendingInvoices int                `json:"pending_invoices"`
	ActiveSuppliers int                `json:"active_suppliers"`
	Trend           []*DailyAmount     `json:"trend"`
	TopSuppliers    []*SupplierExpense `json:"top_suppliers"`
}
