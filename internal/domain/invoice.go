package domain

import "time"

type OCRStatus string

const (
	OCRStatusNone    OCRStatus = "none"
	OCRStatusPending OCRStatus = "pending"
	OCRStatusDone    OCRStatus = "done"
	OCRStatusFailed  OCRStatus = "failed"
)

type Invoice struct {
	ID            int64     `json:"id"`
	Date          time.Time `json:"date"`
	SupplierID    *int64    `json:"supplier_id"`
	SupplierName  string    `json:"supplier_name,omitempty"`
	InvoiceNumber string    `json:"invoice_number"`
	TotalAmount   float64   `json:"total_amount"`
	FilePath      string    `json:"file_path"`
	OCRText       string    `json:"ocr_text"`
	OCRStatus     OCRStatus `json:"ocr_status"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// InvoiceExtraction são os campos reconhecidos no texto de uma fattura.
// Campos não encontrados ficam vazios.
type InvoiceExtraction struct {
	InvoiceNumber string `json:"invoice_number,omitempty"`
	Date          string `json:"date,omitempty"`
	TotalAmount   string `json:"total_amount,omitempty"`
	VATNumber     string `json:"vat_number,omitempty"`
	SupplierName  string `json:"supplier_name,omitempty"`
	RawText       string `json:"raw_text"`
}
