package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/invoicing"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"github.com/vfg2006/gestionale-negozio-api/pkg/utils"
)

// multipartOverhead cobre os cabeçalhos do multipart além do próprio arquivo
const multipartOverhead = 1 << 20

type InvoiceRequest struct {
	Date          string  `json:"date"`
	SupplierID    *int64  `json:"supplier_id" validate:"omitempty,gt=0"`
	SupplierName  string  `json:"supplier_name" validate:"max=200"`
	InvoiceNumber string  `json:"invoice_number" validate:"max=100"`
	TotalAmount   float64 `json:"total_amount"`
	Notes         string  `json:"notes" validate:"max=2000"`
}

type ExtractRequest struct {
	Text string `json:"text" validate:"required"`
}

type ProcessOCRResponse struct {
	Invoice    *domain.Invoice           `json:"invoice"`
	Extraction *domain.InvoiceExtraction `json:"extraction"`
}

func (req *InvoiceRequest) toInvoice(w http.ResponseWriter) (*domain.Invoice, bool) {
	invoice := &domain.Invoice{
		SupplierID:    req.SupplierID,
		SupplierName:  req.SupplierName,
		InvoiceNumber: req.InvoiceNumber,
		TotalAmount:   req.TotalAmount,
		Notes:         req.Notes,
	}

	if req.Date != "" {
		date, err := utils.ParseDate(req.Date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida", map[string]string{"date": req.Date})
			return nil, false
		}
		invoice.Date = date
	}

	return invoice, true
}

// ListInvoices aceita ?q=, ?start=&end= ou paginação por limit/offset
func ListInvoices(service invoicing.InvoiceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if term := searchTerm(r); term != "" {
			invoices, err := service.SearchInvoices(r.Context(), term)
			if err != nil {
				writeServiceError(w, r, err, "Erro ao pesquisar faturas")
				return
			}
			writeJSON(w, http.StatusOK, invoices)
			return
		}

		dateRange, present, ok := queryDateRange(w, r)
		if !ok {
			return
		}
		if present {
			invoices, err := service.ListInvoicesByRange(r.Context(), dateRange)
			if err != nil {
				writeServiceError(w, r, err, "Erro ao listar faturas do período")
				return
			}
			writeJSON(w, http.StatusOK, invoices)
			return
		}

		limit, offset, ok := pagination(w, r)
		if !ok {
			return
		}

		invoices, err := service.ListInvoices(r.Context(), limit, offset)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar faturas")
			return
		}
		writeJSON(w, http.StatusOK, invoices)
	}
}

func CreateInvoice(service invoicing.InvoiceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req InvoiceRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		invoice, ok := req.toInvoice(w)
		if !ok {
			return
		}

		created, err := service.CreateInvoice(r.Context(), invoice)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar fattura")
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func GetInvoice(service invoicing.InvoiceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := paramID(w, r)
		if !ok {
			return
		}

		invoice, err := service.GetInvoice(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar fattura")
			return
		}
		writeJSON(w, http.StatusOK, invoice)
	}
}

func UpdateInvoice(service invoicing.InvoiceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := paramID(w, r)
		if !ok {
			return
		}

		var req InvoiceRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		invoice, ok := req.toInvoice(w)
		if !ok {
			return
		}
		invoice.ID = id

		updated, err := service.UpdateInvoice(r.Context(), invoice)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar fattura")
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteInvoice(service invoicing.InvoiceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := paramID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteInvoice(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir fattura")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// UploadInvoiceFile recebe o campo multipart "file" e deixa a fattura pendente de OCR
func UploadInvoiceFile(service invoicing.InvoiceManager, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := paramID(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
		file, header, err := r.FormFile("file")
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo excede o limite permitido", map[string]int64{"max_bytes": maxBytes})
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo multipart 'file' é obrigatório", nil)
			return
		}
		defer file.Close()

		invoice, err := service.AttachFile(r.Context(), id, header.Filename, file)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao anexar arquivo")
			return
		}
		writeJSON(w, http.StatusOK, invoice)
	}
}

// DownloadInvoiceFile serve o arquivo anexado com suporte a Range
func DownloadInvoiceFile(service invoicing.InvoiceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := paramID(w, r)
		if !ok {
			return
		}

		file, invoice, err := service.OpenFile(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao abrir arquivo da fattura")
			return
		}
		defer file.Close()

		info, err := file.Stat()
		if err != nil {
			writeServiceError(w, r, err, "Erro ao ler arquivo da fattura")
			return
		}

		name := fmt.Sprintf("fattura-%d%s", invoice.ID, filepath.Ext(invoice.FilePath))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		http.ServeContent(w, r, name, info.ModTime(), file)
	}
}

func ProcessInvoiceOCR(service invoicing.InvoiceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := paramID(w, r)
		if !ok {
			return
		}

		invoice, extraction, err := service.ProcessOCR(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao processar OCR")
			return
		}
		writeJSON(w, http.StatusOK, ProcessOCRResponse{Invoice: invoice, Extraction: extraction})
	}
}

// ExtractInvoiceFields aplica as regras de extração a um texto já reconhecido
func ExtractInvoiceFields(service invoicing.InvoiceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ExtractRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		extraction, err := service.ExtractFields(req.Text)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao extrair campos")
			return
		}
		writeJSON(w, http.StatusOK, extraction)
	}
}
