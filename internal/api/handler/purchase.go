package handler

import (
	"net/http"

	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/supplying"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"github.com/vfg2006/gestionale-negozio-api/pkg/utils"
)

type PurchaseRequest struct {
	Date        string  `json:"date" validate:"required"`
	SupplierID  int64   `json:"supplier_id" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required,max=500"`
	CashPayment float64 `json:"cash_payment"`
	BankPayment float64 `json:"bank_payment"`
	Notes       string  `json:"notes" validate:"max=2000"`
}

func (req *PurchaseRequest) toPurchase(w http.ResponseWriter) (*domain.Purchase, bool) {
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida", map[string]string{"date": req.Date})
		return nil, false
	}

	return &domain.Purchase{
		Date:        date,
		SupplierID:  req.SupplierID,
		Description: req.Description,
		CashPayment: req.CashPayment,
		BankPayment: req.BankPayment,
		Notes:       req.Notes,
	}, true
}

// ListPurchases aceita ?q=, ?date= ou ?start=&end=; sem filtros devolve o dia atual
func ListPurchases(service supplying.SupplyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if term := searchTerm(r); term != "" {
			purchases, err := service.SearchPurchases(r.Context(), term)
			if err != nil {
				writeServiceError(w, r, err, "Erro ao pesquisar compras")
				return
			}
			writeJSON(w, http.StatusOK, purchases)
			return
		}

		dateRange, present, ok := queryDateRange(w, r)
		if !ok {
			return
		}
		if present {
			purchases, err := service.ListPurchasesByRange(r.Context(), dateRange)
			if err != nil {
				writeServiceError(w, r, err, "Erro ao listar compras do período")
				return
			}
			writeJSON(w, http.StatusOK, purchases)
			return
		}

		date := utils.Day(nowFunc())
		if v := r.URL.Query().Get("date"); v != "" {
			parsed, err := utils.ParseDate(v)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro date inválido", map[string]string{"date": v})
				return
			}
			date = parsed
		}

		purchases, err := service.ListPurchasesByDate(r.Context(), date)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar compras")
			return
		}
		writeJSON(w, http.StatusOK, purchases)
	}
}

func CreatePurchase(service supplying.SupplyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PurchaseRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		purchase, ok := req.toPurchase(w)
		if !ok {
			return
		}

		created, err := service.CreatePurchase(r.Context(), purchase)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar compra")
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func GetPurchase(service supplying.SupplyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := paramID(w, r)
		if !ok {
			return
		}

		purchase, err := service.GetPurchase(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar compra")
			return
		}
		writeJSON(w, http.StatusOK, purchase)
	}
}

func UpdatePurchase(service supplying.SupplyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := paramID(w, r)
		if !ok {
			return
		}

		var req PurchaseRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		purchase, ok := req.toPurchase(w)
		if !ok {
			return
		}
		purchase.ID = id

		if err := service.UpdatePurchase(r.Context(), purchase); err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar compra")
			return
		}
		writeJSON(w, http.StatusOK, purchase)
	}
}

func DeletePurchase(service supplying.SupplyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := paramID(w, r)
		if !ok {
			return
		}

		if err := service.DeletePurchase(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir compra")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GetPurchaseTotals soma as compras do intervalo por forma de pagamento
func GetPurchaseTotals(service supplying.SupplyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dateRange, ok := requiredDateRange(w, r)
		if !ok {
			return
		}

		totals, err := service.GetPurchaseTotals(r.Context(), dateRange)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao somar compras")
			return
		}
		writeJSON(w, http.StatusOK, totals)
	}
}
