package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/selling"
)

// SaleRequest é o corpo do PUT /v1/sales/:date e do POST /v1/sales/:date/settlement.
// Taxas nulas mantêm as atuais. Valores negativos são aceitos como ajustes.
type SaleRequest struct {
	StartCapital       float64  `json:"start_capital"`
	CashIncome         float64  `json:"cash_income"`
	CoinIncome         float64  `json:"coin_income"`
	CardGross          float64  `json:"card_gross"`
	CardPercentFee     *float64 `json:"card_percent_fee"`
	CardFixedFee       *float64 `json:"card_fixed_fee"`
	SatispayGross      float64  `json:"satispay_gross"`
	SatispayPercentFee *float64 `json:"satispay_percent_fee"`
	SatispayFixedFee   *float64 `json:"satispay_fixed_fee"`
	Notes              string   `json:"notes" validate:"max=2000"`
}

func (req *SaleRequest) toInput(date time.Time) *domain.SaleInput {
	return &domain.SaleInput{
		Date:               date,
		StartCapital:       req.StartCapital,
		CashIncome:         req.CashIncome,
		CoinIncome:         req.CoinIncome,
		CardGross:          req.CardGross,
		CardPercentFee:     req.CardPercentFee,
		CardFixedFee:       req.CardFixedFee,
		SatispayGross:      req.SatispayGross,
		SatispayPercentFee: req.SatispayPercentFee,
		SatispayFixedFee:   req.SatispayFixedFee,
		Notes:              req.Notes,
	}
}

// ListSales aceita ?q= para busca, ?start=&end= para intervalo ou paginação por limit/offset
func ListSales(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if term := searchTerm(r); term != "" {
			sales, err := service.SearchSales(r.Context(), term)
			if err != nil {
				writeServiceError(w, r, err, "Erro ao pesquisar vendas")
				return
			}
			writeJSON(w, http.StatusOK, sales)
			return
		}

		dateRange, present, ok := queryDateRange(w, r)
		if !ok {
			return
		}
		if present {
			sales, err := service.ListSalesByRange(r.Context(), dateRange)
			if err != nil {
				writeServiceError(w, r, err, "Erro ao listar vendas do período")
				return
			}
			writeJSON(w, http.StatusOK, sales)
			return
		}

		limit, offset, ok := pagination(w, r)
		if !ok {
			return
		}

		sales, err := service.ListSales(r.Context(), limit, offset)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar vendas")
			return
		}
		writeJSON(w, http.StatusOK, sales)
	}
}

func GetSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, ok := paramDate(w, r)
		if !ok {
			return
		}

		sale, err := service.GetSale(r.Context(), date)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar venda")
			return
		}
		writeJSON(w, http.StatusOK, sale)
	}
}

// GetSettlement devolve o fechamento do dia mesmo quando ainda não há venda salva
func GetSettlement(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, ok := paramDate(w, r)
		if !ok {
			return
		}

		sheet, err := service.GetSettlement(r.Context(), date)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular fechamento")
			return
		}
		writeJSON(w, http.StatusOK, sheet)
	}
}

// PreviewSettlement recalcula o fechamento com os valores do formulário, sem salvar
func PreviewSettlement(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, ok := paramDate(w, r)
		if !ok {
			return
		}

		var req SaleRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		sheet, err := service.PreviewSettlement(r.Context(), req.toInput(date))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular fechamento")
			return
		}
		writeJSON(w, http.StatusOK, sheet)
	}
}

func SaveSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, ok := paramDate(w, r)
		if !ok {
			return
		}

		var req SaleRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		sale, err := service.SaveSale(r.Context(), req.toInput(date))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar venda")
			return
		}
		writeJSON(w, http.StatusOK, sale)
	}
}

func DeleteSale(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, ok := paramDate(w, r)
		if !ok {
			return
		}

		if err := service.DeleteSale(r.Context(), date); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir venda")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
