package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/supplying"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
)

type SupplierRequest struct {
	Name   string `json:"name" validate:"required,max=200"`
	Notes  string `json:"notes" validate:"max=2000"`
	Active *bool  `json:"active"`
}

// ListSuppliers aceita ?q= para busca e ?all=true para incluir os desativados
func ListSuppliers(service supplying.SupplyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if term := searchTerm(r); term != "" {
			suppliers, err := service.SearchSuppliers(r.Context(), term)
			if err != nil {
				writeServiceError(w, r, err, "Erro ao pesquisar fornecedores")
				return
			}
			writeJSON(w, http.StatusOK, suppliers)
			return
		}

		all, _ := strconv.ParseBool(r.URL.Query().Get("all"))
		suppliers, err := service.ListSuppliers(r.Context(), !all)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar fornecedores")
			return
		}
		writeJSON(w, http.StatusOK, suppliers)
	}
}

func CreateSupplier(service supplying.SupplyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SupplierRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		supplier, err := service.CreateSupplier(r.Context(), &domain.Supplier{
			Name:   req.Name,
			Notes:  req.Notes,
			Active: true,
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar fornecedor")
			return
		}
		writeJSON(w, http.StatusCreated, supplier)
	}
}

func GetSupplier(service supplying.SupplyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := paramID(w, r)
		if !ok {
			return
		}

		supplier, err := service.GetSupplier(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar fornecedor")
			return
		}
		writeJSON(w, http.StatusOK, supplier)
	}
}

func UpdateSupplier(service supplying.SupplyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := paramID(w, r)
		if !ok {
			return
		}

		var req SupplierRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		supplier := &domain.Supplier{ID: id, Name: req.Name, Notes: req.Notes, Active: true}
		if req.Active != nil {
			supplier.Active = *req.Active
		}

		if err := service.UpdateSupplier(r.Context(), supplier); err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar fornecedor")
			return
		}

		updated, err := service.GetSupplier(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar fornecedor")
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// DeactivateSupplier desativa o fornecedor; as compras existentes são mantidas
func DeactivateSupplier(service supplying.SupplyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := paramID(w, r)
		if !ok {
			return
		}

		if err := service.DeactivateSupplier(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao desativar fornecedor")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ListSupplierPurchases(service supplying.SupplyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := paramID(w, r)
		if !ok {
			return
		}

		var limit uint64
		if v := r.URL.Query().Get("limit"); v != "" {
			parsed, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = min(parsed, maxPageSize)
		}

		purchases, err := service.ListPurchasesBySupplier(r.Context(), id, limit)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar compras do fornecedor")
			return
		}
		writeJSON(w, http.StatusOK, purchases)
	}
}
