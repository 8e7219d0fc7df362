package supplying

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/repository"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"github.com/vfg2006/gestionale-negozio-api/pkg/utils"
)

const defaultSupplierPurchasesLimit = 50

type SupplyManager interface {
	CreateSupplier(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error)
	GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, activeOnly bool) ([]*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier *domain.Supplier) error
	DeactivateSupplier(ctx context.Context, id int64) error
	SearchSuppliers(ctx context.Context, term string) ([]*domain.Supplier, error)

	CreatePurchase(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	GetPurchase(ctx context.Context, id int64) (*domain.Purchase, error)
	UpdatePurchase(ctx context.Context, purchase *domain.Purchase) error
	DeletePurchase(ctx context.Context, id int64) error
	ListPurchasesByDate(ctx context.Context, date time.Time) ([]*domain.Purchase, error)
	ListPurchasesByRange(ctx context.Context, dateRange domain.DateRange) ([]*domain.Purchase, error)
	ListPurchasesBySupplier(ctx context.Context, supplierID int64, limit uint64) ([]*domain.Purchase, error)
	SearchPurchases(ctx context.Context, term string) ([]*domain.Purchase, error)
	GetPurchaseTotals(ctx context.Context, dateRange domain.DateRange) (*domain.PurchaseTotals, error)
}

type Service struct {
	supplierRepo repository.SupplierRepository
	purchaseRepo repository.PurchaseRepository
}

func NewService(supplierRepo repository.SupplierRepository, purchaseRepo repository.PurchaseRepository) SupplyManager {
	return &Service{
		supplierRepo: supplierRepo,
		purchaseRepo: purchaseRepo,
	}
}

func (s *Service) CreateSupplier(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	supplier.Name = strings.TrimSpace(supplier.Name)
	if supplier.Name == "" {
		return nil, NewSupplyError(ErrSupplierNameRequired, apiErrors.ErrMissingRequiredData, "")
	}

	existing, err := s.supplierRepo.GetByName(ctx, supplier.Name)
	if err != nil {
		return nil, NewSupplyError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar fornecedor")
	}
	if existing != nil {
		return nil, NewSupplyError(ErrSupplierAlreadyExists, apiErrors.ErrResourceConflict, supplier.Name)
	}

	supplier.Active = true
	err = s.supplierRepo.Create(ctx, supplier)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, NewSupplyError(ErrSupplierAlreadyExists, apiErrors.ErrResourceConflict, supplier.Name)
	}
	if err != nil {
		return nil, NewSupplyError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar fornecedor")
	}

	logrus.WithFields(logrus.Fields{
		"supplier_id":   supplier.ID,
		"supplier_name": supplier.Name,
	}).Info("Fornecedor criado")

	return supplier, nil
}

func (s *Service) GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewSupplyErrorWithID(err, apiErrors.ErrDatabaseOperation, id, "Erro ao buscar fornecedor")
	}
	if supplier == nil {
		return nil, NewSupplyErrorWithID(ErrSupplierNotFound, apiErrors.ErrResourceNotFound, id, "")
	}
	return supplier, nil
}

func (s *Service) ListSuppliers(ctx context.Context, activeOnly bool) ([]*domain.Supplier, error) {
	var (
		suppliers []*domain.Supplier
		err       error
	)
	if activeOnly {
		suppliers, err = s.supplierRepo.ListActive(ctx)
	} else {
		suppliers, err = s.supplierRepo.List(ctx)
	}
	if err != nil {
		return nil, NewSupplyError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar fornecedores")
	}
	return suppliers, nil
}

func (s *Service) UpdateSupplier(ctx context.Context, supplier *domain.Supplier) error {
	supplier.Name = strings.TrimSpace(supplier.Name)
	if supplier.Name == "" {
		return NewSupplyErrorWithID(ErrSupplierNameRequired, apiErrors.ErrMissingRequiredData, supplier.ID, "")
	}

	if _, err := s.GetSupplier(ctx, supplier.ID); err != nil {
		return err
	}

	err := s.supplierRepo.Update(ctx, supplier)
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return NewSupplyErrorWithID(ErrSupplierAlreadyExists, apiErrors.ErrResourceConflict, supplier.ID, supplier.Name)
	case errors.Is(err, repository.ErrNotFound):
		return NewSupplyErrorWithID(ErrSupplierNotFound, apiErrors.ErrResourceNotFound, supplier.ID, "")
	case err != nil:
		return NewSupplyErrorWithID(err, apiErrors.ErrDatabaseOperation, supplier.ID, "Erro ao atualizar fornecedor")
	}

	return nil
}

// DeactivateSupplier faz a exclusão lógica; as despesas antigas continuam ligadas ao fornecedor
func (s *Service) DeactivateSupplier(ctx context.Context, id int64) error {
	err := s.supplierRepo.Deactivate(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NewSupplyErrorWithID(ErrSupplierNotFound, apiErrors.ErrResourceNotFound, id, "")
	}
	if err != nil {
		return NewSupplyErrorWithID(err, apiErrors.ErrDatabaseOperation, id, "Erro ao desativar fornecedor")
	}

	logrus.WithField("supplier_id", id).Info("Fornecedor desativado")
	return nil
}

func (s *Service) SearchSuppliers(ctx context.Context, term string) ([]*domain.Supplier, error) {
	suppliers, err := s.supplierRepo.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, NewSupplyError(err, apiErrors.ErrDatabaseOperation, "Erro ao pesquisar fornecedores")
	}
	return suppliers, nil
}

func (s *Service) CreatePurchase(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	if err := s.validatePurchase(ctx, purchase); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, NewSupplyError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar despesa")
	}

	logrus.WithFields(logrus.Fields{
		"purchase_id": purchase.ID,
		"supplier_id": purchase.SupplierID,
		"total":       purchase.Total(),
	}).Info("Despesa registrada")

	return purchase, nil
}

func (s *Service) GetPurchase(ctx context.Context, id int64) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewSupplyErrorWithID(err, apiErrors.ErrDatabaseOperation, id, "Erro ao buscar despesa")
	}
	if purchase == nil {
		return nil, NewSupplyErrorWithID(ErrPurchaseNotFound, apiErrors.ErrResourceNotFound, id, "")
	}
	return purchase, nil
}

func (s *Service) UpdatePurchase(ctx context.Context, purchase *domain.Purchase) error {
	if err := s.validatePurchase(ctx, purchase); err != nil {
		return err
	}

	err := s.purchaseRepo.Update(ctx, purchase)
	if errors.Is(err, repository.ErrNotFound) {
		return NewSupplyErrorWithID(ErrPurchaseNotFound, apiErrors.ErrResourceNotFound, purchase.ID, "")
	}
	if err != nil {
		return NewSupplyErrorWithID(err, apiErrors.ErrDatabaseOperation, purchase.ID, "Erro ao atualizar despesa")
	}
	return nil
}

func (s *Service) DeletePurchase(ctx context.Context, id int64) error {
	err := s.purchaseRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NewSupplyErrorWithID(ErrPurchaseNotFound, apiErrors.ErrResourceNotFound, id, "")
	}
	if err != nil {
		return NewSupplyErrorWithID(err, apiErrors.ErrDatabaseOperation, id, "Erro ao excluir despesa")
	}

	logrus.WithField("purchase_id", id).Info("Despesa excluída")
	return nil
}

func (s *Service) ListPurchasesByDate(ctx context.Context, date time.Time) ([]*domain.Purchase, error) {
	purchases, err := s.purchaseRepo.GetByDate(ctx, utils.Day(date))
	if err != nil {
		return nil, NewSupplyError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar despesas do dia")
	}
	return purchases, nil
}

func (s *Service) ListPurchasesByRange(ctx context.Context, dateRange domain.DateRange) ([]*domain.Purchase, error) {
	if !dateRange.Valid() {
		return nil, NewSupplyError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, "")
	}

	purchases, err := s.purchaseRepo.GetByDateRange(ctx, utils.Day(dateRange.Start), utils.Day(dateRange.End))
	if err != nil {
		return nil, NewSupplyError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar despesas do período")
	}
	return purchases, nil
}

func (s *Service) ListPurchasesBySupplier(ctx context.Context, supplierID int64, limit uint64) ([]*domain.Purchase, error) {
	if _, err := s.GetSupplier(ctx, supplierID); err != nil {
		return nil, err
	}

	if limit == 0 {
		limit = defaultSupplierPurchasesLimit
	}

	purchases, err := s.purchaseRepo.GetBySupplier(ctx, supplierID, limit)
	if err != nil {
		return nil, NewSupplyErrorWithID(err, apiErrors.ErrDatabaseOperation, supplierID, "Erro ao listar despesas do fornecedor")
	}
	return purchases, nil
}

func (s *Service) SearchPurchases(ctx context.Context, term string) ([]*domain.Purchase, error) {
	purchases, err := s.purchaseRepo.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, NewSupplyError(err, apiErrors.ErrDatabaseOperation, "Erro ao pesquisar despesas")
	}
	return purchases, nil
}

func (s *Service) GetPurchaseTotals(ctx context.Context, dateRange domain.DateRange) (*domain.PurchaseTotals, error) {
	if !dateRange.Valid() {
		return nil, NewSupplyError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, "")
	}

	totals, err := s.purchaseRepo.GetTotalsByDateRange(ctx, utils.Day(dateRange.Start), utils.Day(dateRange.End))
	if err != nil {
		return nil, NewSupplyError(err, apiErrors.ErrDatabaseOperation, "Erro ao calcular totais de despesas")
	}
	return totals, nil
}

// validatePurchase exige data, fornecedor existente, descrição e ao menos um valor
func (s *Service) validatePurchase(ctx context.Context, purchase *domain.Purchase) error {
	if purchase.Date.IsZero() {
		return NewSupplyError(ErrPurchaseDateRequired, apiErrors.ErrMissingRequiredData, "")
	}
	purchase.Date = utils.Day(purchase.Date)

	purchase.Description = strings.TrimSpace(purchase.Description)
	if purchase.Description == "" {
		return NewSupplyError(ErrDescriptionRequired, apiErrors.ErrMissingRequiredData, "")
	}

	for _, v := range []float64{purchase.CashPayment, purchase.BankPayment} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewSupplyError(ErrNonFiniteAmount, apiErrors.ErrInvalidFormat, "")
		}
	}
	if purchase.CashPayment == 0 && purchase.BankPayment == 0 {
		return NewSupplyError(ErrAmountRequired, apiErrors.ErrMissingRequiredData, "")
	}

	supplier, err := s.GetSupplier(ctx, purchase.SupplierID)
	if err != nil {
		return err
	}
	purchase.SupplierName = supplier.Name

	return nil
}
