package supplying

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/repository"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/repository/mocks"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestService_CreateSupplier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplierRepo := mocks.NewMockSupplierRepository(ctrl)
	service := NewService(mockSupplierRepo, mocks.NewMockPurchaseRepository(ctrl))

	tests := []struct {
		name     string
		supplier *domain.Supplier
		setup    func()
		validate func(t *testing.T, supplier *domain.Supplier, err error)
	}{
		{
			name:     "Fornecedor novo - nome é normalizado e fica ativo",
			supplier: &domain.Supplier{Name: "  Ortofrutta Bianchi "},
			setup: func() {
				mockSupplierRepo.EXPECT().GetByName(gomock.Any(), "Ortofrutta Bianchi").Return(nil, nil)
				mockSupplierRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, supplier *domain.Supplier) error {
						supplier.ID = 4
						return nil
					})
			},
			validate: func(t *testing.T, supplier *domain.Supplier, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(4), supplier.ID)
				assert.Equal(t, "Ortofrutta Bianchi", supplier.Name)
				assert.True(t, supplier.Active)
			},
		},
		{
			name:     "Nome já cadastrado - deve retornar conflito",
			supplier: &domain.Supplier{Name: "AIA"},
			setup: func() {
				mockSupplierRepo.EXPECT().GetByName(gomock.Any(), "AIA").Return(&domain.Supplier{ID: 1, Name: "AIA"}, nil)
			},
			validate: func(t *testing.T, supplier *domain.Supplier, err error) {
				assert.Nil(t, supplier)
				assert.ErrorIs(t, err, ErrSupplierAlreadyExists)

				var supplyErr *SupplyError
				require.ErrorAs(t, err, &supplyErr)
				assert.Equal(t, apiErrors.ErrResourceConflict, supplyErr.Code)
			},
		},
		{
			name:     "Corrida na criação - violação de unicidade vira conflito",
			supplier: &domain.Supplier{Name: "MIA"},
			setup: func() {
				mockSupplierRepo.EXPECT().GetByName(gomock.Any(), "MIA").Return(nil, nil)
				mockSupplierRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)
			},
			validate: func(t *testing.T, supplier *domain.Supplier, err error) {
				assert.ErrorIs(t, err, ErrSupplierAlreadyExists)
			},
		},
		{
			name:     "Nome vazio - deve falhar",
			supplier: &domain.Supplier{Name: "   "},
			setup:    func() {},
			validate: func(t *testing.T, supplier *domain.Supplier, err error) {
				assert.ErrorIs(t, err, ErrSupplierNameRequired)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			supplier, err := service.CreateSupplier(context.Background(), tt.supplier)
			tt.validate(t, supplier, err)
		})
	}
}

func TestService_DeactivateSupplier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplierRepo := mocks.NewMockSupplierRepository(ctrl)
	service := NewService(mockSupplierRepo, mocks.NewMockPurchaseRepository(ctrl))

	mockSupplierRepo.EXPECT().Deactivate(gomock.Any(), int64(2)).Return(nil)
	assert.NoError(t, service.DeactivateSupplier(context.Background(), 2))

	mockSupplierRepo.EXPECT().Deactivate(gomock.Any(), int64(99)).Return(repository.ErrNotFound)
	assert.ErrorIs(t, service.DeactivateSupplier(context.Background(), 99), ErrSupplierNotFound)
}

func TestService_CreatePurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplierRepo := mocks.NewMockSupplierRepository(ctrl)
	mockPurchaseRepo := mocks.NewMockPurchaseRepository(ctrl)
	service := NewService(mockSupplierRepo, mockPurchaseRepo)

	day := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		purchase *domain.Purchase
		setup    func()
		validate func(t *testing.T, purchase *domain.Purchase, err error)
	}{
		{
			name: "Despesa válida - data sem horário e nome do fornecedor preenchido",
			purchase: &domain.Purchase{
				Date:        day,
				SupplierID:  1,
				Description: "Frutta e verdura",
				CashPayment: 30,
				BankPayment: 14.95,
			},
			setup: func() {
				mockSupplierRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.Supplier{ID: 1, Name: "AIA"}, nil)
				mockPurchaseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, purchase *domain.Purchase, err error) {
				require.NoError(t, err)
				assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), purchase.Date)
				assert.Equal(t, "AIA", purchase.SupplierName)
				assert.InDelta(t, 44.95, purchase.Total(), 1e-9)
			},
		},
		{
			name: "Fornecedor inexistente - deve retornar não encontrado",
			purchase: &domain.Purchase{
				Date:        day,
				SupplierID:  42,
				Description: "Pane",
				CashPayment: 5,
			},
			setup: func() {
				mockSupplierRepo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)
			},
			validate: func(t *testing.T, purchase *domain.Purchase, err error) {
				assert.ErrorIs(t, err, ErrSupplierNotFound)

				var supplyErr *SupplyError
				require.ErrorAs(t, err, &supplyErr)
				assert.Equal(t, apiErrors.ErrResourceNotFound, supplyErr.Code)
			},
		},
		{
			name: "Sem valores - deve falhar",
			purchase: &domain.Purchase{
				Date:        day,
				SupplierID:  1,
				Description: "Vuota",
			},
			setup: func() {},
			validate: func(t *testing.T, purchase *domain.Purchase, err error) {
				assert.ErrorIs(t, err, ErrAmountRequired)
			},
		},
		{
			name: "Sem descrição - deve falhar",
			purchase: &domain.Purchase{
				Date:        day,
				SupplierID:  1,
				CashPayment: 10,
			},
			setup: func() {},
			validate: func(t *testing.T, purchase *domain.Purchase, err error) {
				assert.ErrorIs(t, err, ErrDescriptionRequired)
			},
		},
		{
			name: "Erro no banco ao salvar",
			purchase: &domain.Purchase{
				Date:        day,
				SupplierID:  1,
				Description: "Latte",
				BankPayment: 20,
			},
			setup: func() {
				mockSupplierRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.Supplier{ID: 1, Name: "AIA"}, nil)
				mockPurchaseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
			},
			validate: func(t *testing.T, purchase *domain.Purchase, err error) {
				var supplyErr *SupplyError
				require.ErrorAs(t, err, &supplyErr)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, supplyErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			purchase, err := service.CreatePurchase(context.Background(), tt.purchase)
			tt.validate(t, purchase, err)
		})
	}
}

func TestService_ListPurchasesBySupplier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplierRepo := mocks.NewMockSupplierRepository(ctrl)
	mockPurchaseRepo := mocks.NewMockPurchaseRepository(ctrl)
	service := NewService(mockSupplierRepo, mockPurchaseRepo)

	mockSupplierRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&domain.Supplier{ID: 1, Name: "AIA"}, nil)
	mockPurchaseRepo.EXPECT().GetBySupplier(gomock.Any(), int64(1), uint64(defaultSupplierPurchasesLimit)).Return([]*domain.Purchase{{ID: 9}}, nil)

	purchases, err := service.ListPurchasesBySupplier(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, purchases, 1)
}

func TestService_GetPurchaseTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPurchaseRepo := mocks.NewMockPurchaseRepository(ctrl)
	service := NewService(mocks.NewMockSupplierRepository(ctrl), mockPurchaseRepo)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	_, err := service.GetPurchaseTotals(context.Background(), domain.DateRange{Start: end, End: start})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	mockPurchaseRepo.EXPECT().GetTotalsByDateRange(gomock.Any(), start, end).Return(&domain.PurchaseTotals{Cash: 10, Bank: 5, Total: 15}, nil)
	totals, err := service.GetPurchaseTotals(context.Background(), domain.DateRange{Start: start, End: end})
	require.NoError(t, err)
	assert.Equal(t, 15.0, totals.Total)
}
