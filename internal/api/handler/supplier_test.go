package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/supplying"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/supplying/mocks"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestListSuppliers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplies := mocks.NewMockSupplyManager(ctrl)

	tests := []struct {
		name   string
		target string
		setup  func()
	}{
		{
			name:   "Padrão - apenas ativos",
			target: "/v1/suppliers",
			setup: func() {
				mockSupplies.EXPECT().ListSuppliers(gomock.Any(), true).Return([]*domain.Supplier{{ID: 1, Name: "AIA", Active: true}}, nil)
			},
		},
		{
			name:   "all=true inclui desativados",
			target: "/v1/suppliers?all=true",
			setup: func() {
				mockSupplies.EXPECT().ListSuppliers(gomock.Any(), false).Return(nil, nil)
			},
		},
		{
			name:   "Busca por nome",
			target: "/v1/suppliers?q=gran",
			setup: func() {
				mockSupplies.EXPECT().SearchSuppliers(gomock.Any(), "gran").Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			rec := serve(http.MethodGet, "/v1/suppliers", ListSuppliers(mockSupplies), httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestUpdateSupplier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplies := mocks.NewMockSupplyManager(ctrl)

	t.Run("Atualiza e devolve o registro salvo", func(t *testing.T) {
		gomock.InOrder(
			mockSupplies.EXPECT().
				UpdateSupplier(gomock.Any(), &domain.Supplier{ID: 2, Name: "GranTerre", Active: false}).
				Return(nil),
			mockSupplies.EXPECT().
				GetSupplier(gomock.Any(), int64(2)).
				Return(&domain.Supplier{ID: 2, Name: "GranTerre", Active: false}, nil),
		)

		rec := serve(http.MethodPut, "/v1/suppliers/:id", UpdateSupplier(mockSupplies),
			jsonRequest(http.MethodPut, "/v1/suppliers/2", `{"name": "GranTerre", "active": false}`))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Nome duplicado - 409", func(t *testing.T) {
		mockSupplies.EXPECT().
			UpdateSupplier(gomock.Any(), gomock.Any()).
			Return(supplying.NewSupplyErrorWithID(supplying.ErrSupplierAlreadyExists, apiErrors.ErrResourceConflict, 2, "AIA"))

		rec := serve(http.MethodPut, "/v1/suppliers/:id", UpdateSupplier(mockSupplies),
			jsonRequest(http.MethodPut, "/v1/suppliers/2", `{"name": "AIA"}`))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrResourceConflict, decodeAPIError(t, rec).Code)
	})

	t.Run("Nome obrigatório", func(t *testing.T) {
		rec := serve(http.MethodPut, "/v1/suppliers/:id", UpdateSupplier(mockSupplies),
			jsonRequest(http.MethodPut, "/v1/suppliers/2", `{"notes": "sem nome"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"Name": "required"}, decodeAPIError(t, rec).Details)
	})
}

func TestGetSupplier_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplies := mocks.NewMockSupplyManager(ctrl)
	mockSupplies.EXPECT().
		GetSupplier(gomock.Any(), int64(99)).
		Return(nil, supplying.NewSupplyErrorWithID(supplying.ErrSupplierNotFound, apiErrors.ErrResourceNotFound, 99, ""))

	rec := serve(http.MethodGet, "/v1/suppliers/:id", GetSupplier(mockSupplies), httptest.NewRequest(http.MethodGet, "/v1/suppliers/99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrResourceNotFound, decodeAPIError(t, rec).Code)
}

func TestListSupplierPurchases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplies := mocks.NewMockSupplyManager(ctrl)

	t.Run("Limit é repassado", func(t *testing.T) {
		mockSupplies.EXPECT().ListPurchasesBySupplier(gomock.Any(), int64(1), uint64(10)).Return(nil, nil)

		rec := serve(http.MethodGet, "/v1/suppliers/:id/purchases", ListSupplierPurchases(mockSupplies),
			httptest.NewRequest(http.MethodGet, "/v1/suppliers/1/purchases?limit=10", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Sem limit devolve tudo", func(t *testing.T) {
		mockSupplies.EXPECT().ListPurchasesBySupplier(gomock.Any(), int64(1), uint64(0)).Return(nil, nil)

		rec := serve(http.MethodGet, "/v1/suppliers/:id/purchases", ListSupplierPurchases(mockSupplies),
			httptest.NewRequest(http.MethodGet, "/v1/suppliers/1/purchases", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCreatePurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplies := mocks.NewMockSupplyManager(ctrl)

	tests := []struct {
		name     string
		body     string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Compra válida - 201",
			body: `{"date": "01/03/2024", "supplier_id": 1, "description": "Frutta", "cash_payment": 45.5}`,
			setup: func() {
				mockSupplies.EXPECT().
					CreatePurchase(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
						assert.True(t, purchase.Date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
						assert.Equal(t, 45.5, purchase.CashPayment)
						purchase.ID = 11
						return purchase, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)

				var purchase domain.Purchase
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &purchase))
				assert.Equal(t, int64(11), purchase.ID)
			},
		},
		{
			name:  "Campos obrigatórios ausentes",
			body:  `{"cash_payment": 10}`,
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, map[string]any{"Date": "required", "SupplierID": "required", "Description": "required"}, decodeAPIError(t, rec).Details)
			},
		},
		{
			name: "Sem valores - recusado pelo serviço",
			body: `{"date": "2024-03-01", "supplier_id": 1, "description": "Frutta"}`,
			setup: func() {
				mockSupplies.EXPECT().
					CreatePurchase(gomock.Any(), gomock.Any()).
					Return(nil, supplying.NewSupplyError(supplying.ErrAmountRequired, apiErrors.ErrMissingRequiredData, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, supplying.ErrAmountRequired.Error(), decodeAPIError(t, rec).Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			rec := serve(http.MethodPost, "/v1/purchases", CreatePurchase(mockSupplies), jsonRequest(http.MethodPost, "/v1/purchases", tt.body))
			tt.validate(t, rec)
		})
	}
}

func TestListPurchases_DefaultsToToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplies := mocks.NewMockSupplyManager(ctrl)

	originalNow := nowFunc
	nowFunc = func() time.Time { return time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC) }
	defer func() { nowFunc = originalNow }()

	mockSupplies.EXPECT().
		ListPurchasesByDate(gomock.Any(), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)).
		Return([]*domain.Purchase{}, nil)

	rec := serve(http.MethodGet, "/v1/purchases", ListPurchases(mockSupplies), httptest.NewRequest(http.MethodGet, "/v1/purchases", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetPurchaseTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSupplies := mocks.NewMockSupplyManager(ctrl)
	mockSupplies.EXPECT().
		GetPurchaseTotals(gomock.Any(), gomock.Any()).
		Return(&domain.PurchaseTotals{Cash: 100, Bank: 50.25, Total: 150.25}, nil)

	rec := serve(http.MethodGet, "/v1/reports/purchase-totals", GetPurchaseTotals(mockSupplies),
		httptest.NewRequest(http.MethodGet, "/v1/reports/purchase-totals?start=2024-03-01&end=2024-03-31", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cash": 100, "bank": 50.25, "total": 150.25}`, rec.Body.String())
}
