package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gestionale-negozio-api/internal/api/handler"
	"github.com/vfg2006/gestionale-negozio-api/internal/config"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/authenticating"
	authMocks "github.com/vfg2006/gestionale-negozio-api/internal/usecases/authenticating/mocks"
	importMocks "github.com/vfg2006/gestionale-negozio-api/internal/usecases/importing/mocks"
	invoiceMocks "github.com/vfg2006/gestionale-negozio-api/internal/usecases/invoicing/mocks"
	reportMocks "github.com/vfg2006/gestionale-negozio-api/internal/usecases/reporting/mocks"
	saleMocks "github.com/vfg2006/gestionale-negozio-api/internal/usecases/selling/mocks"
	supplyMocks "github.com/vfg2006/gestionale-negozio-api/internal/usecases/supplying/mocks"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type availableOCR struct{}

func (availableOCR) IsAvailable() bool { return true }

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := authMocks.NewMockAuthenticator(ctrl)
	mockSeller := saleMocks.NewMockSeller(ctrl)

	cfg := &config.Config{
		Cors:    config.Cors{AllowedOrigins: []string{"http://localhost:5173"}},
		Storage: config.Storage{UploadMaxBytes: 1 << 20},
	}

	var h http.Handler
	require.NotPanics(t, func() {
		h = NewHandler(cfg, Services{
			Seller:         mockSeller,
			SupplyManager:  supplyMocks.NewMockSupplyManager(ctrl),
			InvoiceManager: invoiceMocks.NewMockInvoiceManager(ctrl),
			Importer:       importMocks.NewMockImporter(ctrl),
			Reporter:       reportMocks.NewMockReporter(ctrl),
			Authenticator:  mockAuth,
			OCR:            availableOCR{},
			CronJobs:       handler.CronJobServices{},
		})
	})

	operator := &domain.Claims{UserID: 5, UserRoleID: domain.RoleOperator}

	tests := []struct {
		name     string
		request  func() *http.Request
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Healthcheck é público",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
			},
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
			},
		},
		{
			name: "Rota protegida sem token - 401",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/v1/sales", nil)
			},
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
		{
			name: "Token expirado - AUTH_007",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/v1/sales", nil)
				req.Header.Set("Authorization", "Bearer expired")
				return req
			},
			setup: func() {
				mockAuth.EXPECT().ValidateToken("expired").Return(nil, authenticating.ErrExpiredToken)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)

				var apiErr apiErrors.APIError
				require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, apiErrors.ErrExpiredToken, apiErr.Code)
			},
		},
		{
			name: "Operador lista vendas",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/v1/sales?limit=5", nil)
				req.Header.Set("Authorization", "Bearer valid")
				return req
			},
			setup: func() {
				mockAuth.EXPECT().ValidateToken("valid").Return(operator, nil)
				mockSeller.EXPECT().ListSales(gomock.Any(), uint64(5), uint64(0)).Return([]*domain.Sale{}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name: "Operador em rota de administrador - 403",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
				req.Header.Set("Authorization", "Bearer valid")
				return req
			},
			setup: func() {
				mockAuth.EXPECT().ValidateToken("valid").Return(operator, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, rec.Code)
			},
		},
		{
			name: "Preflight CORS da origem liberada",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodOptions, "/v1/sales", nil)
				req.Header.Set("Origin", "http://localhost:5173")
				return req
			},
			setup: func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
				assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, tt.request())
			tt.validate(t, rec)
		})
	}
}
