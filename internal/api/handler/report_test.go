package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/reporting"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestExportPeriodReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	march := domain.DateRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		target   string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Planilha gerada - cabeçalhos de download",
			target: "/v1/reports/period/export?start=2024-03-01&end=2024-03-31",
			setup: func() {
				mockReporter.EXPECT().
					ExportPeriodReport(gomock.Any(), march, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.DateRange, w io.Writer) error {
						_, err := w.Write([]byte("PK-xlsx"))
						return err
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
				assert.Equal(t, `attachment; filename="report_2024-03-01_2024-03-31.xlsx"`, rec.Header().Get("Content-Disposition"))
				assert.Equal(t, "7", rec.Header().Get("Content-Length"))
				assert.Equal(t, "PK-xlsx", rec.Body.String())
			},
		},
		{
			name:   "Sem intervalo - VAL_002",
			target: "/v1/reports/period/export",
			setup:  func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:   "Falha ao gerar - resposta JSON, não planilha parcial",
			target: "/v1/reports/period/export?start=2024-03-01&end=2024-03-31",
			setup: func() {
				mockReporter.EXPECT().
					ExportPeriodReport(gomock.Any(), march, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.DateRange, w io.Writer) error {
						_, _ = w.Write([]byte("PK-parcial"))
						return reporting.NewReportError(reporting.ErrExport, apiErrors.ErrInternalServer, "")
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				assert.NotContains(t, rec.Body.String(), "PK-parcial")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			rec := serve(http.MethodGet, "/v1/reports/period/export", ExportPeriodReport(mockReporter), httptest.NewRequest(http.MethodGet, tt.target, nil))
			tt.validate(t, rec)
		})
	}
}

func TestGetPeriodReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	t.Run("Intervalo invertido recusado pelo serviço", func(t *testing.T) {
		mockReporter.EXPECT().
			PeriodReport(gomock.Any(), gomock.Any()).
			Return(nil, reporting.NewReportError(reporting.ErrInvalidDateRange, apiErrors.ErrInvalidRequest, ""))

		rec := serve(http.MethodGet, "/v1/reports/period", GetPeriodReport(mockReporter),
			httptest.NewRequest(http.MethodGet, "/v1/reports/period?start=2024-03-31&end=2024-03-01", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})

	t.Run("Erro de banco", func(t *testing.T) {
		mockReporter.EXPECT().
			PeriodReport(gomock.Any(), gomock.Any()).
			Return(nil, reporting.NewReportError(errors.New("timeout"), apiErrors.ErrDatabaseOperation, ""))

		rec := serve(http.MethodGet, "/v1/reports/period", GetPeriodReport(mockReporter),
			httptest.NewRequest(http.MethodGet, "/v1/reports/period?start=2024-03-01&end=2024-03-31", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Erro ao gerar relatório", decodeAPIError(t, rec).Message)
	})
}

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	fixedNow := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	originalNow := nowFunc
	nowFunc = func() time.Time { return fixedNow }
	defer func() { nowFunc = originalNow }()

	t.Run("Sem data - usa o relógio", func(t *testing.T) {
		mockReporter.EXPECT().Dashboard(gomock.Any(), fixedNow).Return(&domain.Dashboard{SalesToday: 320}, nil)

		rec := serve(http.MethodGet, "/v1/reports/dashboard", GetDashboard(mockReporter),
			httptest.NewRequest(http.MethodGet, "/v1/reports/dashboard", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Data informada", func(t *testing.T) {
		mockReporter.EXPECT().
			Dashboard(gomock.Any(), time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)).
			Return(&domain.Dashboard{}, nil)

		rec := serve(http.MethodGet, "/v1/reports/dashboard", GetDashboard(mockReporter),
			httptest.NewRequest(http.MethodGet, "/v1/reports/dashboard?date=29/02/2024", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Data inválida", func(t *testing.T) {
		rec := serve(http.MethodGet, "/v1/reports/dashboard", GetDashboard(mockReporter),
			httptest.NewRequest(http.MethodGet, "/v1/reports/dashboard?date=domani", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
