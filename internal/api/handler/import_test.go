package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/importing"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/importing/mocks"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const salesCSV = "data;contanti;pos\n01/03/2024;120,50;80\n"

func TestPreviewImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImporter := mocks.NewMockImporter(ctrl)

	t.Run("Prévia do CSV de vendas", func(t *testing.T) {
		mockImporter.EXPECT().
			Preview(domain.ImportTypeSales, gomock.Any()).
			DoAndReturn(func(_ domain.ImportType, content io.Reader) (*domain.ImportPreview, error) {
				data, err := io.ReadAll(content)
				require.NoError(t, err)
				assert.Equal(t, salesCSV, string(data))
				return &domain.ImportPreview{Delimiter: ";", Headers: []string{"data", "contanti", "pos"}}, nil
			})

		rec := serve(http.MethodPost, "/v1/import/:type/preview", PreviewImport(mockImporter, 1<<20),
			multipartRequest(t, "/v1/import/sales/preview", "vendite.csv", []byte(salesCSV), nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var preview domain.ImportPreview
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preview))
		assert.Equal(t, ";", preview.Delimiter)
	})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		mockImporter.EXPECT().
			Preview(domain.ImportType("clienti"), gomock.Any()).
			Return(nil, importing.NewImportError(importing.ErrUnknownImportType, apiErrors.ErrInvalidRequest, "clienti"))

		rec := serve(http.MethodPost, "/v1/import/:type/preview", PreviewImport(mockImporter, 1<<20),
			multipartRequest(t, "/v1/import/clienti/preview", "clienti.csv", []byte("a;b\n"), nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})
}

func TestRunImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImporter := mocks.NewMockImporter(ctrl)

	tests := []struct {
		name     string
		fields   map[string]string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Mapeamento explícito é repassado",
			fields: map[string]string{"mapping": `{"date": 0, "cash_income": 1, "card_gross": 2}`},
			setup: func() {
				mockImporter.EXPECT().
					Import(gomock.Any(), domain.ImportTypeSales, gomock.Any(), map[string]int{"date": 0, "cash_income": 1, "card_gross": 2}).
					Return(&domain.ImportSummary{Type: domain.ImportTypeSales, Imported: 1}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var summary domain.ImportSummary
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
				assert.Equal(t, 1, summary.Imported)
			},
		},
		{
			name:   "Sem mapeamento - o serviço usa a detecção automática",
			fields: nil,
			setup: func() {
				mockImporter.EXPECT().
					Import(gomock.Any(), domain.ImportTypeSales, gomock.Any(), gomock.Nil()).
					DoAndReturn(func(_ context.Context, _ domain.ImportType, _ io.Reader, _ map[string]int) (*domain.ImportSummary, error) {
						return &domain.ImportSummary{Type: domain.ImportTypeSales}, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "Mapeamento que não é JSON",
			fields: map[string]string{"mapping": "date=0"},
			setup:  func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:   "Coluna obrigatória ausente",
			fields: nil,
			setup: func() {
				mockImporter.EXPECT().
					Import(gomock.Any(), domain.ImportTypeSales, gomock.Any(), gomock.Nil()).
					Return(nil, importing.NewImportError(importing.ErrMissingColumn, apiErrors.ErrMissingRequiredData, "date"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, decodeAPIError(t, rec).Message, "date")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			req := multipartRequest(t, "/v1/import/sales", "vendite.csv", []byte(salesCSV), tt.fields)
			rec := serve(http.MethodPost, "/v1/import/:type", RunImport(mockImporter, 1<<20), req)
			tt.validate(t, rec)
		})
	}
}
