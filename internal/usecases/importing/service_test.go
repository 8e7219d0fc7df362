package importing

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/repository/mocks"
	"github.com/vfg2006/gestionale-negozio-api/internal/config"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	saleRepo     *mocks.MockSaleRepository
	supplierRepo *mocks.MockSupplierRepository
	purchaseRepo *mocks.MockPurchaseRepository
	service      Importer
}

func newTestDeps(ctrl *gomock.Controller) *testDeps {
	deps := &testDeps{
		saleRepo:     mocks.NewMockSaleRepository(ctrl),
		supplierRepo: mocks.NewMockSupplierRepository(ctrl),
		purchaseRepo: mocks.NewMockPurchaseRepository(ctrl),
	}
	deps.service = NewService(deps.saleRepo, deps.supplierRepo, deps.purchaseRepo, &config.Config{
		Fees: config.Fees{CardPercent: 1.95, CardFixed: 0.15, SatispayPercent: 1.00},
	})
	return deps
}

func TestService_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps := newTestDeps(ctrl)

	csvData := "Data;Incasso Contante;Lordo Bancomat\n" +
		"01/03/2024;100,00;50,00\n02/03/2024;1;1\n03/03/2024;1;1\n04/03/2024;1;1\n05/03/2024;1;1\n06/03/2024;1;1\n"

	preview, err := deps.service.Preview(domain.ImportTypeSales, strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, ";", preview.Delimiter)
	assert.Equal(t, []string{"Data", "Incasso Contante", "Lordo Bancomat"}, preview.Headers)
	assert.Len(t, preview.Rows, 5)
	assert.Len(t, preview.Fields, 11)
	assert.Equal(t, map[string]int{"date": 0, "cash_income": 1, "card_gross": 2}, preview.Mapping)

	_, err = deps.service.Preview("clienti", strings.NewReader(csvData))
	assert.ErrorIs(t, err, ErrUnknownImportType)
}

func TestService_ImportSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps := newTestDeps(ctrl)

	csvData := "date,cash_income,card_gross,card_percent_fee,notes\n" +
		"2024-03-01,120.50,200,,apertura\n" +
		"02/03/2024,abc,0,,\n" +
		",10,0,,\n" +
		"04-03-2024,\"1.234,50\",100,2.5,\n"

	var saved []*domain.Sale
	deps.saleRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sale *domain.Sale) error {
			saved = append(saved, sale)
			return nil
		}).
		Times(2)

	summary, err := deps.service.Import(context.Background(), domain.ImportTypeSales, strings.NewReader(csvData), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 2, summary.Failed)
	require.Len(t, summary.Errors, 2)
	assert.Equal(t, 2, summary.Errors[0].Row)
	assert.Contains(t, summary.Errors[0].Message, "cash_income")
	assert.Equal(t, 3, summary.Errors[1].Row)

	require.Len(t, saved, 2)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), saved[0].Date)
	assert.Equal(t, 120.50, saved[0].CashIncome)
	assert.Equal(t, 1.95, saved[0].CardPercentFee)
	assert.Equal(t, 0.15, saved[0].CardFixedFee)
	assert.Equal(t, 1.00, saved[0].SatispayPercentFee)
	assert.Equal(t, "apertura", saved[0].Notes)

	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), saved[1].Date)
	assert.Equal(t, 1234.50, saved[1].CashIncome)
	assert.Equal(t, 2.5, saved[1].CardPercentFee)
}

func TestService_ImportSuppliers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps := newTestDeps(ctrl)

	csvData := "Nome Fornitore,Note\nAIA,esistente\nBianchi,nuovo\n,senza nome\n"

	deps.supplierRepo.EXPECT().GetByName(gomock.Any(), "AIA").Return(&domain.Supplier{ID: 1, Name: "AIA"}, nil)
	deps.supplierRepo.EXPECT().GetByName(gomock.Any(), "Bianchi").Return(nil, nil)
	deps.supplierRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, supplier *domain.Supplier) error {
			assert.Equal(t, "Bianchi", supplier.Name)
			assert.Equal(t, "nuovo", supplier.Notes)
			assert.True(t, supplier.Active)
			return nil
		})

	summary, err := deps.service.Import(context.Background(), domain.ImportTypeSuppliers, strings.NewReader(csvData), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 3, summary.Errors[0].Row)
}

func TestService_ImportPurchases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps := newTestDeps(ctrl)

	csvData := "fornitore|quando|contanti|banca|cosa\n" +
		"GranTerre|2024-03-05|30|0|Farina\n" +
		"Nuovo|2024-03-06||12,40|Olio\n" +
		"MIA|2024-03-07|x|0|Errore\n"

	mapping := map[string]int{
		"supplier_name": 0,
		"date":          1,
		"cash_payment":  2,
		"bank_payment":  3,
		"description":   4,
	}

	deps.supplierRepo.EXPECT().GetOrCreate(gomock.Any(), "GranTerre").Return(&domain.Supplier{ID: 2, Name: "GranTerre"}, nil)
	deps.supplierRepo.EXPECT().GetOrCreate(gomock.Any(), "Nuovo").Return(&domain.Supplier{ID: 9, Name: "Nuovo"}, nil)

	var saved []*domain.Purchase
	deps.purchaseRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, purchase *domain.Purchase) error {
			saved = append(saved, purchase)
			return nil
		}).
		Times(2)

	summary, err := deps.service.Import(context.Background(), domain.ImportTypePurchases, strings.NewReader(csvData), mapping)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 1, summary.Failed)

	require.Len(t, saved, 2)
	assert.Equal(t, int64(2), saved[0].SupplierID)
	assert.Equal(t, "Farina", saved[0].Description)
	assert.Equal(t, 12.40, saved[1].BankPayment)
	assert.Equal(t, 0.0, saved[1].CashPayment)
}

func TestService_Import_ErrosGerais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps := newTestDeps(ctrl)

	tests := []struct {
		name       string
		importType domain.ImportType
		data       string
		mapping    map[string]int
		expected   error
		code       string
	}{
		{
			name:       "Arquivo vazio",
			importType: domain.ImportTypeSales,
			data:       "",
			expected:   ErrEmptyFile,
			code:       apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "Coluna obrigatória ausente",
			importType: domain.ImportTypePurchases,
			data:       "date,description\n2024-03-01,x\n",
			expected:   ErrMissingColumn,
			code:       apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "Mapeamento fora do cabeçalho",
			importType: domain.ImportTypeSuppliers,
			data:       "name\nAIA\n",
			mapping:    map[string]int{"name": 4},
			expected:   ErrInvalidMapping,
			code:       apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := deps.service.Import(context.Background(), tt.importType, strings.NewReader(tt.data), tt.mapping)
			assert.Nil(t, summary)
			assert.ErrorIs(t, err, tt.expected)

			var importErr *ImportError
			require.True(t, errors.As(err, &importErr))
			assert.Equal(t, tt.code, importErr.Code)
		})
	}
}

func TestService_Import_ValorNaoFinito(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	deps := newTestDeps(ctrl)

	csvData := "date,cash_income\n2024-03-01,1e400\n2024-03-02,10\n"

	deps.saleRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sale *domain.Sale) error {
			assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), sale.Date)
			return nil
		})

	summary, err := deps.service.Import(context.Background(), domain.ImportTypeSales, strings.NewReader(csvData), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, 1, summary.Errors[0].Row)
	assert.Contains(t, summary.Errors[0].Message, "cash_income")
}

func TestService_Import_LimiteDeTamanho(t *testing.T) {
	csvData := "date,cash_income\n2024-03-01,123456\n"

	tests := []struct {
		name     string
		limit    int64
		setup    func(deps *testDeps)
		validate func(t *testing.T, summary *domain.ImportSummary, err error)
	}{
		{
			name:  "Arquivo acima do limite é recusado sem gravar",
			limit: int64(len(csvData)) - 4,
			validate: func(t *testing.T, summary *domain.ImportSummary, err error) {
				assert.Nil(t, summary)
				assert.ErrorIs(t, err, ErrFileTooLarge)

				var importErr *ImportError
				require.True(t, errors.As(err, &importErr))
				assert.Equal(t, apiErrors.ErrPayloadTooLarge, importErr.Code)
			},
		},
		{
			name:  "Arquivo exatamente no limite é importado inteiro",
			limit: int64(len(csvData)),
			setup: func(deps *testDeps) {
				deps.saleRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sale *domain.Sale) error {
						assert.Equal(t, 123456.0, sale.CashIncome)
						return nil
					})
			},
			validate: func(t *testing.T, summary *domain.ImportSummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, summary.Imported)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			deps := newTestDeps(ctrl)
			deps.service = NewService(deps.saleRepo, deps.supplierRepo, deps.purchaseRepo, &config.Config{
				Storage: config.Storage{UploadMaxBytes: tt.limit},
			})

			if tt.setup != nil {
				tt.setup(deps)
			}

			summary, err := deps.service.Import(context.Background(), domain.ImportTypeSales, strings.NewReader(csvData), nil)
			tt.validate(t, summary, err)
		})
	}
}
