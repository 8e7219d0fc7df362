package selling

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/repository"
	"github.com/vfg2006/gestionale-negozio-api/internal/config"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/internal/settlement"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"github.com/vfg2006/gestionale-negozio-api/pkg/utils"
)

const dateLayout = "2006-01-02"

// DailySheet é o fechamento de um dia: a venda, os pagamentos a fornecedores e os valores calculados.
// Exists é falso quando ainda não há venda registrada e Sale traz apenas as taxas padrão.
type DailySheet struct {
	Date             time.Time                  `json:"date"`
	Exists           bool                       `json:"exists"`
	Sale             *domain.Sale               `json:"sale"`
	Result           settlement.Result          `json:"result"`
	Formatted        settlement.FormattedResult `json:"formatted"`
	SupplierPayments SupplierPayments           `json:"supplier_payments"`
	Purchases        []*domain.Purchase         `json:"purchases"`
}

// SupplierPayments separa o que foi pago aos fornecedores no dia entre caixa e banco
type SupplierPayments struct {
	Cash          float64 `json:"cash"`
	Bank          float64 `json:"bank"`
	CashFormatted string  `json:"cash_formatted"`
	BankFormatted string  `json:"bank_formatted"`
}

type Seller interface {
	GetSettlement(ctx context.Context, date time.Time) (*DailySheet, error)
	PreviewSettlement(ctx context.Context, input *domain.SaleInput) (*DailySheet, error)
	GetSale(ctx context.Context, date time.Time) (*domain.Sale, error)
	SaveSale(ctx context.Context, input *domain.SaleInput) (*domain.Sale, error)
	DeleteSale(ctx context.Context, date time.Time) error
	ListSales(ctx context.Context, limit, offset uint64) ([]*domain.Sale, error)
	ListSalesByRange(ctx context.Context, dateRange domain.DateRange) ([]*domain.Sale, error)
	SearchSales(ctx context.Context, term string) ([]*domain.Sale, error)
}

type Service struct {
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
	cfg          *config.Config
}

func NewService(saleRepo repository.SaleRepository, purchaseRepo repository.PurchaseRepository, cfg *config.Config) Seller {
	return &Service{
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		cfg:          cfg,
	}
}

// GetSettlement calcula o fechamento do dia uma única vez a partir da venda salva
func (s *Service) GetSettlement(ctx context.Context, date time.Time) (*DailySheet, error) {
	if date.IsZero() {
		return nil, NewSaleError(ErrInvalidDate, apiErrors.ErrInvalidFormat, "Data obrigatória")
	}
	day := utils.Day(date)

	sale, err := s.saleRepo.GetByDate(ctx, day)
	if err != nil {
		return nil, NewSaleErrorWithDate(err, apiErrors.ErrDatabaseOperation, day.Format(dateLayout), "Erro ao buscar venda")
	}

	exists := sale != nil
	if !exists {
		sale = s.emptySale(day)
	}

	return s.buildSheet(ctx, day, sale, exists)
}

// PreviewSettlement recalcula o fechamento com os valores ainda não salvos, aplicando
// as mesmas regras de taxas de SaveSale. Nada é gravado.
func (s *Service) PreviewSettlement(ctx context.Context, input *domain.SaleInput) (*DailySheet, error) {
	sale, existing, err := s.prepareSale(ctx, input)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		sale.ID = existing.ID
	}

	return s.buildSheet(ctx, sale.Date, sale, existing != nil)
}

func (s *Service) buildSheet(ctx context.Context, day time.Time, sale *domain.Sale, exists bool) (*DailySheet, error) {
	supplierPayments, err := s.purchaseRepo.SumByDate(ctx, day)
	if err != nil {
		return nil, NewSaleErrorWithDate(err, apiErrors.ErrDatabaseOperation, day.Format(dateLayout), "Erro ao somar pagamentos a fornecedores")
	}

	purchases, err := s.purchaseRepo.GetByDate(ctx, day)
	if err != nil {
		return nil, NewSaleErrorWithDate(err, apiErrors.ErrDatabaseOperation, day.Format(dateLayout), "Erro ao buscar despesas do dia")
	}
	if purchases == nil {
		purchases = []*domain.Purchase{}
	}

	result := settlement.Calculate(sale, supplierPayments)

	return &DailySheet{
		Date:             day,
		Exists:           exists,
		Sale:             sale,
		Result:           result,
		Formatted:        result.Format(),
		SupplierPayments: splitPayments(purchases),
		Purchases:        purchases,
	}, nil
}

func (s *Service) GetSale(ctx context.Context, date time.Time) (*domain.Sale, error) {
	day := utils.Day(date)

	sale, err := s.saleRepo.GetByDate(ctx, day)
	if err != nil {
		return nil, NewSaleErrorWithDate(err, apiErrors.ErrDatabaseOperation, day.Format(dateLayout), "Erro ao buscar venda")
	}
	if sale == nil {
		return nil, NewSaleErrorWithDate(ErrSaleNotFound, apiErrors.ErrResourceNotFound, day.Format(dateLayout), "")
	}

	return sale, nil
}

// SaveSale substitui a venda do dia inteira. Taxas omitidas mantêm as já salvas
// ou, em uma venda nova, recebem os valores padrão da configuração.
func (s *Service) SaveSale(ctx context.Context, input *domain.SaleInput) (*domain.Sale, error) {
	sale, existing, err := s.prepareSale(ctx, input)
	if err != nil {
		return nil, err
	}
	day := sale.Date

	if err := s.saleRepo.Upsert(ctx, sale); err != nil {
		return nil, NewSaleErrorWithDate(err, apiErrors.ErrDatabaseOperation, day.Format(dateLayout), "Erro ao salvar venda")
	}

	logrus.WithFields(logrus.Fields{
		"sale_id": sale.ID,
		"date":    day.Format(dateLayout),
		"created": existing == nil,
	}).Info("Venda salva")

	return sale, nil
}

func (s *Service) DeleteSale(ctx context.Context, date time.Time) error {
	day := utils.Day(date)

	err := s.saleRepo.Delete(ctx, day)
	if errors.Is(err, repository.ErrNotFound) {
		return NewSaleErrorWithDate(ErrSaleNotFound, apiErrors.ErrResourceNotFound, day.Format(dateLayout), "")
	}
	if err != nil {
		return NewSaleErrorWithDate(err, apiErrors.ErrDatabaseOperation, day.Format(dateLayout), "Erro ao excluir venda")
	}

	logrus.WithField("date", day.Format(dateLayout)).Info("Venda excluída")
	return nil
}

func (s *Service) ListSales(ctx context.Context, limit, offset uint64) ([]*domain.Sale, error) {
	sales, err := s.saleRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, NewSaleError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas")
	}
	return sales, nil
}

func (s *Service) ListSalesByRange(ctx context.Context, dateRange domain.DateRange) ([]*domain.Sale, error) {
	if !dateRange.Valid() {
		return nil, NewSaleError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, "A data final deve ser igual ou posterior à inicial")
	}

	sales, err := s.saleRepo.GetByDateRange(ctx, utils.Day(dateRange.Start), utils.Day(dateRange.End))
	if err != nil {
		return nil, NewSaleError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas do período")
	}
	return sales, nil
}

func (s *Service) SearchSales(ctx context.Context, term string) ([]*domain.Sale, error) {
	sales, err := s.saleRepo.Search(ctx, term)
	if err != nil {
		return nil, NewSaleError(err, apiErrors.ErrDatabaseOperation, "Erro ao pesquisar vendas")
	}
	return sales, nil
}

// prepareSale monta a venda a partir do que foi informado. Taxas omitidas vêm da venda
// já salva ou, se não houver, da configuração. Valores não finitos são recusados.
func (s *Service) prepareSale(ctx context.Context, input *domain.SaleInput) (sale, existing *domain.Sale, err error) {
	if input == nil || input.Date.IsZero() {
		return nil, nil, NewSaleError(ErrInvalidDate, apiErrors.ErrMissingRequiredData, "Data obrigatória")
	}
	day := utils.Day(input.Date)

	existing, err = s.saleRepo.GetByDate(ctx, day)
	if err != nil {
		return nil, nil, NewSaleErrorWithDate(err, apiErrors.ErrDatabaseOperation, day.Format(dateLayout), "Erro ao buscar venda")
	}

	base := existing
	if base == nil {
		base = s.emptySale(day)
	}

	sale = &domain.Sale{
		Date:               day,
		StartCapital:       input.StartCapital,
		CashIncome:         input.CashIncome,
		CoinIncome:         input.CoinIncome,
		CardGross:          input.CardGross,
		CardPercentFee:     valueOr(input.CardPercentFee, base.CardPercentFee),
		CardFixedFee:       valueOr(input.CardFixedFee, base.CardFixedFee),
		SatispayGross:      input.SatispayGross,
		SatispayPercentFee: valueOr(input.SatispayPercentFee, base.SatispayPercentFee),
		SatispayFixedFee:   valueOr(input.SatispayFixedFee, base.SatispayFixedFee),
		Notes:              input.Notes,
	}

	if field, ok := firstNonFinite(sale); !ok {
		return nil, nil, NewSaleErrorWithDate(ErrNonFiniteAmount, apiErrors.ErrInvalidFormat, day.Format(dateLayout), field)
	}

	return sale, existing, nil
}

func splitPayments(purchases []*domain.Purchase) SupplierPayments {
	var split SupplierPayments
	for _, p := range purchases {
		split.Cash += p.CashPayment
		split.Bank += p.BankPayment
	}
	split.CashFormatted = settlement.FormatCurrency(split.Cash)
	split.BankFormatted = settlement.FormatCurrency(split.Bank)
	return split
}

// emptySale representa um dia sem venda registrada, com as taxas padrão
func (s *Service) emptySale(day time.Time) *domain.Sale {
	return &domain.Sale{
		Date:               day,
		CardPercentFee:     s.cfg.Fees.CardPercent,
		CardFixedFee:       s.cfg.Fees.CardFixed,
		SatispayPercentFee: s.cfg.Fees.SatispayPercent,
		SatispayFixedFee:   s.cfg.Fees.SatispayFixed,
	}
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

// firstNonFinite devolve o nome do primeiro campo NaN ou infinito
func firstNonFinite(sale *domain.Sale) (string, bool) {
	fields := []struct {
		name  string
		value float64
	}{
		{"start_capital", sale.StartCapital},
		{"cash_income", sale.CashIncome},
		{"coin_income", sale.CoinIncome},
		{"card_gross", sale.CardGross},
		{"card_percent_fee", sale.CardPercentFee},
		{"card_fixed_fee", sale.CardFixedFee},
		{"satispay_gross", sale.SatispayGross},
		{"satispay_percent_fee", sale.SatispayPercentFee},
		{"satispay_fixed_fee", sale.SatispayFixedFee},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return f.name, false
		}
	}
	return "", true
}
