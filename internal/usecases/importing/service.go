package importing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/repository"
	"github.com/vfg2006/gestionale-negozio-api/internal/config"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"github.com/vfg2006/gestionale-negozio-api/pkg/utils"
)

const previewRows = 5

type Importer interface {
	Preview(importType domain.ImportType, content io.Reader) (*domain.ImportPreview, error)
	Import(ctx context.Context, importType domain.ImportType, content io.Reader, mapping map[string]int) (*domain.ImportSummary, error)
}

type Service struct {
	saleRepo     repository.SaleRepository
	supplierRepo repository.SupplierRepository
	purchaseRepo repository.PurchaseRepository
	cfg          *config.Config
}

func NewService(
	saleRepo repository.SaleRepository,
	supplierRepo repository.SupplierRepository,
	purchaseRepo repository.PurchaseRepository,
	cfg *config.Config,
) Importer {
	return &Service{
		saleRepo:     saleRepo,
		supplierRepo: supplierRepo,
		purchaseRepo: purchaseRepo,
		cfg:          cfg,
	}
}

// Preview mostra cabeçalho, primeiras linhas e o mapeamento automático sugerido
func (s *Service) Preview(importType domain.ImportType, content io.Reader) (*domain.ImportPreview, error) {
	fields, ok := Fields(importType)
	if !ok {
		return nil, NewImportError(ErrUnknownImportType, apiErrors.ErrInvalidRequest, string(importType))
	}

	records, delim, err := s.read(content)
	if err != nil {
		return nil, err
	}

	headers := records[0]
	rows := records[1:]
	if len(rows) > previewRows {
		rows = rows[:previewRows]
	}

	return &domain.ImportPreview{
		Delimiter: string(delim),
		Headers:   headers,
		Rows:      rows,
		Fields:    fields,
		Mapping:   autoMapping(headers, fields),
	}, nil
}

// Import grava linha a linha. Uma linha inválida é contada em Failed e não interrompe as demais.
// Sem mapeamento, as colunas são associadas pelo nome do cabeçalho.
func (s *Service) Import(ctx context.Context, importType domain.ImportType, content io.Reader, mapping map[string]int) (*domain.ImportSummary, error) {
	fields, ok := Fields(importType)
	if !ok {
		return nil, NewImportError(ErrUnknownImportType, apiErrors.ErrInvalidRequest, string(importType))
	}

	records, _, err := s.read(content)
	if err != nil {
		return nil, err
	}

	headers := records[0]
	if len(mapping) == 0 {
		mapping = autoMapping(headers, fields)
	}
	if err := validateMapping(mapping, fields, len(headers)); err != nil {
		return nil, err
	}

	summary := &domain.ImportSummary{
		Type:   importType,
		Errors: []domain.ImportRowError{},
	}

	for i, record := range records[1:] {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		row := i + 1
		if err := s.importRow(ctx, importType, record, mapping); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, domain.ImportRowError{Row: row, Message: err.Error()})
			continue
		}
		summary.Imported++
	}

	logrus.WithFields(logrus.Fields{
		"import_type": importType,
		"imported":    summary.Imported,
		"failed":      summary.Failed,
	}).Info("Importação CSV concluída")

	return summary, nil
}

func (s *Service) read(content io.Reader) ([][]string, rune, error) {
	limit := s.cfg.Storage.UploadMaxBytes
	if limit > 0 {
		content = io.LimitReader(content, limit+1)
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return nil, 0, NewImportError(err, apiErrors.ErrInvalidRequest, "Erro ao ler arquivo")
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, 0, NewImportError(ErrFileTooLarge, apiErrors.ErrPayloadTooLarge, fmt.Sprintf("limite de %d bytes", limit))
	}

	records, delim, err := readRecords(data)
	if errors.Is(err, ErrEmptyFile) {
		return nil, delim, NewImportError(ErrEmptyFile, apiErrors.ErrMissingRequiredData, "")
	}
	if err != nil {
		return nil, delim, NewImportError(ErrMalformedCSV, apiErrors.ErrInvalidFormat, err.Error())
	}

	return records, delim, nil
}

func validateMapping(mapping map[string]int, fields []domain.ImportField, columns int) error {
	for _, field := range fields {
		idx, ok := mapping[field.Key]
		if !ok {
			if field.Required {
				return NewImportError(ErrMissingColumn, apiErrors.ErrMissingRequiredData, field.Label)
			}
			continue
		}
		if idx < 0 || idx >= columns {
			return NewImportError(ErrInvalidMapping, apiErrors.ErrInvalidRequest, field.Key)
		}
	}
	return nil
}

func (s *Service) importRow(ctx context.Context, importType domain.ImportType, record []string, mapping map[string]int) error {
	switch importType {
	case domain.ImportTypeSales:
		return s.importSale(ctx, record, mapping)
	case domain.ImportTypeSuppliers:
		return s.importSupplier(ctx, record, mapping)
	case domain.ImportTypePurchases:
		return s.importPurchase(ctx, record, mapping)
	}
	return ErrUnknownImportType
}

func (s *Service) importSale(ctx context.Context, record []string, mapping map[string]int) error {
	date, err := parseDateCell(record, mapping)
	if err != nil {
		return err
	}

	p := amountParser{record: record, mapping: mapping}
	sale := &domain.Sale{
		Date:               date,
		StartCapital:       p.amount("start_capital", 0),
		CashIncome:         p.amount("cash_income", 0),
		CoinIncome:         p.amount("coin_income", 0),
		CardGross:          p.amount("card_gross", 0),
		CardPercentFee:     p.amount("card_percent_fee", s.cfg.Fees.CardPercent),
		CardFixedFee:       p.amount("card_fixed_fee", s.cfg.Fees.CardFixed),
		SatispayGross:      p.amount("satispay_gross", 0),
		SatispayPercentFee: p.amount("satispay_percent_fee", s.cfg.Fees.SatispayPercent),
		SatispayFixedFee:   p.amount("satispay_fixed_fee", s.cfg.Fees.SatispayFixed),
		Notes:              cell(record, mapping, "notes"),
	}
	if p.err != nil {
		return p.err
	}

	if err := s.saleRepo.Upsert(ctx, sale); err != nil {
		return fmt.Errorf("erro ao salvar venda: %w", err)
	}
	return nil
}

// importSupplier cria o fornecedor apenas se o nome ainda não existe
func (s *Service) importSupplier(ctx context.Context, record []string, mapping map[string]int) error {
	name := cell(record, mapping, "name")
	if name == "" {
		return fmt.Errorf("nome do fornecedor ausente")
	}

	existing, err := s.supplierRepo.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("erro ao consultar fornecedor: %w", err)
	}
	if existing != nil {
		return nil
	}

	supplier := &domain.Supplier{
		Name:   name,
		Active: true,
		Notes:  cell(record, mapping, "notes"),
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil && !errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("erro ao criar fornecedor: %w", err)
	}
	return nil
}

func (s *Service) importPurchase(ctx context.Context, record []string, mapping map[string]int) error {
	date, err := parseDateCell(record, mapping)
	if err != nil {
		return err
	}

	supplierName := cell(record, mapping, "supplier_name")
	if supplierName == "" {
		return fmt.Errorf("nome do fornecedor ausente")
	}

	p := amountParser{record: record, mapping: mapping}
	cash := p.amount("cash_payment", 0)
	bank := p.amount("bank_payment", 0)
	if p.err != nil {
		return p.err
	}

	supplier, err := s.supplierRepo.GetOrCreate(ctx, supplierName)
	if err != nil {
		return fmt.Errorf("erro ao resolver fornecedor: %w", err)
	}

	purchase := &domain.Purchase{
		Date:        date,
		SupplierID:  supplier.ID,
		Description: cell(record, mapping, "description"),
		CashPayment: cash,
		BankPayment: bank,
		Notes:       cell(record, mapping, "notes"),
	}
	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return fmt.Errorf("erro ao salvar despesa: %w", err)
	}
	return nil
}

func parseDateCell(record []string, mapping map[string]int) (time.Time, error) {
	raw := cell(record, mapping, "date")
	date, err := utils.ParseDate(raw)
	if err != nil {
		return time.Time{}, err
	}
	return utils.Day(date), nil
}

// amountParser guarda o primeiro erro para que a linha inteira falhe com uma única mensagem
type amountParser struct {
	record  []string
	mapping map[string]int
	err     error
}

func (p *amountParser) amount(key string, fallback float64) float64 {
	if p.err != nil {
		return 0
	}

	raw := cell(p.record, p.mapping, key)
	if raw == "" {
		return fallback
	}

	v, err := utils.ParseAmount(raw)
	if err != nil {
		p.err = fmt.Errorf("valor inválido para %s: %q", key, raw)
		return 0
	}
	return v
}
