package invoicing

import (
	"context"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/integrator/ocr"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/repository"
	"github.com/vfg2006/gestionale-negozio-api/internal/config"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"github.com/vfg2006/gestionale-negozio-api/pkg/utils"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

// ProcessSummary resume uma rodada de OCR das faturas pendentes
type ProcessSummary struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

type InvoiceManager interface {
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, limit, offset uint64) ([]*domain.Invoice, error)
	ListInvoicesByRange(ctx context.Context, dateRange domain.DateRange) ([]*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, id int64) error
	SearchInvoices(ctx context.Context, term string) ([]*domain.Invoice, error)

	AttachFile(ctx context.Context, id int64, filename string, content io.Reader) (*domain.Invoice, error)
	OpenFile(ctx context.Context, id int64) (*os.File, *domain.Invoice, error)
	ExtractFields(text string) (*domain.InvoiceExtraction, error)
	ProcessOCR(ctx context.Context, id int64) (*domain.Invoice, *domain.InvoiceExtraction, error)
	ProcessPending(ctx context.Context, limit int) (*ProcessSummary, error)
}

type Service struct {
	invoiceRepo  repository.InvoiceRepository
	supplierRepo repository.SupplierRepository
	ocrService   ocr.OCRIntegrator
	cfg          *config.Config
	now          func() time.Time
}

func NewService(
	invoiceRepo repository.InvoiceRepository,
	supplierRepo repository.SupplierRepository,
	ocrService ocr.OCRIntegrator,
	cfg *config.Config,
) InvoiceManager {
	return &Service{
		invoiceRepo:  invoiceRepo,
		supplierRepo: supplierRepo,
		ocrService:   ocrService,
		cfg:          cfg,
		now:          time.Now,
	}
}

// CreateInvoice registra a fattura. Sem data usa o dia atual; com nome de fornecedor
// desconhecido o fornecedor é criado.
func (s *Service) CreateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	if err := s.prepare(ctx, invoice); err != nil {
		return nil, err
	}

	invoice.FilePath = ""
	invoice.OCRText = ""
	invoice.OCRStatus = domain.OCRStatusNone

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, NewInvoiceError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar fattura")
	}

	logrus.WithFields(logrus.Fields{
		"invoice_id":     invoice.ID,
		"invoice_number": invoice.InvoiceNumber,
	}).Info("Fattura registrada")

	return invoice, nil
}

func (s *Service) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewInvoiceErrorWithID(err, apiErrors.ErrDatabaseOperation, id, "Erro ao buscar fattura")
	}
	if invoice == nil {
		return nil, NewInvoiceErrorWithID(ErrInvoiceNotFound, apiErrors.ErrResourceNotFound, id, "")
	}
	return invoice, nil
}

func (s *Service) ListInvoices(ctx context.Context, limit, offset uint64) ([]*domain.Invoice, error) {
	invoices, err := s.invoiceRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, NewInvoiceError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar faturas")
	}
	return invoices, nil
}

func (s *Service) ListInvoicesByRange(ctx context.Context, dateRange domain.DateRange) ([]*domain.Invoice, error) {
	if !dateRange.Valid() {
		return nil, NewInvoiceError(errors.New("intervalo de datas inválido"), apiErrors.ErrInvalidRequest, "")
	}

	invoices, err := s.invoiceRepo.GetByDateRange(ctx, utils.Day(dateRange.Start), utils.Day(dateRange.End))
	if err != nil {
		return nil, NewInvoiceError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar faturas do período")
	}
	return invoices, nil
}

// UpdateInvoice altera apenas os dados cadastrais; arquivo e OCR são preservados
func (s *Service) UpdateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	existing, err := s.GetInvoice(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}

	if err := s.prepare(ctx, invoice); err != nil {
		return nil, err
	}

	existing.Date = invoice.Date
	existing.SupplierID = invoice.SupplierID
	existing.InvoiceNumber = invoice.InvoiceNumber
	existing.TotalAmount = invoice.TotalAmount
	existing.Notes = invoice.Notes

	if err := s.update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteInvoice remove o registro e o arquivo armazenado
func (s *Service) DeleteInvoice(ctx context.Context, id int64) error {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return err
	}

	err = s.invoiceRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NewInvoiceErrorWithID(ErrInvoiceNotFound, apiErrors.ErrResourceNotFound, id, "")
	}
	if err != nil {
		return NewInvoiceErrorWithID(err, apiErrors.ErrDatabaseOperation, id, "Erro ao excluir fattura")
	}

	if invoice.FilePath != "" {
		if err := os.Remove(s.storagePath(invoice.FilePath)); err != nil && !os.IsNotExist(err) {
			logrus.Warnf("Erro ao remover arquivo da fattura %d: %v", id, err)
		}
	}

	logrus.WithField("invoice_id", id).Info("Fattura excluída")
	return nil
}

func (s *Service) SearchInvoices(ctx context.Context, term string) ([]*domain.Invoice, error) {
	invoices, err := s.invoiceRepo.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, NewInvoiceError(err, apiErrors.ErrDatabaseOperation, "Erro ao pesquisar faturas")
	}
	return invoices, nil
}

// AttachFile grava o arquivo com nome aleatório e deixa a fattura pendente de OCR
func (s *Service) AttachFile(ctx context.Context, id int64, filename string, content io.Reader) (*domain.Invoice, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return nil, NewInvoiceErrorWithID(ErrUnsupportedFile, apiErrors.ErrInvalidFormat, id, ext)
	}

	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	storedName, err := s.store(ext, content)
	if err != nil {
		return nil, err
	}

	previous := invoice.FilePath
	invoice.FilePath = storedName
	invoice.OCRText = ""
	invoice.OCRStatus = domain.OCRStatusPending

	if err := s.update(ctx, invoice); err != nil {
		os.Remove(s.storagePath(storedName))
		return nil, err
	}

	if previous != "" && previous != storedName {
		if err := os.Remove(s.storagePath(previous)); err != nil && !os.IsNotExist(err) {
			logrus.Warnf("Erro ao remover arquivo anterior da fattura %d: %v", id, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"invoice_id": id,
		"file":       storedName,
	}).Info("Arquivo anexado à fattura")

	return invoice, nil
}

func (s *Service) OpenFile(ctx context.Context, id int64) (*os.File, *domain.Invoice, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if invoice.FilePath == "" {
		return nil, nil, NewInvoiceErrorWithID(ErrNoFileAttached, apiErrors.ErrResourceNotFound, id, "")
	}

	f, err := os.Open(s.storagePath(invoice.FilePath))
	if os.IsNotExist(err) {
		return nil, nil, NewInvoiceErrorWithID(ErrFileMissing, apiErrors.ErrResourceNotFound, id, invoice.FilePath)
	}
	if err != nil {
		return nil, nil, NewInvoiceErrorWithID(err, apiErrors.ErrInternalServer, id, "Erro ao abrir arquivo")
	}

	return f, invoice, nil
}

func (s *Service) ExtractFields(text string) (*domain.InvoiceExtraction, error) {
	if strings.TrimSpace(text) == "" {
		return nil, NewInvoiceError(ErrEmptyText, apiErrors.ErrMissingRequiredData, "")
	}

	extraction := s.ocrService.ExtractInvoiceData(text)
	return &extraction, nil
}

// ProcessOCR lê o texto do arquivo anexado e completa os campos vazios da fattura
func (s *Service) ProcessOCR(ctx context.Context, id int64) (*domain.Invoice, *domain.InvoiceExtraction, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if invoice.FilePath == "" {
		return nil, nil, NewInvoiceErrorWithID(ErrNoFileAttached, apiErrors.ErrMissingRequiredData, id, "")
	}

	text, err := s.ocrService.ExtractText(ctx, s.storagePath(invoice.FilePath))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"invoice_id": id,
			"file":       invoice.FilePath,
		}).Errorf("Erro no OCR da fattura: %v", err)

		if updateErr := s.invoiceRepo.UpdateOCR(ctx, id, "", domain.OCRStatusFailed); updateErr != nil {
			logrus.Errorf("Erro ao marcar OCR da fattura %d como falho: %v", id, updateErr)
		}
		return nil, nil, NewInvoiceErrorWithID(ErrOCRFailed, apiErrors.ErrExternalService, id, err.Error())
	}

	extraction := s.ocrService.ExtractInvoiceData(text)

	invoice.OCRText = text
	invoice.OCRStatus = domain.OCRStatusDone
	s.applyExtraction(ctx, invoice, extraction)

	if err := s.update(ctx, invoice); err != nil {
		return nil, nil, err
	}

	logrus.WithFields(logrus.Fields{
		"invoice_id":     id,
		"invoice_number": invoice.InvoiceNumber,
		"text_length":    len(text),
	}).Info("OCR da fattura concluído")

	return invoice, &extraction, nil
}

// ProcessPending executa o OCR das faturas pendentes, mais antigas primeiro
func (s *Service) ProcessPending(ctx context.Context, limit int) (*ProcessSummary, error) {
	if limit < 0 {
		limit = 0
	}

	invoices, err := s.invoiceRepo.ListByOCRStatus(ctx, domain.OCRStatusPending, uint64(limit))
	if err != nil {
		return nil, NewInvoiceError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar faturas pendentes")
	}

	summary := &ProcessSummary{}
	for _, invoice := range invoices {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		if _, _, err := s.ProcessOCR(ctx, invoice.ID); err != nil {
			summary.Failed++
			continue
		}
		summary.Processed++
	}

	return summary, nil
}

// applyExtraction preenche número, total e fornecedor apenas quando estão vazios
func (s *Service) applyExtraction(ctx context.Context, invoice *domain.Invoice, extraction domain.InvoiceExtraction) {
	if invoice.InvoiceNumber == "" {
		invoice.InvoiceNumber = extraction.InvoiceNumber
	}

	if invoice.TotalAmount == 0 && extraction.TotalAmount != "" {
		if amount, err := utils.ParseAmount(extraction.TotalAmount); err == nil {
			invoice.TotalAmount = amount
		}
	}

	if invoice.SupplierID == nil && extraction.SupplierName != "" {
		supplier, err := s.matchSupplier(ctx, extraction.SupplierName)
		if err != nil {
			logrus.Warnf("Erro ao buscar fornecedor para a fattura %d: %v", invoice.ID, err)
			return
		}
		if supplier != nil {
			invoice.SupplierID = &supplier.ID
			invoice.SupplierName = supplier.Name
		}
	}
}

// matchSupplier procura um fornecedor ativo cujo nome contém o nome reconhecido, ou vice-versa
func (s *Service) matchSupplier(ctx context.Context, guessed string) (*domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	guessed = strings.ToLower(guessed)
	for _, supplier := range suppliers {
		name := strings.ToLower(supplier.Name)
		if strings.Contains(name, guessed) || strings.Contains(guessed, name) {
			return supplier, nil
		}
	}
	return nil, nil
}

// prepare valida os dados cadastrais e resolve o fornecedor pelo nome quando necessário
func (s *Service) prepare(ctx context.Context, invoice *domain.Invoice) error {
	if math.IsNaN(invoice.TotalAmount) || math.IsInf(invoice.TotalAmount, 0) {
		return NewInvoiceErrorWithID(ErrNonFiniteAmount, apiErrors.ErrInvalidFormat, invoice.ID, "total_amount")
	}

	if invoice.Date.IsZero() {
		invoice.Date = s.now()
	}
	invoice.Date = utils.Day(invoice.Date)
	invoice.InvoiceNumber = strings.TrimSpace(invoice.InvoiceNumber)

	supplierName := strings.TrimSpace(invoice.SupplierName)
	if invoice.SupplierID == nil && supplierName != "" {
		supplier, err := s.supplierRepo.GetOrCreate(ctx, supplierName)
		if err != nil {
			return NewInvoiceErrorWithID(err, apiErrors.ErrDatabaseOperation, invoice.ID, "Erro ao resolver fornecedor")
		}
		invoice.SupplierID = &supplier.ID
		invoice.SupplierName = supplier.Name
	}

	return nil
}

func (s *Service) update(ctx context.Context, invoice *domain.Invoice) error {
	err := s.invoiceRepo.Update(ctx, invoice)
	if errors.Is(err, repository.ErrNotFound) {
		return NewInvoiceErrorWithID(ErrInvoiceNotFound, apiErrors.ErrResourceNotFound, invoice.ID, "")
	}
	if err != nil {
		return NewInvoiceErrorWithID(err, apiErrors.ErrDatabaseOperation, invoice.ID, "Erro ao atualizar fattura")
	}
	return nil
}

// store copia o conteúdo para o diretório de faturas respeitando o limite de tamanho
func (s *Service) store(ext string, content io.Reader) (string, error) {
	if err := os.MkdirAll(s.cfg.Storage.InvoiceDir, 0o755); err != nil {
		return "", NewInvoiceError(ErrStorage, apiErrors.ErrInternalServer, err.Error())
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", NewInvoiceError(ErrStorage, apiErrors.ErrInternalServer, err.Error())
	}
	name := id + ext
	path := s.storagePath(name)

	f, err := os.Create(path)
	if err != nil {
		return "", NewInvoiceError(ErrStorage, apiErrors.ErrInternalServer, err.Error())
	}

	if limit := s.cfg.Storage.UploadMaxBytes; limit > 0 {
		content = io.LimitReader(content, limit+1)
	}

	written, copyErr := io.Copy(f, content)
	closeErr := f.Close()

	switch {
	case copyErr != nil:
		os.Remove(path)
		return "", NewInvoiceError(ErrStorage, apiErrors.ErrInternalServer, copyErr.Error())
	case closeErr != nil:
		os.Remove(path)
		return "", NewInvoiceError(ErrStorage, apiErrors.ErrInternalServer, closeErr.Error())
	case s.cfg.Storage.UploadMaxBytes > 0 && written > s.cfg.Storage.UploadMaxBytes:
		os.Remove(path)
		return "", NewInvoiceError(ErrFileTooLarge, apiErrors.ErrPayloadTooLarge, "")
	}

	return name, nil
}

func (s *Service) storagePath(name string) string {
	return filepath.Join(s.cfg.Storage.InvoiceDir, filepath.Base(name))
}
