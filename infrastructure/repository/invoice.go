package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/database/postgres"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
)

const invoicesTable = "invoices"

var invoiceColumns = []string{
	"i.id", "i.date", "i.supplier_id", "COALESCE(s.name, '')", "i.invoice_number",
	"i.total_amount", "i.file_path", "i.ocr_text", "i.ocr_status", "i.notes",
	"i.created_at", "i.updated_at",
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	List(ctx context.Context, limit, offset uint64) ([]*domain.Invoice, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Invoice, error)
	Update(ctx context.Context, invoice *domain.Invoice) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]*domain.Invoice, error)
	ListByOCRStatus(ctx context.Context, status domain.OCRStatus, limit uint64) ([]*domain.Invoice, error)
	UpdateOCR(ctx context.Context, id int64, text string, status domain.OCRStatus) error
	CountPending(ctx context.Context) (int, error)
}

type invoiceRepository struct {
	conn *postgres.Connection
}

func NewInvoiceRepository(conn *postgres.Connection) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

func selectInvoices() squirrel.SelectBuilder {
	return squirrel.
		Select(invoiceColumns...).
		From(invoicesTable + " i").
		LeftJoin(suppliersTable + " s ON s.id = i.supplier_id")
}

func scanInvoice(row scanner) (*domain.Invoice, error) {
	var (
		invoice    domain.Invoice
		supplierID sql.NullInt64
		status     string
	)

	if err := row.Scan(
		&invoice.ID,
		&invoice.Date,
		&supplierID,
		&invoice.SupplierName,
		&invoice.InvoiceNumber,
		&invoice.TotalAmount,
		&invoice.FilePath,
		&invoice.OCRText,
		&status,
		&invoice.Notes,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if supplierID.Valid {
		invoice.SupplierID = &supplierID.Int64
	}
	invoice.OCRStatus = domain.OCRStatus(status)

	return &invoice, nil
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	if invoice.OCRStatus == "" {
		invoice.OCRStatus = domain.OCRStatusNone
	}

	query, args, err := squirrel.
		Insert(invoicesTable).
		Columns("date", "supplier_id", "invoice_number", "total_amount", "file_path", "ocr_text", "ocr_status", "notes").
		Values(
			dateParam(invoice.Date),
			invoice.SupplierID,
			invoice.InvoiceNumber,
			invoice.TotalAmount,
			invoice.FilePath,
			invoice.OCRText,
			string(invoice.OCRStatus),
			invoice.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar fattura: %w", err)
	}

	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	query, args, err := selectInvoices().
		Where(squirrel.Eq{"i.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	invoice, err := scanInvoice(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar fattura: %w", err)
	}

	return invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context, limit, offset uint64) ([]*domain.Invoice, error) {
	builder := selectInvoices().
		OrderBy("i.date DESC", "i.id DESC").
		Offset(offset)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	return r.list(ctx, builder)
}

func (r *invoiceRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Invoice, error) {
	return r.list(ctx, selectInvoices().
		Where(inRange("i.date", start, end)).
		OrderBy("i.date ASC", "i.id ASC"))
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	query, args, err := squirrel.
		Update(invoicesTable).
		Set("date", dateParam(invoice.Date)).
		Set("supplier_id", invoice.SupplierID).
		Set("invoice_number", invoice.InvoiceNumber).
		Set("total_amount", invoice.TotalAmount).
		Set("file_path", invoice.FilePath).
		Set("ocr_text", invoice.OCRText).
		Set("ocr_status", string(invoice.OCRStatus)).
		Set("notes", invoice.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": invoice.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar fattura: %w", err)
	}

	return checkAffected(res)
}

func (r *invoiceRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := squirrel.
		Delete(invoicesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir fattura: %w", err)
	}

	return checkAffected(res)
}

// Search procura no número, no fornecedor, no texto do OCR e nas notas
func (r *invoiceRepository) Search(ctx context.Context, term string) ([]*domain.Invoice, error) {
	pattern := likePattern(term)
	return r.list(ctx, selectInvoices().
		Where(ilikeAny(pattern, "i.invoice_number", "s.name", "i.ocr_text", "i.notes")).
		OrderBy("i.date DESC", "i.id DESC"))
}

func (r *invoiceRepository) ListByOCRStatus(ctx context.Context, status domain.OCRStatus, limit uint64) ([]*domain.Invoice, error) {
	builder := selectInvoices().
		Where(squirrel.Eq{"i.ocr_status": string(status)}).
		OrderBy("i.created_at ASC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	return r.list(ctx, builder)
}

func (r *invoiceRepository) UpdateOCR(ctx context.Context, id int64, text string, status domain.OCRStatus) error {
	query, args, err := squirrel.
		Update(invoicesTable).
		Set("ocr_text", text).
		Set("ocr_status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar OCR da fattura: %w", err)
	}

	return checkAffected(res)
}

// CountPending conta faturas com arquivo anexado aguardando OCR
func (r *invoiceRepository) CountPending(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(invoicesTable).
		Where(squirrel.Eq{"ocr_status": string(domain.OCRStatusPending)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar faturas pendentes: %w", err)
	}

	return count, nil
}

func (r *invoiceRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.Invoice, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar faturas: %w", err)
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler fattura: %w", err)
		}
		invoices = append(invoices, invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}
