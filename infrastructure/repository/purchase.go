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

const purchasesTable = "purchases"

var purchaseColumns = []string{
	"p.id", "p.date", "p.supplier_id", "COALESCE(s.name, '')", "p.description",
	"p.cash_payment", "p.bank_payment", "p.notes", "p.created_at", "p.updated_at",
}

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *domain.Purchase) error
	GetByID(ctx context.Context, id int64) (*domain.Purchase, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Purchase, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Purchase, error)
	GetBySupplier(ctx context.Context, supplierID int64, limit uint64) ([]*domain.Purchase, error)
	Update(ctx context.Context, purchase *domain.Purchase) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]*domain.Purchase, error)
	SumByDate(ctx context.Context, date time.Time) (float64, error)
	GetTotalsByDateRange(ctx context.Context, start, end time.Time) (*domain.PurchaseTotals, error)
	ExpensesBySupplier(ctx context.Context, start, end time.Time, limit uint64) ([]*domain.SupplierExpense, error)
	CountActiveSuppliers(ctx context.Context, start, end time.Time) (int, error)
}

type purchaseRepository struct {
	conn *postgres.Connection
}

func NewPurchaseRepository(conn *postgres.Connection) PurchaseRepository {
	return &purchaseRepository{
		conn: conn,
	}
}

func selectPurchases() squirrel.SelectBuilder {
	return squirrel.
		Select(purchaseColumns...).
		From(purchasesTable + " p").
		LeftJoin(suppliersTable + " s ON s.id = p.supplier_id")
}

func inRange(column string, start, end time.Time) squirrel.And {
	return squirrel.And{
		squirrel.GtOrEq{column: dateParam(start)},
		squirrel.LtOrEq{column: dateParam(end)},
	}
}

func scanPurchase(row scanner) (*domain.Purchase, error) {
	var purchase domain.Purchase
	if err := row.Scan(
		&purchase.ID,
		&purchase.Date,
		&purchase.SupplierID,
		&purchase.SupplierName,
		&purchase.Description,
		&purchase.CashPayment,
		&purchase.BankPayment,
		&purchase.Notes,
		&purchase.CreatedAt,
		&purchase.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *domain.Purchase) error {
	query, args, err := squirrel.
		Insert(purchasesTable).
		Columns("date", "supplier_id", "description", "cash_payment", "bank_payment", "notes").
		Values(
			dateParam(purchase.Date),
			purchase.SupplierID,
			purchase.Description,
			purchase.CashPayment,
			purchase.BankPayment,
			purchase.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&purchase.ID, &purchase.CreatedAt, &purchase.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar compra: %w", err)
	}

	return nil
}

func (r *purchaseRepository) GetByID(ctx context.Context, id int64) (*domain.Purchase, error) {
	query, args, err := selectPurchases().
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	purchase, err := scanPurchase(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar compra: %w", err)
	}

	return purchase, nil
}

func (r *purchaseRepository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Purchase, error) {
	return r.list(ctx, selectPurchases().
		Where(squirrel.Eq{"p.date": dateParam(date)}).
		OrderBy("p.id ASC"))
}

func (r *purchaseRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Purchase, error) {
	return r.list(ctx, selectPurchases().
		Where(inRange("p.date", start, end)).
		OrderBy("p.date ASC", "p.id ASC"))
}

func (r *purchaseRepository) GetBySupplier(ctx context.Context, supplierID int64, limit uint64) ([]*domain.Purchase, error) {
	builder := selectPurchases().
		Where(squirrel.Eq{"p.supplier_id": supplierID}).
		OrderBy("p.date DESC", "p.id DESC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	return r.list(ctx, builder)
}

func (r *purchaseRepository) Update(ctx context.Context, purchase *domain.Purchase) error {
	query, args, err := squirrel.
		Update(purchasesTable).
		Set("date", dateParam(purchase.Date)).
		Set("supplier_id", purchase.SupplierID).
		Set("description", purchase.Description).
		Set("cash_payment", purchase.CashPayment).
		Set("bank_payment", purchase.BankPayment).
		Set("notes", purchase.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": purchase.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar compra: %w", err)
	}

	return checkAffected(res)
}

func (r *purchaseRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := squirrel.
		Delete(purchasesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir compra: %w", err)
	}

	return checkAffected(res)
}

// Search procura na descrição, no nome do fornecedor e nas notas
func (r *purchaseRepository) Search(ctx context.Context, term string) ([]*domain.Purchase, error) {
	pattern := likePattern(term)
	return r.list(ctx, selectPurchases().
		Where(ilikeAny(pattern, "p.description", "s.name", "p.notes")).
		OrderBy("p.date DESC", "p.id DESC"))
}

// SumByDate devolve o total pago a fornecedores (dinheiro + banco) na data
func (r *purchaseRepository) SumByDate(ctx context.Context, date time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(cash_payment + bank_payment), 0)").
		From(purchasesTable).
		Where(squirrel.Eq{"date": dateParam(date)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var total float64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar pagamentos a fornecedores: %w", err)
	}

	return total, nil
}

func (r *purchaseRepository) GetTotalsByDateRange(ctx context.Context, start, end time.Time) (*domain.PurchaseTotals, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(cash_payment), 0)",
			"COALESCE(SUM(bank_payment), 0)",
			"COALESCE(SUM(cash_payment + bank_payment), 0)",
		).
		From(purchasesTable).
		Where(inRange("date", start, end)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var totals domain.PurchaseTotals
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&totals.Cash, &totals.Bank, &totals.Total); err != nil {
		return nil, fmt.Errorf("erro ao calcular totais de compras: %w", err)
	}

	return &totals, nil
}

// ExpensesBySupplier agrupa as compras do período por fornecedor, do maior para o menor gasto.
// limit zero devolve todos os fornecedores.
func (r *purchaseRepository) ExpensesBySupplier(ctx context.Context, start, end time.Time, limit uint64) ([]*domain.SupplierExpense, error) {
	builder := squirrel.
		Select(
			"p.supplier_id",
			"COALESCE(s.name, '')",
			"COALESCE(SUM(p.cash_payment), 0)",
			"COALESCE(SUM(p.bank_payment), 0)",
			"COALESCE(SUM(p.cash_payment + p.bank_payment), 0) AS total",
			"COUNT(p.id)",
		).
		From(purchasesTable+" p").
		LeftJoin(suppliersTable+" s ON s.id = p.supplier_id").
		Where(inRange("p.date", start, end)).
		GroupBy("p.supplier_id", "s.name").
		OrderBy("total DESC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar despesas por fornecedor: %w", err)
	}
	defer rows.Close()

	expenses := make([]*domain.SupplierExpense, 0)
	for rows.Next() {
		var e domain.SupplierExpense
		if err := rows.Scan(&e.SupplierID, &e.SupplierName, &e.Cash, &e.Bank, &e.Total, &e.PurchaseCount); err != nil {
			return nil, fmt.Errorf("erro ao ler despesa por fornecedor: %w", err)
		}
		expenses = append(expenses, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return expenses, nil
}

// CountActiveSuppliers conta fornecedores distintos com compras no período
func (r *purchaseRepository) CountActiveSuppliers(ctx context.Context, start, end time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(DISTINCT supplier_id)").
		From(purchasesTable).
		Where(inRange("date", start, end)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar fornecedores ativos: %w", err)
	}

	return count, nil
}

func (r *purchaseRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.Purchase, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar compras: %w", err)
	}
	defer rows.Close()

	purchases := make([]*domain.Purchase, 0)
	for rows.Next() {
		purchase, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler compra: %w", err)
		}
		purchases = append(purchases, purchase)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return purchases, nil
}
