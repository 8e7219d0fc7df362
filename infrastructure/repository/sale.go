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

const salesTable = "sales"

var saleColumns = []string{
	"id", "date", "start_capital", "cash_income", "coin_income",
	"card_gross", "card_percent_fee", "card_fixed_fee",
	"satispay_gross", "satispay_percent_fee", "satispay_fixed_fee",
	"notes", "created_at", "updated_at",
}

type SaleRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.Sale, error)
	GetByID(ctx context.Context, id int64) (*domain.Sale, error)
	Upsert(ctx context.Context, sale *domain.Sale) error
	Delete(ctx context.Context, date time.Time) error
	List(ctx context.Context, limit, offset uint64) ([]*domain.Sale, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Sale, error)
	Search(ctx context.Context, term string) ([]*domain.Sale, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func scanSale(row scanner) (*domain.Sale, error) {
	var sale domain.Sale
	err := row.Scan(
		&sale.ID,
		&sale.Date,
		&sale.StartCapital,
		&sale.CashIncome,
		&sale.CoinIncome,
		&sale.CardGross,
		&sale.CardPercentFee,
		&sale.CardFixedFee,
		&sale.SatispayGross,
		&sale.SatispayPercentFee,
		&sale.SatispayFixedFee,
		&sale.Notes,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*domain.Sale, error) {
	query, args, err := squirrel.
		Select(saleColumns...).
		From(salesTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	sale, err := scanSale(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	return sale, nil
}

func (r *saleRepository) GetByDate(ctx context.Context, date time.Time) (*domain.Sale, error) {
	return r.getOne(ctx, squirrel.Eq{"date": dateParam(date)})
}

func (r *saleRepository) GetByID(ctx context.Context, id int64) (*domain.Sale, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// Upsert grava o registro inteiro. Uma venda existente na mesma data é substituída.
func (r *saleRepository) Upsert(ctx context.Context, sale *domain.Sale) error {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns(
			"date", "start_capital", "cash_income", "coin_income",
			"card_gross", "card_percent_fee", "card_fixed_fee",
			"satispay_gross", "satispay_percent_fee", "satispay_fixed_fee",
			"notes",
		).
		Values(
			dateParam(sale.Date), sale.StartCapital, sale.CashIncome, sale.CoinIncome,
			sale.CardGross, sale.CardPercentFee, sale.CardFixedFee,
			sale.SatispayGross, sale.SatispayPercentFee, sale.SatispayFixedFee,
			sale.Notes,
		).
		Suffix(`ON CONFLICT (date) DO UPDATE SET
			start_capital = EXCLUDED.start_capital,
			cash_income = EXCLUDED.cash_income,
			coin_income = EXCLUDED.coin_income,
			card_gross = EXCLUDED.card_gross,
			card_percent_fee = EXCLUDED.card_percent_fee,
			card_fixed_fee = EXCLUDED.card_fixed_fee,
			satispay_gross = EXCLUDED.satispay_gross,
			satispay_percent_fee = EXCLUDED.satispay_percent_fee,
			satispay_fixed_fee = EXCLUDED.satispay_fixed_fee,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&sale.ID, &sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao salvar venda: %w", err)
	}

	return nil
}

func (r *saleRepository) Delete(ctx context.Context, date time.Time) error {
	query, args, err := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"date": dateParam(date)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir venda: %w", err)
	}

	return checkAffected(res)
}

func (r *saleRepository) List(ctx context.Context, limit, offset uint64) ([]*domain.Sale, error) {
	builder := squirrel.
		Select(saleColumns...).
		From(salesTable).
		OrderBy("date DESC").
		Offset(offset)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	return r.list(ctx, builder)
}

func (r *saleRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Sale, error) {
	return r.list(ctx, squirrel.
		Select(saleColumns...).
		From(salesTable).
		Where(squirrel.GtOrEq{"date": dateParam(start)}).
		Where(squirrel.LtOrEq{"date": dateParam(end)}).
		OrderBy("date ASC"))
}

// Search procura o termo na data (texto) e nas notas
func (r *saleRepository) Search(ctx context.Context, term string) ([]*domain.Sale, error) {
	pattern := likePattern(term)
	return r.list(ctx, squirrel.
		Select(saleColumns...).
		From(salesTable).
		Where(ilikeAny(pattern, "date::text", "notes")).
		OrderBy("date DESC"))
}

func (r *saleRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.Sale, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}
