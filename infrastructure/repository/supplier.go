package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/database/postgres"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
)

const suppliersTable = "suppliers"

var supplierColumns = []string{"id", "name", "active", "notes", "created_at"}

type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	GetByName(ctx context.Context, name string) (*domain.Supplier, error)
	GetOrCreate(ctx context.Context, name string) (*domain.Supplier, error)
	ListActive(ctx context.Context) ([]*domain.Supplier, error)
	List(ctx context.Context) ([]*domain.Supplier, error)
	Update(ctx context.Context, supplier *domain.Supplier) error
	Deactivate(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]*domain.Supplier, error)
}

type supplierRepository struct {
	conn *postgres.Connection
}

func NewSupplierRepository(conn *postgres.Connection) SupplierRepository {
	return &supplierRepository{
		conn: conn,
	}
}

func scanSupplier(row scanner) (*domain.Supplier, error) {
	var supplier domain.Supplier
	if err := row.Scan(
		&supplier.ID,
		&supplier.Name,
		&supplier.Active,
		&supplier.Notes,
		&supplier.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	query, args, err := squirrel.
		Insert(suppliersTable).
		Columns("name", "active", "notes").
		Values(supplier.Name, supplier.Active, supplier.Notes).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&supplier.ID, &supplier.CreatedAt)
	if postgres.IsUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("erro ao criar fornecedor: %w", err)
	}

	return nil
}

func (r *supplierRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*domain.Supplier, error) {
	query, args, err := squirrel.
		Select(supplierColumns...).
		From(suppliersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	supplier, err := scanSupplier(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar fornecedor: %w", err)
	}

	return supplier, nil
}

func (r *supplierRepository) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *supplierRepository) GetByName(ctx context.Context, name string) (*domain.Supplier, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name})
}

// GetOrCreate devolve o fornecedor com o nome informado, criando-o se necessário
func (r *supplierRepository) GetOrCreate(ctx context.Context, name string) (*domain.Supplier, error) {
	query, args, err := squirrel.
		Insert(suppliersTable).
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id, name, active, notes, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	supplier, err := scanSupplier(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("erro ao obter ou criar fornecedor: %w", err)
	}

	return supplier, nil
}

func (r *supplierRepository) ListActive(ctx context.Context) ([]*domain.Supplier, error) {
	return r.list(ctx, squirrel.
		Select(supplierColumns...).
		From(suppliersTable).
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC"))
}

func (r *supplierRepository) List(ctx context.Context) ([]*domain.Supplier, error) {
	return r.list(ctx, squirrel.
		Select(supplierColumns...).
		From(suppliersTable).
		OrderBy("name ASC"))
}

func (r *supplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	query, args, err := squirrel.
		Update(suppliersTable).
		Set("name", supplier.Name).
		Set("active", supplier.Active).
		Set("notes", supplier.Notes).
		Where(squirrel.Eq{"id": supplier.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if postgres.IsUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("erro ao atualizar fornecedor: %w", err)
	}

	return checkAffected(res)
}

// Deactivate é uma exclusão lógica: compras e faturas continuam apontando para o fornecedor
func (r *supplierRepository) Deactivate(ctx context.Context, id int64) error {
	query, args, err := squirrel.
		Update(suppliersTable).
		Set("active", false).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao desativar fornecedor: %w", err)
	}

	return checkAffected(res)
}

func (r *supplierRepository) Search(ctx context.Context, term string) ([]*domain.Supplier, error) {
	pattern := likePattern(term)
	return r.list(ctx, squirrel.
		Select(supplierColumns...).
		From(suppliersTable).
		Where(ilikeAny(pattern, "name", "notes")).
		OrderBy("name ASC"))
}

func (r *supplierRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.Supplier, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar fornecedores: %w", err)
	}
	defer rows.Close()

	suppliers := make([]*domain.Supplier, 0)
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler fornecedor: %w", err)
		}
		suppliers = append(suppliers, supplier)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return suppliers, nil
}
