// Package migration cria o schema do gestionale e insere os dados iniciais.
package migration

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/database/postgres"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS sales (
		id BIGSERIAL PRIMARY KEY,
		date DATE NOT NULL UNIQUE,
		start_capital DOUBLE PRECISION NOT NULL DEFAULT 0,
		cash_income DOUBLE PRECISION NOT NULL DEFAULT 0,
		coin_income DOUBLE PRECISION NOT NULL DEFAULT 0,
		card_gross DOUBLE PRECISION NOT NULL DEFAULT 0,
		card_percent_fee DOUBLE PRECISION NOT NULL DEFAULT 1.95,
		card_fixed_fee DOUBLE PRECISION NOT NULL DEFAULT 0.15,
		satispay_gross DOUBLE PRECISION NOT NULL DEFAULT 0,
		satispay_percent_fee DOUBLE PRECISION NOT NULL DEFAULT 1.0,
		satispay_fixed_fee DOUBLE PRECISION NOT NULL DEFAULT 0.0,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id BIGSERIAL PRIMARY KEY,
		date DATE NOT NULL,
		supplier_id BIGINT NOT NULL REFERENCES suppliers(id),
		description TEXT NOT NULL DEFAULT '',
		cash_payment DOUBLE PRECISION NOT NULL DEFAULT 0,
		bank_payment DOUBLE PRECISION NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id BIGSERIAL PRIMARY KEY,
		date DATE NOT NULL,
		supplier_id BIGINT REFERENCES suppliers(id),
		invoice_number TEXT NOT NULL DEFAULT '',
		total_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		file_path TEXT NOT NULL DEFAULT '',
		ocr_text TEXT NOT NULL DEFAULT '',
		ocr_status TEXT NOT NULL DEFAULT 'none',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		role_id INT NOT NULL DEFAULT 2,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_purchases_date ON purchases(date)`,
	`CREATE INDEX IF NOT EXISTS idx_purchases_supplier ON purchases(supplier_id)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_date ON invoices(date)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_supplier ON invoices(supplier_id)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_ocr_status ON invoices(ocr_status)`,
}

// Run cria as tabelas e índices e insere os fornecedores padrão, em uma única transação
func Run(ctx context.Context, conn postgres.Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao executar migração: %w", err)
			}
		}

		inserted, err := seedDefaultSuppliers(ctx, tx)
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"statements":         len(statements),
			"suppliers_inserted": inserted,
		}).Info("Migração do banco de dados concluída")

		return nil
	})
}

func seedDefaultSuppliers(ctx context.Context, q postgres.Queryer) (int, error) {
	var count int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM suppliers").Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar fornecedores: %w", err)
	}

	if count > 0 {
		return 0, nil
	}

	insert := squirrel.Insert("suppliers").Columns("name").PlaceholderFormat(squirrel.Dollar)
	for _, name := range domain.DefaultSuppliers {
		insert = insert.Values(name)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("erro ao inserir fornecedores padrão: %w", err)
	}

	return len(domain.DefaultSuppliers), nil
}
