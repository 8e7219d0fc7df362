package supplying

import (
	"errors"
	"fmt"
)

var (
	// Fornecedores
	ErrSupplierNameRequired  = errors.New("nome do fornecedor obrigatório")
	ErrSupplierAlreadyExists = errors.New("fornecedor já existe")
	ErrSupplierNotFound      = errors.New("fornecedor não encontrado")

	// Despesas
	ErrPurchaseNotFound     = errors.New("despesa não encontrada")
	ErrDescriptionRequired  = errors.New("descrição obrigatória")
	ErrAmountRequired       = errors.New("informe ao menos um valor (dinheiro ou banco)")
	ErrNonFiniteAmount      = errors.New("valor não numérico ou infinito")
	ErrPurchaseDateRequired = errors.New("data da despesa obrigatória")
	ErrInvalidDateRange     = errors.New("intervalo de datas inválido")
	ErrDatabaseOperation    = errors.New("erro ao realizar operação no banco de dados")
)

// SupplyError é um erro com contexto adicional para fornecedores e despesas
type SupplyError struct {
	Err     error
	Code    string
	ID      int64 // ID do fornecedor ou da despesa (quando aplicável)
	Details string
}

func (e *SupplyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SupplyError) Unwrap() error {
	return e.Err
}

func NewSupplyError(err error, code string, details string) *SupplyError {
	return &SupplyError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewSupplyErrorWithID(err error, code string, id int64, details string) *SupplyError {
	return &SupplyError{
		Err:     err,
		Code:    code,
		ID:      id,
		Details: details,
	}
}
