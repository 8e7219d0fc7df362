package selling

import (
	"errors"
	"fmt"
)

var (
	ErrSaleNotFound      = errors.New("venda não encontrada")
	ErrInvalidDate       = errors.New("data da venda inválida")
	ErrInvalidDateRange  = errors.New("intervalo de datas inválido")
	ErrNonFiniteAmount   = errors.New("valor não numérico ou infinito")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// SaleError é um erro com contexto adicional para vendas
type SaleError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Date    string // Data da venda envolvida (quando aplicável)
	Details string
}

func (e *SaleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SaleError) Unwrap() error {
	return e.Err
}

func NewSaleError(err error, code string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewSaleErrorWithDate(err error, code string, date string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		Date:    date,
		Details: details,
	}
}
