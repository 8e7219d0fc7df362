package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateRange  = errors.New("intervalo de datas inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrExport            = errors.New("erro ao gerar planilha")
)

type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
