package importing

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownImportType = errors.New("tipo de importação desconhecido")
	ErrEmptyFile         = errors.New("arquivo CSV vazio")
	ErrMalformedCSV      = errors.New("arquivo CSV inválido")
	ErrMissingColumn     = errors.New("coluna obrigatória não mapeada")
	ErrInvalidMapping    = errors.New("mapeamento aponta para coluna inexistente")
	ErrFileTooLarge      = errors.New("arquivo excede o limite permitido")
)

// ImportError é um erro que impede a importação inteira (não apenas uma linha)
type ImportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func NewImportError(err error, code string, details string) *ImportError {
	return &ImportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
