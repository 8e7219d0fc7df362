package invoicing

import (
	"errors"
	"fmt"
)

var (
	ErrInvoiceNotFound   = errors.New("fattura não encontrada")
	ErrNonFiniteAmount   = errors.New("valor não numérico ou infinito")
	ErrUnsupportedFile   = errors.New("tipo de arquivo não suportado")
	ErrFileTooLarge      = errors.New("arquivo excede o tamanho máximo")
	ErrNoFileAttached    = errors.New("fattura sem arquivo anexado")
	ErrFileMissing       = errors.New("arquivo da fattura não encontrado no armazenamento")
	ErrOCRFailed         = errors.New("falha ao extrair texto do arquivo")
	ErrEmptyText         = errors.New("nenhum texto para analisar")
	ErrStorage           = errors.New("erro ao gravar arquivo")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// InvoiceError é um erro com contexto adicional para faturas
type InvoiceError struct {
	Err       error
	Code      string
	InvoiceID int64
	Details   string
}

func (e *InvoiceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InvoiceError) Unwrap() error {
	return e.Err
}

func NewInvoiceError(err error, code string, details string) *InvoiceError {
	return &InvoiceError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewInvoiceErrorWithID(err error, code string, invoiceID int64, details string) *InvoiceError {
	return &InvoiceError{
		Err:       err,
		Code:      code,
		InvoiceID: invoiceID,
		Details:   details,
	}
}
