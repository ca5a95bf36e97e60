package checklisting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto do checklist operacional
var (
	ErrLaunchNotFound = errors.New("launch not found")
	ErrInvalidStatus  = errors.New("invalid step status")
	ErrMissingTarget  = errors.New("step or item reference is required")

	ErrDatabaseOperation = errors.New("database operation error")
)

// ChecklistError é um erro com contexto adicional para o checklist
type ChecklistError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ChecklistError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ChecklistError) Unwrap() error {
	return e.Err
}

// NewChecklistError cria um novo ChecklistError
func NewChecklistError(err error, code string, details string) *ChecklistError {
	return &ChecklistError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
