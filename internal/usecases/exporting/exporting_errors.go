package exporting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de exportação de tarefas
var (
	ErrLaunchNotFound    = errors.New("launch not found")
	ErrListRequired      = errors.New("clickup list id is required")
	ErrNothingToExport   = errors.New("nothing to export")
	ErrExternalService   = errors.New("clickup service error")
	ErrDatabaseOperation = errors.New("database operation error")
)

// ExportError é um erro com contexto adicional para exportação
type ExportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ExportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError cria um novo ExportError
func NewExportError(err error, code string, details string) *ExportError {
	return &ExportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
