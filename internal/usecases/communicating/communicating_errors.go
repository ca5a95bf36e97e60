package communicating

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de comunicações
var (
	// Erros de validação
	ErrLaunchNotFound        = errors.New("launch not found")
	ErrCommunicationNotFound = errors.New("communication not found")
	ErrContentNotFound       = errors.New("generated content not found")
	ErrInvalidStatus         = errors.New("invalid communication status")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// CommunicationError é um erro com contexto adicional para comunicações
type CommunicationError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CommunicationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CommunicationError) Unwrap() error {
	return e.Err
}

// NewCommunicationError cria um novo CommunicationError
func NewCommunicationError(err error, code string, details string) *CommunicationError {
	return &CommunicationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
