package launching

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de lançamentos
var (
	// Erros de validação
	ErrLaunchNotFound   = errors.New("launch not found")
	ErrNameRequired     = errors.New("launch name is required")
	ErrInvalidEventDate = errors.New("invalid event date")
	ErrInvalidStatus    = errors.New("invalid launch status")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros de geração de ID
	ErrGenerateID = errors.New("error generating launch ID")
)

// LaunchError é um erro com contexto adicional para lançamentos
type LaunchError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	LaunchID string // ID do lançamento envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *LaunchError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *LaunchError) Unwrap() error {
	return e.Err
}

// NewLaunchError cria um novo LaunchError
func NewLaunchError(err error, code string, details string) *LaunchError {
	return &LaunchError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
