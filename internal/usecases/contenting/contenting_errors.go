package contenting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de conteúdo gerado
var (
	ErrLaunchNotFound  = errors.New("launch not found")
	ErrContentNotFound = errors.New("generated content not found")
	ErrInvalidType     = errors.New("invalid content type")

	ErrGenerationFailed  = errors.New("content generation failed")
	ErrDatabaseOperation = errors.New("database operation error")
)

// ContentError é um erro com contexto adicional para conteúdo gerado
type ContentError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ContentError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ContentError) Unwrap() error {
	return e.Err
}

// NewContentError cria um novo ContentError
func NewContentError(err error, code string, details string) *ContentError {
	return &ContentError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
