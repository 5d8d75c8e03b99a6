package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken   = errors.New("token inválido")
	ErrExpiredToken   = errors.New("token expirado")
	ErrInvalidAPIKey  = errors.New("chave de API inválida")
	ErrAPIKeyDisabled = errors.New("autenticação por chave de API desabilitada")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Details string // Detalhes adicionais
}

func NewAuthError(err error, details string) *AuthError {
	return &AuthError{
		Err:     err,
		Details: details,
	}
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}
