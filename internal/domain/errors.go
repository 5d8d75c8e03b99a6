package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	SystemSource       = "source"
	SystemTarget       = "target"
	SystemNotification = "notification"
)

// IntegrationError é a falha de transporte ou autenticação de um sistema externo
type IntegrationError struct {
	System string
	Op     string
	Err    error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.System, e.Op, e.Err)
}

func (e *IntegrationError) Unwrap() error {
	return e.Err
}

// NewIntegrationError anota err com a pilha da chamada e identifica o sistema de origem
func NewIntegrationError(system, op string, err error) error {
	if err == nil {
		return nil
	}

	return &IntegrationError{
		System: system,
		Op:     op,
		Err:    errors.WithStack(err),
	}
}
