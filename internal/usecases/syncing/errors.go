package syncing

import (
	"errors"

	"github.com/vfg2006/discount-sync-api/internal/domain"
)

// Erros fatais de preparação: a execução inteira termina como FAILED
var (
	ErrIntegrationNotFound     = errors.New("integration not found")
	ErrIntegrationInactive     = errors.New("integration is inactive")
	ErrIntegrationTypeMismatch = errors.New("integration type mismatch")
	ErrNoStoresToSync          = errors.New("no stores to sync")
)

var (
	ErrInvalidRequest     = errors.New("invalid sync request")
	ErrSyncAlreadyRunning = errors.New("sync already running for the requested stores")
	ErrExecutionNotFound  = errors.New("sync execution not found")
)

// Códigos gravados em error_details
const (
	CodeIntegrationNotFound     = "INTEGRATION_NOT_FOUND"
	CodeIntegrationInactive     = "INTEGRATION_INACTIVE"
	CodeIntegrationTypeMismatch = "INTEGRATION_TYPE_MISMATCH"
	CodeInvalidIntegration      = "INVALID_INTEGRATION_CONFIG"
	CodeNoStores                = "NO_STORES_TO_SYNC"
	CodeSetupFailed             = "SETUP_FAILED"
)

func executionError(err error) *domain.ExecutionError {
	code := CodeSetupFailed

	switch {
	case errors.Is(err, ErrIntegrationNotFound):
		code = CodeIntegrationNotFound
	case errors.Is(err, ErrIntegrationInactive):
		code = CodeIntegrationInactive
	case errors.Is(err, ErrIntegrationTypeMismatch):
		code = CodeIntegrationTypeMismatch
	case errors.Is(err, domain.ErrInvalidIntegrationConfig):
		code = CodeInvalidIntegration
	case errors.Is(err, ErrNoStoresToSync):
		code = CodeNoStores
	}

	return &domain.ExecutionError{
		Code:    code,
		Message: err.Error(),
	}
}
