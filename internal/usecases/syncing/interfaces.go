package syncing

import (
	"context"

	"github.com/vfg2006/discount-sync-api/internal/domain"
)

// SourceAdapter busca os descontos vigentes de uma loja no PDV
type SourceAdapter interface {
	FetchDiscountedProducts(ctx context.Context, storeIdentifier string) ([]domain.SourceProduct, error)
}

// TargetAdapter publica e consulta descontos na plataforma de destino
type TargetAdapter interface {
	// Push envia o lote completo da loja; sucesso ou falha vale para o lote inteiro
	Push(ctx context.Context, storeRegistration string, batch domain.DiscountBatch) error
	FetchActive(ctx context.Context, storeRegistration string) ([]domain.TargetProduct, error)
}

type Notifier interface {
	Send(ctx context.Context, text string) error
}

// ClientFactory constrói os clientes externos a cada execução a partir das integrações cadastradas
type ClientFactory interface {
	NewSource(integration *domain.Integration) (SourceAdapter, error)
	NewTarget(integration *domain.Integration) (TargetAdapter, error)
	NewNotifier(channel *domain.NotificationChannel) (Notifier, error)
}

// RunLocker impede duas execuções simultâneas sobre as mesmas lojas.
// TryLock trava todas as chaves ou nenhuma.
type RunLocker interface {
	TryLock(ctx context.Context, keys []string) (unlock func(), acquired bool, err error)
}

// AuditLogger registra eventos da sincronização no log e no banco
type AuditLogger interface {
	Log(ctx context.Context, level, category, message string, metadata map[string]any, sessionID *string)
}

// Syncer é o contrato consumido pela API e pelo agendador
type Syncer interface {
	RunSync(ctx context.Context, req domain.SyncRequest) (*domain.SyncExecutionResult, error)
	RunCompareOnly(ctx context.Context, req domain.SyncRequest) ([]domain.ComparisonResult, error)
	ListExecutions(ctx context.Context, limit int) ([]*domain.SyncExecutionResult, error)
	GetExecution(ctx context.Context, executionID string) (*domain.SyncExecutionResult, error)
}
