package syncing

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/discount-sync-api/infrastructure/repository"
	"github.com/vfg2006/discount-sync-api/internal/config"
	"github.com/vfg2006/discount-sync-api/internal/domain"
	"github.com/vfg2006/discount-sync-api/pkg/metrics"
	"github.com/vfg2006/discount-sync-api/pkg/utils"
)

const (
	auditCategory       = "sync"
	notificationTimeout = 10 * time.Second
)

// Repositories agrupa o acesso a dados usado pelo motor
type Repositories struct {
	Stores               repository.StoreRepository
	CachedProducts       repository.CachedProductRepository
	Integrations         repository.IntegrationRepository
	NotificationChannels repository.NotificationChannelRepository
	Executions           repository.SyncExecutionRepository
}

// Service orquestra a sincronização PDV → plataforma de descontos e a conciliação entre os dois lados
type Service struct {
	cfg      config.Sync
	location *time.Location
	repos    Repositories
	factory  ClientFactory
	locker   RunLocker
	audit    AuditLogger
	now      func() time.Time
	newID    func() (string, error)
}

func NewService(cfg config.Sync, repos Repositories, factory ClientFactory, locker RunLocker, audit AuditLogger) *Service {
	return &Service{
		cfg:      cfg,
		location: cfg.Location(),
		repos:    repos,
		factory:  factory,
		locker:   locker,
		audit:    audit,
		now:      time.Now,
		newID:    utils.GenerateExecutionID,
	}
}

type adapters struct {
	source SourceAdapter
	target TargetAdapter
}

// RunSync executa uma sincronização completa. Falhas de preparação não retornam erro:
// a execução é gravada como FAILED e devolvida normalmente.
func (s *Service) RunSync(ctx context.Context, req domain.SyncRequest) (*domain.SyncExecutionResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// A trava cobre as lojas efetivamente resolvidas, seja qual for a origem do pedido
	stores, storesErr := s.resolveStores(ctx, req)
	keys := StoreLockKeys(stores)

	unlock, err := s.lockStores(ctx, keys)
	if err != nil {
		return nil, err
	}
	defer unlock()

	// Uma execução iniciada vai até o fim mesmo que o chamador desista
	ctx = context.WithoutCancel(ctx)

	executionID, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	startedAt := s.now()
	execution := &domain.SyncExecutionResult{
		ID:              executionID,
		SyncConfigID:    req.SyncConfigID,
		Status:          domain.SyncStatusRunning,
		StartedAt:       startedAt,
		StoresProcessed: make([]domain.StoreResult, 0),
		LockKeys:        keys,
	}

	if err := s.repos.Executions.Create(ctx, execution); err != nil {
		return nil, fmt.Errorf("erro ao registrar execução: %w", err)
	}

	sessionID := &execution.ID
	s.audit.Log(ctx, "info", auditCategory, "Sincronização iniciada", map[string]any{
		"source_integration_id": req.SourceIntegrationID,
		"target_integration_id": req.TargetIntegrationID,
		"store_ids":             req.StoreIDs,
		"lock_keys":             keys,
	}, sessionID)

	clients, err := s.resolveAdapters(ctx, req)
	if err != nil {
		return s.failRun(ctx, execution, safeNotifier{}, err)
	}

	notifier := s.resolveNotifier(ctx, req.NotificationChannelID)

	if storesErr != nil {
		return s.failRun(ctx, execution, notifier, storesErr)
	}

	notifier.notify(ctx, startedMessage(execution.ID, len(stores)))

	results := make([]domain.StoreResult, 0, len(stores))
	for _, store := range stores {
		result := s.processStore(ctx, store, clients)
		results = append(results, result)

		level := "info"
		if result.Status == domain.StoreResultFailed {
			level = "error"
		}
		s.audit.Log(ctx, level, auditCategory, fmt.Sprintf("Loja %s: %s", store.Name, result.Status), map[string]any{
			"store_id":          result.StoreID,
			"products_synced":   result.ProductsSynced,
			"execution_time_ms": result.ExecutionTimeMs,
			"error":             result.Error,
		}, sessionID)
	}

	var comparisons []domain.ComparisonResult
	if !req.Options.SkipComparison {
		comparisons = s.compareStores(ctx, syncedStores(stores, results), clients, req.Options.CompareWithSource)
	}

	finishedAt := s.now()
	execution.Status = OverallStatus(results)
	execution.FinishedAt = &finishedAt
	execution.StoresProcessed = results
	execution.Summary = domain.NewSummary(results, finishedAt.Sub(startedAt))
	execution.ComparisonResults = comparisons

	persistErr := s.repos.Executions.Update(ctx, execution.ID, domain.SyncExecutionPatch{
		Status:            execution.Status,
		FinishedAt:        finishedAt,
		StoresProcessed:   execution.StoresProcessed,
		Summary:           execution.Summary,
		ComparisonResults: execution.ComparisonResults,
	})

	s.recordRunMetrics(execution)

	logrus.WithFields(logrus.Fields{
		"execution_id":      execution.ID,
		"status":            execution.Status,
		"total_stores":      execution.Summary.TotalStores,
		"successful_stores": execution.Summary.SuccessfulStores,
		"failed_stores":     execution.Summary.FailedStores,
		"products_synced":   execution.Summary.TotalProductsSynced,
		"duration_ms":       execution.Summary.DurationMs,
	}).Info("sync: execução finalizada")

	s.audit.Log(ctx, auditLevel(execution.Status), auditCategory, "Sincronização finalizada", map[string]any{
		"status":  execution.Status,
		"summary": execution.Summary,
	}, sessionID)

	notifier.notify(ctx, completedMessage(execution))

	if persistErr != nil {
		return execution, fmt.Errorf("erro ao gravar resultado da execução %s: %w", execution.ID, persistErr)
	}

	return execution, nil
}

// RunCompareOnly concilia as lojas sem enviar nada ao destino e sem gravar execução
func (s *Service) RunCompareOnly(ctx context.Context, req domain.SyncRequest) ([]domain.ComparisonResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	clients, err := s.resolveAdapters(ctx, req)
	if err != nil {
		return nil, err
	}

	stores, err := s.resolveStores(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.compareStores(ctx, stores, clients, req.Options.CompareWithSource), nil
}

func (s *Service) ListExecutions(ctx context.Context, limit int) ([]*domain.SyncExecutionResult, error) {
	return s.repos.Executions.ListRecent(ctx, limit)
}

func (s *Service) GetExecution(ctx context.Context, executionID string) (*domain.SyncExecutionResult, error) {
	execution, err := s.repos.Executions.GetByID(ctx, executionID)
	if err != nil {
		return nil, err
	}
	if execution == nil {
		return nil, ErrExecutionNotFound
	}
	return execution, nil
}

// processStore nunca retorna erro: qualquer falha vira um StoreResult FAILED
func (s *Service) processStore(ctx context.Context, store *domain.Store, clients adapters) domain.StoreResult {
	start := s.now()

	if s.cfg.StoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.StoreTimeout)
		defer cancel()
	}

	result := domain.StoreResult{
		StoreID:   store.ID,
		StoreName: store.Name,
	}

	finish := func(status domain.StoreResultStatus, err error) domain.StoreResult {
		result.Status = status
		result.ExecutionTimeMs = s.now().Sub(start).Milliseconds()
		if err != nil {
			errMsg := err.Error()
			result.Error = &errMsg
		}

		metrics.StoreResults.WithLabelValues(string(status)).Inc()
		metrics.StoreDuration.Observe(float64(result.ExecutionTimeMs) / 1000)

		if status == domain.StoreResultFailed {
			recordIntegrationError(err)
			logrus.WithFields(logrus.Fields{
				"store_id":   store.ID,
				"store_name": store.Name,
				"error":      msg(err),
			}).Error("sync: falha ao sincronizar loja")
		}

		return result
	}

	products, err := clients.source.FetchDiscountedProducts(ctx, store.RegistrationCode)
	if err != nil {
		return finish(domain.StoreResultFailed, fmt.Errorf("erro ao buscar produtos na origem: %w", err))
	}

	if len(products) == 0 {
		logrus.WithField("store_id", store.ID).Info("sync: origem sem produtos em desconto, loja ignorada")
		return finish(domain.StoreResultSkipped, errors.New("nenhum produto em desconto retornado pela origem"))
	}

	window := ComputeDiscountWindow(s.now(), s.location)

	if err := s.repos.CachedProducts.Replace(ctx, store.ID, domain.NewCachedProducts(store.ID, products, window)); err != nil {
		return finish(domain.StoreResultFailed, fmt.Errorf("erro ao atualizar cache local: %w", err))
	}

	cached, err := s.repos.CachedProducts.ReadActive(ctx, store.ID)
	if err != nil {
		return finish(domain.StoreResultFailed, fmt.Errorf("erro ao ler cache local: %w", err))
	}

	batch := domain.NewDiscountBatch(store.RegistrationCode, cached, window, s.cfg.DefaultProductLimit)
	if err := clients.target.Push(ctx, store.RegistrationCode, batch); err != nil {
		return finish(domain.StoreResultFailed, fmt.Errorf("erro ao enviar lote para o destino: %w", err))
	}

	result.ProductsSynced = len(batch.Items)
	metrics.ProductsSynced.Add(float64(result.ProductsSynced))

	return finish(domain.StoreResultSuccess, nil)
}

func (s *Service) compareStores(ctx context.Context, stores []*domain.Store, clients adapters, withSource bool) []domain.ComparisonResult {
	results := make([]domain.ComparisonResult, 0, len(stores))

	for _, store := range stores {
		result, err := s.compareStore(ctx, store, clients, withSource)
		if err != nil {
			recordIntegrationError(err)
			logrus.WithFields(logrus.Fields{
				"store_id": store.ID,
				"error":    err.Error(),
			}).Warn("sync: falha na conciliação da loja")
			results = append(results, failedComparison(store, err))
			continue
		}

		metrics.ComparisonDifferences.WithLabelValues(string(domain.DifferenceMissing)).Add(float64(result.MissingProducts))
		metrics.ComparisonDifferences.WithLabelValues(string(domain.DifferencePrice)).Add(float64(result.PriceDifferences))
		results = append(results, result)
	}

	return results
}

func (s *Service) compareStore(ctx context.Context, store *domain.Store, clients adapters, withSource bool) (domain.ComparisonResult, error) {
	if s.cfg.StoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.StoreTimeout)
		defer cancel()
	}

	var reference []domain.KeyedSnapshot
	if withSource {
		products, err := clients.source.FetchDiscountedProducts(ctx, store.RegistrationCode)
		if err != nil {
			return domain.ComparisonResult{}, fmt.Errorf("erro ao buscar produtos na origem: %w", err)
		}
		reference = domain.SourceSnapshots(products)
	} else {
		cached, err := s.repos.CachedProducts.ReadActive(ctx, store.ID)
		if err != nil {
			return domain.ComparisonResult{}, fmt.Errorf("erro ao ler cache local: %w", err)
		}
		reference = domain.CachedSnapshots(cached)
	}

	active, err := clients.target.FetchActive(ctx, store.RegistrationCode)
	if err != nil {
		return domain.ComparisonResult{}, fmt.Errorf("erro ao buscar descontos ativos no destino: %w", err)
	}

	result := Compare(reference, domain.TargetSnapshots(active))
	result.StoreID = store.ID
	result.StoreName = store.Name

	return result, nil
}

func (s *Service) resolveAdapters(ctx context.Context, req domain.SyncRequest) (adapters, error) {
	sourceIntegration, err := s.resolveIntegration(ctx, req.SourceIntegrationID, domain.IntegrationTypeSource)
	if err != nil {
		return adapters{}, err
	}

	targetIntegration, err := s.resolveIntegration(ctx, req.TargetIntegrationID, domain.IntegrationTypeTarget)
	if err != nil {
		return adapters{}, err
	}

	source, err := s.factory.NewSource(sourceIntegration)
	if err != nil {
		return adapters{}, fmt.Errorf("erro ao configurar cliente da origem: %w", err)
	}

	target, err := s.factory.NewTarget(targetIntegration)
	if err != nil {
		return adapters{}, fmt.Errorf("erro ao configurar cliente do destino: %w", err)
	}

	return adapters{source: source, target: target}, nil
}

func (s *Service) resolveIntegration(ctx context.Context, integrationID string, expected domain.IntegrationType) (*domain.Integration, error) {
	integration, err := s.repos.Integrations.GetByID(ctx, integrationID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar integração %s: %w", integrationID, err)
	}

	if integration == nil {
		return nil, fmt.Errorf("%w: %s", ErrIntegrationNotFound, integrationID)
	}

	if !integration.Active {
		return nil, fmt.Errorf("%w: %s", ErrIntegrationInactive, integrationID)
	}

	if integration.Type != expected {
		return nil, fmt.Errorf("%w: integração %s é %s, esperado %s", ErrIntegrationTypeMismatch, integrationID, integration.Type, expected)
	}

	return integration, nil
}

// resolveStores usa a lista explícita quando informada; ForceSync inclui lojas inativas dessa lista
func (s *Service) resolveStores(ctx context.Context, req domain.SyncRequest) ([]*domain.Store, error) {
	filter := domain.StoreFilter{
		IDs:             req.StoreIDs,
		IncludeInactive: req.Options.ForceSync && len(req.StoreIDs) > 0,
	}

	stores, err := s.repos.Stores.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar lojas: %w", err)
	}

	if len(stores) == 0 {
		if len(req.StoreIDs) > 0 {
			return nil, fmt.Errorf("%w: nenhuma das lojas informadas está disponível (%s)", ErrNoStoresToSync, strings.Join(req.StoreIDs, ", "))
		}
		return nil, fmt.Errorf("%w: não há lojas ativas cadastradas", ErrNoStoresToSync)
	}

	return stores, nil
}

func (s *Service) resolveNotifier(ctx context.Context, channelID *string) safeNotifier {
	if channelID == nil || *channelID == "" {
		return safeNotifier{}
	}

	channel, err := s.repos.NotificationChannels.GetByID(ctx, *channelID)
	if err != nil || channel == nil || !channel.Active {
		logrus.WithFields(logrus.Fields{
			"channel_id": *channelID,
			"error":      msg(err),
		}).Warn("sync: canal de notificação indisponível, execução seguirá sem notificações")
		return safeNotifier{}
	}

	notifier, err := s.factory.NewNotifier(channel)
	if err != nil {
		logrus.WithError(err).WithField("channel_id", *channelID).Warn("sync: canal de notificação inválido")
		return safeNotifier{}
	}

	return safeNotifier{notifier: notifier, channelID: *channelID}
}

// failRun encerra como FAILED uma execução que não chegou a processar lojas
func (s *Service) failRun(ctx context.Context, execution *domain.SyncExecutionResult, notifier safeNotifier, cause error) (*domain.SyncExecutionResult, error) {
	finishedAt := s.now()

	execution.Status = domain.SyncStatusFailed
	execution.FinishedAt = &finishedAt
	execution.StoresProcessed = make([]domain.StoreResult, 0)
	execution.Summary = domain.NewSummary(nil, finishedAt.Sub(execution.StartedAt))
	execution.ErrorDetails = executionError(cause)

	logrus.WithFields(logrus.Fields{
		"execution_id": execution.ID,
		"code":         execution.ErrorDetails.Code,
		"error":        cause.Error(),
	}).Error("sync: execução abortada na preparação")

	persistErr := s.repos.Executions.Update(ctx, execution.ID, domain.SyncExecutionPatch{
		Status:          execution.Status,
		FinishedAt:      finishedAt,
		StoresProcessed: execution.StoresProcessed,
		Summary:         execution.Summary,
		ErrorDetails:    execution.ErrorDetails,
	})

	s.recordRunMetrics(execution)

	s.audit.Log(ctx, "error", auditCategory, "Sincronização abortada", map[string]any{
		"code":  execution.ErrorDetails.Code,
		"error": cause.Error(),
	}, &execution.ID)

	notifier.notify(ctx, completedMessage(execution))

	if persistErr != nil {
		return execution, fmt.Errorf("erro ao gravar resultado da execução %s: %w", execution.ID, persistErr)
	}

	return execution, nil
}

func (s *Service) recordRunMetrics(execution *domain.SyncExecutionResult) {
	metrics.SyncRuns.WithLabelValues(string(execution.Status)).Inc()
	metrics.SyncRunDuration.Observe(float64(execution.Summary.DurationMs) / 1000)
}

// OverallStatus aplica a política estrita: basta uma loja FAILED para a execução ser FAILED
func OverallStatus(results []domain.StoreResult) domain.SyncStatus {
	for _, r := range results {
		if r.Status == domain.StoreResultFailed {
			return domain.SyncStatusFailed
		}
	}
	return domain.SyncStatusSuccess
}

// StoreLockKeys gera uma chave por loja, ordenada e sem repetição
func StoreLockKeys(stores []*domain.Store) []string {
	keys := make([]string, 0, len(stores))
	for _, store := range stores {
		keys = append(keys, "store:"+store.ID)
	}

	sort.Strings(keys)
	return slices.Compact(keys)
}

func (s *Service) lockStores(ctx context.Context, keys []string) (func(), error) {
	if len(keys) == 0 {
		return func() {}, nil
	}

	unlock, acquired, err := s.locker.TryLock(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar execução em andamento: %w", err)
	}

	if !acquired {
		metrics.SyncRunsRejected.Inc()
		logrus.WithField("lock_keys", keys).Warn("sync: execução recusada, outra execução já está processando estas lojas")
		return nil, ErrSyncAlreadyRunning
	}

	return unlock, nil
}

// syncedStores mantém só as lojas enviadas ao destino nesta execução; as demais não têm o que conciliar
func syncedStores(stores []*domain.Store, results []domain.StoreResult) []*domain.Store {
	synced := make([]*domain.Store, 0, len(stores))
	for i, store := range stores {
		if results[i].Status == domain.StoreResultSuccess {
			synced = append(synced, store)
		}
	}
	return synced
}

// FailStaleExecutions encerra execuções RUNNING antigas cujas lojas não estão travadas.
// Uma trava ainda ativa indica que a execução segue viva em outra instância.
func (s *Service) FailStaleExecutions(ctx context.Context, startedBefore time.Time, reason string) (int64, error) {
	stale, err := s.repos.Executions.ListStaleRunning(ctx, startedBefore)
	if err != nil {
		return 0, err
	}

	ids := make([]string, 0, len(stale))
	for _, execution := range stale {
		if len(execution.LockKeys) > 0 {
			unlock, acquired, err := s.locker.TryLock(ctx, execution.LockKeys)
			if err != nil {
				return 0, fmt.Errorf("erro ao verificar trava da execução %s: %w", execution.ID, err)
			}

			if !acquired {
				logrus.WithFields(logrus.Fields{
					"execution_id": execution.ID,
					"lock_keys":    execution.LockKeys,
				}).Info("sync: execução antiga ainda em andamento em outra instância, mantida como RUNNING")
				continue
			}
			unlock()
		}

		ids = append(ids, execution.ID)
	}

	if len(ids) == 0 {
		return 0, nil
	}

	return s.repos.Executions.FailStaleRunning(ctx, ids, reason)
}

func validateRequest(req domain.SyncRequest) error {
	if req.SourceIntegrationID == "" || req.TargetIntegrationID == "" {
		return fmt.Errorf("%w: sourceIntegrationId e targetIntegrationId são obrigatórios", ErrInvalidRequest)
	}
	return nil
}

func recordIntegrationError(err error) {
	var integrationErr *domain.IntegrationError
	if errors.As(err, &integrationErr) {
		metrics.IntegrationErrors.WithLabelValues(integrationErr.System).Inc()
	}
}

func auditLevel(status domain.SyncStatus) string {
	if status == domain.SyncStatusFailed {
		return "error"
	}
	return "info"
}

func msg(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
