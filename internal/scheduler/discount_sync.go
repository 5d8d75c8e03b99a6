package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/discount-sync-api/infrastructure/repository"
	"github.com/vfg2006/discount-sync-api/internal/config"
	"github.com/vfg2006/discount-sync-api/internal/domain"
	"github.com/vfg2006/discount-sync-api/internal/usecases/syncing"
)

var (
	ErrSyncConfigNotFound = errors.New("sync config not found")
	ErrSyncConfigRunning  = errors.New("sync config already running")
)

type scheduledJob struct {
	config *domain.SyncConfig
}

// runInfo guarda o resultado da última execução disparada pelo agendador
type runInfo struct {
	running     bool
	startedAt   time.Time
	completedAt time.Time
	executionID string
	status      domain.SyncStatus
	err         string
}

// DiscountSyncService agenda as sincronizações cadastradas em sync_configs.
// As configurações são relidas periodicamente, então alterações no banco entram sem reiniciar a API.
type DiscountSyncService struct {
	scheduler  *gocron.Scheduler
	config     config.SyncSchedule
	configRepo repository.SyncConfigRepository
	syncer     syncing.Syncer
	mu         sync.Mutex
	jobs       map[string]scheduledJob
	runs       map[string]*runInfo
	lastReload time.Time
}

func NewDiscountSyncService(
	configRepo repository.SyncConfigRepository,
	syncer syncing.Syncer,
	appConfig *config.Config,
) *DiscountSyncService {
	scheduler := gocron.NewScheduler(appConfig.Sync.Location())

	logrus.WithFields(logrus.Fields{
		"sync_enabled":    appConfig.SyncSchedule.Enabled,
		"reload_interval": appConfig.SyncSchedule.ReloadInterval.String(),
		"timezone":        appConfig.Sync.Timezone,
	}).Info("Configuração do agendador de sincronização de descontos carregada")

	return &DiscountSyncService{
		scheduler:  scheduler,
		config:     appConfig.SyncSchedule,
		configRepo: configRepo,
		syncer:     syncer,
		jobs:       make(map[string]scheduledJob),
		runs:       make(map[string]*runInfo),
	}
}

// Start carrega as configurações ativas e inicia o agendador
func (s *DiscountSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Agendador de sincronização de descontos desabilitado por configuração")
		return nil
	}

	if err := s.reloadJobs(ctx); err != nil {
		return fmt.Errorf("erro ao carregar configurações de sincronização: %w", err)
	}

	if s.config.ReloadInterval > 0 {
		_, err := s.scheduler.Every(s.config.ReloadInterval).WaitForSchedule().Do(func() {
			if err := s.reloadJobs(ctx); err != nil {
				logrus.WithError(err).Error("Erro ao recarregar configurações de sincronização")
			}
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar recarga das configurações: %w", err)
		}
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de descontos")
		s.scheduler.Stop()
	}()

	return nil
}

// reloadJobs sincroniza os jobs do gocron com as configurações ativas do banco
func (s *DiscountSyncService) reloadJobs(ctx context.Context) error {
	configs, err := s.configRepo.ListActive(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	active := make(map[string]struct{}, len(configs))
	for _, cfg := range configs {
		active[cfg.ID] = struct{}{}

		current, exists := s.jobs[cfg.ID]
		if exists && current.config.CronExpression == cfg.CronExpression && current.config.UpdatedAt.Equal(cfg.UpdatedAt) {
			continue
		}

		if exists {
			_ = s.scheduler.RemoveByTag(cfg.ID)
			delete(s.jobs, cfg.ID)
		}

		configID := cfg.ID
		_, err := s.scheduler.Cron(cfg.CronExpression).Tag(configID).Do(func() {
			s.runConfig(ctx, configID)
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"sync_config_id": cfg.ID,
				"cron":           cfg.CronExpression,
				"error":          err.Error(),
			}).Error("Expressão cron inválida, configuração ignorada")
			continue
		}

		s.jobs[cfg.ID] = scheduledJob{config: cfg}
		logrus.WithFields(logrus.Fields{
			"sync_config_id": cfg.ID,
			"name":           cfg.Name,
			"cron":           cfg.CronExpression,
		}).Info("Sincronização agendada")
	}

	for id := range s.jobs {
		if _, ok := active[id]; ok {
			continue
		}
		_ = s.scheduler.RemoveByTag(id)
		delete(s.jobs, id)
		logrus.WithField("sync_config_id", id).Info("Sincronização removida do agendador")
	}

	s.lastReload = time.Now()

	return nil
}

// runConfig executa uma configuração salva; execuções sobrepostas da mesma configuração são ignoradas
func (s *DiscountSyncService) runConfig(ctx context.Context, configID string) {
	s.mu.Lock()
	info, ok := s.runs[configID]
	if !ok {
		info = &runInfo{}
		s.runs[configID] = info
	}
	if info.running {
		s.mu.Unlock()
		logrus.WithField("sync_config_id", configID).Info("Sincronização já em andamento, ignorando")
		return
	}
	info.running = true
	info.startedAt = time.Now()
	s.mu.Unlock()

	var (
		result *domain.SyncExecutionResult
		runErr error
	)

	defer func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		info.running = false
		info.completedAt = time.Now()
		info.err = ""
		if result != nil {
			info.executionID = result.ID
			info.status = result.Status
		}
		if runErr != nil {
			info.err = runErr.Error()
		}
	}()

	cfg, err := s.configRepo.GetByID(ctx, configID)
	if err != nil {
		runErr = err
		logrus.WithError(err).WithField("sync_config_id", configID).Error("Erro ao buscar configuração de sincronização")
		return
	}
	if cfg == nil || !cfg.Active {
		runErr = ErrSyncConfigNotFound
		logrus.WithField("sync_config_id", configID).Warn("Configuração removida ou inativa, execução ignorada")
		return
	}

	logrus.WithFields(logrus.Fields{
		"sync_config_id": cfg.ID,
		"name":           cfg.Name,
	}).Info("Iniciando sincronização agendada")

	result, runErr = s.syncer.RunSync(ctx, cfg.ToRequest())
	if runErr != nil {
		logrus.WithError(runErr).WithField("sync_config_id", cfg.ID).Error("Sincronização agendada não executada")
		return
	}

	logrus.WithFields(logrus.Fields{
		"sync_config_id": cfg.ID,
		"execution_id":   result.ID,
		"status":         result.Status,
		"duration_ms":    result.Summary.DurationMs,
	}).Info("Sincronização agendada concluída")
}

// TriggerManualSync dispara em background a execução de uma configuração salva
func (s *DiscountSyncService) TriggerManualSync(ctx context.Context, configID string) error {
	cfg, err := s.configRepo.GetByID(ctx, configID)
	if err != nil {
		return err
	}
	if cfg == nil || !cfg.Active {
		return ErrSyncConfigNotFound
	}

	s.mu.Lock()
	info, ok := s.runs[configID]
	running := ok && info.running
	s.mu.Unlock()

	if running {
		logrus.WithField("sync_config_id", configID).Info("Sincronização já em andamento, ignorando solicitação manual")
		return ErrSyncConfigRunning
	}

	logrus.WithField("sync_config_id", configID).Info("Iniciando sincronização manual")
	go s.runConfig(context.WithoutCancel(ctx), configID)

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *DiscountSyncService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	nextRuns := make(map[string]time.Time)
	for _, job := range s.scheduler.Jobs() {
		for _, tag := range job.Tags() {
			nextRuns[tag] = job.NextRun()
		}
	}

	ids := make([]string, 0, len(s.jobs))
	for id := range s.jobs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	jobs := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		job := s.jobs[id]
		entry := map[string]any{
			"sync_config_id": id,
			"name":           job.config.Name,
			"cron":           job.config.CronExpression,
			"next_run":       nextRuns[id],
			"running":        false,
		}

		if info, ok := s.runs[id]; ok {
			entry["running"] = info.running
			entry["last_sync_started_at"] = info.startedAt
			entry["last_sync_completed_at"] = info.completedAt
			entry["last_execution_id"] = info.executionID
			entry["last_status"] = info.status
			if info.err != "" {
				entry["last_error"] = info.err
			}
		}

		jobs = append(jobs, entry)
	}

	return map[string]any{
		"sync_enabled":     s.config.Enabled,
		"reload_interval":  s.config.ReloadInterval.String(),
		"last_reload_at":   s.lastReload,
		"scheduler_active": s.scheduler.IsRunning(),
		"jobs":             jobs,
	}
}
