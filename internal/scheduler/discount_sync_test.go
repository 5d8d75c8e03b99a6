package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/discount-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/discount-sync-api/internal/config"
	"github.com/vfg2006/discount-sync-api/internal/domain"
	syncmocks "github.com/vfg2006/discount-sync-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*DiscountSyncService, *mocks.MockSyncConfigRepository, *syncmocks.MockSyncer) {
	ctrl := gomock.NewController(t)

	configRepo := mocks.NewMockSyncConfigRepository(ctrl)
	syncer := syncmocks.NewMockSyncer(ctrl)

	appConfig := &config.Config{
		Sync: config.Sync{Timezone: "UTC"},
		SyncSchedule: config.SyncSchedule{
			Enabled:        true,
			ReloadInterval: 5 * time.Minute,
		},
	}

	return NewDiscountSyncService(configRepo, syncer, appConfig), configRepo, syncer
}

func syncConfig(id, cron string) *domain.SyncConfig {
	return &domain.SyncConfig{
		ID:                  id,
		Name:                "Config " + id,
		CronExpression:      cron,
		SourceIntegrationID: "src-1",
		TargetIntegrationID: "tgt-1",
		StoreIDs:            []string{"store-1"},
		Active:              true,
		UpdatedAt:           time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestDiscountSyncService_reloadJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("Agenda configurações ativas e ignora cron inválido", func(t *testing.T) {
		service, configRepo, _ := newTestService(t)

		configRepo.EXPECT().ListActive(gomock.Any()).Return([]*domain.SyncConfig{
			syncConfig("cfg-1", "0 7 * * *"),
			syncConfig("cfg-2", "not a cron"),
		}, nil)

		require.NoError(t, service.reloadJobs(ctx))

		assert.Contains(t, service.jobs, "cfg-1")
		assert.NotContains(t, service.jobs, "cfg-2")
		assert.Len(t, service.scheduler.Jobs(), 1)
	})

	t.Run("Reagenda configuração alterada e remove a desativada", func(t *testing.T) {
		service, configRepo, _ := newTestService(t)

		changed := syncConfig("cfg-1", "30 8 * * *")
		changed.UpdatedAt = changed.UpdatedAt.Add(time.Hour)

		gomock.InOrder(
			configRepo.EXPECT().ListActive(gomock.Any()).Return([]*domain.SyncConfig{
				syncConfig("cfg-1", "0 7 * * *"),
				syncConfig("cfg-2", "0 9 * * *"),
			}, nil),
			configRepo.EXPECT().ListActive(gomock.Any()).Return([]*domain.SyncConfig{changed}, nil),
		)

		require.NoError(t, service.reloadJobs(ctx))
		require.Len(t, service.scheduler.Jobs(), 2)

		require.NoError(t, service.reloadJobs(ctx))

		assert.Len(t, service.scheduler.Jobs(), 1)
		assert.NotContains(t, service.jobs, "cfg-2")
		assert.Equal(t, "30 8 * * *", service.jobs["cfg-1"].config.CronExpression)
	})

	t.Run("Configuração sem alteração não é reagendada", func(t *testing.T) {
		service, configRepo, _ := newTestService(t)

		configRepo.EXPECT().ListActive(gomock.Any()).Return([]*domain.SyncConfig{
			syncConfig("cfg-1", "0 7 * * *"),
		}, nil).Times(2)

		require.NoError(t, service.reloadJobs(ctx))
		first := service.scheduler.Jobs()[0]

		require.NoError(t, service.reloadJobs(ctx))

		require.Len(t, service.scheduler.Jobs(), 1)
		assert.Same(t, first, service.scheduler.Jobs()[0])
	})

	t.Run("Erro do repositório é propagado", func(t *testing.T) {
		service, configRepo, _ := newTestService(t)

		configRepo.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("db down"))

		assert.EqualError(t, service.reloadJobs(ctx), "db down")
		assert.Empty(t, service.jobs)
	})
}

func TestDiscountSyncService_runConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("Executa a sincronização com o pedido da configuração", func(t *testing.T) {
		service, configRepo, syncer := newTestService(t)
		cfg := syncConfig("cfg-1", "0 7 * * *")
		cfg.SkipComparison = true

		configRepo.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(cfg, nil)
		syncer.EXPECT().RunSync(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req domain.SyncRequest) (*domain.SyncExecutionResult, error) {
				assert.Equal(t, "src-1", req.SourceIntegrationID)
				assert.Equal(t, "tgt-1", req.TargetIntegrationID)
				assert.Equal(t, []string{"store-1"}, req.StoreIDs)
				require.NotNil(t, req.SyncConfigID)
				assert.Equal(t, "cfg-1", *req.SyncConfigID)
				assert.True(t, req.Options.SkipComparison)

				return &domain.SyncExecutionResult{ID: "exec-1", Status: domain.SyncStatusSuccess}, nil
			})

		service.runConfig(ctx, "cfg-1")

		info := service.runs["cfg-1"]
		require.NotNil(t, info)
		assert.False(t, info.running)
		assert.Equal(t, "exec-1", info.executionID)
		assert.Equal(t, domain.SyncStatusSuccess, info.status)
		assert.Empty(t, info.err)
	})

	t.Run("Configuração inativa não executa", func(t *testing.T) {
		service, configRepo, _ := newTestService(t)
		cfg := syncConfig("cfg-1", "0 7 * * *")
		cfg.Active = false

		configRepo.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(cfg, nil)

		service.runConfig(ctx, "cfg-1")

		assert.Equal(t, ErrSyncConfigNotFound.Error(), service.runs["cfg-1"].err)
	})

	t.Run("Execução em andamento é ignorada", func(t *testing.T) {
		service, _, _ := newTestService(t)
		service.runs["cfg-1"] = &runInfo{running: true}

		service.runConfig(ctx, "cfg-1")

		assert.True(t, service.runs["cfg-1"].running)
	})

	t.Run("Registra erro quando a execução é rejeitada", func(t *testing.T) {
		service, configRepo, syncer := newTestService(t)

		configRepo.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(syncConfig("cfg-1", "0 7 * * *"), nil)
		syncer.EXPECT().RunSync(gomock.Any(), gomock.Any()).Return(nil, errors.New("already running"))

		service.runConfig(ctx, "cfg-1")

		assert.Equal(t, "already running", service.runs["cfg-1"].err)
		assert.False(t, service.runs["cfg-1"].running)
	})
}

func TestDiscountSyncService_TriggerManualSync(t *testing.T) {
	ctx := context.Background()

	t.Run("Configuração inexistente", func(t *testing.T) {
		service, configRepo, _ := newTestService(t)
		configRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		assert.ErrorIs(t, service.TriggerManualSync(ctx, "missing"), ErrSyncConfigNotFound)
	})

	t.Run("Configuração já em execução", func(t *testing.T) {
		service, configRepo, _ := newTestService(t)
		configRepo.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(syncConfig("cfg-1", "0 7 * * *"), nil)
		service.runs["cfg-1"] = &runInfo{running: true}

		assert.ErrorIs(t, service.TriggerManualSync(ctx, "cfg-1"), ErrSyncConfigRunning)
	})

	t.Run("Dispara a execução em background", func(t *testing.T) {
		service, configRepo, syncer := newTestService(t)
		done := make(chan struct{})

		configRepo.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(syncConfig("cfg-1", "0 7 * * *"), nil).Times(2)
		syncer.EXPECT().RunSync(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, domain.SyncRequest) (*domain.SyncExecutionResult, error) {
				close(done)
				return &domain.SyncExecutionResult{ID: "exec-1", Status: domain.SyncStatusSuccess}, nil
			})

		require.NoError(t, service.TriggerManualSync(ctx, "cfg-1"))

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("sincronização manual não foi executada")
		}

		assert.Eventually(t, func() bool {
			service.mu.Lock()
			defer service.mu.Unlock()
			info, ok := service.runs["cfg-1"]
			return ok && !info.running && info.executionID == "exec-1"
		}, 2*time.Second, 10*time.Millisecond)
	})
}

func TestDiscountSyncService_GetStatus(t *testing.T) {
	service, configRepo, _ := newTestService(t)

	configRepo.EXPECT().ListActive(gomock.Any()).Return([]*domain.SyncConfig{
		syncConfig("cfg-2", "0 9 * * *"),
		syncConfig("cfg-1", "0 7 * * *"),
	}, nil)
	require.NoError(t, service.reloadJobs(context.Background()))

	service.runs["cfg-1"] = &runInfo{executionID: "exec-1", status: domain.SyncStatusFailed, err: "boom"}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "5m0s", status["reload_interval"])

	jobs, ok := status["jobs"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, jobs, 2)
	assert.Equal(t, "cfg-1", jobs[0]["sync_config_id"])
	assert.Equal(t, "exec-1", jobs[0]["last_execution_id"])
	assert.Equal(t, "boom", jobs[0]["last_error"])
	assert.Equal(t, "cfg-2", jobs[1]["sync_config_id"])
	assert.Equal(t, false, jobs[1]["running"])
}

func TestDiscountSyncService_StartDisabled(t *testing.T) {
	service, _, _ := newTestService(t)
	service.config.Enabled = false

	require.NoError(t, service.Start(context.Background()))
	assert.False(t, service.scheduler.IsRunning())
}
