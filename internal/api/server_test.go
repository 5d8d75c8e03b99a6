package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/discount-sync-api/internal/config"
	"github.com/vfg2006/discount-sync-api/internal/domain"
	"github.com/vfg2006/discount-sync-api/internal/scheduler"
	authmocks "github.com/vfg2006/discount-sync-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/discount-sync-api/internal/usecases/syncing"
	syncmocks "github.com/vfg2006/discount-sync-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/discount-sync-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	operatorKey = "operator-key"
	viewerToken = "viewer-token"
	adminToken  = "admin-token"
)

type fakeCron struct {
	status    map[string]any
	triggered []string
	err       error
}

func (f *fakeCron) GetStatus() map[string]any {
	return f.status
}

func (f *fakeCron) TriggerManualSync(_ context.Context, configID string) error {
	if f.err != nil {
		return f.err
	}
	f.triggered = append(f.triggered, configID)
	return nil
}

type fixture struct {
	handler http.Handler
	syncer  *syncmocks.MockSyncer
	cron    *fakeCron
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	syncer := syncmocks.NewMockSyncer(ctrl)
	auth := authmocks.NewMockAuthenticator(ctrl)
	cron := &fakeCron{status: map[string]any{"sync_enabled": true}}

	auth.EXPECT().ValidateAPIKey(operatorKey).Return(&domain.Claims{UserName: "api-key", UserRoleID: domain.RoleOperator}, nil).AnyTimes()
	auth.EXPECT().ValidateAPIKey(gomock.Not(operatorKey)).Return(nil, errors.New("invalid")).AnyTimes()
	auth.EXPECT().ValidateToken(viewerToken).Return(&domain.Claims{UserID: 2, UserRoleID: domain.RoleViewer}, nil).AnyTimes()
	auth.EXPECT().ValidateToken(adminToken).Return(&domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, nil).AnyTimes()
	auth.EXPECT().ValidateToken(gomock.Any()).Return(nil, errors.New("invalid")).AnyTimes()

	cfg := &config.Config{Server: config.Server{Host: "localhost", Port: "0"}}

	return &fixture{
		handler: NewHandler(cfg, syncer, cron, auth),
		syncer:  syncer,
		cron:    cron,
	}
}

func (f *fixture) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func withAPIKey(key string) map[string]string {
	return map[string]string{"X-API-Key": key}
}

func withBearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func syncRequest() domain.SyncRequest {
	return domain.SyncRequest{
		SourceIntegrationID: "src-1",
		TargetIntegrationID: "tgt-1",
		StoreIDs:            []string{"store-1"},
	}
}

func TestServer_PublicRoutes(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/healthcheck", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "discount_sync_")
}

func TestServer_Authentication(t *testing.T) {
	f := newFixture(t)

	t.Run("Sem credenciais", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/v1/sync/executions", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, decodeError(t, rec).Code)
	})

	t.Run("Chave de API inválida", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/v1/sync/executions", nil, withAPIKey("wrong"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidAPIKey, decodeError(t, rec).Code)
	})

	t.Run("Token sem Bearer", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/v1/sync/executions", nil, map[string]string{"Authorization": viewerToken})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Perfil de leitura não dispara sincronização", func(t *testing.T) {
		rec := f.do(http.MethodPost, "/v1/sync/run", syncRequest(), withBearer(viewerToken))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeError(t, rec).Code)
	})

	t.Run("Rota inexistente", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/v1/unknown", nil, withBearer(adminToken))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)
	})
}

func TestServer_RunSync(t *testing.T) {
	t.Run("Retorna o resultado da execução", func(t *testing.T) {
		f := newFixture(t)
		finishedAt := time.Date(2025, 3, 10, 12, 31, 0, 0, time.UTC)

		f.syncer.EXPECT().RunSync(gomock.Any(), syncRequest()).Return(&domain.SyncExecutionResult{
			ID:         "exec-1",
			Status:     domain.SyncStatusSuccess,
			FinishedAt: &finishedAt,
			Summary:    domain.Summary{TotalStores: 1, SuccessfulStores: 1, TotalProductsSynced: 3},
		}, nil)

		rec := f.do(http.MethodPost, "/v1/sync/run", syncRequest(), withAPIKey(operatorKey))

		require.Equal(t, http.StatusOK, rec.Code)

		var result domain.SyncExecutionResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "exec-1", result.ID)
		assert.Equal(t, domain.SyncStatusSuccess, result.Status)
		assert.Equal(t, 3, result.Summary.TotalProductsSynced)
	})

	t.Run("Execução concorrente retorna 409", func(t *testing.T) {
		f := newFixture(t)
		f.syncer.EXPECT().RunSync(gomock.Any(), gomock.Any()).Return(nil, syncing.ErrSyncAlreadyRunning)

		rec := f.do(http.MethodPost, "/v1/sync/run", syncRequest(), withAPIKey(operatorKey))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrSyncAlreadyRunning, decodeError(t, rec).Code)
	})

	t.Run("Pedido inválido retorna 400", func(t *testing.T) {
		f := newFixture(t)
		f.syncer.EXPECT().RunSync(gomock.Any(), gomock.Any()).Return(nil, syncing.ErrInvalidRequest)

		rec := f.do(http.MethodPost, "/v1/sync/run", domain.SyncRequest{}, withAPIKey(operatorKey))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("JSON malformado retorna 400", func(t *testing.T) {
		f := newFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/sync/run", bytes.NewBufferString("{"))
		req.Header.Set("X-API-Key", operatorKey)
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("Falha ao gravar resultado devolve a execução nos detalhes", func(t *testing.T) {
		f := newFixture(t)
		f.syncer.EXPECT().RunSync(gomock.Any(), gomock.Any()).
			Return(&domain.SyncExecutionResult{ID: "exec-2", Status: domain.SyncStatusSuccess}, errors.New("db down"))

		rec := f.do(http.MethodPost, "/v1/sync/run", syncRequest(), withAPIKey(operatorKey))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, apiErr.Code)
		details, ok := apiErr.Details.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "exec-2", details["id"])
	})
}

func TestServer_CompareSync(t *testing.T) {
	t.Run("Retorna as comparações", func(t *testing.T) {
		f := newFixture(t)
		f.syncer.EXPECT().RunCompareOnly(gomock.Any(), syncRequest()).Return([]domain.ComparisonResult{
			{StoreID: "store-1", TotalDifferences: 2, MissingProducts: 1, PriceDifferences: 1},
		}, nil)

		rec := f.do(http.MethodPost, "/v1/sync/compare", syncRequest(), withAPIKey(operatorKey))

		require.Equal(t, http.StatusOK, rec.Code)

		var results []domain.ComparisonResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
		require.Len(t, results, 1)
		assert.Equal(t, 2, results[0].TotalDifferences)
	})

	t.Run("Integração inexistente retorna 422", func(t *testing.T) {
		f := newFixture(t)
		f.syncer.EXPECT().RunCompareOnly(gomock.Any(), gomock.Any()).Return(nil, syncing.ErrIntegrationNotFound)

		rec := f.do(http.MethodPost, "/v1/sync/compare", syncRequest(), withAPIKey(operatorKey))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, apiErrors.ErrSyncSetupFailed, decodeError(t, rec).Code)
	})
}

func TestServer_Executions(t *testing.T) {
	t.Run("Lista com limite padrão", func(t *testing.T) {
		f := newFixture(t)
		f.syncer.EXPECT().ListExecutions(gomock.Any(), 20).Return(nil, nil)

		rec := f.do(http.MethodGet, "/v1/sync/executions", nil, withBearer(viewerToken))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("Limite informado", func(t *testing.T) {
		f := newFixture(t)
		f.syncer.EXPECT().ListExecutions(gomock.Any(), 5).Return([]*domain.SyncExecutionResult{{ID: "exec-1"}}, nil)

		rec := f.do(http.MethodGet, "/v1/sync/executions?limit=5", nil, withBearer(viewerToken))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Limite inválido", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/v1/sync/executions?limit=-1", nil, withBearer(viewerToken))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Busca por id", func(t *testing.T) {
		f := newFixture(t)
		f.syncer.EXPECT().GetExecution(gomock.Any(), "exec-1").Return(&domain.SyncExecutionResult{ID: "exec-1"}, nil)

		rec := f.do(http.MethodGet, "/v1/sync/executions/exec-1", nil, withBearer(viewerToken))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"exec-1"`)
	})

	t.Run("Execução inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.syncer.EXPECT().GetExecution(gomock.Any(), "missing").Return(nil, syncing.ErrExecutionNotFound)

		rec := f.do(http.MethodGet, "/v1/sync/executions/missing", nil, withBearer(viewerToken))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrExecutionNotFound, decodeError(t, rec).Code)
	})
}

func TestServer_CronJobs(t *testing.T) {
	t.Run("Status", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/v1/cron/status", nil, withBearer(viewerToken))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"sync_enabled":true}`, rec.Body.String())
	})

	t.Run("Disparo manual exige administrador", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/v1/cron/cfg-1/run", nil, withAPIKey(operatorKey))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, f.cron.triggered)
	})

	t.Run("Disparo manual", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/v1/cron/cfg-1/run", nil, withBearer(adminToken))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, []string{"cfg-1"}, f.cron.triggered)
	})

	t.Run("Configuração inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.cron.err = scheduler.ErrSyncConfigNotFound

		rec := f.do(http.MethodPost, "/v1/cron/cfg-9/run", nil, withBearer(adminToken))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Configuração em execução", func(t *testing.T) {
		f := newFixture(t)
		f.cron.err = scheduler.ErrSyncConfigRunning

		rec := f.do(http.MethodPost, "/v1/cron/cfg-1/run", nil, withBearer(adminToken))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
