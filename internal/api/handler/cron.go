package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/discount-sync-api/internal/scheduler"
	"github.com/vfg2006/discount-sync-api/pkg/apiErrors"
)

// CronScheduler é a parte do agendador exposta pela API
type CronScheduler interface {
	GetStatus() map[string]any
	TriggerManualSync(ctx context.Context, configID string) error
}

// RunCronJob executa manualmente uma configuração de sincronização agendada
func RunCronJob(cron CronScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		configID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if configID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Configuração de sincronização não especificada", nil)
			return
		}

		err := cron.TriggerManualSync(r.Context(), configID)
		if err != nil {
			switch {
			case errors.Is(err, scheduler.ErrSyncConfigNotFound):
				apiErrors.WriteError(w, apiErrors.ErrSyncConfigNotFound, "Configuração de sincronização não encontrada ou inativa", nil)
			case errors.Is(err, scheduler.ErrSyncConfigRunning):
				apiErrors.WriteError(w, apiErrors.ErrSyncConfigRunning, "Configuração já está em execução", nil)
			default:
				logrus.WithError(err).WithField("sync_config_id", configID).Error("Erro ao disparar sincronização manual")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao disparar sincronização", nil)
			}
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message":        "Sincronização iniciada com sucesso",
			"sync_config_id": configID,
		})
	}
}

// GetCronStatus retorna o status das sincronizações agendadas
func GetCronStatus(cron CronScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		writeJSON(w, http.StatusOK, cron.GetStatus())
	}
}
