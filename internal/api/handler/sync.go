package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/discount-sync-api/internal/domain"
	"github.com/vfg2006/discount-sync-api/internal/usecases/syncing"
	"github.com/vfg2006/discount-sync-api/pkg/apiErrors"
	"github.com/vfg2006/discount-sync-api/pkg/log"
	"github.com/vfg2006/discount-sync-api/pkg/utils"
)

const (
	defaultExecutionsLimit = 20
	maxExecutionsLimit     = 100
)

// RunSync dispara uma sincronização e responde com o resultado completo da execução.
// Execuções FAILED por erro de preparação também respondem 200 com error_details.
func RunSync(syncer syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.FromContext(r.Context())
		logger.Info("INIT - RunSync")

		var req domain.SyncRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		result, err := syncer.RunSync(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, syncing.ErrInvalidRequest):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			case errors.Is(err, syncing.ErrSyncAlreadyRunning):
				apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "Já existe uma sincronização em andamento para estas lojas", nil)
			case result != nil:
				logger.WithError(err).WithField("execution_id", result.ID).Error("Execução concluída sem persistir o resultado")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Execução concluída, mas o resultado não foi gravado", result)
			default:
				logger.WithError(err).Error("Erro ao executar sincronização")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar sincronização", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// CompareSync apenas concilia origem/cache e destino, sem enviar descontos
func CompareSync(syncer syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.FromContext(r.Context())
		logger.Info("INIT - CompareSync")

		var req domain.SyncRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		results, err := syncer.RunCompareOnly(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, syncing.ErrInvalidRequest):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			case isSetupError(err):
				apiErrors.WriteError(w, apiErrors.ErrSyncSetupFailed, err.Error(), nil)
			default:
				logger.WithError(err).Error("Erro ao comparar lojas")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao comparar lojas", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, results)
	}
}

func ListExecutions(syncer syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := utils.QueryInt(r, "limit", defaultExecutionsLimit, maxExecutionsLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		executions, err := syncer.ListExecutions(r.Context(), limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar execuções")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções", nil)
			return
		}

		if executions == nil {
			executions = make([]*domain.SyncExecutionResult, 0)
		}

		writeJSON(w, http.StatusOK, executions)
	}
}

func GetExecution(syncer syncing.Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da execução não informado", nil)
			return
		}

		execution, err := syncer.GetExecution(r.Context(), id)
		if err != nil {
			if errors.Is(err, syncing.ErrExecutionNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrExecutionNotFound, "Execução não encontrada", nil)
				return
			}
			logrus.WithError(err).WithField("execution_id", id).Error("Erro ao buscar execução")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar execução", nil)
			return
		}

		writeJSON(w, http.StatusOK, execution)
	}
}

func isSetupError(err error) bool {
	return errors.Is(err, syncing.ErrIntegrationNotFound) ||
		errors.Is(err, syncing.ErrIntegrationInactive) ||
		errors.Is(err, syncing.ErrIntegrationTypeMismatch) ||
		errors.Is(err, syncing.ErrNoStoresToSync) ||
		errors.Is(err, domain.ErrInvalidIntegrationConfig)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("Erro ao escrever resposta")
	}
}
