package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/discount-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/discount-sync-api/internal/domain"
)

const (
	syncExecutionsTable   = "sync_executions"
	syncExecutionsColumns = "id, sync_config_id, status, started_at, finished_at, stores_processed, summary, comparison_results, error_details, lock_keys, created_at"
	defaultListLimit      = 20
	maxListLimit          = 200
)

// SyncExecutionRepository guarda o histórico de execuções para auditoria
type SyncExecutionRepository interface {
	Create(ctx context.Context, execution *domain.SyncExecutionResult) error
	Update(ctx context.Context, executionID string, patch domain.SyncExecutionPatch) error
	GetByID(ctx context.Context, executionID string) (*domain.SyncExecutionResult, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.SyncExecutionResult, error)
	ListStaleRunning(ctx context.Context, startedBefore time.Time) ([]*domain.SyncExecutionResult, error)
	FailStaleRunning(ctx context.Context, executionIDs []string, reason string) (int64, error)
}

type syncExecutionRepository struct {
	conn postgres.Queryer
}

func NewSyncExecutionRepository(conn postgres.Queryer) SyncExecutionRepository {
	return &syncExecutionRepository{
		conn: conn,
	}
}

func (r *syncExecutionRepository) Create(ctx context.Context, execution *domain.SyncExecutionResult) error {
	storesProcessed, err := marshalStoreResults(execution.StoresProcessed)
	if err != nil {
		return err
	}

	summary, err := json.Marshal(execution.Summary)
	if err != nil {
		return fmt.Errorf("erro ao serializar resumo: %w", err)
	}

	lockKeys := execution.LockKeys
	if lockKeys == nil {
		lockKeys = []string{}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(syncExecutionsTable).
		Columns("id", "sync_config_id", "status", "started_at", "stores_processed", "summary", "lock_keys").
		Values(
			execution.ID,
			execution.SyncConfigID,
			execution.Status,
			execution.StartedAt,
			storesProcessed,
			string(summary),
			pq.StringArray(lockKeys),
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&execution.CreatedAt); err != nil {
		return fmt.Errorf("erro ao registrar execução %s: %w", execution.ID, err)
	}

	return nil
}

// Update aplica a mutação final; execuções já finalizadas não são alteradas
func (r *syncExecutionRepository) Update(ctx context.Context, executionID string, patch domain.SyncExecutionPatch) error {
	storesProcessed, err := marshalStoreResults(patch.StoresProcessed)
	if err != nil {
		return err
	}

	summary, err := json.Marshal(patch.Summary)
	if err != nil {
		return fmt.Errorf("erro ao serializar resumo: %w", err)
	}

	// Colunas JSONB anuláveis vão como string ou NULL
	var comparisonResults, errorDetails interface{}
	if patch.ComparisonResults != nil {
		data, err := json.Marshal(patch.ComparisonResults)
		if err != nil {
			return fmt.Errorf("erro ao serializar comparações: %w", err)
		}
		comparisonResults = string(data)
	}

	if patch.ErrorDetails != nil {
		data, err := json.Marshal(patch.ErrorDetails)
		if err != nil {
			return fmt.Errorf("erro ao serializar detalhes do erro: %w", err)
		}
		errorDetails = string(data)
	}

	query, args, err := squirrel.
		Update(syncExecutionsTable).
		Set("status", patch.Status).
		Set("finished_at", patch.FinishedAt).
		Set("stores_processed", storesProcessed).
		Set("summary", string(summary)).
		Set("comparison_results", comparisonResults).
		Set("error_details", errorDetails).
		Where(squirrel.Eq{"id": executionID, "status": domain.SyncStatusRunning}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar execução %s: %w", executionID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar atualização da execução %s: %w", executionID, err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrExecutionNotRunning, executionID)
	}

	return nil
}

func (r *syncExecutionRepository) GetByID(ctx context.Context, executionID string) (*domain.SyncExecutionResult, error) {
	query, args, err := squirrel.
		Select(syncExecutionsColumns).
		From(syncExecutionsTable).
		Where(squirrel.Eq{"id": executionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	execution, err := r.scanExecution(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar execução %s: %w", executionID, err)
	}

	return execution, nil
}

func (r *syncExecutionRepository) ListRecent(ctx context.Context, limit int) ([]*domain.SyncExecutionResult, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	query, args, err := squirrel.
		Select(syncExecutionsColumns).
		From(syncExecutionsTable).
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryExecutions(ctx, query, args...)
}

// ListStaleRunning lista execuções RUNNING iniciadas antes do limite informado
func (r *syncExecutionRepository) ListStaleRunning(ctx context.Context, startedBefore time.Time) ([]*domain.SyncExecutionResult, error) {
	query, args, err := squirrel.
		Select(syncExecutionsColumns).
		From(syncExecutionsTable).
		Where(squirrel.Eq{"status": domain.SyncStatusRunning}).
		Where(squirrel.Lt{"started_at": startedBefore}).
		OrderBy("started_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryExecutions(ctx, query, args...)
}

// FailStaleRunning encerra as execuções informadas que ainda estiverem RUNNING
// (ex.: processo reiniciado no meio da execução)
func (r *syncExecutionRepository) FailStaleRunning(ctx context.Context, executionIDs []string, reason string) (int64, error) {
	if len(executionIDs) == 0 {
		return 0, nil
	}

	errorDetails, err := json.Marshal(domain.ExecutionError{Code: "STALE_RUN", Message: reason})
	if err != nil {
		return 0, fmt.Errorf("erro ao serializar detalhes do erro: %w", err)
	}

	query, args, err := squirrel.
		Update(syncExecutionsTable).
		Set("status", domain.SyncStatusFailed).
		Set("finished_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Set("error_details", string(errorDetails)).
		Where(squirrel.Eq{"id": executionIDs}).
		Where(squirrel.Eq{"status": domain.SyncStatusRunning}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao encerrar execuções antigas: %w", err)
	}

	return result.RowsAffected()
}

func (r *syncExecutionRepository) queryExecutions(ctx context.Context, query string, args ...interface{}) ([]*domain.SyncExecutionResult, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	executions := make([]*domain.SyncExecutionResult, 0)
	for rows.Next() {
		execution, err := r.scanExecution(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}
		executions = append(executions, execution)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return executions, nil
}

func (r *syncExecutionRepository) scanExecution(row rowScanner) (*domain.SyncExecutionResult, error) {
	var (
		execution                                      domain.SyncExecutionResult
		startedAt                                      sql.NullTime
		storesProcessed, summary, comparisons, errInfo []byte
		lockKeys                                       pq.StringArray
	)

	if err := row.Scan(
		&execution.ID,
		&execution.SyncConfigID,
		&execution.Status,
		&startedAt,
		&execution.FinishedAt,
		&storesProcessed,
		&summary,
		&comparisons,
		&errInfo,
		&lockKeys,
		&execution.CreatedAt,
	); err != nil {
		return nil, err
	}

	if startedAt.Valid {
		execution.StartedAt = startedAt.Time
	}
	execution.LockKeys = lockKeys

	execution.StoresProcessed = make([]domain.StoreResult, 0)
	if len(storesProcessed) > 0 {
		if err := json.Unmarshal(storesProcessed, &execution.StoresProcessed); err != nil {
			return nil, fmt.Errorf("stores_processed inválido: %w", err)
		}
	}

	if len(summary) > 0 {
		if err := json.Unmarshal(summary, &execution.Summary); err != nil {
			return nil, fmt.Errorf("summary inválido: %w", err)
		}
	}

	if len(comparisons) > 0 {
		if err := json.Unmarshal(comparisons, &execution.ComparisonResults); err != nil {
			return nil, fmt.Errorf("comparison_results inválido: %w", err)
		}
	}

	if len(errInfo) > 0 {
		execution.ErrorDetails = &domain.ExecutionError{}
		if err := json.Unmarshal(errInfo, execution.ErrorDetails); err != nil {
			return nil, fmt.Errorf("error_details inválido: %w", err)
		}
	}

	return &execution, nil
}

func marshalStoreResults(results []domain.StoreResult) (string, error) {
	if results == nil {
		results = []domain.StoreResult{}
	}

	data, err := json.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar resultados por loja: %w", err)
	}

	return string(data), nil
}
