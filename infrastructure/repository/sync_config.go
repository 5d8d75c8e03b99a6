package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/discount-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/discount-sync-api/internal/domain"
)

const (
	syncConfigsTable   = "sync_configs sc"
	syncConfigsColumns = "sc.id, sc.name, sc.cron_expression, sc.source_integration_id, sc.target_integration_id, sc.notification_channel_id, sc.store_ids, sc.skip_comparison, sc.active, sc.updated_at"
)

type SyncConfigRepository interface {
	GetByID(ctx context.Context, configID string) (*domain.SyncConfig, error)
	ListActive(ctx context.Context) ([]*domain.SyncConfig, error)
}

type syncConfigRepository struct {
	conn postgres.Queryer
}

func NewSyncConfigRepository(conn postgres.Queryer) SyncConfigRepository {
	return &syncConfigRepository{
		conn: conn,
	}
}

func (r *syncConfigRepository) GetByID(ctx context.Context, configID string) (*domain.SyncConfig, error) {
	query, args, err := squirrel.
		Select(syncConfigsColumns).
		From(syncConfigsTable).
		Where(squirrel.Eq{"sc.id": configID}).
		Where("sc.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	cfg, err := r.scanSyncConfig(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar configuração de sincronização %s: %w", configID, err)
	}

	return cfg, nil
}

func (r *syncConfigRepository) ListActive(ctx context.Context) ([]*domain.SyncConfig, error) {
	query, args, err := squirrel.
		Select(syncConfigsColumns).
		From(syncConfigsTable).
		Where(squirrel.Eq{"sc.active": true}).
		Where("sc.deleted_at IS NULL").
		OrderBy("sc.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	configs := make([]*domain.SyncConfig, 0)
	for rows.Next() {
		cfg, err := r.scanSyncConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear configuração de sincronização: %w", err)
		}
		configs = append(configs, cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return configs, nil
}

func (r *syncConfigRepository) scanSyncConfig(row rowScanner) (*domain.SyncConfig, error) {
	cfg := &domain.SyncConfig{}
	var storeIDs pq.StringArray

	err := row.Scan(
		&cfg.ID,
		&cfg.Name,
		&cfg.CronExpression,
		&cfg.SourceIntegrationID,
		&cfg.TargetIntegrationID,
		&cfg.NotificationChannelID,
		&storeIDs,
		&cfg.SkipComparison,
		&cfg.Active,
		&cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	cfg.StoreIDs = []string(storeIDs)

	return cfg, nil
}
