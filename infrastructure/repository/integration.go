package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/discount-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/discount-sync-api/internal/domain"
)

type IntegrationRepository interface {
	// GetByID retorna nil quando a integração não existe ou foi excluída
	GetByID(ctx context.Context, integrationID string) (*domain.Integration, error)
}

type integrationRepository struct {
	conn postgres.Queryer
}

func NewIntegrationRepository(conn postgres.Queryer) IntegrationRepository {
	return &integrationRepository{
		conn: conn,
	}
}

func (r *integrationRepository) GetByID(ctx context.Context, integrationID string) (*domain.Integration, error) {
	query, args, err := squirrel.
		Select("i.id, i.name, i.type, i.base_config, i.active, i.deleted_at").
		From("integrations i").
		Where(squirrel.Eq{"i.id": integrationID}).
		Where("i.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		integration domain.Integration
		rawConfig   []byte
	)

	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&integration.ID,
		&integration.Name,
		&integration.Type,
		&rawConfig,
		&integration.Active,
		&integration.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar integração %s: %w", integrationID, err)
	}

	integration.BaseConfig, err = decodeJSONObject(rawConfig)
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração da integração %s: %w", integrationID, err)
	}

	return &integration, nil
}

func decodeJSONObject(raw []byte) (map[string]any, error) {
	out := make(map[string]any)
	if len(raw) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}

	return out, nil
}
