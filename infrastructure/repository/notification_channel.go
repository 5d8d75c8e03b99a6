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

type NotificationChannelRepository interface {
	GetByID(ctx context.Context, channelID string) (*domain.NotificationChannel, error)
}

type notificationChannelRepository struct {
	conn postgres.Queryer
}

func NewNotificationChannelRepository(conn postgres.Queryer) NotificationChannelRepository {
	return &notificationChannelRepository{
		conn: conn,
	}
}

func (r *notificationChannelRepository) GetByID(ctx context.Context, channelID string) (*domain.NotificationChannel, error) {
	query, args, err := squirrel.
		Select("nc.id, nc.name, nc.type, nc.config, nc.active, nc.deleted_at").
		From("notification_channels nc").
		Where(squirrel.Eq{"nc.id": channelID}).
		Where("nc.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		channel   domain.NotificationChannel
		rawConfig []byte
	)

	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&channel.ID,
		&channel.Name,
		&channel.Type,
		&rawConfig,
		&channel.Active,
		&channel.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar canal de notificação %s: %w", channelID, err)
	}

	channel.Config, err = decodeJSONObject(rawConfig)
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração do canal %s: %w", channelID, err)
	}

	return &channel, nil
}
