package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/discount-sync-api/infrastructure/database/postgres"
)

// SystemLogEntry é a linha persistida pelo log de auditoria
type SystemLogEntry struct {
	Level     string
	Category  string
	Message   string
	Metadata  map[string]any
	SessionID *string
}

type SystemLogRepository interface {
	Insert(ctx context.Context, entry SystemLogEntry) error
}

type systemLogRepository struct {
	conn postgres.Queryer
}

func NewSystemLogRepository(conn postgres.Queryer) SystemLogRepository {
	return &systemLogRepository{
		conn: conn,
	}
}

func (r *systemLogRepository) Insert(ctx context.Context, entry SystemLogEntry) error {
	var metadata interface{}
	if len(entry.Metadata) > 0 {
		data, err := json.Marshal(entry.Metadata)
		if err != nil {
			return fmt.Errorf("erro ao serializar metadados do log: %w", err)
		}
		metadata = string(data)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("system_logs").
		Columns("level", "category", "message", "metadata", "session_id").
		Values(entry.Level, entry.Category, entry.Message, metadata, entry.SessionID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar log de sistema: %w", err)
	}

	return nil
}
