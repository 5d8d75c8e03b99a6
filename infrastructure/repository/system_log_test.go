package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSystemLogRepository_Insert(t *testing.T) {
	ctx := context.Background()
	sessionID := "exec-1"

	t.Run("Com metadados", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectExec(`INSERT INTO system_logs \(level,category,message,metadata,session_id\) VALUES \(\$1,\$2,\$3,\$4,\$5\)`).
			WithArgs("info", "SYNC", "Sincronização iniciada", `{"store_id":"store-1"}`, "exec-1").
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := NewSystemLogRepository(conn).Insert(ctx, SystemLogEntry{
			Level:     "info",
			Category:  "SYNC",
			Message:   "Sincronização iniciada",
			Metadata:  map[string]any{"store_id": "store-1"},
			SessionID: &sessionID,
		})

		assert.NoError(t, err)
	})

	t.Run("Sem metadados grava NULL", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectExec(`INSERT INTO system_logs`).
			WithArgs("warn", "SYNC", "msg", nil, nil).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := NewSystemLogRepository(conn).Insert(ctx, SystemLogEntry{Level: "warn", Category: "SYNC", Message: "msg"})

		assert.NoError(t, err)
	})
}
