package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var syncConfigRowColumns = []string{"id", "name", "cron_expression", "source_integration_id", "target_integration_id", "notification_channel_id", "store_ids", "skip_comparison", "active", "updated_at"}

func TestSyncConfigRepository_ListActive(t *testing.T) {
	conn, mock := newMockConnection(t)
	updatedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM sync_configs sc WHERE sc.active = \$1 AND sc.deleted_at IS NULL ORDER BY sc.name ASC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(syncConfigRowColumns).
			AddRow("cfg-1", "Manhã", "0 7 * * *", "src-1", "tgt-1", "chan-1", []byte(`{store-1,store-2}`), false, true, updatedAt).
			AddRow("cfg-2", "Todas", "0 12 * * *", "src-1", "tgt-1", nil, []byte(`{}`), true, true, updatedAt))

	configs, err := NewSyncConfigRepository(conn).ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, []string{"store-1", "store-2"}, configs[0].StoreIDs)
	require.NotNil(t, configs[0].NotificationChannelID)
	assert.Equal(t, "chan-1", *configs[0].NotificationChannelID)
	assert.Empty(t, configs[1].StoreIDs)
	assert.Nil(t, configs[1].NotificationChannelID)
	assert.True(t, configs[1].SkipComparison)
}

func TestSyncConfigRepository_GetByID(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectQuery(`FROM sync_configs sc WHERE sc.id = \$1 AND sc.deleted_at IS NULL`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(syncConfigRowColumns))

	cfg, err := NewSyncConfigRepository(conn).GetByID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, cfg)
}
