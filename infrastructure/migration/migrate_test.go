package migration

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct {
	upErr     error
	sourceErr error
	dbErr     error
	upCalls   int
	closed    bool
}

func (f *fakeMigrator) Up() error {
	f.upCalls++
	return f.upErr
}

func (f *fakeMigrator) Close() (error, error) {
	f.closed = true
	return f.sourceErr, f.dbErr
}

func TestMigration_Up(t *testing.T) {
	tests := []struct {
		name      string
		migrator  *fakeMigrator
		engineErr error
		wantErr   string
	}{
		{
			name:     "aplica migrações pendentes",
			migrator: &fakeMigrator{},
		},
		{
			name:     "sem mudanças não é erro",
			migrator: &fakeMigrator{upErr: migrate.ErrNoChange},
		},
		{
			name:     "falha no up é propagada",
			migrator: &fakeMigrator{upErr: errors.New("syntax error")},
			wantErr:  "syntax error",
		},
		{
			name:     "falha ao fechar o banco é reportada",
			migrator: &fakeMigrator{dbErr: errors.New("conn reset")},
			wantErr:  "conn reset",
		},
		{
			name:      "falha ao criar o migrator",
			engineErr: errors.New("invalid url"),
			wantErr:   "invalid url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var receivedURL string
			engine := func(databaseURL string) (Migrator, error) {
				receivedURL = databaseURL
				if tt.engineErr != nil {
					return nil, tt.engineErr
				}
				return tt.migrator, nil
			}

			err := NewMigration("postgres://u:p@localhost/db", engine).Up()

			assert.Equal(t, "postgres://u:p@localhost/db", receivedURL)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			if tt.migrator != nil {
				assert.Equal(t, 1, tt.migrator.upCalls)
				assert.True(t, tt.migrator.closed)
			}
		})
	}
}

func TestMigrationsAreEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("sql")
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}
