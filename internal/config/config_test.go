package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_USER", "sync")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_URL", "db:5432/discount_sync?sslmode=disable")
	t.Setenv("SYNC_TIMEZONE", "America/Sao_Paulo")
	t.Setenv("RUN_LOCK_DRIVER", "postgres")

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, "postgres://sync:secret@db:5432/discount_sync?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Sync.StoreTimeout)
	assert.Equal(t, 6*time.Hour, cfg.Sync.StaleRunAfter)
	assert.Equal(t, 1000, cfg.Sync.DefaultProductLimit)
	assert.Equal(t, 5*time.Minute, cfg.SyncSchedule.ReloadInterval)
	assert.Equal(t, "America/Sao_Paulo", cfg.Sync.Location().String())
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("SYNC_TIMEZONE", "UTC")
	t.Setenv("SYNC_STORE_TIMEOUT", "45s")
	t.Setenv("RUN_LOCK_DRIVER", "redis")
	t.Setenv("RUN_LOCK_TTL", "30m")
	t.Setenv("SYNC_SCHEDULE_ENABLED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://painel.local")

	cfg, err := NewConfig()

	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, cfg.Sync.StoreTimeout)
	assert.Equal(t, RunLockDriverRedis, cfg.Sync.RunLockDriver)
	assert.Equal(t, 30*time.Minute, cfg.Sync.RunLockTTL)
	assert.True(t, cfg.SyncSchedule.Enabled)
	assert.Equal(t, []string{"http://localhost:3000", "https://painel.local"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, time.UTC, cfg.Sync.Location())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Sync: Sync{
				Timezone:            "UTC",
				DefaultProductLimit: 1000,
				RunLockDriver:       RunLockDriverPostgres,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "Configuração válida", mutate: func(c *Config) {}},
		{name: "Fuso horário inválido", mutate: func(c *Config) { c.Sync.Timezone = "Mars/Olympus" }, wantErr: "fuso horário inválido"},
		{name: "Limite zero", mutate: func(c *Config) { c.Sync.DefaultProductLimit = 0 }, wantErr: "SYNC_DEFAULT_PRODUCT_LIMIT"},
		{name: "Driver de lock desconhecido", mutate: func(c *Config) { c.Sync.RunLockDriver = "etcd" }, wantErr: "RUN_LOCK_DRIVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
