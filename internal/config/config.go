package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Sync         Sync         `mapstructure:",squash"`
	SyncSchedule SyncSchedule `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	RunMigrations bool   `mapstructure:"database_run_migrations"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret     string `mapstructure:"auth_secret"`
	APIKeyHash string `mapstructure:"auth_api_key_hash"`
}

// Sync agrupa os parâmetros do motor de sincronização de descontos
type Sync struct {
	Timezone            string        `mapstructure:"sync_timezone"`
	DefaultProductLimit int           `mapstructure:"sync_default_product_limit"`
	StoreTimeout        time.Duration `mapstructure:"sync_store_timeout"`
	StaleRunAfter       time.Duration `mapstructure:"sync_stale_run_after"`
	RunLockDriver       string        `mapstructure:"run_lock_driver"`
	RunLockTTL          time.Duration `mapstructure:"run_lock_ttl"`
	HTTPTimeout         time.Duration `mapstructure:"sync_http_timeout"`
}

// SyncSchedule controla o agendador que executa as configurações salvas em sync_configs
type SyncSchedule struct {
	Enabled        bool          `mapstructure:"sync_schedule_enabled"`
	ReloadInterval time.Duration `mapstructure:"sync_schedule_reload_interval"`
}

const (
	RunLockDriverPostgres = "postgres"
	RunLockDriverRedis    = "redis"
)

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/discount_sync?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_RUN_MIGRATIONS", true)

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_API_KEY_HASH", "")

	viper.SetDefault("SYNC_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("SYNC_DEFAULT_PRODUCT_LIMIT", 1000)
	viper.SetDefault("SYNC_STORE_TIMEOUT", "2m")   // Tempo máximo de processamento de uma loja
	viper.SetDefault("SYNC_STALE_RUN_AFTER", "6h") // Execuções RUNNING mais antigas são encerradas no boot
	viper.SetDefault("RUN_LOCK_DRIVER", RunLockDriverPostgres)
	viper.SetDefault("RUN_LOCK_TTL", "2h")
	viper.SetDefault("SYNC_HTTP_TIMEOUT", "30s")

	viper.SetDefault("SYNC_SCHEDULE_ENABLED", false)
	viper.SetDefault("SYNC_SCHEDULE_RELOAD_INTERVAL", "5m")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica combinações de configuração que impediriam o motor de rodar
func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.Sync.Timezone); err != nil {
		return fmt.Errorf("config: fuso horário inválido %q: %w", c.Sync.Timezone, err)
	}

	if c.Sync.DefaultProductLimit <= 0 {
		return fmt.Errorf("config: SYNC_DEFAULT_PRODUCT_LIMIT deve ser positivo, recebido %d", c.Sync.DefaultProductLimit)
	}

	switch c.Sync.RunLockDriver {
	case RunLockDriverPostgres, RunLockDriverRedis:
	default:
		return fmt.Errorf("config: RUN_LOCK_DRIVER inválido %q (aceitos: postgres, redis)", c.Sync.RunLockDriver)
	}

	return nil
}

// Location retorna o fuso horário usado no cálculo da janela de desconto
func (s Sync) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
