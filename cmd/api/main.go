package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/discount-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/discount-sync-api/infrastructure/integrator"
	"github.com/vfg2006/discount-sync-api/infrastructure/lock"
	"github.com/vfg2006/discount-sync-api/infrastructure/migration"
	"github.com/vfg2006/discount-sync-api/infrastructure/repository"
	"github.com/vfg2006/discount-sync-api/internal/api"
	"github.com/vfg2006/discount-sync-api/internal/config"
	"github.com/vfg2006/discount-sync-api/internal/scheduler"
	"github.com/vfg2006/discount-sync-api/internal/usecases/authenticating"
	"github.com/vfg2006/discount-sync-api/internal/usecases/syncing"
	"github.com/vfg2006/discount-sync-api/pkg/log"
)

const staleRunReason = "execução interrompida por reinício do serviço"

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.RunMigrations {
		if err := migration.NewMigration(cfg.Database.DSN, nil).Up(); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	storeRepo := repository.NewStoreRepository(pgConn)
	cachedProductRepo := repository.NewCachedProductRepository(pgConn)
	integrationRepo := repository.NewIntegrationRepository(pgConn)
	channelRepo := repository.NewNotificationChannelRepository(pgConn)
	executionRepo := repository.NewSyncExecutionRepository(pgConn)
	syncConfigRepo := repository.NewSyncConfigRepository(pgConn)
	systemLogRepo := repository.NewSystemLogRepository(pgConn)

	locker := runLocker(ctx, cfg, pgConn)

	syncService := syncing.NewService(
		cfg.Sync,
		syncing.Repositories{
			Stores:               storeRepo,
			CachedProducts:       cachedProductRepo,
			Integrations:         integrationRepo,
			NotificationChannels: channelRepo,
			Executions:           executionRepo,
		},
		integrator.NewFactory(cfg.Sync),
		locker,
		log.NewAuditLogger(systemLogRepo),
	)

	failStaleExecutions(ctx, syncService, cfg.Sync.StaleRunAfter)

	discountSyncService := scheduler.NewDiscountSyncService(syncConfigRepo, syncService, cfg)
	if err := discountSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de descontos")
	} else {
		logrus.Info("Agendador de sincronização de descontos iniciado com sucesso")
	}

	authenticator := authenticating.NewService(cfg.Auth)

	server, err := api.New(cfg, syncService, discountSyncService, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// runLocker escolhe a trava de execução entre advisory lock do postgres e redis
func runLocker(ctx context.Context, cfg *config.Config, pgConn *postgres.Connection) syncing.RunLocker {
	if cfg.Sync.RunLockDriver != config.RunLockDriverRedis {
		logrus.Info("Trava de execução: advisory lock do PostgreSQL")
		return repository.NewPostgresRunLocker(pgConn)
	}

	client, err := lock.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}

	logrus.WithField("addr", cfg.Redis.Addr).Info("Trava de execução: Redis")
	return lock.NewRedisRunLocker(client, cfg.Sync.RunLockTTL)
}

// failStaleExecutions encerra execuções que ficaram RUNNING após uma queda do processo.
// Execuções cujas lojas seguem travadas por outra instância são mantidas.
func failStaleExecutions(ctx context.Context, syncService *syncing.Service, after time.Duration) {
	if after <= 0 {
		return
	}

	affected, err := syncService.FailStaleExecutions(ctx, time.Now().Add(-after), staleRunReason)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao encerrar execuções pendentes")
		return
	}

	if affected > 0 {
		logrus.WithField("executions", affected).Warn("Execuções RUNNING antigas marcadas como FAILED")
	}
}
