package migration

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Registra o driver postgres:// usado pelo migrate
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// Migrator é o subconjunto de migrate.Migrate usado aqui
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine cria o migrator (substituído nos testes para não tocar no banco)
type MigrationEngine func(databaseURL string) (Migrator, error)

type Migration struct {
	databaseURL string
	engine      MigrationEngine
}

func NewMigration(databaseURL string, engine MigrationEngine) *Migration {
	if engine == nil {
		engine = DefaultEngine
	}

	return &Migration{
		databaseURL: databaseURL,
		engine:      engine,
	}
}

// DefaultEngine usa os scripts SQL embutidos no binário
func DefaultEngine(databaseURL string) (Migrator, error) {
	source, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir scripts de migração: %w", err)
	}

	return migrate.NewWithSourceInstance("iofs", source, databaseURL)
}

func (mg *Migration) Up() (err error) {
	m, err := mg.engine(mg.databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.Info("Migrações já aplicadas, nada a fazer")
			return nil
		}
		return fmt.Errorf("%w; migration up error", err)
	}

	logrus.Info("Migrações aplicadas com sucesso")
	return nil
}
