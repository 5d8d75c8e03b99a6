package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/discount-sync-api/infrastructure/database/postgres"
)

// PostgresRunLocker usa advisory locks de sessão para impedir execuções concorrentes
// sobre as mesmas lojas entre instâncias diferentes da API.
type PostgresRunLocker struct {
	conn *postgres.Connection
}

func NewPostgresRunLocker(conn *postgres.Connection) *PostgresRunLocker {
	return &PostgresRunLocker{conn: conn}
}

// TryLock não bloqueia: se qualquer chave já pertencer a outra sessão, libera as
// obtidas até ali e retorna acquired=false
func (l *PostgresRunLocker) TryLock(ctx context.Context, keys []string) (func(), bool, error) {
	// O advisory lock pertence à sessão, por isso a conexão fica reservada até o unlock
	conn, err := l.conn.Conn(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("erro ao reservar conexão para lock: %w", err)
	}

	held := make([]string, 0, len(keys))
	for _, key := range keys {
		var acquired bool
		if err := conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock(hashtext($1))", key).Scan(&acquired); err != nil {
			releaseAdvisoryLocks(conn, held)
			return nil, false, fmt.Errorf("erro ao adquirir lock %s: %w", key, err)
		}

		if !acquired {
			releaseAdvisoryLocks(conn, held)
			return nil, false, nil
		}

		held = append(held, key)
	}

	unlock := func() {
		releaseAdvisoryLocks(conn, held)
	}

	return unlock, true, nil
}

// releaseAdvisoryLocks solta as chaves e devolve a conexão ao pool
func releaseAdvisoryLocks(conn *sql.Conn, keys []string) {
	unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, key := range keys {
		if _, err := conn.ExecContext(unlockCtx, "SELECT pg_advisory_unlock(hashtext($1))", key); err != nil {
			logrus.WithError(err).WithField("lock_key", key).Error("Erro ao liberar advisory lock")
		}
	}

	if err := conn.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao devolver conexão do lock")
	}
}
