package log

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/discount-sync-api/infrastructure/repository"
)

const auditWriteTimeout = 5 * time.Second

// AuditLogger grava cada evento no log da aplicação e na tabela system_logs.
// Falha na gravação do banco vira apenas um aviso no log.
type AuditLogger struct {
	repo repository.SystemLogRepository
}

func NewAuditLogger(repo repository.SystemLogRepository) *AuditLogger {
	return &AuditLogger{repo: repo}
}

func (a *AuditLogger) Log(ctx context.Context, level, category, message string, metadata map[string]any, sessionID *string) {
	fields := logrus.Fields{"category": category}
	for k, v := range metadata {
		fields[k] = v
	}
	if sessionID != nil {
		fields["session_id"] = *sessionID
	}
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		fields[string(CorrelationIDKey)] = correlationID
	}

	entry := logrus.WithFields(fields)
	switch level {
	case "debug":
		entry.Debug(message)
	case "warn":
		entry.Warn(message)
	case "error":
		entry.Error(message)
	default:
		entry.Info(message)
	}

	if a.repo == nil {
		return
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
	defer cancel()

	err := a.repo.Insert(writeCtx, repository.SystemLogEntry{
		Level:     level,
		Category:  category,
		Message:   message,
		Metadata:  metadata,
		SessionID: sessionID,
	})
	if err != nil {
		logrus.WithError(err).WithField("category", category).Warn("Falha ao gravar log de auditoria no banco")
	}
}
