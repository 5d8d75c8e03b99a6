package syncing

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/discount-sync-api/internal/domain"
)

// safeNotifier engole os erros do transporte: notificação nunca altera o resultado da execução
type safeNotifier struct {
	notifier  Notifier
	channelID string
}

func (n safeNotifier) notify(ctx context.Context, text string) {
	if n.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, notificationTimeout)
	defer cancel()

	if err := n.notifier.Send(ctx, text); err != nil {
		logrus.WithFields(logrus.Fields{
			"channel_id": n.channelID,
			"error":      err.Error(),
		}).Warn("sync: falha ao enviar notificação")
	}
}

func startedMessage(executionID string, stores int) string {
	return fmt.Sprintf("🔄 <b>Sincronização iniciada</b>\nExecução: %s\nLojas: %d", executionID, stores)
}

func completedMessage(execution *domain.SyncExecutionResult) string {
	var b strings.Builder

	icon := "✅"
	if execution.Status == domain.SyncStatusFailed {
		icon = "❌"
	}

	fmt.Fprintf(&b, "%s <b>Sincronização %s</b>\n", icon, execution.Status)
	fmt.Fprintf(&b, "Execução: %s\n", execution.ID)

	if execution.ErrorDetails != nil {
		fmt.Fprintf(&b, "Erro: %s\n", execution.ErrorDetails.Message)
		return b.String()
	}

	summary := execution.Summary
	fmt.Fprintf(&b, "Lojas: %d (sucesso: %d, falha: %d)\n", summary.TotalStores, summary.SuccessfulStores, summary.FailedStores)
	fmt.Fprintf(&b, "Produtos sincronizados: %d\n", summary.TotalProductsSynced)
	fmt.Fprintf(&b, "Duração: %.1fs", float64(summary.DurationMs)/1000)

	if len(execution.ComparisonResults) > 0 {
		var missing, priceDiffs int
		for _, c := range execution.ComparisonResults {
			missing += c.MissingProducts
			priceDiffs += c.PriceDifferences
		}
		fmt.Fprintf(&b, "\nDivergências: %d ausentes, %d com preço diferente", missing, priceDiffs)
	}

	return b.String()
}
