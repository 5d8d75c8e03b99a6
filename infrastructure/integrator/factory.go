package integrator

import (
	"fmt"
	"time"

	"github.com/vfg2006/discount-sync-api/infrastructure/integrator/pos"
	"github.com/vfg2006/discount-sync-api/infrastructure/integrator/pos/posclient"
	"github.com/vfg2006/discount-sync-api/infrastructure/integrator/promo"
	"github.com/vfg2006/discount-sync-api/infrastructure/integrator/promo/promoclient"
	"github.com/vfg2006/discount-sync-api/infrastructure/integrator/telegram"
	"github.com/vfg2006/discount-sync-api/internal/config"
	"github.com/vfg2006/discount-sync-api/internal/domain"
	"github.com/vfg2006/discount-sync-api/internal/usecases/syncing"
)

// Factory monta clientes novos a cada execução a partir das integrações cadastradas,
// de forma que uma alteração de credencial vale já na próxima sincronização.
type Factory struct {
	httpTimeout time.Duration
	location    *time.Location
}

func NewFactory(cfg config.Sync) *Factory {
	return &Factory{
		httpTimeout: cfg.HTTPTimeout,
		location:    cfg.Location(),
	}
}

func (f *Factory) NewSource(integration *domain.Integration) (syncing.SourceAdapter, error) {
	if integration.Type != domain.IntegrationTypeSource {
		return nil, fmt.Errorf("integração %s é do tipo %s, esperado %s", integration.ID, integration.Type, domain.IntegrationTypeSource)
	}

	cfg, err := domain.DecodeSourceConfig(integration.BaseConfig)
	if err != nil {
		return nil, fmt.Errorf("integração %s: %w", integration.ID, err)
	}

	return pos.New(posclient.NewClient(cfg, f.httpTimeout)), nil
}

func (f *Factory) NewTarget(integration *domain.Integration) (syncing.TargetAdapter, error) {
	if integration.Type != domain.IntegrationTypeTarget {
		return nil, fmt.Errorf("integração %s é do tipo %s, esperado %s", integration.ID, integration.Type, domain.IntegrationTypeTarget)
	}

	cfg, err := domain.DecodeTargetConfig(integration.BaseConfig)
	if err != nil {
		return nil, fmt.Errorf("integração %s: %w", integration.ID, err)
	}

	return promo.New(promoclient.NewClient(cfg, f.httpTimeout), cfg.CampaignName, f.location), nil
}

func (f *Factory) NewNotifier(channel *domain.NotificationChannel) (syncing.Notifier, error) {
	switch channel.Type {
	case domain.IntegrationTypeTelegram:
		cfg, err := domain.DecodeTelegramConfig(channel.Config)
		if err != nil {
			return nil, fmt.Errorf("canal %s: %w", channel.ID, err)
		}
		return telegram.NewClient(cfg, f.httpTimeout), nil
	default:
		return nil, fmt.Errorf("canal %s: tipo de notificação não suportado %q", channel.ID, channel.Type)
	}
}
