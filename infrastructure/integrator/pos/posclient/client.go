package posclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	posdomain "github.com/vfg2006/discount-sync-api/infrastructure/integrator/pos/domain"
	"github.com/vfg2006/discount-sync-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 30 * time.Second

type Client interface {
	GetDiscountedProducts(ctx context.Context, storeIdentifier string) (posdomain.DiscountsResponse, error)
}

type POSClient struct {
	httpClient *http.Client
	config     domain.SourceConfig
}

// NewClient cria um cliente do PDV para uma integração já validada.
// O timeout da integração tem precedência sobre o timeout padrão informado.
func NewClient(cfg domain.SourceConfig, timeout time.Duration) Client {
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &POSClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
