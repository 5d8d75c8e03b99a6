package promoclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	promodomain "github.com/vfg2006/discount-sync-api/infrastructure/integrator/promo/domain"
	"github.com/vfg2006/discount-sync-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 30 * time.Second

type Client interface {
	PushBatch(ctx context.Context, batch promodomain.BatchRequest) (*promodomain.BatchResponse, error)
	GetActiveDiscounts(ctx context.Context, storeRegistration string) (*promodomain.ActiveDiscountsResponse, error)
}

type PromoClient struct {
	httpClient *http.Client
	config     domain.TargetConfig
}

func NewClient(cfg domain.TargetConfig, timeout time.Duration) Client {
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &PromoClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

func (c *PromoClient) do(ctx context.Context, method, endpoint string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("X-API-Key", c.config.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	return handleResponse(resp)
}

// handleResponse devolve o corpo em respostas 2xx e traduz o payload de erro nas demais
func handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	var errResp promodomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		if errResp.IsUnauthorized() {
			return nil, fmt.Errorf("chave de API recusada pela plataforma: %s", errResp.Error.Message)
		}
		return nil, fmt.Errorf("erro na resposta da API. Status: %d, Mensagem: %s", resp.StatusCode, errResp.Error.Message)
	}

	return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
}
