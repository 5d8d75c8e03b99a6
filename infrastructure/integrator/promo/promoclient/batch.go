package promoclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"

	promodomain "github.com/vfg2006/discount-sync-api/infrastructure/integrator/promo/domain"
)

func (c *PromoClient) PushBatch(ctx context.Context, batch promodomain.BatchRequest) (*promodomain.BatchResponse, error) {
	endpoint, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/v1/discounts/batch")

	payload, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar lote: %w", err)
	}

	data, err := c.do(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var response promodomain.BatchResponse
	if len(data) == 0 {
		return &promodomain.BatchResponse{Success: true}, nil
	}

	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}

func (c *PromoClient) GetActiveDiscounts(ctx context.Context, storeRegistration string) (*promodomain.ActiveDiscountsResponse, error) {
	endpoint, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/v1/discounts/active")

	query := endpoint.Query()
	query.Set("store_registration", storeRegistration)
	endpoint.RawQuery = query.Encode()

	data, err := c.do(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}

	var response promodomain.ActiveDiscountsResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
