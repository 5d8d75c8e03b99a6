package posclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	posdomain "github.com/vfg2006/discount-sync-api/infrastructure/integrator/pos/domain"
)

func (c *POSClient) GetDiscountedProducts(ctx context.Context, storeIdentifier string) (posdomain.DiscountsResponse, error) {
	var response posdomain.DiscountsResponse

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/lojas", url.PathEscape(storeIdentifier), "descontos")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return response, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp posdomain.ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
			return response, fmt.Errorf("requisição falhou com status %s: %s", resp.Status, errResp.Message)
		}
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
