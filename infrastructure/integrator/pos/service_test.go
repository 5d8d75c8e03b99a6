package pos

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/discount-sync-api/infrastructure/integrator/pos/posclient"
	"github.com/vfg2006/discount-sync-api/internal/domain"
)

func newTestIntegrator(t *testing.T, handler http.HandlerFunc) *POSIntegrator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := posclient.NewClient(domain.SourceConfig{BaseURL: server.URL + "/api", Token: "tok"}, 5*time.Second)
	return New(client)
}

func TestFetchDiscountedProducts(t *testing.T) {
	integrator := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/lojas/0001/descontos", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"produtos":[{"codigo":100,"preco":10.00,"preco_final":8.00},{"codigo":200,"preco":"5.50","preco_final":"4.99","limite":12}]}`))
	})

	products, err := integrator.FetchDiscountedProducts(context.Background(), "0001")
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, int64(100), products[0].Code)
	assert.True(t, products[0].FinalPrice.Equal(decimal.NewFromInt(8)))
	assert.Nil(t, products[0].Limit)

	assert.True(t, products[1].FinalPrice.Equal(decimal.RequireFromString("4.99")))
	require.NotNil(t, products[1].Limit)
	assert.Equal(t, 12, *products[1].Limit)
}

func TestFetchDiscountedProducts_EmptyIsNotAnError(t *testing.T) {
	integrator := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"produtos":[]}`))
	})

	products, err := integrator.FetchDiscountedProducts(context.Background(), "0002")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFetchDiscountedProducts_HTTPErrorIsIntegrationError(t *testing.T) {
	integrator := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"mensagem":"token inválido","codigo":"AUTH"}`))
	})

	products, err := integrator.FetchDiscountedProducts(context.Background(), "0001")
	require.Error(t, err)
	assert.Nil(t, products)

	var integrationErr *domain.IntegrationError
	require.True(t, errors.As(err, &integrationErr))
	assert.Equal(t, domain.SystemSource, integrationErr.System)
	assert.Contains(t, err.Error(), "token inválido")
}
