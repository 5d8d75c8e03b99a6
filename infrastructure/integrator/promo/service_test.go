package promo

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	promodomain "github.com/vfg2006/discount-sync-api/infrastructure/integrator/promo/domain"
	"github.com/vfg2006/discount-sync-api/infrastructure/integrator/promo/promoclient"
	"github.com/vfg2006/discount-sync-api/internal/domain"
)

var loc = time.FixedZone("BRT", -3*60*60)

func newTestIntegrator(t *testing.T, handler http.HandlerFunc) *PromoIntegrator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := promoclient.NewClient(domain.TargetConfig{BaseURL: server.URL, APIKey: "key-123"}, 5*time.Second)
	return New(client, "Ofertas do dia", loc)
}

func TestPush(t *testing.T) {
	var received promodomain.BatchRequest

	integrator := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/discounts/batch", r.URL.Path)
		assert.Equal(t, "key-123", r.Header.Get("X-API-Key"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, jsoniter.Unmarshal(body, &received))

		_, _ = w.Write([]byte(`{"success":true,"batch_id":"b-1"}`))
	})

	batch := domain.DiscountBatch{
		StoreRegistration: "0001",
		Override:          true,
		Window: domain.DiscountWindow{
			StartAt:  time.Date(2025, 3, 10, 9, 35, 0, 0, loc),
			ExpireAt: time.Date(2025, 3, 10, 23, 59, 0, 0, loc),
		},
		Items: []domain.BatchItem{{Code: "100", Price: decimal.NewFromInt(10), FinalPrice: decimal.NewFromInt(8), Limit: 1000}},
	}

	err := integrator.Push(context.Background(), "0001", batch)
	require.NoError(t, err)

	assert.True(t, received.Override)
	assert.Equal(t, "0001", received.StoreRegistration)
	assert.Equal(t, "Ofertas do dia", received.CampaignName)
	assert.Equal(t, "2025-03-10 09:35:00", received.StartAt)
	assert.Equal(t, "2025-03-10 23:59:00", received.ExpireAt)
	require.Len(t, received.Products, 1)
	assert.Equal(t, 1000, received.Products[0].Limit)
	assert.True(t, received.Products[0].FinalPrice.Equal(decimal.NewFromInt(8)))
}

func TestPush_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"lote recusado", http.StatusOK, `{"success":false,"message":"janela inválida"}`, "janela inválida"},
		{"chave recusada", http.StatusUnauthorized, `{"error":{"message":"invalid key","type":"AuthenticationError","code":401}}`, "chave de API recusada"},
		{"erro sem payload", http.StatusBadGateway, `upstream down`, "502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := integrator.Push(context.Background(), "0001", domain.DiscountBatch{Override: true})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var integrationErr *domain.IntegrationError
			require.True(t, errors.As(err, &integrationErr))
			assert.Equal(t, domain.SystemTarget, integrationErr.System)
		})
	}
}

func TestFetchActive(t *testing.T) {
	integrator := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/discounts/active", r.URL.Path)
		assert.Equal(t, "0001", r.URL.Query().Get("store_registration"))

		_, _ = w.Write([]byte(`{"data":[
			{"code":"100","price":"10.00","final_price":"8.00","limit":1000,"start_at":"2025-03-10 09:35:00","expire_at":"2025-03-10 23:59:00"},
			{"code":"200","price":"3","final_price":"2","limit":5,"start_at":"invalid","expire_at":""}
		]}`))
	})

	products, err := integrator.FetchActive(context.Background(), "0001")
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "100", products[0].Code)
	assert.True(t, products[0].StartAt.Equal(time.Date(2025, 3, 10, 9, 35, 0, 0, loc)))
	assert.True(t, products[0].ExpireAt.Equal(time.Date(2025, 3, 10, 23, 59, 0, 0, loc)))

	assert.Equal(t, 5, products[1].Limit)
	assert.True(t, products[1].StartAt.IsZero())
}
