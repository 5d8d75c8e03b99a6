// Package metrics expõe os contadores Prometheus da sincronização e da API
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "discount_sync"

var (
	SyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "runs_total",
		Help:      "Execuções de sincronização finalizadas, por status",
	}, []string{"status"})

	SyncRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Duração das execuções de sincronização",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})

	SyncRunsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "runs_rejected_total",
		Help:      "Execuções recusadas porque outra já processava as mesmas lojas",
	})

	StoreResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_results_total",
		Help:      "Resultados por loja, por status",
	}, []string{"status"})

	StoreDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_duration_seconds",
		Help:      "Tempo de processamento de uma loja",
		Buckets:   prometheus.DefBuckets,
	})

	ProductsSynced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_synced_total",
		Help:      "Produtos enviados com sucesso para a plataforma de descontos",
	})

	ComparisonDifferences = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comparison_differences_total",
		Help:      "Divergências encontradas na conciliação, por tipo",
	}, []string{"type"})

	IntegrationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "integration_errors_total",
		Help:      "Falhas de chamadas a sistemas externos",
	}, []string{"system"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Requisições HTTP atendidas",
	}, []string{"method", "status_code"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
