package domain

import "time"

type SyncStatus string

const (
	SyncStatusPending   SyncStatus = "PENDING"
	SyncStatusRunning   SyncStatus = "RUNNING"
	SyncStatusSuccess   SyncStatus = "SUCCESS"
	SyncStatusFailed    SyncStatus = "FAILED"
	SyncStatusCancelled SyncStatus = "CANCELLED"
)

// IsTerminal indica se o status não pode mais ser alterado
func (s SyncStatus) IsTerminal() bool {
	return s == SyncStatusSuccess || s == SyncStatusFailed || s == SyncStatusCancelled
}

type StoreResultStatus string

const (
	StoreResultSuccess StoreResultStatus = "SUCCESS"
	StoreResultFailed  StoreResultStatus = "FAILED"
	StoreResultSkipped StoreResultStatus = "SKIPPED"
)

type StoreResult struct {
	StoreID         string            `json:"store_id"`
	StoreName       string            `json:"store_name"`
	ProductsSynced  int               `json:"products_synced"`
	Status          StoreResultStatus `json:"status"`
	Error           *string           `json:"error,omitempty"`
	ExecutionTimeMs int64             `json:"execution_time_ms"`
}

type Summary struct {
	TotalStores         int   `json:"total_stores"`
	SuccessfulStores    int   `json:"successful_stores"`
	FailedStores        int   `json:"failed_stores"`
	TotalProductsSynced int   `json:"total_products_synced"`
	DurationMs          int64 `json:"duration_ms"`
}

// NewSummary agrega os resultados por loja. Lojas SKIPPED contam apenas no total.
func NewSummary(results []StoreResult, duration time.Duration) Summary {
	summary := Summary{
		TotalStores: len(results),
		DurationMs:  duration.Milliseconds(),
	}

	for _, r := range results {
		switch r.Status {
		case StoreResultSuccess:
			summary.SuccessfulStores++
			summary.TotalProductsSynced += r.ProductsSynced
		case StoreResultFailed:
			summary.FailedStores++
		}
	}

	return summary
}

// ExecutionError descreve a falha fatal que interrompeu uma execução antes das lojas
type ExecutionError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SyncExecutionResult struct {
	ID                string             `json:"id"`
	SyncConfigID      *string            `json:"sync_config_id,omitempty"`
	Status            SyncStatus         `json:"status"`
	StartedAt         time.Time          `json:"started_at"`
	FinishedAt        *time.Time         `json:"finished_at,omitempty"`
	StoresProcessed   []StoreResult      `json:"stores_processed"`
	Summary           Summary            `json:"summary"`
	ComparisonResults []ComparisonResult `json:"comparison_results,omitempty"`
	ErrorDetails      *ExecutionError    `json:"error_details,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`

	// LockKeys são as chaves de trava das lojas mantidas durante a execução
	LockKeys []string `json:"-"`
}

// SyncExecutionPatch é a mutação única aplicada ao final de uma execução
type SyncExecutionPatch struct {
	Status            SyncStatus
	FinishedAt        time.Time
	StoresProcessed   []StoreResult
	Summary           Summary
	ComparisonResults []ComparisonResult
	ErrorDetails      *ExecutionError
}

type SyncOptions struct {
	ForceSync         bool `json:"forceSync"`
	SkipComparison    bool `json:"skipComparison"`
	CompareWithSource bool `json:"compareWithSource"`
}

type SyncRequest struct {
	SourceIntegrationID   string      `json:"sourceIntegrationId"`
	TargetIntegrationID   string      `json:"targetIntegrationId"`
	NotificationChannelID *string     `json:"notificationChannelId,omitempty"`
	StoreIDs              []string    `json:"storeIds,omitempty"`
	SyncConfigID          *string     `json:"syncConfigId,omitempty"`
	Options               SyncOptions `json:"options"`
}

// SyncConfig é uma configuração de sincronização salva, usada pelo agendador
type SyncConfig struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	CronExpression        string    `json:"cron_expression"`
	SourceIntegrationID   string    `json:"source_integration_id"`
	TargetIntegrationID   string    `json:"target_integration_id"`
	NotificationChannelID *string   `json:"notification_channel_id,omitempty"`
	StoreIDs              []string  `json:"store_ids"`
	SkipComparison        bool      `json:"skip_comparison"`
	Active                bool      `json:"active"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ToRequest converte a configuração salva no pedido de execução do motor
func (c SyncConfig) ToRequest() SyncRequest {
	id := c.ID
	return SyncRequest{
		SourceIntegrationID:   c.SourceIntegrationID,
		TargetIntegrationID:   c.TargetIntegrationID,
		NotificationChannelID: c.NotificationChannelID,
		StoreIDs:              c.StoreIDs,
		SyncConfigID:          &id,
		Options: SyncOptions{
			SkipComparison: c.SkipComparison,
		},
	}
}
