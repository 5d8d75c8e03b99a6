package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSummary(t *testing.T) {
	reason := "boom"
	results := []StoreResult{
		{StoreID: "a", Status: StoreResultSuccess, ProductsSynced: 4},
		{StoreID: "b", Status: StoreResultFailed, ProductsSynced: 2, Error: &reason},
		{StoreID: "c", Status: StoreResultSkipped, Error: &reason},
		{StoreID: "d", Status: StoreResultSuccess, ProductsSynced: 0},
	}

	summary := NewSummary(results, 1500*time.Millisecond)

	assert.Equal(t, 4, summary.TotalStores)
	assert.Equal(t, 2, summary.SuccessfulStores)
	assert.Equal(t, 1, summary.FailedStores)
	assert.Equal(t, 4, summary.TotalProductsSynced)
	assert.Equal(t, int64(1500), summary.DurationMs)
}

func TestNewSummary_Empty(t *testing.T) {
	summary := NewSummary(nil, 0)

	assert.Equal(t, Summary{}, summary)
}

func TestSyncStatus_IsTerminal(t *testing.T) {
	assert.False(t, SyncStatusRunning.IsTerminal())
	assert.False(t, SyncStatusPending.IsTerminal())
	assert.True(t, SyncStatusSuccess.IsTerminal())
	assert.True(t, SyncStatusFailed.IsTerminal())
	assert.True(t, SyncStatusCancelled.IsTerminal())
}

func TestSyncConfig_ToRequest(t *testing.T) {
	channel := "chan-1"
	cfg := SyncConfig{
		ID:                    "cfg-1",
		SourceIntegrationID:   "src-1",
		TargetIntegrationID:   "tgt-1",
		NotificationChannelID: &channel,
		StoreIDs:              []string{"store-1"},
		SkipComparison:        true,
	}

	req := cfg.ToRequest()

	assert.Equal(t, "src-1", req.SourceIntegrationID)
	assert.Equal(t, "tgt-1", req.TargetIntegrationID)
	assert.Equal(t, &channel, req.NotificationChannelID)
	assert.Equal(t, []string{"store-1"}, req.StoreIDs)
	require.NotNil(t, req.SyncConfigID)
	assert.Equal(t, "cfg-1", *req.SyncConfigID)
	assert.True(t, req.Options.SkipComparison)
	assert.False(t, req.Options.ForceSync)
}
