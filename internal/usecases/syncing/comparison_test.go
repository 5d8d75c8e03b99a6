package syncing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/discount-sync-api/internal/domain"
)

func snapshot(code string, price, finalPrice string) domain.KeyedSnapshot {
	return domain.KeyedSnapshot{
		Code: code,
		ProductSnapshot: domain.ProductSnapshot{
			Price:      decimal.RequireFromString(price),
			FinalPrice: decimal.RequireFromString(finalPrice),
			Active:     true,
		},
	}
}

func TestCompare_PriceDifference(t *testing.T) {
	result := Compare(
		[]domain.KeyedSnapshot{snapshot("1", "10", "10")},
		[]domain.KeyedSnapshot{snapshot("1", "10", "12")},
	)

	assert.Equal(t, 1, result.PriceDifferences)
	assert.Equal(t, 0, result.MissingProducts)
	assert.Equal(t, 1, result.TotalDifferences)
	require.Len(t, result.Details.PriceDiffs, 1)

	diff := result.Details.PriceDiffs[0]
	assert.Equal(t, "1", diff.ProductCode)
	assert.Equal(t, domain.DifferencePrice, diff.DifferenceType)
	require.NotNil(t, diff.Source)
	require.NotNil(t, diff.Target)
	assert.True(t, diff.Target.FinalPrice.Equal(decimal.NewFromInt(12)))
}

func TestCompare_MissingInTarget(t *testing.T) {
	result := Compare([]domain.KeyedSnapshot{snapshot("2", "5", "5")}, nil)

	assert.Equal(t, 1, result.MissingProducts)
	assert.Equal(t, 0, result.PriceDifferences)
	require.Len(t, result.Details.Missing, 1)
	assert.Equal(t, domain.DifferenceMissing, result.Details.Missing[0].DifferenceType)
	assert.NotNil(t, result.Details.Missing[0].Source)
	assert.Nil(t, result.Details.Missing[0].Target)
}

func TestCompare_Tolerance(t *testing.T) {
	tests := []struct {
		name       string
		reference  domain.KeyedSnapshot
		target     domain.KeyedSnapshot
		wantDiffer bool
	}{
		{"preços iguais", snapshot("1", "10.00", "8.00"), snapshot("1", "10.00", "8.00"), false},
		{"exatamente um centavo no preço final", snapshot("1", "10.00", "8.00"), snapshot("1", "10.00", "8.01"), false},
		{"exatamente um centavo para baixo", snapshot("1", "10.00", "8.00"), snapshot("1", "10.00", "7.99"), false},
		{"acima da tolerância no preço final", snapshot("1", "10.00", "8.000"), snapshot("1", "10.00", "8.011"), true},
		{"acima da tolerância no preço cheio", snapshot("1", "10.000", "8.00"), snapshot("1", "9.989", "8.00"), true},
		{"exatamente um centavo no preço cheio", snapshot("1", "10.00", "8.00"), snapshot("1", "10.01", "8.00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compare([]domain.KeyedSnapshot{tt.reference}, []domain.KeyedSnapshot{tt.target})

			if tt.wantDiffer {
				assert.Equal(t, 1, result.PriceDifferences)
			} else {
				assert.Equal(t, 0, result.PriceDifferences)
			}
			assert.Equal(t, 0, result.MissingProducts)
		})
	}
}

func TestCompare_IsIndependentOfInputOrder(t *testing.T) {
	reference := []domain.KeyedSnapshot{
		snapshot("30", "3", "2"),
		snapshot("4", "10", "9"),
		snapshot("100", "7", "6"),
		snapshot("2", "5", "5"),
	}
	target := []domain.KeyedSnapshot{
		snapshot("100", "7", "5"),
		snapshot("4", "10", "9"),
		snapshot("30", "3", "2.5"),
	}

	first := Compare(reference, target)

	reversedRef := make([]domain.KeyedSnapshot, len(reference))
	for i, r := range reference {
		reversedRef[len(reference)-1-i] = r
	}
	reversedTarget := make([]domain.KeyedSnapshot, len(target))
	for i, r := range target {
		reversedTarget[len(target)-1-i] = r
	}

	second := Compare(reversedRef, reversedTarget)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, first.MissingProducts)
	assert.Equal(t, 2, first.PriceDifferences)
	assert.Equal(t, 3, first.TotalDifferences)

	codes := make([]string, 0, len(first.Details.PriceDiffs))
	for _, d := range first.Details.PriceDiffs {
		codes = append(codes, d.ProductCode)
	}
	assert.Equal(t, []string{"30", "100"}, codes)
}

func TestCompare_StatusDifferencesAreAlwaysZero(t *testing.T) {
	result := Compare(
		[]domain.KeyedSnapshot{snapshot("1", "10", "8")},
		[]domain.KeyedSnapshot{snapshot("1", "10", "8")},
	)

	assert.Equal(t, 0, result.StatusDifferences)
	assert.NotNil(t, result.Details.StatusDiffs)
	assert.Empty(t, result.Details.StatusDiffs)
	assert.Equal(t, 0, result.TotalDifferences)
}

func TestCompare_ExtraTargetProductsAreIgnored(t *testing.T) {
	result := Compare(nil, []domain.KeyedSnapshot{snapshot("9", "1", "1")})

	assert.Equal(t, 0, result.TotalDifferences)
	assert.Empty(t, result.Details.Missing)
}
