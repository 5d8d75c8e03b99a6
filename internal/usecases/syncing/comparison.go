package syncing

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/discount-sync-api/internal/domain"
)

// Diferenças de até um centavo (inclusive) não são divergência
var priceTolerance = decimal.New(1, -2)

// Compare confronta o conjunto de referência com os descontos ativos no destino.
// O resultado não depende da ordem das listas de entrada.
func Compare(reference, target []domain.KeyedSnapshot) domain.ComparisonResult {
	targetByCode := make(map[string]domain.ProductSnapshot, len(target))
	for _, t := range sortedSnapshots(target) {
		if _, ok := targetByCode[t.Code]; ok {
			continue
		}
		targetByCode[t.Code] = t.ProductSnapshot
	}

	details := domain.ComparisonDetails{
		Missing:     make([]domain.ProductComparison, 0),
		PriceDiffs:  make([]domain.ProductComparison, 0),
		StatusDiffs: make([]domain.ProductComparison, 0),
	}

	for _, ref := range sortedSnapshots(reference) {
		source := ref.ProductSnapshot

		current, ok := targetByCode[ref.Code]
		if !ok {
			details.Missing = append(details.Missing, domain.ProductComparison{
				ProductCode:    ref.Code,
				Source:         &source,
				DifferenceType: domain.DifferenceMissing,
			})
			continue
		}

		if priceDiffers(source.FinalPrice, current.FinalPrice) || priceDiffers(source.Price, current.Price) {
			details.PriceDiffs = append(details.PriceDiffs, domain.ProductComparison{
				ProductCode:    ref.Code,
				Source:         &source,
				Target:         &current,
				DifferenceType: domain.DifferencePrice,
			})
		}
	}

	return domain.ComparisonResult{
		TotalDifferences:  len(details.Missing) + len(details.PriceDiffs) + len(details.StatusDiffs),
		MissingProducts:   len(details.Missing),
		PriceDifferences:  len(details.PriceDiffs),
		StatusDifferences: len(details.StatusDiffs),
		Details:           details,
	}
}

func priceDiffers(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().GreaterThan(priceTolerance)
}

func sortedSnapshots(in []domain.KeyedSnapshot) []domain.KeyedSnapshot {
	out := make([]domain.KeyedSnapshot, len(in))
	copy(out, in)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Code != out[j].Code {
			return lessCode(out[i].Code, out[j].Code)
		}
		if !out[i].FinalPrice.Equal(out[j].FinalPrice) {
			return out[i].FinalPrice.LessThan(out[j].FinalPrice)
		}
		return out[i].Price.LessThan(out[j].Price)
	})

	return out
}

// lessCode ordena códigos numéricos pelo valor e os demais lexicograficamente
func lessCode(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return na < nb
	}
	if errA == nil {
		return true
	}
	if errB == nil {
		return false
	}
	return a < b
}

// failedComparison é o resultado zerado registrado quando a conciliação de uma loja falha
func failedComparison(store *domain.Store, err error) domain.ComparisonResult {
	msg := err.Error()
	return domain.ComparisonResult{
		StoreID:   store.ID,
		StoreName: store.Name,
		Details: domain.ComparisonDetails{
			Missing:     make([]domain.ProductComparison, 0),
			PriceDiffs:  make([]domain.ProductComparison, 0),
			StatusDiffs: make([]domain.ProductComparison, 0),
		},
		Error: &msg,
	}
}
