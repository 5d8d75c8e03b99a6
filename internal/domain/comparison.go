package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

type DifferenceType string

const (
	DifferenceMissing DifferenceType = "MISSING"
	DifferencePrice   DifferenceType = "PRICE_DIFF"
	DifferenceStatus  DifferenceType = "STATUS_DIFF"
)

type ProductSnapshot struct {
	Price      decimal.Decimal `json:"price"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Active     bool            `json:"active"`
}

// KeyedSnapshot é um snapshot identificado pelo código do produto
type KeyedSnapshot struct {
	Code string
	ProductSnapshot
}

type ProductComparison struct {
	ProductCode    string           `json:"product_code"`
	Source         *ProductSnapshot `json:"source,omitempty"`
	Target         *ProductSnapshot `json:"target,omitempty"`
	DifferenceType DifferenceType   `json:"difference_type"`
}

type ComparisonDetails struct {
	Missing     []ProductComparison `json:"missing"`
	PriceDiffs  []ProductComparison `json:"price_diffs"`
	StatusDiffs []ProductComparison `json:"status_diffs"`
}

type ComparisonResult struct {
	StoreID           string            `json:"store_id"`
	StoreName         string            `json:"store_name"`
	TotalDifferences  int               `json:"total_differences"`
	MissingProducts   int               `json:"missing_products"`
	PriceDifferences  int               `json:"price_differences"`
	StatusDifferences int               `json:"status_differences"`
	Details           ComparisonDetails `json:"details"`
	Error             *string           `json:"error,omitempty"`
}

// ProductCode normaliza o código numérico do PDV para o formato textual do destino
func ProductCode(code int64) string {
	return strconv.FormatInt(code, 10)
}

func CachedSnapshots(products []CachedProduct) []KeyedSnapshot {
	snapshots := make([]KeyedSnapshot, 0, len(products))
	for _, p := range products {
		snapshots = append(snapshots, KeyedSnapshot{
			Code: ProductCode(p.Code),
			ProductSnapshot: ProductSnapshot{
				Price:      p.Price,
				FinalPrice: p.FinalPrice,
				Active:     true,
			},
		})
	}
	return snapshots
}

func SourceSnapshots(products []SourceProduct) []KeyedSnapshot {
	snapshots := make([]KeyedSnapshot, 0, len(products))
	for _, p := range products {
		snapshots = append(snapshots, KeyedSnapshot{
			Code: ProductCode(p.Code),
			ProductSnapshot: ProductSnapshot{
				Price:      p.Price,
				FinalPrice: p.FinalPrice,
				Active:     true,
			},
		})
	}
	return snapshots
}

func TargetSnapshots(products []TargetProduct) []KeyedSnapshot {
	snapshots := make([]KeyedSnapshot, 0, len(products))
	for _, p := range products {
		snapshots = append(snapshots, KeyedSnapshot{
			Code: p.Code,
			ProductSnapshot: ProductSnapshot{
				Price:      p.Price,
				FinalPrice: p.FinalPrice,
				Active:     true,
			},
		})
	}
	return snapshots
}
