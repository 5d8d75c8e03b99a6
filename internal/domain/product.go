package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultProductLimit é o teto de unidades aplicado quando a origem não informa limite
const DefaultProductLimit = 1000

// SourceProduct é uma linha de desconto retornada pelo PDV para uma loja
type SourceProduct struct {
	Code       int64           `json:"code"`
	Price      decimal.Decimal `json:"price"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Limit      *int            `json:"limit,omitempty"`
}

// CachedProduct é o snapshot local da última busca na origem para uma loja
type CachedProduct struct {
	ID         int64           `json:"id"`
	Code       int64           `json:"code"`
	Price      decimal.Decimal `json:"price"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Limit      *int            `json:"limit,omitempty"`
	StoreID    string          `json:"store_id"`
	StartAt    time.Time       `json:"start_at"`
	ExpireAt   time.Time       `json:"expire_at"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  *time.Time      `json:"deleted_at,omitempty"`
}

// TargetProduct é um desconto ativo na plataforma de destino
type TargetProduct struct {
	Code       string          `json:"code"`
	Price      decimal.Decimal `json:"price"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Limit      int             `json:"limit"`
	StartAt    time.Time       `json:"start_at"`
	ExpireAt   time.Time       `json:"expire_at"`
}

// DiscountWindow é o intervalo de vigência enviado no lote para o destino
type DiscountWindow struct {
	StartAt  time.Time `json:"start_at"`
	ExpireAt time.Time `json:"expire_at"`
}

type BatchItem struct {
	Code       string          `json:"code"`
	Price      decimal.Decimal `json:"price"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Limit      int             `json:"limit"`
}

// DiscountBatch substitui por completo o lote da janela no destino (override)
type DiscountBatch struct {
	StoreRegistration string         `json:"store_registration"`
	Override          bool           `json:"override"`
	Window            DiscountWindow `json:"window"`
	Items             []BatchItem    `json:"items"`
}

// NewCachedProducts converte os produtos da origem em linhas do cache local
func NewCachedProducts(storeID string, products []SourceProduct, window DiscountWindow) []CachedProduct {
	cached := make([]CachedProduct, 0, len(products))
	seen := make(map[int64]struct{}, len(products))

	for _, p := range products {
		// Apenas uma linha viva por (loja, código)
		if _, ok := seen[p.Code]; ok {
			continue
		}
		seen[p.Code] = struct{}{}

		cached = append(cached, CachedProduct{
			Code:       p.Code,
			Price:      p.Price,
			FinalPrice: p.FinalPrice,
			Limit:      p.Limit,
			StoreID:    storeID,
			StartAt:    window.StartAt,
			ExpireAt:   window.ExpireAt,
		})
	}

	return cached
}

// NewDiscountBatch monta o lote do destino a partir do cache local
func NewDiscountBatch(registration string, products []CachedProduct, window DiscountWindow, defaultLimit int) DiscountBatch {
	if defaultLimit <= 0 {
		defaultLimit = DefaultProductLimit
	}

	items := make([]BatchItem, 0, len(products))
	for _, p := range products {
		limit := defaultLimit
		if p.Limit != nil && *p.Limit > 0 {
			limit = *p.Limit
		}

		items = append(items, BatchItem{
			Code:       ProductCode(p.Code),
			Price:      p.Price,
			FinalPrice: p.FinalPrice,
			Limit:      limit,
		})
	}

	return DiscountBatch{
		StoreRegistration: registration,
		Override:          true,
		Window:            window,
		Items:             items,
	}
}
