package posdomain

import "github.com/shopspring/decimal"

// DiscountedProduct é a linha de desconto como o PDV devolve na consulta por loja
type DiscountedProduct struct {
	Code       int64           `json:"codigo"`
	Price      decimal.Decimal `json:"preco"`
	FinalPrice decimal.Decimal `json:"preco_final"`
	Limit      *int            `json:"limite,omitempty"`
}

type DiscountsResponse struct {
	Products []DiscountedProduct `json:"produtos"`
}

// ErrorResponse é o corpo de erro padrão do PDV
type ErrorResponse struct {
	Message string `json:"mensagem"`
	Code    string `json:"codigo"`
}
