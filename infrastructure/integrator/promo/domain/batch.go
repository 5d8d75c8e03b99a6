package promodomain

import "github.com/shopspring/decimal"

// TimeLayout é o formato de data/hora aceito pela plataforma, sempre no horário local da loja
const TimeLayout = "2006-01-02 15:04:05"

type BatchProduct struct {
	Code       string          `json:"code"`
	Price      decimal.Decimal `json:"price"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Limit      int             `json:"limit"`
}

// BatchRequest substitui o lote da janela quando Override é verdadeiro
type BatchRequest struct {
	StoreRegistration string         `json:"store_registration"`
	CampaignName      string         `json:"campaign_name,omitempty"`
	Override          bool           `json:"override"`
	StartAt           string         `json:"start_at"`
	ExpireAt          string         `json:"expire_at"`
	Products          []BatchProduct `json:"products"`
}

type BatchResponse struct {
	Success bool   `json:"success"`
	BatchID string `json:"batch_id,omitempty"`
	Message string `json:"message,omitempty"`
}

type ActiveDiscount struct {
	Code       string          `json:"code"`
	Price      decimal.Decimal `json:"price"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Limit      int             `json:"limit"`
	StartAt    string          `json:"start_at"`
	ExpireAt   string          `json:"expire_at"`
}

type ActiveDiscountsResponse struct {
	Data []ActiveDiscount `json:"data"`
}
