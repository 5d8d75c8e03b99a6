// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type Store struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	RegistrationCode string     `json:"registration_code"` // Identificador da loja na origem e no destino
	TaxDocument      *string    `json:"tax_document"`
	Active           bool       `json:"active"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// StoreFilter define quais lojas participam de uma execução
type StoreFilter struct {
	IDs             []string
	IncludeInactive bool
}
