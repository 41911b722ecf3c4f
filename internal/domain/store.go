package domain

import (
	"time"
)

type StoreStatus string

const (
	StoreStatusActive   StoreStatus = "ACTIVE"
	StoreStatusInactive StoreStatus = "INACTIVE"
)

// Store representa uma loja (tenant) do dashboard. Cada loja possui o
// próprio conjunto de categorias e a própria instância do gateway.
type Store struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
	Plan  string  `json:"plan"`
	// InstanceName identifica a instância da loja no gateway Evolution
	InstanceName string      `json:"instance_name"`
	Status       StoreStatus `json:"status"`
	OwnerID      int         `json:"owner_id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// StoreSettings é a superfície de configuração de triagem da loja:
// palavras-chave que forçam urgência independente de categoria e o
// limite de prioridade abaixo do qual a categoria é urgente por si só.
type StoreSettings struct {
	StoreID          string   `json:"store_id"`
	UrgencyKeywords  []string `json:"urgency_keywords"`
	UrgencyThreshold int      `json:"urgency_threshold"`
}

// DefaultUrgencyThreshold marca como urgentes as categorias de maior
// precedência (prioridade 1)
const DefaultUrgencyThreshold = 1

type UpdateStoreSettingsRequest struct {
	UrgencyKeywords  *[]string `json:"urgency_keywords,omitempty"`
	UrgencyThreshold *int      `json:"urgency_threshold,omitempty"`
}
