package domain

import (
	"time"
)

// Message representa uma mensagem recebida via gateway de WhatsApp.
// CategoryID e Urgent são definidos uma única vez pela classificação;
// a reclassificação é uma operação explícita do operador, nunca uma
// mutação implícita.
type Message struct {
	ID      string `json:"id"`
	StoreID string `json:"store_id"`
	// ExternalID é a chave da mensagem no gateway, única por loja. As
	// reentregas do webhook carregam a mesma chave e reaproveitam a
	// linha já persistida em vez de duplicá-la.
	ExternalID string    `json:"external_id"`
	Body       string    `json:"body"`
	SenderID   string    `json:"sender_id"`
	ReceivedAt time.Time `json:"received_at"`
	CategoryID *string   `json:"category_id"`
	Urgent     bool      `json:"urgent"`
	Pending    bool      `json:"pending"`
	// Version é usada no controle otimista de concorrência da
	// reclassificação: a atualização só é aplicada se a versão
	// persistida ainda for a mesma lida pelo operador.
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Classified indica se a mensagem já passou pela classificação
func (m *Message) Classified() bool {
	return m.CategoryID != nil
}

// TriageResult é o resultado da avaliação de triagem de uma mensagem
type TriageResult struct {
	Urgent  bool `json:"urgent"`
	Pending bool `json:"pending"`
}

// IngestMessageRequest é a mensagem crua extraída do payload do webhook
// antes da classificação
type IngestMessageRequest struct {
	InstanceName string    `json:"instance_name"`
	ExternalID   string    `json:"external_id"`
	SenderID     string    `json:"sender_id"`
	Body         string    `json:"body"`
	ReceivedAt   time.Time `json:"received_at"`
}

// RepliedMessage identifica uma mensagem marcada como respondida e o dia
// em que ela foi recebida, para o decremento de pendências atingir a
// linha de contadores correta
type RepliedMessage struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
}

type ReplyRequest struct {
	SenderID string `json:"sender_id"`
	Text     string `json:"text"`
}

type ReclassifyMessageRequest struct {
	CategoryID string `json:"category_id"`
	Version    int    `json:"version"`
}

type MessageFilters struct {
	CategoryID *string
	Pending    *bool
	Urgent     *bool
	Since      *time.Time
	Until      *time.Time
}
