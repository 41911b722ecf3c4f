package domain

import (
	"time"
)

// Category representa uma categoria de negócio usada para rotear mensagens.
// A prioridade é um inteiro onde valores menores têm maior precedência na
// classificação. Uma categoria sem palavras-chave atua como catch-all.
type Category struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Priority  int       `json:"priority"`
	Keywords  []string  `json:"keywords"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsFallback indica se a categoria é um catch-all (sem palavras-chave)
func (c *Category) IsFallback() bool {
	return len(c.Keywords) == 0
}

type UpsertCategoryRequest struct {
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	Priority int      `json:"priority"`
	Keywords []string `json:"keywords"`
}

type DeleteCategoryRequest struct {
	// ReassignTo é a categoria que receberá as mensagens da categoria
	// removida. Obrigatório quando ainda existem mensagens classificadas.
	ReassignTo string `json:"reassign_to,omitempty"`
}
