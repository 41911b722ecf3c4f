package categorizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zaytech/message-dashboard-api/internal/domain"
)

func TestEvaluate(t *testing.T) {
	settings := &domain.StoreSettings{
		StoreID:          "STR001",
		UrgencyKeywords:  []string{"urgente", "emergência", "socorro"},
		UrgencyThreshold: 1,
	}

	tests := []struct {
		name         string
		body         string
		category     *domain.Category
		settings     *domain.StoreSettings
		expectUrgent bool
	}{
		{
			name:         "Categoria dentro do limite de urgência",
			body:         "meu pai ligou",
			category:     &domain.Category{Name: "Família", Priority: 1},
			settings:     settings,
			expectUrgent: true,
		},
		{
			name:         "Categoria fora do limite e sem palavra de urgência",
			body:         "quanto custa o produto?",
			category:     &domain.Category{Name: "Loja", Priority: 3},
			settings:     settings,
			expectUrgent: false,
		},
		{
			name:         "Palavra de urgência força urgência independente da categoria",
			body:         "é urgente, preciso do pedido hoje",
			category:     &domain.Category{Name: "Loja", Priority: 3},
			settings:     settings,
			expectUrgent: true,
		},
		{
			name:         "Palavra de urgência em maiúsculas",
			body:         "SOCORRO, o sistema caiu",
			category:     &domain.Category{Name: "Outros", Priority: 5},
			settings:     settings,
			expectUrgent: true,
		},
		{
			name:         "Limite maior amplia as categorias urgentes",
			body:         "chegou a nota fiscal",
			category:     &domain.Category{Name: "Fornecedor", Priority: 2},
			settings:     &domain.StoreSettings{UrgencyThreshold: 2},
			expectUrgent: true,
		},
		{
			name:         "Sem configuração usa o limite padrão",
			body:         "mensagem qualquer",
			category:     &domain.Category{Name: "Família", Priority: 1},
			settings:     nil,
			expectUrgent: true,
		},
		{
			name:         "Sem configuração e categoria fora do limite padrão",
			body:         "mensagem qualquer",
			category:     &domain.Category{Name: "Loja", Priority: 3},
			settings:     nil,
			expectUrgent: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := &domain.Message{Body: tt.body}

			result := Evaluate(message, tt.category, tt.settings)

			assert.Equal(t, tt.expectUrgent, result.Urgent)
			// Pendente é sempre verdadeiro na classificação: a resposta
			// ainda não existe
			assert.True(t, result.Pending)
		})
	}
}
