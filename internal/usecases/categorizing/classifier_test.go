package categorizing

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaytech/message-dashboard-api/internal/domain"
)

func demoCategories() []*domain.Category {
	base := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	return []*domain.Category{
		{ID: "CAT001", Name: "Família", Color: "#16a34a", Priority: 1, Keywords: []string{"mãe", "pai", "filho"}, CreatedAt: base},
		{ID: "CAT002", Name: "Namorada", Color: "#dc2626", Priority: 2, Keywords: []string{"amor", "saudade"}, CreatedAt: base.Add(time.Minute)},
		{ID: "CAT003", Name: "Loja", Color: "#2563eb", Priority: 3, Keywords: []string{"produto", "preço", "comprar", "pedido"}, CreatedAt: base.Add(2 * time.Minute)},
		{ID: "CAT004", Name: "Fornecedor", Color: "#7c3aed", Priority: 2, Keywords: []string{"nota fiscal", "boleto"}, CreatedAt: base.Add(3 * time.Minute)},
		{ID: "CAT005", Name: "Financeiro", Color: "#ea580c", Priority: 1, Keywords: []string{"banco", "pix", "fatura"}, CreatedAt: base.Add(4 * time.Minute)},
		{ID: "CAT006", Name: "Outros", Color: "#6b7280", Priority: 5, Keywords: []string{}, CreatedAt: base.Add(5 * time.Minute)},
	}
}

func TestClassify(t *testing.T) {
	categories := demoCategories()

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "Mensagem com palavra-chave de loja",
			body:     "vou comprar um produto novo",
			expected: "Loja",
		},
		{
			name:     "Mensagem sem nenhuma palavra-chave cai no catch-all",
			body:     "oi, tudo bem?",
			expected: "Outros",
		},
		{
			name:     "Prioridade menor vence quando mais de uma categoria casa",
			body:     "meu pai pediu o preço do produto",
			expected: "Família",
		},
		{
			name:     "Match é caso-insensitivo",
			body:     "PRODUTO em promoção",
			expected: "Loja",
		},
		{
			name:     "Match por substring, sem fronteira de palavra",
			body:     "curti a qualidade do pixel da câmera",
			expected: "Financeiro",
		},
		{
			name:     "Empate de prioridade resolvido pela ordem de criação",
			body:     "que saudade, chegou o boleto",
			expected: "Namorada",
		},
		{
			name:     "Corpo vazio cai no catch-all",
			body:     "",
			expected: "Outros",
		},
		{
			name:     "Corpo só com espaços cai no catch-all",
			body:     "   ",
			expected: "Outros",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, err := Classify(tt.body, categories)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, category.Name)
		})
	}
}

func TestClassify_Deterministica(t *testing.T) {
	categories := demoCategories()

	first, err := Classify("quero comprar um pedido grande", categories)
	require.NoError(t, err)

	// Entradas idênticas produzem sempre a mesma categoria
	for i := 0; i < 50; i++ {
		category, err := Classify("quero comprar um pedido grande", categories)
		require.NoError(t, err)
		assert.Equal(t, first.ID, category.ID)
	}
}

func TestClassify_IndependeDaOrdemDeArmazenamento(t *testing.T) {
	categories := demoCategories()
	rng := rand.New(rand.NewSource(42))

	bodies := []string{
		"vou comprar um produto novo",
		"oi, tudo bem?",
		"meu pai pediu o preço",
		"chegou o boleto do banco",
		"",
	}

	expected := make(map[string]string, len(bodies))
	for _, body := range bodies {
		category, err := Classify(body, categories)
		require.NoError(t, err)
		expected[body] = category.ID
	}

	// Qualquer permutação da fatia de entrada classifica igual
	for i := 0; i < 20; i++ {
		shuffled := make([]*domain.Category, len(categories))
		copy(shuffled, categories)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		for _, body := range bodies {
			category, err := Classify(body, shuffled)
			require.NoError(t, err)
			assert.Equal(t, expected[body], category.ID, "body %q, permutação %d", body, i)
		}
	}
}

func TestClassify_NaoReordenaAFatiaDoChamador(t *testing.T) {
	categories := demoCategories()
	originalOrder := make([]string, len(categories))
	for i, c := range categories {
		originalOrder[i] = c.ID
	}

	_, err := Classify("qualquer coisa", categories)
	require.NoError(t, err)

	for i, c := range categories {
		assert.Equal(t, originalOrder[i], c.ID)
	}
}

func TestClassify_SemCategorias(t *testing.T) {
	category, err := Classify("qualquer coisa", nil)

	assert.Nil(t, category)
	assert.ErrorIs(t, err, ErrNoCategories)
	assert.True(t, IsConfigurationError(err))
}

func TestClassify_SemCatchAll(t *testing.T) {
	categories := []*domain.Category{
		{ID: "CAT001", Name: "Loja", Priority: 1, Keywords: []string{"produto"}},
	}

	category, err := Classify("oi, tudo bem?", categories)

	assert.Nil(t, category)
	assert.ErrorIs(t, err, ErrNoFallback)
	assert.True(t, IsConfigurationError(err))
}

func TestClassify_CatchAllDeMenorPrecedencia(t *testing.T) {
	base := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	categories := []*domain.Category{
		{ID: "CAT001", Name: "Geral", Priority: 2, Keywords: []string{}, CreatedAt: base},
		{ID: "CAT002", Name: "Outros", Priority: 9, Keywords: []string{}, CreatedAt: base.Add(time.Minute)},
	}

	// Com mais de um catch-all, vence o de maior valor de prioridade
	category, err := Classify("sem nenhum match", categories)
	require.NoError(t, err)
	assert.Equal(t, "Outros", category.Name)
}
