package aggregating

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zaytech/message-dashboard-api/internal/domain"
)

func testCategories() []*domain.Category {
	base := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	return []*domain.Category{
		{ID: "CAT001", Name: "Família", Color: "#16a34a", Priority: 1, CreatedAt: base},
		{ID: "CAT003", Name: "Loja", Color: "#2563eb", Priority: 3, CreatedAt: base.Add(time.Minute)},
		{ID: "CAT006", Name: "Outros", Color: "#6b7280", Priority: 5, CreatedAt: base.Add(2 * time.Minute)},
	}
}

func classifiedMessage(id, categoryID string, urgent, pending bool) *domain.Message {
	return &domain.Message{
		ID:         id,
		CategoryID: &categoryID,
		Urgent:     urgent,
		Pending:    pending,
	}
}

func TestFold(t *testing.T) {
	categories := testCategories()

	messages := []*domain.Message{
		classifiedMessage("MSG01", "CAT003", false, true),
		classifiedMessage("MSG02", "CAT003", false, true),
		classifiedMessage("MSG03", "CAT003", false, false),
		classifiedMessage("MSG04", "CAT003", false, true),
		classifiedMessage("MSG05", "CAT003", true, true),
		classifiedMessage("MSG06", "CAT003", false, false),
		classifiedMessage("MSG07", "CAT006", false, true),
		classifiedMessage("MSG08", "CAT006", false, true),
		classifiedMessage("MSG09", "CAT006", true, true),
		classifiedMessage("MSG10", "CAT006", false, false),
	}

	stats := Fold(categories, messages)

	assert.Equal(t, 10, stats.TotalMessages)
	assert.Equal(t, 7, stats.PendingMessages)
	assert.Equal(t, 2, stats.UrgentMessages)
	assert.Equal(t, 6, stats.PerCategoryCounts["CAT003"])
	assert.Equal(t, 4, stats.PerCategoryCounts["CAT006"])

	// Categoria sem mensagens aparece zerada, nunca ausente
	count, ok := stats.PerCategoryCounts["CAT001"]
	assert.True(t, ok)
	assert.Equal(t, 0, count)
}

func TestFold_Comutativo(t *testing.T) {
	categories := testCategories()
	rng := rand.New(rand.NewSource(7))

	messages := []*domain.Message{
		classifiedMessage("MSG01", "CAT001", true, true),
		classifiedMessage("MSG02", "CAT003", false, true),
		classifiedMessage("MSG03", "CAT003", false, false),
		classifiedMessage("MSG04", "CAT006", false, true),
		{ID: "MSG05", Pending: true}, // ainda não classificada
	}

	expected := Fold(categories, messages)

	// Qualquer permutação da mesma sequência produz o mesmo snapshot
	for i := 0; i < 20; i++ {
		shuffled := make([]*domain.Message, len(messages))
		copy(shuffled, messages)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, expected, Fold(categories, shuffled), "permutação %d", i)
	}
}

func TestApply_IncrementalEquivaleAoFold(t *testing.T) {
	categories := testCategories()

	messages := []*domain.Message{
		classifiedMessage("MSG01", "CAT001", true, true),
		classifiedMessage("MSG02", "CAT003", false, true),
		classifiedMessage("MSG03", "CAT006", false, false),
	}

	folded := Fold(categories, messages)

	// Incorporar uma mensagem por vez chega ao mesmo resultado
	incremental := Fold(categories, nil)
	for _, message := range messages {
		Apply(incremental, message)
	}

	assert.Equal(t, folded, incremental)
}

func TestApply_MensagemNaoClassificada(t *testing.T) {
	categories := testCategories()
	stats := Fold(categories, nil)

	Apply(stats, &domain.Message{ID: "MSG01", Pending: true})

	assert.Equal(t, 1, stats.TotalMessages)
	assert.Equal(t, 1, stats.PendingMessages)
	for _, count := range stats.PerCategoryCounts {
		assert.Equal(t, 0, count)
	}
}

func TestMergeExternal(t *testing.T) {
	stats := &domain.StoreStats{TotalMessages: 3}

	inventory := &domain.InventorySummary{
		TotalProducts:    42,
		LowStockProducts: 5,
		MonthlyRevenue:   1234.567,
	}

	MergeExternal(stats, inventory, 7)

	assert.Equal(t, 42, stats.TotalProducts)
	assert.Equal(t, 5, stats.LowStockProducts)
	assert.Equal(t, 7, stats.TotalSuppliers)
	// Faturamento arredondado para duas casas
	assert.Equal(t, 1234.57, stats.MonthlyRevenue)
	assert.Equal(t, 3, stats.TotalMessages)
}

func TestMergeExternal_SemInventario(t *testing.T) {
	stats := &domain.StoreStats{}

	MergeExternal(stats, nil, 2)

	assert.Equal(t, 0, stats.TotalProducts)
	assert.Equal(t, 2, stats.TotalSuppliers)
}

func TestChart(t *testing.T) {
	categories := testCategories()

	messages := []*domain.Message{
		classifiedMessage("MSG01", "CAT003", false, true),
		classifiedMessage("MSG02", "CAT003", false, true),
		classifiedMessage("MSG03", "CAT006", false, true),
	}

	stats := Fold(categories, messages)
	slices := Chart(categories, stats)

	// Fatias na ordem de precedência das categorias, incluindo as zeradas
	assert.Equal(t, []domain.CategorySlice{
		{Name: "Família", Count: 0, Color: "#16a34a"},
		{Name: "Loja", Count: 2, Color: "#2563eb"},
		{Name: "Outros", Count: 1, Color: "#6b7280"},
	}, slices)
}
