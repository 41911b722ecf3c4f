package aggregating

import (
	"github.com/zaytech/message-dashboard-api/internal/domain"
	"github.com/zaytech/message-dashboard-api/pkg/utils"
)

// Fold agrega uma sequência de mensagens classificadas no snapshot de
// estatísticas da loja. Toda categoria registrada aparece no mapa de
// contagens, mesmo com zero mensagens, para que a camada de apresentação
// nunca precise tratar categoria ausente.
//
// O fold é associativo e comutativo: qualquer permutação da mesma
// sequência produz o mesmo resultado, e uma nova mensagem pode ser
// incorporada com Apply sem recomputar o conjunto.
func Fold(categories []*domain.Category, messages []*domain.Message) *domain.StoreStats {
	stats := &domain.StoreStats{
		PerCategoryCounts: make(map[string]int, len(categories)),
	}

	for _, category := range categories {
		stats.PerCategoryCounts[category.ID] = 0
	}

	for _, message := range messages {
		Apply(stats, message)
	}

	return stats
}

// Apply incorpora uma única mensagem ao snapshot. Mensagens ainda não
// classificadas contam no total e nas pendências, mas não em categoria.
func Apply(stats *domain.StoreStats, message *domain.Message) {
	stats.TotalMessages++

	if message.Pending {
		stats.PendingMessages++
	}

	if message.Urgent {
		stats.UrgentMessages++
	}

	if message.CategoryID != nil {
		stats.PerCategoryCounts[*message.CategoryID]++
	}
}

// MergeExternal incorpora os contadores dos subsistemas de estoque e
// fornecedores. As contagens são repassadas sem transformação; o
// faturamento é arredondado para duas casas decimais.
func MergeExternal(stats *domain.StoreStats, inventory *domain.InventorySummary, totalSuppliers int) {
	if inventory != nil {
		stats.TotalProducts = inventory.TotalProducts
		stats.LowStockProducts = inventory.LowStockProducts
		stats.MonthlyRevenue = utils.RoundWithTwoDecimalPlace(inventory.MonthlyRevenue)
	}
	stats.TotalSuppliers = totalSuppliers
}

// Chart monta as fatias do gráfico de mensagens por categoria na ordem de
// precedência das categorias, incluindo as de contagem zero
func Chart(categories []*domain.Category, stats *domain.StoreStats) []domain.CategorySlice {
	slices := make([]domain.CategorySlice, 0, len(categories))

	for _, category := range categories {
		slices = append(slices, domain.CategorySlice{
			Name:  category.Name,
			Count: stats.PerCategoryCounts[category.ID],
			Color: category.Color,
		})
	}

	return slices
}
