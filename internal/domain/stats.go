package domain

// StoreStats é o snapshot agregado consumido pelos cards do dashboard.
// Os contadores de mensagens são derivados pelo agregador; os demais
// campos (produtos, fornecedores, receita) vêm dos subsistemas de
// estoque e fornecedores e são repassados sem transformação.
type StoreStats struct {
	TotalMessages     int            `json:"total_messages"`
	PendingMessages   int            `json:"pending_messages"`
	UrgentMessages    int            `json:"urgent_messages"`
	PerCategoryCounts map[string]int `json:"per_category_counts"`
	TotalProducts     int            `json:"total_products"`
	LowStockProducts  int            `json:"low_stock_products"`
	TotalSuppliers    int            `json:"total_suppliers"`
	MonthlyRevenue    float64        `json:"monthly_revenue"`
}

// CategorySlice é uma fatia do gráfico de pizza de mensagens por categoria
type CategorySlice struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// MessageCounters guarda os contadores incrementais diários por loja,
// mantidos com incrementos atômicos a cada mensagem classificada e
// recalculados à noite a partir do log de mensagens.
type MessageCounters struct {
	StoreID    string         `json:"store_id"`
	Date       string         `json:"date"`
	Total      int            `json:"total"`
	Pending    int            `json:"pending"`
	Urgent     int            `json:"urgent"`
	ByCategory map[string]int `json:"by_category"`
}
