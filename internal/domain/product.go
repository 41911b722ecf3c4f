package domain

import (
	"time"
)

// Product pertence ao subsistema de estoque. O dashboard só consome os
// contadores derivados (total e estoque baixo).
type Product struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	MinStock  int       `json:"min_stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InventorySummary agrega os contadores de estoque repassados ao
// StoreStats sem transformação
type InventorySummary struct {
	TotalProducts    int     `json:"total_products"`
	LowStockProducts int     `json:"low_stock_products"`
	MonthlyRevenue   float64 `json:"monthly_revenue"`
}
