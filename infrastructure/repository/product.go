package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/zaytech/message-dashboard-api/infrastructure/database/postgres"
	"github.com/zaytech/message-dashboard-api/internal/domain"
)

const (
	productsTable = "products p"
	ordersTable   = "orders o"
)

// ProductRepository expõe o resumo de estoque consumido pelo dashboard.
// Os contadores são repassados ao StoreStats sem transformação.
type ProductRepository interface {
	GetInventorySummary(storeID string, monthStart time.Time) (*domain.InventorySummary, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) GetInventorySummary(storeID string, monthStart time.Time) (*domain.InventorySummary, error) {
	summary := &domain.InventorySummary{}

	countsSQL, countsArgs, err := squirrel.
		Select("COUNT(*)", "COUNT(*) FILTER (WHERE p.stock <= p.min_stock)").
		From(productsTable).
		Where(squirrel.Eq{"p.store_id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(countsSQL, countsArgs...).Scan(
		&summary.TotalProducts,
		&summary.LowStockProducts,
	)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	revenueSQL, revenueArgs, err := squirrel.
		Select("COALESCE(SUM(o.total), 0)").
		From(ordersTable).
		Where(squirrel.Eq{"o.store_id": storeID}).
		Where(squirrel.GtOrEq{"o.created_at": monthStart}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(revenueSQL, revenueArgs...).Scan(&summary.MonthlyRevenue)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("erro ao somar receita mensal: %w", err)
	}

	return summary, nil
}
