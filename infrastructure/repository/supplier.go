package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/zaytech/message-dashboard-api/infrastructure/database/postgres"
)

const (
	suppliersTable = "suppliers sp"
)

type SupplierRepository interface {
	CountByStore(storeID string) (int, error)
}

type supplierRepository struct {
	conn *postgres.Connection
}

func NewSupplierRepository(conn *postgres.Connection) SupplierRepository {
	return &supplierRepository{
		conn: conn,
	}
}

func (r *supplierRepository) CountByStore(storeID string) (int, error) {
	countSQL, countArgs, err := squirrel.
		Select("COUNT(*)").
		From(suppliersTable).
		Where(squirrel.Eq{"sp.store_id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(countSQL, countArgs...).Scan(&count); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao contar fornecedores: %w", err)
	}

	return count, nil
}
