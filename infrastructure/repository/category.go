package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/zaytech/message-dashboard-api/infrastructure/database/postgres"
	"github.com/zaytech/message-dashboard-api/internal/domain"
)

const (
	categoriesTable = "categories c"
)

type CategoryRepository interface {
	// ListByStore devolve as categorias da loja ordenadas por precedência:
	// prioridade crescente e, em empate, ordem de criação e ID
	ListByStore(storeID string) ([]*domain.Category, error)
	GetByID(storeID, categoryID string) (*domain.Category, error)
	Upsert(category *domain.Category) (*domain.Category, error)
	CountMessages(categoryID string) (int, error)
	// DeleteWithReassign move as mensagens da categoria para reassignTo e
	// remove a categoria na mesma transação
	DeleteWithReassign(ctx context.Context, storeID, categoryID, reassignTo string) error
	Delete(storeID, categoryID string) error
}

type categoryRepository struct {
	conn *postgres.Connection
}

func NewCategoryRepository(conn *postgres.Connection) CategoryRepository {
	return &categoryRepository{
		conn: conn,
	}
}

func (r *categoryRepository) ListByStore(storeID string) ([]*domain.Category, error) {
	categoriesSQL, categoriesArgs, err := squirrel.
		Select("c.id, c.store_id, c.name, c.color, c.priority, c.keywords, c.created_at, c.updated_at").
		From(categoriesTable).
		Where(squirrel.Eq{"c.store_id": storeID}).
		OrderBy("c.priority ASC", "c.created_at ASC", "c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(categoriesSQL, categoriesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)

	for rows.Next() {
		category, err := r.deserializeCategory(rows)
		if err != nil {
			return nil, err
		}

		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) GetByID(storeID, categoryID string) (*domain.Category, error) {
	categorySQL, categoryArgs, err := squirrel.
		Select("c.id, c.store_id, c.name, c.color, c.priority, c.keywords, c.created_at, c.updated_at").
		From(categoriesTable).
		Where(squirrel.Eq{"c.store_id": storeID, "c.id": categoryID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(categorySQL, categoryArgs...)

	category := &domain.Category{}
	var keywords pq.StringArray

	if err := row.Scan(
		&category.ID,
		&category.StoreID,
		&category.Name,
		&category.Color,
		&category.Priority,
		&keywords,
		&category.CreatedAt,
		&category.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	category.Keywords = keywords
	return category, nil
}

// Upsert insere ou atualiza a categoria, idempotente em (store_id, name).
// Em conflito, a prioridade, a cor e as palavras-chave são substituídas;
// id e created_at originais são preservados.
func (r *categoryRepository) Upsert(category *domain.Category) (*domain.Category, error) {
	query := squirrel.StatementBuilder.
		Insert("categories").
		Columns("id", "store_id", "name", "color", "priority", "keywords").
		Values(
			category.ID,
			category.StoreID,
			category.Name,
			category.Color,
			category.Priority,
			pq.Array(category.Keywords),
		).
		Suffix(`
			ON CONFLICT (store_id, name) DO UPDATE SET
				color = EXCLUDED.color,
				priority = EXCLUDED.priority,
				keywords = EXCLUDED.keywords,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&category.ID,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	return category, nil
}

func (r *categoryRepository) CountMessages(categoryID string) (int, error) {
	countSQL, countArgs, err := squirrel.
		Select("COUNT(*)").
		From("messages").
		Where(squirrel.Eq{"category_id": categoryID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(countSQL, countArgs...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar mensagens da categoria: %w", err)
	}

	return count, nil
}

func (r *categoryRepository) DeleteWithReassign(ctx context.Context, storeID, categoryID, reassignTo string) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		reassignSQL, reassignArgs, err := squirrel.
			Update("messages").
			Set("category_id", reassignTo).
			Where(squirrel.Eq{"store_id": storeID, "category_id": categoryID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.Exec(reassignSQL, reassignArgs...); err != nil {
			return fmt.Errorf("erro ao reatribuir mensagens: %w", err)
		}

		deleteSQL, deleteArgs, err := squirrel.
			Delete("categories").
			Where(squirrel.Eq{"store_id": storeID, "id": categoryID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.Exec(deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover categoria: %w", err)
		}

		return nil
	})
}

func (r *categoryRepository) Delete(storeID, categoryID string) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete("categories").
		Where(squirrel.Eq{"store_id": storeID, "id": categoryID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(deleteSQL, deleteArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *categoryRepository) deserializeCategory(rows *sql.Rows) (*domain.Category, error) {
	category := &domain.Category{}
	var keywords pq.StringArray

	if err := rows.Scan(
		&category.ID,
		&category.StoreID,
		&category.Name,
		&category.Color,
		&category.Priority,
		&keywords,
		&category.CreatedAt,
		&category.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("erro ao deserializar a categoria: %w", err)
	}

	category.Keywords = keywords
	return category, nil
}
