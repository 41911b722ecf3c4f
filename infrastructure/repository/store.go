package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/zaytech/message-dashboard-api/infrastructure/database/postgres"
	"github.com/zaytech/message-dashboard-api/internal/domain"
)

const (
	storesTable        = "stores s"
	storeSettingsTable = "store_settings ss"
)

type StoreRepository interface {
	GetByID(storeID string) (*domain.Store, error)
	// GetByInstanceName resolve a loja dona de uma instância do gateway
	GetByInstanceName(instanceName string) (*domain.Store, error)
	ListStores(availableStatus []domain.StoreStatus) ([]*domain.Store, error)
	// GetSettings devolve a configuração de triagem da loja; quando não
	// existe linha, devolve os padrões
	GetSettings(storeID string) (*domain.StoreSettings, error)
	SaveSettings(settings *domain.StoreSettings) error
}

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) GetByID(storeID string) (*domain.Store, error) {
	storeSQL, storeArgs, err := squirrel.
		Select("s.id, s.name, s.phone, s.email, s.plan, s.instance_name, s.status, s.owner_id, s.created_at, s.updated_at").
		From(storesTable).
		Where(squirrel.Eq{"s.id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(storeSQL, storeArgs...)

	store := &domain.Store{}
	if err := row.Scan(
		&store.ID,
		&store.Name,
		&store.Phone,
		&store.Email,
		&store.Plan,
		&store.InstanceName,
		&store.Status,
		&store.OwnerID,
		&store.CreatedAt,
		&store.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return store, nil
}

func (r *storeRepository) GetByInstanceName(instanceName string) (*domain.Store, error) {
	storeSQL, storeArgs, err := squirrel.
		Select("s.id, s.name, s.phone, s.email, s.plan, s.instance_name, s.status, s.owner_id, s.created_at, s.updated_at").
		From(storesTable).
		Where(squirrel.Eq{"s.instance_name": instanceName}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(storeSQL, storeArgs...)

	store := &domain.Store{}
	if err := row.Scan(
		&store.ID,
		&store.Name,
		&store.Phone,
		&store.Email,
		&store.Plan,
		&store.InstanceName,
		&store.Status,
		&store.OwnerID,
		&store.CreatedAt,
		&store.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return store, nil
}

func (r *storeRepository) ListStores(availableStatus []domain.StoreStatus) ([]*domain.Store, error) {
	queryBuilder := squirrel.
		Select("s.id, s.name, s.phone, s.email, s.plan, s.instance_name, s.status, s.owner_id, s.created_at, s.updated_at").
		From(storesTable).
		OrderBy("s.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.status": availableStatus})
	}

	storesSQL, storesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(storesSQL, storesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)

	for rows.Next() {
		store := &domain.Store{}
		if err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.Phone,
			&store.Email,
			&store.Plan,
			&store.InstanceName,
			&store.Status,
			&store.OwnerID,
			&store.CreatedAt,
			&store.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a loja: %w", err)
		}

		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return stores, nil
}

func (r *storeRepository) GetSettings(storeID string) (*domain.StoreSettings, error) {
	settingsSQL, settingsArgs, err := squirrel.
		Select("ss.store_id, ss.urgency_keywords, ss.urgency_threshold").
		From(storeSettingsTable).
		Where(squirrel.Eq{"ss.store_id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	settings := &domain.StoreSettings{}
	var keywords pq.StringArray

	err = r.conn.QueryRow(settingsSQL, settingsArgs...).Scan(
		&settings.StoreID,
		&keywords,
		&settings.UrgencyThreshold,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.StoreSettings{
				StoreID:          storeID,
				UrgencyThreshold: domain.DefaultUrgencyThreshold,
			}, nil
		}
		return nil, err
	}

	settings.UrgencyKeywords = keywords
	return settings, nil
}

func (r *storeRepository) SaveSettings(settings *domain.StoreSettings) error {
	query := squirrel.StatementBuilder.
		Insert("store_settings").
		Columns("store_id", "urgency_keywords", "urgency_threshold").
		Values(settings.StoreID, pq.Array(settings.UrgencyKeywords), settings.UrgencyThreshold).
		Suffix(`
			ON CONFLICT (store_id) DO UPDATE SET
				urgency_keywords = EXCLUDED.urgency_keywords,
				urgency_threshold = EXCLUDED.urgency_threshold
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
