package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/zaytech/message-dashboard-api/infrastructure/database/postgres"
	"github.com/zaytech/message-dashboard-api/internal/domain"
)

const (
	messageStatsTable    = "message_stats ms"
	categoryCountsTable  = "message_category_counts mc"
	messageStatsDateOnly = time.DateOnly
)

// MessageStatsRepository mantém os contadores diários de mensagens por
// loja. Cada mensagem classificada gera exatamente um incremento atômico
// (UPDATE ... SET n = n + 1), de modo que entregas concorrentes do webhook
// nunca perdem atualizações. O agendador noturno recalcula os contadores a
// partir do log de mensagens e substitui a linha do dia.
type MessageStatsRepository interface {
	IncrementOnClassify(ctx context.Context, storeID, categoryID string, date time.Time, urgent bool) error
	DecrementPending(storeID string, date time.Time, n int) error
	// MoveCategoryCount transfere uma contagem entre categorias na
	// reclassificação explícita de uma mensagem
	MoveCategoryCount(ctx context.Context, storeID, fromCategoryID, toCategoryID string, date time.Time) error
	GetCounters(storeID string, date time.Time) (*domain.MessageCounters, error)
	// ReplaceCounters substitui os contadores do dia pelo resultado do
	// fold do log de mensagens (recomputo noturno)
	ReplaceCounters(ctx context.Context, counters *domain.MessageCounters) error
}

type messageStatsRepository struct {
	conn *postgres.Connection
}

func NewMessageStatsRepository(conn *postgres.Connection) MessageStatsRepository {
	return &messageStatsRepository{
		conn: conn,
	}
}

func (r *messageStatsRepository) IncrementOnClassify(ctx context.Context, storeID, categoryID string, date time.Time, urgent bool) error {
	day := date.Format(messageStatsDateOnly)

	urgentIncrement := 0
	if urgent {
		urgentIncrement = 1
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		// Toda mensagem nasce pendente, então pending acompanha total
		statsSQL := `
			INSERT INTO message_stats (store_id, date, total, pending, urgent)
			VALUES ($1, $2, 1, 1, $3)
			ON CONFLICT (store_id, date) DO UPDATE SET
				total = message_stats.total + 1,
				pending = message_stats.pending + 1,
				urgent = message_stats.urgent + $3
		`
		if _, err := tx.Exec(statsSQL, storeID, day, urgentIncrement); err != nil {
			return fmt.Errorf("erro ao incrementar contadores da loja: %w", err)
		}

		categorySQL := `
			INSERT INTO message_category_counts (store_id, date, category_id, count)
			VALUES ($1, $2, $3, 1)
			ON CONFLICT (store_id, date, category_id) DO UPDATE SET
				count = message_category_counts.count + 1
		`
		if _, err := tx.Exec(categorySQL, storeID, day, categoryID); err != nil {
			return fmt.Errorf("erro ao incrementar contador da categoria: %w", err)
		}

		return nil
	})
}

func (r *messageStatsRepository) DecrementPending(storeID string, date time.Time, n int) error {
	if n <= 0 {
		return nil
	}

	updateSQL := `
		UPDATE message_stats
		SET pending = GREATEST(pending - $3, 0)
		WHERE store_id = $1 AND date = $2
	`
	if _, err := r.conn.Exec(updateSQL, storeID, date.Format(messageStatsDateOnly), n); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao decrementar pendências: %w", err)
	}

	return nil
}

func (r *messageStatsRepository) MoveCategoryCount(ctx context.Context, storeID, fromCategoryID, toCategoryID string, date time.Time) error {
	day := date.Format(messageStatsDateOnly)

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		decrementSQL := `
			UPDATE message_category_counts
			SET count = GREATEST(count - 1, 0)
			WHERE store_id = $1 AND date = $2 AND category_id = $3
		`
		if _, err := tx.Exec(decrementSQL, storeID, day, fromCategoryID); err != nil {
			return fmt.Errorf("erro ao decrementar categoria anterior: %w", err)
		}

		incrementSQL := `
			INSERT INTO message_category_counts (store_id, date, category_id, count)
			VALUES ($1, $2, $3, 1)
			ON CONFLICT (store_id, date, category_id) DO UPDATE SET
				count = message_category_counts.count + 1
		`
		if _, err := tx.Exec(incrementSQL, storeID, day, toCategoryID); err != nil {
			return fmt.Errorf("erro ao incrementar nova categoria: %w", err)
		}

		return nil
	})
}

func (r *messageStatsRepository) GetCounters(storeID string, date time.Time) (*domain.MessageCounters, error) {
	day := date.Format(messageStatsDateOnly)

	statsSQL, statsArgs, err := squirrel.
		Select("ms.total, ms.pending, ms.urgent").
		From(messageStatsTable).
		Where(squirrel.Eq{"ms.store_id": storeID, "ms.date": day}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	counters := &domain.MessageCounters{
		StoreID:    storeID,
		Date:       day,
		ByCategory: make(map[string]int),
	}

	err = r.conn.QueryRow(statsSQL, statsArgs...).Scan(
		&counters.Total,
		&counters.Pending,
		&counters.Urgent,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return counters, nil
		}
		return nil, fmt.Errorf("erro ao ler contadores: %w", err)
	}

	categorySQL, categoryArgs, err := squirrel.
		Select("mc.category_id, mc.count").
		From(categoryCountsTable).
		Where(squirrel.Eq{"mc.store_id": storeID, "mc.date": day}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(categorySQL, categoryArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return counters, nil
		}
		return nil, fmt.Errorf("erro ao ler contadores por categoria: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var categoryID string
		var count int
		if err := rows.Scan(&categoryID, &count); err != nil {
			return nil, fmt.Errorf("erro ao deserializar contador: %w", err)
		}
		counters.ByCategory[categoryID] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return counters, nil
}

func (r *messageStatsRepository) ReplaceCounters(ctx context.Context, counters *domain.MessageCounters) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		statsSQL := `
			INSERT INTO message_stats (store_id, date, total, pending, urgent)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (store_id, date) DO UPDATE SET
				total = EXCLUDED.total,
				pending = EXCLUDED.pending,
				urgent = EXCLUDED.urgent
		`
		_, err := tx.Exec(statsSQL,
			counters.StoreID,
			counters.Date,
			counters.Total,
			counters.Pending,
			counters.Urgent,
		)
		if err != nil {
			return fmt.Errorf("erro ao substituir contadores: %w", err)
		}

		deleteSQL := `DELETE FROM message_category_counts WHERE store_id = $1 AND date = $2`
		if _, err := tx.Exec(deleteSQL, counters.StoreID, counters.Date); err != nil {
			return fmt.Errorf("erro ao limpar contadores por categoria: %w", err)
		}

		for categoryID, count := range counters.ByCategory {
			insertSQL := `
				INSERT INTO message_category_counts (store_id, date, category_id, count)
				VALUES ($1, $2, $3, $4)
			`
			if _, err := tx.Exec(insertSQL, counters.StoreID, counters.Date, categoryID, count); err != nil {
				return fmt.Errorf("erro ao gravar contador da categoria %s: %w", categoryID, err)
			}
		}

		return nil
	})
}
