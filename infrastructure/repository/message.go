package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/zaytech/message-dashboard-api/infrastructure/database/postgres"
	"github.com/zaytech/message-dashboard-api/internal/domain"
)

const (
	messagesTable  = "messages m"
	messageColumns = "m.id, m.store_id, m.external_id, m.body, m.sender_id, m.received_at, m.category_id, m.urgent, m.pending, m.version, m.created_at, m.updated_at"
)

// ErrStaleVersion indica que a mensagem foi alterada entre a leitura e a
// tentativa de reclassificação (verificação otimista de concorrência)
var ErrStaleVersion = errors.New("mensagem foi alterada por outra operação")

// ErrAlreadyClassified indica tentativa de sobrescrever uma classificação
// já persistida fora da operação explícita de reclassificação
var ErrAlreadyClassified = errors.New("mensagem já classificada")

type MessageRepository interface {
	// Create persiste a mensagem. Quando o gateway reentrega a mesma
	// chave externa, a linha já persistida é devolvida em vez de uma
	// cópia nova
	Create(message *domain.Message) (*domain.Message, error)
	GetByID(storeID, messageID string) (*domain.Message, error)
	GetByExternalID(storeID, externalID string) (*domain.Message, error)
	ListByStore(storeID string, filters *domain.MessageFilters) ([]*domain.Message, error)
	// SetClassification grava categoria e urgência uma única vez; falha com
	// ErrAlreadyClassified se a mensagem já tiver categoria
	SetClassification(messageID, categoryID string, urgent bool) error
	// Reclassify troca a categoria sob verificação otimista de versão
	Reclassify(messageID, categoryID string, version int) error
	// MarkReplied marca como respondidas as mensagens pendentes do
	// remetente e devolve os pares (id, received_at) afetados
	MarkReplied(storeID, senderID string) ([]*domain.RepliedMessage, error)
}

type messageRepository struct {
	conn *postgres.Connection
}

func NewMessageRepository(conn *postgres.Connection) MessageRepository {
	return &messageRepository{
		conn: conn,
	}
}

func (r *messageRepository) Create(message *domain.Message) (*domain.Message, error) {
	query := squirrel.StatementBuilder.
		Insert("messages").
		Columns("id", "store_id", "external_id", "body", "sender_id", "received_at", "pending", "version").
		Values(
			message.ID,
			message.StoreID,
			message.ExternalID,
			message.Body,
			message.SenderID,
			message.ReceivedAt,
			true,
			1,
		).
		PlaceholderFormat(squirrel.Dollar)

	// A chave externa do gateway é única por loja: uma reentrega do mesmo
	// evento conflita com a linha original, que é devolvida no lugar de
	// uma duplicata
	if message.ExternalID != "" {
		query = query.Suffix("ON CONFLICT (store_id, external_id) DO NOTHING RETURNING created_at, updated_at")
	} else {
		query = query.Suffix("RETURNING created_at, updated_at")
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRow(sqlQuery, args...).Scan(&message.CreatedAt, &message.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows && message.ExternalID != "" {
			return r.GetByExternalID(message.StoreID, message.ExternalID)
		}
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	message.Pending = true
	message.Version = 1

	return message, nil
}

func (r *messageRepository) GetByID(storeID, messageID string) (*domain.Message, error) {
	messageSQL, messageArgs, err := squirrel.
		Select(messageColumns).
		From(messagesTable).
		Where(squirrel.Eq{"m.store_id": storeID, "m.id": messageID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(messageSQL, messageArgs...)

	message, err := r.deserializeMessage(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return message, nil
}

func (r *messageRepository) GetByExternalID(storeID, externalID string) (*domain.Message, error) {
	messageSQL, messageArgs, err := squirrel.
		Select(messageColumns).
		From(messagesTable).
		Where(squirrel.Eq{"m.store_id": storeID, "m.external_id": externalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(messageSQL, messageArgs...)

	message, err := r.deserializeMessage(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return message, nil
}

func (r *messageRepository) ListByStore(storeID string, filters *domain.MessageFilters) ([]*domain.Message, error) {
	queryBuilder := squirrel.
		Select(messageColumns).
		From(messagesTable).
		Where(squirrel.Eq{"m.store_id": storeID}).
		OrderBy("m.received_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.CategoryID != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"m.category_id": *filters.CategoryID})
		}
		if filters.Pending != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"m.pending": *filters.Pending})
		}
		if filters.Urgent != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"m.urgent": *filters.Urgent})
		}
		if filters.Since != nil {
			queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"m.received_at": *filters.Since})
		}
		if filters.Until != nil {
			queryBuilder = queryBuilder.Where(squirrel.Lt{"m.received_at": *filters.Until})
		}
	}

	messagesSQL, messagesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(messagesSQL, messagesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	messages := make([]*domain.Message, 0)

	for rows.Next() {
		message := &domain.Message{}
		if err := rows.Scan(
			&message.ID,
			&message.StoreID,
			&message.ExternalID,
			&message.Body,
			&message.SenderID,
			&message.ReceivedAt,
			&message.CategoryID,
			&message.Urgent,
			&message.Pending,
			&message.Version,
			&message.CreatedAt,
			&message.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a mensagem: %w", err)
		}

		messages = append(messages, message)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return messages, nil
}

func (r *messageRepository) SetClassification(messageID, categoryID string, urgent bool) error {
	// category_id IS NULL garante a semântica de escrita única: a
	// classificação nunca sobrescreve outra implícita ou concorrente
	updateSQL, updateArgs, err := squirrel.
		Update("messages").
		Set("category_id", categoryID).
		Set("urgent", urgent).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": messageID}).
		Where("category_id IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(updateSQL, updateArgs...)
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
		return ErrAlreadyClassified
	}

	return nil
}

func (r *messageRepository) Reclassify(messageID, categoryID string, version int) error {
	updateSQL, updateArgs, err := squirrel.
		Update("messages").
		Set("category_id", categoryID).
		Set("version", version+1).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": messageID, "version": version}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(updateSQL, updateArgs...)
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
		return ErrStaleVersion
	}

	return nil
}

func (r *messageRepository) MarkReplied(storeID, senderID string) ([]*domain.RepliedMessage, error) {
	// received_at acompanha o id para o decremento de pendências atingir a
	// linha de contadores do dia em que cada mensagem foi recebida
	updateSQL, updateArgs, err := squirrel.
		Update("messages").
		Set("pending", false).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"store_id": storeID, "sender_id": senderID, "pending": true}).
		Suffix("RETURNING id, received_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(updateSQL, updateArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao marcar mensagens como respondidas: %w", err)
	}
	defer rows.Close()

	replied := make([]*domain.RepliedMessage, 0)
	for rows.Next() {
		message := &domain.RepliedMessage{}
		if err := rows.Scan(&message.ID, &message.ReceivedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler mensagem respondida: %w", err)
		}
		replied = append(replied, message)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return replied, nil
}

func (r *messageRepository) deserializeMessage(row *sql.Row) (*domain.Message, error) {
	message := &domain.Message{}

	if err := row.Scan(
		&message.ID,
		&message.StoreID,
		&message.ExternalID,
		&message.Body,
		&message.SenderID,
		&message.ReceivedAt,
		&message.CategoryID,
		&message.Urgent,
		&message.Pending,
		&message.Version,
		&message.CreatedAt,
		&message.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return message, nil
}
