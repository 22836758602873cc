package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gracemobile/backend/internal/model/chat"
)

// foreignKeyViolation is the postgres error class raised when a message
// references a session that does not exist.
const foreignKeyViolation = "23503"

// AppendMessage assigns identity and timestamp and persists the message.
func (s *PGStore) AppendMessage(ctx context.Context, sessionID string, sender chat.Sender, category chat.Category, content string) (chat.Message, error) {
	return s.insertMessage(ctx, s.db, sessionID, sender, category, content)
}

// AppendExchange commits the user/bot pair in one transaction so a torn
// exchange can never become visible.
func (s *PGStore) AppendExchange(ctx context.Context, sessionID string, user, bot chat.Message) (chat.Message, chat.Message, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return chat.Message{}, chat.Message{}, fmt.Errorf("chat: begin exchange: %w", err)
	}
	defer tx.Rollback(ctx)

	stored, err := s.insertMessage(ctx, tx, sessionID, user.Sender, user.Category, user.Content)
	if err != nil {
		return chat.Message{}, chat.Message{}, err
	}
	reply, err := s.insertMessage(ctx, tx, sessionID, bot.Sender, bot.Category, bot.Content)
	if err != nil {
		return chat.Message{}, chat.Message{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return chat.Message{}, chat.Message{}, fmt.Errorf("chat: commit exchange: %w", err)
	}
	return stored, reply, nil
}

// insertMessage keeps per-session timestamps strictly increasing: within
// a transaction now() is stable, so the second insert of a pair lands one
// millisecond after the first.
func (s *PGStore) insertMessage(ctx context.Context, q querier, sessionID string, sender chat.Sender, category chat.Category, content string) (chat.Message, error) {
	message := chat.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Sender:    sender,
		Category:  category,
		Content:   content,
	}

	err := q.QueryRow(ctx,
		`INSERT INTO chat_messages (id, session_id, sender, category, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, GREATEST(
		     now(),
		     (SELECT COALESCE(MAX(created_at), 'epoch'::timestamptz) + interval '1 millisecond'
		      FROM chat_messages WHERE session_id = $2)
		 ))
		 RETURNING created_at`,
		message.ID, sessionID, string(sender), string(category), content,
	).Scan(&message.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return chat.Message{}, chat.ErrSessionNotFound
		}
		return chat.Message{}, fmt.Errorf("chat: append message: %w", err)
	}

	_, err = q.Exec(ctx,
		`UPDATE chat_sessions SET updated_at = GREATEST(updated_at, $2) WHERE id = $1`,
		sessionID, message.CreatedAt,
	)
	if err != nil {
		return chat.Message{}, fmt.Errorf("chat: touch session: %w", err)
	}

	return message, nil
}

// RemoveMessage deletes a message by identifier; only the exchange
// rollback path uses it.
func (s *PGStore) RemoveMessage(ctx context.Context, messageID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM chat_messages WHERE id = $1`, messageID)
	if err != nil {
		return fmt.Errorf("chat: remove message: %w", err)
	}
	return nil
}

// ListMessages returns stored messages ascending by creation time.
func (s *PGStore) ListMessages(ctx context.Context, sessionID string) ([]chat.Message, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM chat_sessions WHERE id = $1)`,
		sessionID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("chat: list messages: %w", err)
	}
	if !exists {
		return nil, chat.ErrSessionNotFound
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, session_id, sender, category, content, created_at
		 FROM chat_messages WHERE session_id = $1
		 ORDER BY created_at ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("chat: list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]chat.Message, 0)
	for rows.Next() {
		var msg chat.Message
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Sender, &msg.Category, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("chat: scan message: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("chat: list messages: %w", err)
	}
	return messages, nil
}
