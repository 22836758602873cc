package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gracemobile/backend/internal/model/chat"
)

// CreateSession provisions a session with a fresh identity.
func (s *PGStore) CreateSession(ctx context.Context, userID string) (chat.Session, error) {
	session := chat.Session{
		ID:     uuid.NewString(),
		UserID: userID,
	}

	err := s.db.QueryRow(ctx,
		`INSERT INTO chat_sessions (id, user_id, created_at, updated_at)
		 VALUES ($1, $2, now(), now())
		 RETURNING created_at, updated_at`,
		session.ID, userID,
	).Scan(&session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return chat.Session{}, fmt.Errorf("chat: create session: %w", err)
	}

	return session, nil
}

// GetSession retrieves a session by identifier.
func (s *PGStore) GetSession(ctx context.Context, sessionID string) (chat.Session, error) {
	session := chat.Session{ID: sessionID}

	err := s.db.QueryRow(ctx,
		`SELECT user_id, created_at, updated_at
		 FROM chat_sessions WHERE id = $1`,
		sessionID,
	).Scan(&session.UserID, &session.CreatedAt, &session.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return chat.Session{}, chat.ErrSessionNotFound
	}
	if err != nil {
		return chat.Session{}, fmt.Errorf("chat: get session: %w", err)
	}

	return session, nil
}

// ListSessions returns all sessions newest-first, each with its opening
// message as preview.
func (s *PGStore) ListSessions(ctx context.Context) ([]chat.Summary, error) {
	rows, err := s.db.Query(ctx,
		`SELECT s.id, s.user_id, s.created_at, s.updated_at,
		        m.id, m.sender, m.category, m.content, m.created_at
		 FROM chat_sessions s
		 LEFT JOIN LATERAL (
		     SELECT id, sender, category, content, created_at
		     FROM chat_messages
		     WHERE session_id = s.id
		     ORDER BY created_at ASC
		     LIMIT 1
		 ) m ON TRUE
		 ORDER BY s.updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("chat: list sessions: %w", err)
	}
	defer rows.Close()

	summaries := make([]chat.Summary, 0)
	for rows.Next() {
		var summary chat.Summary
		var msgID, msgSender, msgCategory, msgContent *string
		var msgCreatedAt *time.Time

		err := rows.Scan(
			&summary.ID, &summary.UserID, &summary.CreatedAt, &summary.UpdatedAt,
			&msgID, &msgSender, &msgCategory, &msgContent, &msgCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("chat: scan session: %w", err)
		}

		if msgID != nil {
			summary.Preview = &chat.Message{
				ID:        *msgID,
				SessionID: summary.ID,
				Sender:    chat.Sender(*msgSender),
				Category:  chat.Category(*msgCategory),
				Content:   *msgContent,
				CreatedAt: *msgCreatedAt,
			}
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("chat: list sessions: %w", err)
	}
	return summaries, nil
}
