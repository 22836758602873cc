package store

import (
	"context"

	"github.com/gracemobile/backend/internal/model/chat"
)

// Store is the persistence port consumed by the chat service. Unknown
// session handles surface as chat.ErrSessionNotFound.
type Store interface {
	CreateSession(ctx context.Context, userID string) (chat.Session, error)
	GetSession(ctx context.Context, sessionID string) (chat.Session, error)
	// ListSessions returns all sessions ordered by recency, each with its
	// opening message as preview.
	ListSessions(ctx context.Context) ([]chat.Summary, error)

	// AppendMessage assigns identity and timestamp, persists the message
	// and bumps the session's UpdatedAt.
	AppendMessage(ctx context.Context, sessionID string, sender chat.Sender, category chat.Category, content string) (chat.Message, error)
	// RemoveMessage rolls back a half-written exchange. Messages are
	// immutable otherwise; nothing outside the chat service calls this.
	RemoveMessage(ctx context.Context, messageID string) error
	// ListMessages returns the session's messages ascending by creation
	// time; an empty slice, not an error, when there are none yet.
	ListMessages(ctx context.Context, sessionID string) ([]chat.Message, error)
}

// ExchangeStore is implemented by backends that can commit a user/bot
// message pair as a single unit. The service prefers it over the
// append-then-compensate fallback.
type ExchangeStore interface {
	AppendExchange(ctx context.Context, sessionID string, user, bot chat.Message) (chat.Message, chat.Message, error)
}
