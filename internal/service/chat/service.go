package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gracemobile/backend/internal/classify"
	"github.com/gracemobile/backend/internal/model/chat"
	"github.com/gracemobile/backend/internal/store"
)

// Service orchestrates one conversational exchange end to end: resolve
// the session, persist the user message, classify, persist the reply.
type Service struct {
	store    store.Store
	classify func(string) classify.Response
}

// NewService wires the orchestrator to a persistence backend.
func NewService(st store.Store) *Service {
	return &Service{
		store:    st,
		classify: classify.Classify,
	}
}

// Exchange is the composite result of one submitted input: the resolved
// session, the persisted user/bot pair and the transient classifier
// payload. It exists only for the duration of one call and is never
// stored as its own entity.
type Exchange struct {
	Session     chat.Session      `json:"session"`
	UserMessage chat.Message      `json:"userMessage"`
	BotMessage  chat.Message      `json:"botMessage"`
	Response    classify.Response `json:"response"`
}

// ResolveSession implements find-or-create over session identity: a
// known handle returns the stored session unchanged, an unknown or empty
// handle creates exactly one fresh session. Concurrent calls without a
// handle deliberately produce separate sessions.
func (s *Service) ResolveSession(ctx context.Context, sessionID string) (chat.Session, error) {
	if sessionID != "" {
		session, err := s.store.GetSession(ctx, sessionID)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, chat.ErrSessionNotFound) {
			return chat.Session{}, fmt.Errorf("%w: resolve session: %v", chat.ErrPersistence, err)
		}
		// Unknown handle: fall through and start a fresh conversation.
	}

	session, err := s.store.CreateSession(ctx, "")
	if err != nil {
		return chat.Session{}, fmt.Errorf("%w: create session: %v", chat.ErrPersistence, err)
	}
	return session, nil
}

// Exchange validates the input, resolves the session and persists the
// user/bot message pair as a single unit. It never returns a result
// containing only one side of the pair.
func (s *Service) Exchange(ctx context.Context, sessionID, content string) (*Exchange, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, chat.ErrInvalidInput
	}

	session, err := s.ResolveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	response := s.classify(trimmed)

	user, bot, err := s.appendPair(ctx, session.ID, content, response)
	if err != nil {
		return nil, err
	}

	// Pick up the UpdatedAt bump the appends produced.
	if refreshed, err := s.store.GetSession(ctx, session.ID); err == nil {
		session = refreshed
	}

	return &Exchange{
		Session:     session,
		UserMessage: user,
		BotMessage:  bot,
		Response:    response,
	}, nil
}

// appendPair commits the pair atomically when the backend supports it.
// Otherwise it appends both sides and removes the orphaned user message
// if the bot append fails, so a torn exchange never survives.
func (s *Service) appendPair(ctx context.Context, sessionID, content string, response classify.Response) (chat.Message, chat.Message, error) {
	if es, ok := s.store.(store.ExchangeStore); ok {
		user, bot, err := es.AppendExchange(ctx, sessionID,
			chat.Message{Sender: chat.SenderUser, Category: chat.CategoryText, Content: content},
			chat.Message{Sender: chat.SenderBot, Category: response.Category, Content: response.Content},
		)
		if err != nil {
			return chat.Message{}, chat.Message{}, translateStoreErr("append exchange", err)
		}
		return user, bot, nil
	}

	user, err := s.store.AppendMessage(ctx, sessionID, chat.SenderUser, chat.CategoryText, content)
	if err != nil {
		return chat.Message{}, chat.Message{}, translateStoreErr("append user message", err)
	}

	bot, err := s.store.AppendMessage(ctx, sessionID, chat.SenderBot, response.Category, response.Content)
	if err != nil {
		if rmErr := s.store.RemoveMessage(ctx, user.ID); rmErr != nil {
			log.Printf("[chat] failed to remove orphaned user message %s: %v", user.ID, rmErr)
		}
		return chat.Message{}, chat.Message{}, fmt.Errorf("%w: %v", chat.ErrPartialExchange, err)
	}

	return user, bot, nil
}

// ListSessions returns all sessions ordered by recency, each with a
// one-message preview.
func (s *Service) ListSessions(ctx context.Context) ([]chat.Summary, error) {
	summaries, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, translateStoreErr("list sessions", err)
	}
	return summaries, nil
}

// Transcript returns a session together with its full ordered message
// list.
func (s *Service) Transcript(ctx context.Context, sessionID string) (chat.Session, []chat.Message, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return chat.Session{}, nil, translateStoreErr("get session", err)
	}

	messages, err := s.store.ListMessages(ctx, sessionID)
	if err != nil {
		return chat.Session{}, nil, translateStoreErr("list messages", err)
	}
	return session, messages, nil
}

// translateStoreErr folds store failures into the service taxonomy so
// raw storage errors never reach the transport boundary.
func translateStoreErr(op string, err error) error {
	if errors.Is(err, chat.ErrSessionNotFound) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", chat.ErrPersistence, op, err)
}
