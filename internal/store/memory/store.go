package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gracemobile/backend/internal/model/chat"
	"github.com/gracemobile/backend/internal/store"
)

// Store keeps sessions and messages in process memory, suitable for
// development and tests.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]chat.Session
	messages map[string][]chat.Message
	now      func() time.Time
}

// NewStore bootstraps an empty in-memory store.
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock injects the clock, letting tests pin timestamps.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		sessions: make(map[string]chat.Session),
		messages: make(map[string][]chat.Message),
		now:      now,
	}
}

// CreateSession provisions a session with a fresh identity.
func (s *Store) CreateSession(_ context.Context, userID string) (chat.Session, error) {
	now := s.now().UTC()
	session := chat.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.messages[session.ID] = make([]chat.Message, 0, 16)
	s.mu.Unlock()

	return session, nil
}

// GetSession retrieves a session by identifier.
func (s *Store) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, chat.ErrSessionNotFound
	}
	return session, nil
}

// ListSessions returns all sessions newest-first, each with its opening
// message as preview.
func (s *Store) ListSessions(_ context.Context) ([]chat.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]chat.Summary, 0, len(s.sessions))
	for id, session := range s.sessions {
		summary := chat.Summary{Session: session}
		if msgs := s.messages[id]; len(msgs) > 0 {
			first := msgs[0]
			summary.Preview = &first
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})
	return summaries, nil
}

// AppendMessage assigns identity and timestamp and stores the message.
func (s *Store) AppendMessage(_ context.Context, sessionID string, sender chat.Sender, category chat.Category, content string) (chat.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.appendLocked(sessionID, sender, category, content)
}

// AppendExchange commits the user/bot pair under one lock section so no
// reader ever observes a half-written exchange.
func (s *Store) AppendExchange(_ context.Context, sessionID string, user, bot chat.Message) (chat.Message, chat.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.appendLocked(sessionID, user.Sender, user.Category, user.Content)
	if err != nil {
		return chat.Message{}, chat.Message{}, err
	}
	reply, err := s.appendLocked(sessionID, bot.Sender, bot.Category, bot.Content)
	if err != nil {
		return chat.Message{}, chat.Message{}, err
	}
	return stored, reply, nil
}

// appendLocked keeps per-session timestamps strictly increasing even on
// coarse clocks by bumping past the previous message.
func (s *Store) appendLocked(sessionID string, sender chat.Sender, category chat.Category, content string) (chat.Message, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return chat.Message{}, chat.ErrSessionNotFound
	}

	createdAt := s.now().UTC()
	if msgs := s.messages[sessionID]; len(msgs) > 0 {
		if last := msgs[len(msgs)-1].CreatedAt; !createdAt.After(last) {
			createdAt = last.Add(time.Millisecond)
		}
	}

	message := chat.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Sender:    sender,
		Category:  category,
		Content:   content,
		CreatedAt: createdAt,
	}
	s.messages[sessionID] = append(s.messages[sessionID], message)

	session.UpdatedAt = createdAt
	s.sessions[sessionID] = session

	return message, nil
}

// RemoveMessage deletes a message by identifier. Missing messages are
// not an error; the rollback caller only cares that it is gone.
func (s *Store) RemoveMessage(_ context.Context, messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for sessionID, msgs := range s.messages {
		for i, msg := range msgs {
			if msg.ID == messageID {
				s.messages[sessionID] = append(msgs[:i], msgs[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

// ListMessages returns stored messages ascending by creation time.
func (s *Store) ListMessages(_ context.Context, sessionID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs, ok := s.messages[sessionID]
	if !ok {
		return nil, chat.ErrSessionNotFound
	}

	copied := make([]chat.Message, len(msgs))
	copy(copied, msgs)
	return copied, nil
}

var (
	_ store.Store         = (*Store)(nil)
	_ store.ExchangeStore = (*Store)(nil)
)
