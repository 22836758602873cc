package client

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/gracemobile/backend/internal/model/chat"
)

// Phase enumerates the client conversation lifecycle.
type Phase string

const (
	PhaseUninitialized Phase = "uninitialized"
	PhaseLoading       Phase = "loading"
	PhaseReady         Phase = "ready"
	PhaseError         Phase = "error"
)

// Conversation is the UI-facing projection of one chat: the active
// session, the time-ordered message list and the loading/error status.
// It is rebuilt from server responses and never authoritative. All
// mutations go through its methods; at most one submission is in flight
// at a time.
type Conversation struct {
	api API

	mu        sync.Mutex
	phase     Phase
	session   *chat.Session
	messages  []chat.Message
	lastError string
}

// NewConversation wires the projection to a transport client.
func NewConversation(api API) *Conversation {
	return &Conversation{
		api:      api,
		phase:    PhaseUninitialized,
		messages: []chat.Message{},
	}
}

// Snapshot is an immutable copy of the observable state.
type Snapshot struct {
	Phase     Phase
	Session   *chat.Session
	Messages  []chat.Message
	IsLoading bool
	Error     string
}

// Snapshot returns a copy safe for rendering.
func (c *Conversation) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	messages := make([]chat.Message, len(c.messages))
	copy(messages, c.messages)

	var session *chat.Session
	if c.session != nil {
		copied := *c.session
		session = &copied
	}

	return Snapshot{
		Phase:     c.phase,
		Session:   session,
		Messages:  messages,
		IsLoading: c.phase == PhaseLoading,
		Error:     c.lastError,
	}
}

// Init loads existing sessions on mount. With at least one session the
// most recent one is adopted and its transcript loaded; with none the
// conversation stays uninitialized until the first submission creates a
// session lazily.
func (c *Conversation) Init(ctx context.Context) error {
	c.mu.Lock()
	if c.phase == PhaseLoading {
		c.mu.Unlock()
		return nil
	}
	c.phase = PhaseLoading
	c.mu.Unlock()

	summaries, err := c.api.ListSessions(ctx)
	if err != nil {
		c.fail(err)
		return err
	}

	if len(summaries) == 0 {
		c.mu.Lock()
		c.phase = PhaseUninitialized
		c.lastError = ""
		c.mu.Unlock()
		return nil
	}

	// The list is recency-ordered; resume the latest conversation.
	detail, err := c.api.GetSession(ctx, summaries[0].ID)
	if err != nil {
		c.fail(err)
		return err
	}

	c.mu.Lock()
	session := detail.Session
	c.session = &session
	c.messages = append([]chat.Message{}, detail.Messages...)
	c.phase = PhaseReady
	c.lastError = ""
	c.mu.Unlock()
	return nil
}

// Submit sends one input through the exchange endpoint. Empty input and
// submissions made while another one is in flight are ignored. On
// success the returned pair is merged into the ordered list; on failure
// the last known good list is preserved.
func (c *Conversation) Submit(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	c.mu.Lock()
	if c.phase == PhaseLoading {
		c.mu.Unlock()
		return nil
	}
	c.phase = PhaseLoading
	var sessionID string
	if c.session != nil {
		sessionID = c.session.ID
	}
	c.mu.Unlock()

	result, err := c.api.SubmitExchange(ctx, sessionID, text)
	if err != nil {
		c.fail(err)
		return err
	}

	c.mu.Lock()
	c.merge(result.UserMessage, result.BotMessage)
	if c.session == nil {
		c.session = &chat.Session{
			ID:        result.SessionID,
			CreatedAt: result.UserMessage.CreatedAt,
			UpdatedAt: result.BotMessage.CreatedAt,
		}
	} else {
		c.session.UpdatedAt = result.BotMessage.CreatedAt
	}
	c.phase = PhaseReady
	c.lastError = ""
	c.mu.Unlock()

	// Opportunistic reconcile; failures are logged, never surfaced.
	c.refreshSessions(ctx)
	return nil
}

// merge inserts then re-sorts instead of appending: a concurrent fetch
// may have reordered the list since the submission started.
func (c *Conversation) merge(msgs ...chat.Message) {
	c.messages = append(c.messages, msgs...)
	sort.SliceStable(c.messages, func(i, j int) bool {
		return c.messages[i].CreatedAt.Before(c.messages[j].CreatedAt)
	})
}

// RefreshSessions reconciles session metadata against the server.
func (c *Conversation) RefreshSessions(ctx context.Context) {
	c.refreshSessions(ctx)
}

func (c *Conversation) refreshSessions(ctx context.Context) {
	summaries, err := c.api.ListSessions(ctx)
	if err != nil {
		log.Printf("[client] session refresh failed: %v", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Never clobber an in-flight submission with stale data, and never
	// touch the message list here.
	if c.phase == PhaseLoading || c.session == nil {
		return
	}
	for _, summary := range summaries {
		if summary.ID == c.session.ID {
			session := summary.Session
			c.session = &session
			return
		}
	}
}

// fail records an error while preserving the render-able message list.
func (c *Conversation) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.phase = PhaseError
	c.lastError = err.Error()
}
