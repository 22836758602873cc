package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gracemobile/backend/internal/model/chat"
	"github.com/gracemobile/backend/internal/store/memory"
)

func TestCreateAndGetSession(t *testing.T) {
	st := memory.NewStore()
	ctx := context.Background()

	session, err := st.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}
	if session.ID == "" {
		t.Fatal("expected a session ID to be assigned")
	}

	got, err := st.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}
	if got.ID != session.ID {
		t.Fatalf("unexpected session ID: got %s want %s", got.ID, session.ID)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	st := memory.NewStore()

	_, err := st.GetSession(context.Background(), "missing")
	if !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAppendMessageUnknownSession(t *testing.T) {
	st := memory.NewStore()

	_, err := st.AppendMessage(context.Background(), "missing", chat.SenderUser, chat.CategoryText, "hi")
	if !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestListMessagesEmptySession(t *testing.T) {
	st := memory.NewStore()
	ctx := context.Background()

	session, err := st.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	msgs, err := st.ListMessages(ctx, session.ID)
	if err != nil {
		t.Fatalf("ListMessages err: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected no messages, got %d", len(msgs))
	}
}

func TestListMessagesUnknownSession(t *testing.T) {
	st := memory.NewStore()

	_, err := st.ListMessages(context.Background(), "missing")
	if !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAppendExchangeOrdersPairStrictly(t *testing.T) {
	// A frozen clock forces the store to bump the bot timestamp itself.
	frozen := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	st := memory.NewStoreWithClock(func() time.Time { return frozen })
	ctx := context.Background()

	session, err := st.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	user, bot, err := st.AppendExchange(ctx, session.ID,
		chat.Message{Sender: chat.SenderUser, Category: chat.CategoryText, Content: "hello"},
		chat.Message{Sender: chat.SenderBot, Category: chat.CategoryText, Content: "hi there"},
	)
	if err != nil {
		t.Fatalf("AppendExchange err: %v", err)
	}

	if !user.CreatedAt.Before(bot.CreatedAt) {
		t.Fatalf("expected user %v strictly before bot %v", user.CreatedAt, bot.CreatedAt)
	}
	if user.SessionID != session.ID || bot.SessionID != session.ID {
		t.Fatal("messages must reference the exchange session")
	}

	updated, err := st.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}
	if !updated.UpdatedAt.Equal(bot.CreatedAt) {
		t.Fatalf("expected session UpdatedAt %v, got %v", bot.CreatedAt, updated.UpdatedAt)
	}
}

func TestListSessionsRecencyAndPreview(t *testing.T) {
	st := memory.NewStore()
	ctx := context.Background()

	first, _ := st.CreateSession(ctx, "")
	second, _ := st.CreateSession(ctx, "")

	if _, err := st.AppendMessage(ctx, first.ID, chat.SenderUser, chat.CategoryText, "older conversation"); err != nil {
		t.Fatalf("AppendMessage err: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, err := st.AppendMessage(ctx, second.ID, chat.SenderUser, chat.CategoryText, "newer conversation"); err != nil {
		t.Fatalf("AppendMessage err: %v", err)
	}

	summaries, err := st.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions err: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].ID != second.ID {
		t.Fatalf("expected most recently updated session first, got %s", summaries[0].ID)
	}
	if summaries[0].Preview == nil || summaries[0].Preview.Content != "newer conversation" {
		t.Fatalf("unexpected preview: %+v", summaries[0].Preview)
	}
}

func TestRemoveMessage(t *testing.T) {
	st := memory.NewStore()
	ctx := context.Background()

	session, _ := st.CreateSession(ctx, "")
	msg, err := st.AppendMessage(ctx, session.ID, chat.SenderUser, chat.CategoryText, "hello")
	if err != nil {
		t.Fatalf("AppendMessage err: %v", err)
	}

	if err := st.RemoveMessage(ctx, msg.ID); err != nil {
		t.Fatalf("RemoveMessage err: %v", err)
	}

	msgs, err := st.ListMessages(ctx, session.ID)
	if err != nil {
		t.Fatalf("ListMessages err: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected message to be removed, got %d left", len(msgs))
	}
}
