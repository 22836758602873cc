package chat

import "time"

// Sender identifies which side of the conversation authored a message.
type Sender string

const (
	SenderUser Sender = "USER"
	SenderBot  Sender = "BOT"
)

// Category tags a message with the kind of content it carries.
type Category string

const (
	CategoryText       Category = "TEXT"
	CategoryVerse      Category = "VERSE"
	CategoryPrayer     Category = "PRAYER"
	CategoryDevotional Category = "DEVOTIONAL"
	CategoryAdvice     Category = "ADVICE"
)

// Message is one immutable turn within a session. Messages within a
// session are totally ordered by CreatedAt.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Sender    Sender    `json:"sender"`
	Category  Category  `json:"category"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
