package chat

import "time"

// Session groups the ordered messages of one conversation. Its identity
// never changes after assignment.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary pairs a session with its opening message for list views.
type Summary struct {
	Session
	Preview *Message `json:"preview,omitempty"`
}
