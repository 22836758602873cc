package library

import "time"

// BibleVerse is one verse in a given translation.
type BibleVerse struct {
	ID          string `json:"id"`
	Book        string `json:"book"`
	Chapter     int    `json:"chapter"`
	Verse       int    `json:"verse"`
	Text        string `json:"text"`
	Translation string `json:"translation"`
}

// Prayer is a prewritten prayer grouped by topic.
type Prayer struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags,omitempty"`
}

// Devotional is a dated reading.
type Devotional struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	VerseRef string    `json:"verseRef,omitempty"`
	Date     time.Time `json:"date"`
}
