package library

import "sort"

// Store exposes reference-data lookups for HTTP handlers. These are
// plain parameterized reads with no derived logic.
type Store interface {
	FindVerse(book string, chapter, verse int) (BibleVerse, bool)
	ListPrayers(category string) []Prayer
	ListDevotionals(limit int) []Devotional
}

// MemoryStore implements Store with in-memory slices, suitable for MVP.
type MemoryStore struct {
	verses      []BibleVerse
	prayers     []Prayer
	devotionals []Devotional
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied data.
func NewMemoryStore(verses []BibleVerse, prayers []Prayer, devotionals []Devotional) *MemoryStore {
	return &MemoryStore{
		verses:      append([]BibleVerse(nil), verses...),
		prayers:     append([]Prayer(nil), prayers...),
		devotionals: append([]Devotional(nil), devotionals...),
	}
}

// FindVerse looks up a verse by reference.
func (s *MemoryStore) FindVerse(book string, chapter, verse int) (BibleVerse, bool) {
	for _, v := range s.verses {
		if v.Book == book && v.Chapter == chapter && v.Verse == verse {
			return v, true
		}
	}
	return BibleVerse{}, false
}

// ListPrayers returns prayers, optionally filtered by category.
func (s *MemoryStore) ListPrayers(category string) []Prayer {
	if category == "" {
		return append([]Prayer(nil), s.prayers...)
	}

	var filtered []Prayer
	for _, p := range s.prayers {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ListDevotionals returns the most recent devotionals, newest first.
func (s *MemoryStore) ListDevotionals(limit int) []Devotional {
	sorted := append([]Devotional(nil), s.devotionals...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
