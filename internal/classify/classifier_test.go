package classify_test

import (
	"strings"
	"testing"

	"github.com/gracemobile/backend/internal/classify"
	"github.com/gracemobile/backend/internal/model/chat"
)

func TestClassifyScenarios(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		category chat.Category
		contains string
	}{
		{"verse", "John 3:16 meaning", chat.CategoryVerse, "For God so loved the world"},
		{"prayer", "prayer for anxiety", chat.CategoryPrayer, "Philippians 4:6-7"},
		{"devotional", "give me today's daily devotional", chat.CategoryDevotional, "Trusting God's Timing"},
		{"advice", "how to grow in faith", chat.CategoryAdvice, "Regular Bible Study"},
		{"default", "hello", chat.CategoryText, "Jeremiah 29:13"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify.Classify(tc.input)
			if got.Category != tc.category {
				t.Fatalf("category: got %s want %s", got.Category, tc.category)
			}
			if !strings.Contains(got.Content, tc.contains) {
				t.Fatalf("content %q does not contain %q", got.Content, tc.contains)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	first := classify.Classify("prayer for anxiety")
	second := classify.Classify("prayer for anxiety")

	if first != second {
		t.Fatalf("same input classified differently: %+v vs %+v", first, second)
	}
}

func TestClassifyRuleOrder(t *testing.T) {
	// Matches both the prayer rule and the devotional rule; the earlier
	// rule must win regardless of match count or length.
	got := classify.Classify("a prayer for anxiety and a daily devotional")
	if got.Category != chat.CategoryPrayer {
		t.Fatalf("expected PRAYER from earliest rule, got %s", got.Category)
	}

	// "meaning" belongs to the first rule, so it beats the prayer rule.
	got = classify.Classify("the meaning of a prayer for anxiety")
	if got.Category != chat.CategoryVerse {
		t.Fatalf("expected VERSE from earliest rule, got %s", got.Category)
	}
}

func TestClassifyNormalizesInput(t *testing.T) {
	got := classify.Classify("   PRAYER for ANXIETY  ")
	if got.Category != chat.CategoryPrayer {
		t.Fatalf("expected PRAYER after normalization, got %s", got.Category)
	}
}
