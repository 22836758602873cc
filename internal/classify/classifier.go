package classify

import (
	"strings"

	"github.com/gracemobile/backend/internal/model/chat"
)

// Response is the categorized reply derived from one piece of user input.
type Response struct {
	Category chat.Category `json:"category"`
	Content  string        `json:"content"`
}

// rule pairs a predicate over normalized input with the reply it produces.
type rule struct {
	match    func(text string) bool
	category chat.Category
	content  string
}

// anyOf matches when at least one token appears in the text.
func anyOf(tokens ...string) func(string) bool {
	return func(text string) bool {
		for _, token := range tokens {
			if strings.Contains(text, token) {
				return true
			}
		}
		return false
	}
}

// allOf matches only when every token appears in the text.
func allOf(tokens ...string) func(string) bool {
	return func(text string) bool {
		for _, token := range tokens {
			if !strings.Contains(text, token) {
				return false
			}
		}
		return true
	}
}

// rules are evaluated top to bottom and the first match wins. The order
// is part of the classification contract: an input matching several
// rules always resolves to the earliest one.
var rules = []rule{
	{match: anyOf("john 3:16", "meaning"), category: chat.CategoryVerse, content: verseJohn316},
	{match: allOf("prayer", "anxiety"), category: chat.CategoryPrayer, content: prayerAnxiety},
	{match: anyOf("devotional", "daily"), category: chat.CategoryDevotional, content: devotionalTiming},
	{match: allOf("grow", "faith"), category: chat.CategoryAdvice, content: adviceFaith},
}

const (
	verseJohn316 = `"For God so loved the world that he gave his one and only Son, that whoever believes in him shall not perish but have eternal life." - John 3:16 (NIV)`

	prayerAnxiety = `Heavenly Father, in the name of Jesus, I come to You feeling anxious and overwhelmed. Your Word says in Philippians 4:6-7 to not be anxious about anything, but in every situation, by prayer and petition, with thanksgiving, to present our requests to You. Fill me with Your peace that surpasses all understanding. In Jesus' name, Amen.`

	devotionalTiming = "Trusting God's Timing\n\n\"Wait for the Lord; be strong and take heart and wait for the Lord.\" - Psalm 27:14\n\nIn our fast-paced world, waiting is difficult. We want instant answers, quick solutions, and immediate results."

	adviceFaith = "Growing in faith is a lifelong journey. Here are some biblical ways to strengthen your faith:\n\n1. Regular Bible Study (Romans 10:17)\n2. Prayer (Mark 11:24)\n3. Fellowship (Hebrews 10:25)"

	defaultReply = "Thank you for sharing. As you seek God's wisdom, remember Jeremiah 29:13 - 'You will seek me and find me when you seek me with all your heart.'"
)

// Classify maps free text to a categorized reply. It is pure and total:
// identical input always yields the identical response, and input no
// rule matches falls through to the TEXT default. Rejecting empty input
// is the caller's job.
func Classify(input string) Response {
	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, r := range rules {
		if r.match(normalized) {
			return Response{Category: r.category, Content: r.content}
		}
	}

	return Response{Category: chat.CategoryText, Content: defaultReply}
}
