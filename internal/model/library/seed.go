package library

import "time"

// Seed provides the default reference catalog shipped with the service.
func Seed() ([]BibleVerse, []Prayer, []Devotional) {
	verses := []BibleVerse{
		{
			ID:          "john-3-16-niv",
			Book:        "John",
			Chapter:     3,
			Verse:       16,
			Text:        "For God so loved the world that he gave his one and only Son, that whoever believes in him shall not perish but have eternal life.",
			Translation: "NIV",
		},
		{
			ID:          "psalm-23-1-niv",
			Book:        "Psalm",
			Chapter:     23,
			Verse:       1,
			Text:        "The Lord is my shepherd, I lack nothing.",
			Translation: "NIV",
		},
		{
			ID:          "philippians-4-6-niv",
			Book:        "Philippians",
			Chapter:     4,
			Verse:       6,
			Text:        "Do not be anxious about anything, but in every situation, by prayer and petition, with thanksgiving, present your requests to God.",
			Translation: "NIV",
		},
		{
			ID:          "jeremiah-29-13-niv",
			Book:        "Jeremiah",
			Chapter:     29,
			Verse:       13,
			Text:        "You will seek me and find me when you seek me with all your heart.",
			Translation: "NIV",
		},
	}

	prayers := []Prayer{
		{
			ID:       "prayer-anxiety",
			Title:    "A Prayer for Anxiety",
			Content:  "Heavenly Father, I come to You feeling anxious and overwhelmed. Fill me with Your peace that surpasses all understanding. In Jesus' name, Amen.",
			Category: "anxiety",
			Tags:     []string{"peace", "comfort"},
		},
		{
			ID:       "prayer-gratitude",
			Title:    "A Prayer of Gratitude",
			Content:  "Lord, thank You for Your faithfulness in every season. Teach me to count my blessings and to share them freely. Amen.",
			Category: "gratitude",
			Tags:     []string{"thanksgiving"},
		},
		{
			ID:       "prayer-guidance",
			Title:    "A Prayer for Guidance",
			Content:  "Father, direct my steps today. Where the path is unclear, give me wisdom and a willing heart to follow. Amen.",
			Category: "guidance",
			Tags:     []string{"wisdom", "decisions"},
		},
	}

	devotionals := []Devotional{
		{
			ID:       "devotional-timing",
			Title:    "Trusting God's Timing",
			Content:  "In our fast-paced world, waiting is difficult. We want instant answers, quick solutions, and immediate results. Scripture calls us to a different rhythm.",
			VerseRef: "Psalm 27:14",
			Date:     time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:       "devotional-shepherd",
			Title:    "The Shepherd's Care",
			Content:  "A shepherd does not merely point the way; he walks it first. Rest today in the care of the One who knows the terrain ahead of you.",
			VerseRef: "Psalm 23:1",
			Date:     time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:       "devotional-seeking",
			Title:    "Seeking Wholeheartedly",
			Content:  "Half-hearted seeking finds half-hearted answers. The promise of Jeremiah is attached to a whole heart turned toward God.",
			VerseRef: "Jeremiah 29:13",
			Date:     time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	return verses, prayers, devotionals
}
