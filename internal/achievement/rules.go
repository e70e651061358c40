package achievement

import "github.com/dojang-app/dojang/internal/model"

// Achievement types.
const (
	TypeTulCompletion = "tul_completion"
	TypeTheoryStudy   = "theory_study"
	TypeExamPassed    = "exam_passed"
	TypeStreak        = "streak"
	TypeDedication    = "dedication"
)

var rules = []Rule{
	{
		ID:          "first_tul",
		Title:       "First Step",
		Description: "Complete your first tul",
		Icon:        "🥋",
		Type:        TypeTulCompletion,
		Rarity:      RarityCommon,
		Reward: Reward{
			Title:       "Beginner",
			Description: "You have taken your first step on the path of Taekwondo",
		},
		Condition: func(s model.StatsSnapshot) bool { return s.CompletedTuls >= 1 },
	},
	{
		ID:          "tul_enthusiast",
		Title:       "Pattern Enthusiast",
		Description: "Complete 5 tuls",
		Icon:        "⚡",
		Type:        TypeTulCompletion,
		Rarity:      RarityCommon,
		Reward: Reward{
			Title:       "Enthusiast",
			Description: "Your dedication to the patterns is admirable",
		},
		Condition: func(s model.StatsSnapshot) bool { return s.CompletedTuls >= 5 },
	},
	{
		ID:          "tul_master",
		Title:       "Master of Patterns",
		Description: "Complete 10 tuls",
		Icon:        "👑",
		Type:        TypeTulCompletion,
		Rarity:      RarityRare,
		Reward: Reward{
			Title:       "Master",
			Description: "You command the patterns with mastery",
		},
		Condition: func(s model.StatsSnapshot) bool { return s.CompletedTuls >= 10 },
	},
	{
		ID:          "tul_legend",
		Title:       "Legend of Patterns",
		Description: "Complete every available tul",
		Icon:        "⭐",
		Type:        TypeTulCompletion,
		Rarity:      RarityLegendary,
		Reward: Reward{
			Title:       "Legend",
			Description: "You are a living legend of the Taekwondo patterns",
		},
		Condition: func(s model.StatsSnapshot) bool { return s.CompletedTuls >= s.TotalTuls },
	},
	{
		ID:          "theory_beginner",
		Title:       "Theory Student",
		Description: "Finish your first theory session",
		Icon:        "📚",
		Type:        TypeTheoryStudy,
		Rarity:      RarityCommon,
		Reward: Reward{
			Title:       "Student",
			Description: "Knowledge is the road to mastery",
		},
		Condition: func(s model.StatsSnapshot) bool { return s.TheorySessions >= 1 },
	},
	{
		ID:          "vocabulary_master",
		Title:       "Vocabulary Master",
		Description: "Study Korean vocabulary 10 times",
		Icon:        "🇰🇷",
		Type:        TypeTheoryStudy,
		Rarity:      RarityRare,
		Reward: Reward{
			Title:       "Linguist",
			Description: "You speak the language of Taekwondo",
		},
		Condition: func(s model.StatsSnapshot) bool { return s.TheorySessions >= 10 },
	},
	{
		ID:          "first_exam",
		Title:       "First Exam",
		Description: "Pass your first belt exam",
		Icon:        "🎯",
		Type:        TypeExamPassed,
		Rarity:      RarityCommon,
		Reward: Reward{
			Title:       "Examined",
			Description: "You have passed your first test",
		},
		Condition: func(s model.StatsSnapshot) bool { return s.CompletedExams >= 1 },
	},
	{
		ID:          "exam_warrior",
		Title:       "Exam Warrior",
		Description: "Pass 5 exams",
		Icon:        "⚔️",
		Type:        TypeExamPassed,
		Rarity:      RarityRare,
		Reward: Reward{
			Title:       "Warrior",
			Description: "Every exam passed makes you stronger",
		},
		Condition: func(s model.StatsSnapshot) bool { return s.CompletedExams >= 5 },
	},
	{
		ID:          "consistent_practitioner",
		Title:       "Consistent Practitioner",
		Description: "Keep a 7-day practice streak",
		Icon:        "🔥",
		Type:        TypeStreak,
		Rarity:      RarityRare,
		Reward: Reward{
			Title:       "Consistent",
			Description: "Constancy is the key to success",
		},
		Condition: func(s model.StatsSnapshot) bool { return s.CurrentStreak >= 7 },
	},
	{
		ID:          "dedication_master",
		Title:       "Master of Dedication",
		Description: "Keep a 30-day practice streak",
		Icon:        "💎",
		Type:        TypeStreak,
		Rarity:      RarityEpic,
		Reward: Reward{
			Title:       "Dedicated",
			Description: "Your dedication is legendary",
		},
		Condition: func(s model.StatsSnapshot) bool { return s.LongestStreak >= 30 },
	},
	{
		ID:          "time_warrior",
		Title:       "Time Warrior",
		Description: "Practice for 10 hours in total",
		Icon:        "⏰",
		Type:        TypeDedication,
		Rarity:      RarityRare,
		Reward: Reward{
			Title:       "Time Warrior",
			Description: "Every minute counts toward mastery",
		},
		Condition: func(s model.StatsSnapshot) bool { return s.PracticeMinutes >= 600 },
	},
	{
		ID:          "eternal_student",
		Title:       "Eternal Student",
		Description: "Practice for 50 hours in total",
		Icon:        "🌟",
		Type:        TypeDedication,
		Rarity:      RarityLegendary,
		Reward: Reward{
			Title:       "Eternal",
			Description: "Learning never ends",
		},
		Condition: func(s model.StatsSnapshot) bool { return s.PracticeMinutes >= 3000 },
	},
}

// Catalog returns the static rule table in evaluation order.
func Catalog() []Rule {
	return rules
}
