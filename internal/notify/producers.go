package notify

import "fmt"

// Producer helpers for the standard notification shapes.

// NewAchievementPayload celebrates a freshly unlocked achievement.
func NewAchievementPayload(achievementTitle string, action *Action) Payload {
	return Payload{
		Type:    TypeAchievement,
		Title:   "🎉 New Achievement Unlocked!",
		Message: fmt.Sprintf("Congratulations! You unlocked %q", achievementTitle),
		Icon:    "🏆",
		Action:  action,
	}
}

// NewReminderPayload nudges the user back to practice.
func NewReminderPayload(message string, action *Action) Payload {
	return Payload{
		Type:    TypeReminder,
		Title:   "⏰ Reminder",
		Message: message,
		Icon:    "🔔",
		Action:  action,
	}
}

// NewMilestonePayload marks a reached milestone, such as a level up.
func NewMilestonePayload(milestone string, action *Action) Payload {
	return Payload{
		Type:    TypeMilestone,
		Title:   "🎯 Milestone Reached!",
		Message: milestone,
		Icon:    "🎯",
		Action:  action,
	}
}

// NewMotivationPayload carries an encouraging message.
func NewMotivationPayload(message string) Payload {
	return Payload{
		Type:    TypeMotivation,
		Title:   "💪 Keep Going!",
		Message: message,
		Icon:    "🥇",
	}
}
