package store

// App state keys. These names are the public persistence contract and
// match the original storage layout exactly.
const (
	KeyCurrentBelt          = "currentBelt"
	KeyTulProgress          = "tulProgress"
	KeyUnlockedAchievements = "unlockedAchievements"
	KeyCompletedExams       = "completedExams"
	KeyTheorySessions       = "studiedTheorySessions"
	KeyCurrentStreak        = "currentStreak"
	KeyLongestStreak        = "longestStreak"
	KeyTotalPracticeTime    = "totalPracticeTime"
	KeyTotalPoints          = "totalPoints"
	KeyCheckpointTuls       = "lastPointsCalculation_completedTuls"
	KeyCheckpointAchieves   = "lastPointsCalculation_achievements"
	KeyNotifications        = "notifications"
	KeyHasSeenWelcome       = "hasSeenWelcome"
	KeyJoinedDate           = "joinedDate"
	KeyLastPracticeDate     = "lastPracticeDate"
	KeyProfile              = "profileData"
)
