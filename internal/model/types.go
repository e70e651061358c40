// Package model defines shared data structures.
package model

import "time"

// TulStatus is the completion state of a single tul.
type TulStatus string

// Tul status values. Any tul without a recorded entry is StatusNotStarted.
const (
	StatusNotStarted TulStatus = "not_started"
	StatusInProgress TulStatus = "in_progress"
	StatusCompleted  TulStatus = "completed"
)

// Valid reports whether s is one of the known status values.
func (s TulStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// StatsSnapshot is assembled on demand from the ledgers and persisted
// counters. It is never stored itself.
type StatsSnapshot struct {
	CompletedTuls        int
	TotalTuls            int
	CompletedExams       int
	TotalExams           int
	TheorySessions       int
	CurrentStreak        int
	LongestStreak        int
	PracticeMinutes      int
	JoinedDate           time.Time
	UnlockedAchievements int
}

// LevelProgress describes the current level derived from total points.
type LevelProgress struct {
	Level       int
	TotalPoints int
	ToNextLevel int
	ProgressPct int
}

// PracticeSession is one logged practice entry.
type PracticeSession struct {
	ID      string
	Date    time.Time
	Minutes int
	Note    string
}

// Profile holds the editable account data.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
