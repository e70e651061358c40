// Package stats assembles the stats snapshot consumed by the
// achievement evaluator and the dashboard, and renders plain-text
// progress output.
package stats

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/dojang-app/dojang/internal/achievement"
	"github.com/dojang-app/dojang/internal/model"
	"github.com/dojang-app/dojang/internal/progress"
	"github.com/dojang-app/dojang/internal/store"
)

const terminalWidthBackup = 80

// Collect assembles a snapshot from the ledgers and persisted counters.
// The snapshot is recomputed on every call, never cached or stored.
func Collect(ctx context.Context, st *store.Store, ledger *progress.Ledger, totalExams int) (model.StatsSnapshot, error) {
	snap := model.StatsSnapshot{
		CompletedTuls: ledger.CompletedCount(),
		TotalTuls:     progress.TotalTuls,
		TotalExams:    totalExams,
	}
	var err error
	if snap.CompletedExams, err = st.GetInt(ctx, store.KeyCompletedExams, 0); err != nil {
		return snap, err
	}
	if snap.TheorySessions, err = st.GetInt(ctx, store.KeyTheorySessions, 0); err != nil {
		return snap, err
	}
	if snap.CurrentStreak, err = st.GetInt(ctx, store.KeyCurrentStreak, 0); err != nil {
		return snap, err
	}
	if snap.LongestStreak, err = st.GetInt(ctx, store.KeyLongestStreak, 0); err != nil {
		return snap, err
	}
	if snap.PracticeMinutes, err = st.GetInt(ctx, store.KeyTotalPracticeTime, 0); err != nil {
		return snap, err
	}
	joined, ok, err := st.Get(ctx, store.KeyJoinedDate)
	if err != nil {
		return snap, err
	}
	if ok {
		if t, perr := time.Parse(time.RFC3339, joined); perr == nil {
			snap.JoinedDate = t
		}
	}
	var unlocked []achievement.Unlocked
	if _, err := st.GetJSON(ctx, store.KeyUnlockedAchievements, &unlocked); err != nil {
		return snap, err
	}
	snap.UnlockedAchievements = len(unlocked)
	return snap, nil
}

// EnsureJoinedDate records the first-run date if absent.
func EnsureJoinedDate(ctx context.Context, st *store.Store) error {
	_, ok, err := st.Get(ctx, store.KeyJoinedDate)
	if err != nil || ok {
		return err
	}
	return st.Set(ctx, store.KeyJoinedDate, time.Now().Format(time.RFC3339))
}

// Bar renders an ASCII progress bar of the given percentage sized to
// width characters.
func Bar(pct, width int) string {
	if width < 2 {
		width = 2
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// TerminalWidth returns the current terminal width or a backup value.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return terminalWidthBackup
	}
	return w
}

// FormatMinutes renders a practice-minute total as "3h 20m".
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
