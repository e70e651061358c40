package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dojang-app/dojang/internal/achievement"
	"github.com/dojang-app/dojang/internal/model"
	"github.com/dojang-app/dojang/internal/progress"
	"github.com/dojang-app/dojang/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "dojang.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestCollect(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	ledger, err := progress.Load(ctx, st)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if err := ledger.SetTulStatus(ctx, "chon-ji", model.StatusCompleted); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if err := st.SetInt(ctx, store.KeyTheorySessions, 4); err != nil {
		t.Fatalf("set theory: %v", err)
	}
	if err := st.SetInt(ctx, store.KeyCurrentStreak, 2); err != nil {
		t.Fatalf("set streak: %v", err)
	}
	if err := st.SetInt(ctx, store.KeyTotalPracticeTime, 90); err != nil {
		t.Fatalf("set practice time: %v", err)
	}
	unlocked := []achievement.Unlocked{{AchievementID: "first_tul", UnlockedAt: time.Now()}}
	if err := st.SetJSON(ctx, store.KeyUnlockedAchievements, unlocked); err != nil {
		t.Fatalf("set achievements: %v", err)
	}

	snap, err := Collect(ctx, st, ledger, 12)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if snap.CompletedTuls != 1 || snap.TotalTuls != progress.TotalTuls {
		t.Fatalf("tul counts wrong: %+v", snap)
	}
	if snap.TheorySessions != 4 || snap.CurrentStreak != 2 || snap.PracticeMinutes != 90 {
		t.Fatalf("counters wrong: %+v", snap)
	}
	if snap.UnlockedAchievements != 1 {
		t.Fatalf("got %d unlocked, want 1", snap.UnlockedAchievements)
	}
	if snap.TotalExams != 12 {
		t.Fatalf("got %d total exams, want 12", snap.TotalExams)
	}
}

func TestEnsureJoinedDate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if err := EnsureJoinedDate(ctx, st); err != nil {
		t.Fatalf("ensure joined: %v", err)
	}
	first, ok, err := st.Get(ctx, store.KeyJoinedDate)
	if err != nil || !ok {
		t.Fatalf("joined date not stored: %v", err)
	}

	// A second run must not overwrite the recorded date.
	if err := EnsureJoinedDate(ctx, st); err != nil {
		t.Fatalf("ensure joined again: %v", err)
	}
	second, _, err := st.Get(ctx, store.KeyJoinedDate)
	if err != nil {
		t.Fatalf("get joined date: %v", err)
	}
	if first != second {
		t.Fatalf("joined date changed from %q to %q", first, second)
	}
}

func TestBar(t *testing.T) {
	if got := Bar(0, 10); got != "░░░░░░░░░░" {
		t.Fatalf("Bar(0, 10) = %q", got)
	}
	if got := Bar(100, 10); got != "██████████" {
		t.Fatalf("Bar(100, 10) = %q", got)
	}
	if got := Bar(50, 10); got != "█████░░░░░" {
		t.Fatalf("Bar(50, 10) = %q", got)
	}
	// Out-of-range percentages clamp.
	if got := Bar(150, 4); got != "████" {
		t.Fatalf("Bar(150, 4) = %q", got)
	}
	if got := Bar(-5, 4); got != "░░░░" {
		t.Fatalf("Bar(-5, 4) = %q", got)
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 0m"},
		{200, "3h 20m"},
	}
	for _, c := range cases {
		if got := FormatMinutes(c.minutes); got != c.want {
			t.Fatalf("FormatMinutes(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}
