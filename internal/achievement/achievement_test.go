package achievement

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dojang-app/dojang/internal/model"
)

func TestEvaluateFirstTul(t *testing.T) {
	snap := model.StatsSnapshot{CompletedTuls: 1, TotalTuls: 17}

	newly := Evaluate(snap, nil, zap.NewNop())
	if len(newly) != 1 {
		t.Fatalf("got %d unlocks, want 1", len(newly))
	}
	if newly[0].AchievementID != "first_tul" {
		t.Fatalf("got %q, want first_tul", newly[0].AchievementID)
	}
	if newly[0].UnlockedAt.IsZero() {
		t.Fatal("unlock timestamp not set")
	}
}

func TestEvaluateSkipsUnlocked(t *testing.T) {
	snap := model.StatsSnapshot{CompletedTuls: 1, TotalTuls: 17}
	unlocked := []Unlocked{{AchievementID: "first_tul", UnlockedAt: time.Now()}}

	newly := Evaluate(snap, unlocked, zap.NewNop())
	if len(newly) != 0 {
		t.Fatalf("got %d unlocks, want 0", len(newly))
	}
}

func TestEvaluateThresholds(t *testing.T) {
	snap := model.StatsSnapshot{
		CompletedTuls: 17,
		TotalTuls:     17,
		CurrentStreak: 7,
	}

	newly := Evaluate(snap, nil, zap.NewNop())
	got := map[string]bool{}
	for _, u := range newly {
		got[u.AchievementID] = true
	}
	want := []string{"first_tul", "tul_enthusiast", "tul_master", "tul_legend", "consistent_practitioner"}
	if len(newly) != len(want) {
		t.Fatalf("got %d unlocks %v, want %d", len(newly), got, len(want))
	}
	for _, id := range want {
		if !got[id] {
			t.Fatalf("missing unlock %q", id)
		}
	}
}

func TestSatisfiedContainsPanic(t *testing.T) {
	bad := Rule{
		ID:        "bad",
		Condition: func(model.StatsSnapshot) bool { panic("boom") },
	}
	if satisfied(bad, model.StatsSnapshot{}, zap.NewNop()) {
		t.Fatal("panicking condition reported as satisfied")
	}

	// Other rules must still fire after a panic in one condition.
	good := Rule{
		ID:        "good",
		Condition: func(model.StatsSnapshot) bool { return true },
	}
	if !satisfied(good, model.StatsSnapshot{}, zap.NewNop()) {
		t.Fatal("good condition not satisfied")
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, rule := range Catalog() {
		if seen[rule.ID] {
			t.Fatalf("duplicate rule id %q", rule.ID)
		}
		seen[rule.ID] = true
		if rule.Condition == nil {
			t.Fatalf("rule %q has no condition", rule.ID)
		}
		if rule.Title == "" || rule.Reward.Title == "" {
			t.Fatalf("rule %q missing title or reward", rule.ID)
		}
	}
}

func TestByID(t *testing.T) {
	rule, ok := ByID("time_warrior")
	if !ok {
		t.Fatal("time_warrior not found")
	}
	if !rule.Condition(model.StatsSnapshot{PracticeMinutes: 600}) {
		t.Fatal("time_warrior not satisfied at 600 minutes")
	}
	if rule.Condition(model.StatsSnapshot{PracticeMinutes: 599}) {
		t.Fatal("time_warrior satisfied below threshold")
	}
	if _, ok := ByID("no-such-rule"); ok {
		t.Fatal("unknown id reported as found")
	}
}
