package points

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

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

func TestLevel(t *testing.T) {
	cases := []struct {
		total       int
		level       int
		toNext      int
		progressPct int
	}{
		{0, 1, 100, 0},
		{75, 1, 25, 75},
		{99, 1, 1, 99},
		{100, 2, 100, 0},
		{150, 2, 50, 50},
		{250, 3, 50, 50},
	}
	for _, c := range cases {
		lp := Level(c.total)
		if lp.Level != c.level || lp.ToNextLevel != c.toNext || lp.ProgressPct != c.progressPct {
			t.Fatalf("Level(%d) = {level %d, toNext %d, pct %d}, want {level %d, toNext %d, pct %d}",
				c.total, lp.Level, lp.ToNextLevel, lp.ProgressPct, c.level, c.toNext, c.progressPct)
		}
		if lp.TotalPoints != c.total {
			t.Fatalf("Level(%d) reports total %d", c.total, lp.TotalPoints)
		}
	}
}

func TestAddPoints(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	ledger, err := Load(ctx, st, zap.NewNop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := ledger.AddPoints(ctx, 50, "completed tul"); err != nil {
		t.Fatalf("add points: %v", err)
	}
	if err := ledger.AddPoints(ctx, 25, "achievement"); err != nil {
		t.Fatalf("add points: %v", err)
	}
	if ledger.Total() != 75 {
		t.Fatalf("got total %d, want 75", ledger.Total())
	}
	lp := ledger.LevelProgress()
	if lp.Level != 1 || lp.ToNextLevel != 25 {
		t.Fatalf("got level %d toNext %d, want level 1 toNext 25", lp.Level, lp.ToNextLevel)
	}

	if err := ledger.AddPoints(ctx, -10, "refund"); err == nil {
		t.Fatal("negative amount accepted")
	}
	if ledger.Total() != 75 {
		t.Fatalf("total changed after rejected add: %d", ledger.Total())
	}
}

func TestTotalSurvivesReload(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	ledger, err := Load(ctx, st, zap.NewNop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := ledger.AddPoints(ctx, 125, "test"); err != nil {
		t.Fatalf("add points: %v", err)
	}

	reloaded, err := Load(ctx, st, zap.NewNop())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Total() != 125 {
		t.Fatalf("got total %d after reload, want 125", reloaded.Total())
	}
	if reloaded.LevelProgress().Level != 2 {
		t.Fatalf("got level %d, want 2", reloaded.LevelProgress().Level)
	}
}
