package progress

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/dojang-app/dojang/internal/model"
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

func TestLoadDefaults(t *testing.T) {
	st := newTestStore(t)
	ledger, err := Load(context.Background(), st)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ledger.CurrentBelt() != DefaultBelt {
		t.Fatalf("got belt %q, want %q", ledger.CurrentBelt(), DefaultBelt)
	}
	if got := ledger.TulStatus("chon-ji"); got != model.StatusNotStarted {
		t.Fatalf("got %q, want not_started", got)
	}
	if pct := ledger.ProgressPercentage(); pct != 0 {
		t.Fatalf("got %d%%, want 0%%", pct)
	}
}

func TestSetTulStatus(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	ledger, err := Load(ctx, st)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := ledger.SetTulStatus(ctx, "chon-ji", model.StatusInProgress); err != nil {
		t.Fatalf("set status: %v", err)
	}
	// Overwriting keeps no history.
	if err := ledger.SetTulStatus(ctx, "chon-ji", model.StatusCompleted); err != nil {
		t.Fatalf("overwrite status: %v", err)
	}
	if got := ledger.TulStatus("chon-ji"); got != model.StatusCompleted {
		t.Fatalf("got %q, want completed", got)
	}
	if n := ledger.CompletedCount(); n != 1 {
		t.Fatalf("got %d completed, want 1", n)
	}
	if n := ledger.InProgressCount(); n != 0 {
		t.Fatalf("got %d in progress, want 0", n)
	}

	if err := ledger.SetTulStatus(ctx, "chon-ji", "mastered"); err == nil {
		t.Fatal("invalid status accepted")
	}
}

func TestProgressPercentageRounds(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	ledger, err := Load(ctx, st)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	ids := []string{"chon-ji", "dan-gun", "do-san", "won-hyo", "yul-gok"}
	for _, id := range ids {
		if err := ledger.SetTulStatus(ctx, id, model.StatusCompleted); err != nil {
			t.Fatalf("set status: %v", err)
		}
	}
	// 5/17 = 29.4%, rounded to 29.
	if pct := ledger.ProgressPercentage(); pct != 29 {
		t.Fatalf("got %d%%, want 29%%", pct)
	}
}

func TestReloadRestoresState(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	ledger, err := Load(ctx, st)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := ledger.SetBelt(ctx, "gup-4"); err != nil {
		t.Fatalf("set belt: %v", err)
	}
	if err := ledger.SetTulStatus(ctx, "joong-gun", model.StatusInProgress); err != nil {
		t.Fatalf("set status: %v", err)
	}

	reloaded, err := Load(ctx, st)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.CurrentBelt() != "gup-4" {
		t.Fatalf("got belt %q, want \"gup-4\"", reloaded.CurrentBelt())
	}
	if got := reloaded.TulStatus("joong-gun"); got != model.StatusInProgress {
		t.Fatalf("got %q, want in_progress", got)
	}
}

func TestLoadCorruptedProgressFallsBack(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	if err := st.Set(ctx, store.KeyTulProgress, "{broken"); err != nil {
		t.Fatalf("set: %v", err)
	}

	ledger, err := Load(ctx, st)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := ledger.TulStatus("chon-ji"); got != model.StatusNotStarted {
		t.Fatalf("got %q, want not_started", got)
	}
	if pct := ledger.ProgressPercentage(); pct != 0 {
		t.Fatalf("got %d%%, want 0%%", pct)
	}
}
