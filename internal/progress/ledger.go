// Package progress owns belt selection and per-tul completion status.
package progress

import (
	"context"
	"fmt"
	"math"

	"github.com/dojang-app/dojang/internal/model"
	"github.com/dojang-app/dojang/internal/store"
)

// TotalTuls is the fixed denominator for the overall progress
// percentage. It is deliberately not derived from the catalog: the
// percentage keeps its historical meaning even if the catalog changes.
const TotalTuls = 17

// DefaultBelt is the lowest rank, assigned on first run.
const DefaultBelt = "gup-9"

// Ledger tracks the current belt and the status of every tul. It is
// loaded once at startup and persists every mutation immediately.
type Ledger struct {
	store       *store.Store
	currentBelt string
	tulStatus   map[string]model.TulStatus
}

// Load builds a ledger from persisted state, falling back to defaults on
// first run or corrupted values.
func Load(ctx context.Context, st *store.Store) (*Ledger, error) {
	belt, ok, err := st.Get(ctx, store.KeyCurrentBelt)
	if err != nil {
		return nil, fmt.Errorf("failed to load belt: %w", err)
	}
	if !ok || belt == "" {
		belt = DefaultBelt
	}
	status := map[string]model.TulStatus{}
	if _, err := st.GetJSON(ctx, store.KeyTulProgress, &status); err != nil {
		return nil, fmt.Errorf("failed to load tul progress: %w", err)
	}
	return &Ledger{store: st, currentBelt: belt, tulStatus: status}, nil
}

// CurrentBelt returns the selected belt id.
func (l *Ledger) CurrentBelt() string {
	return l.currentBelt
}

// SetBelt replaces the current belt unconditionally and persists it.
// The id is not validated against the exam catalog; that is the
// caller's responsibility.
func (l *Ledger) SetBelt(ctx context.Context, id string) error {
	l.currentBelt = id
	return l.store.Set(ctx, store.KeyCurrentBelt, id)
}

// SetTulStatus upserts one entry and persists the full map. The prior
// status is overwritten; no history is kept.
func (l *Ledger) SetTulStatus(ctx context.Context, tulID string, status model.TulStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid tul status %q", status)
	}
	l.tulStatus[tulID] = status
	return l.store.SetJSON(ctx, store.KeyTulProgress, l.tulStatus)
}

// TulStatus returns the recorded status, or StatusNotStarted for any id
// with no entry.
func (l *Ledger) TulStatus(tulID string) model.TulStatus {
	if s, ok := l.tulStatus[tulID]; ok {
		return s
	}
	return model.StatusNotStarted
}

// CompletedCount returns the number of completed tuls.
func (l *Ledger) CompletedCount() int {
	return l.countWith(model.StatusCompleted)
}

// InProgressCount returns the number of tuls in progress.
func (l *Ledger) InProgressCount() int {
	return l.countWith(model.StatusInProgress)
}

// ProgressPercentage returns the overall completion percentage against
// the fixed TotalTuls denominator.
func (l *Ledger) ProgressPercentage() int {
	if len(l.tulStatus) == 0 {
		return 0
	}
	return int(math.Round(float64(l.CompletedCount()) / float64(TotalTuls) * 100))
}

func (l *Ledger) countWith(status model.TulStatus) int {
	n := 0
	for _, s := range l.tulStatus {
		if s == status {
			n++
		}
	}
	return n
}
