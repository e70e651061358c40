// Package points derives the level and level progress from a
// monotonically non-decreasing point total.
package points

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dojang-app/dojang/internal/model"
	"github.com/dojang-app/dojang/internal/store"
)

// PointsPerLevel is the flat cost of each level.
const PointsPerLevel = 100

// Award sizes for the reactive triggers.
const (
	PointsPerTul         = 50
	PointsPerAchievement = 25
)

// Ledger tracks total points. Points are only ever added; there is no
// decrement operation.
type Ledger struct {
	store  *store.Store
	logger *zap.Logger
	total  int
}

// Load builds the ledger from the persisted total.
func Load(ctx context.Context, st *store.Store, logger *zap.Logger) (*Ledger, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	total, err := st.GetInt(ctx, store.KeyTotalPoints, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load points: %w", err)
	}
	return &Ledger{store: st, logger: logger, total: total}, nil
}

// AddPoints adds a non-negative amount and persists the new total.
// reason appears in diagnostics only; it is not stored.
func (l *Ledger) AddPoints(ctx context.Context, amount int, reason string) error {
	if amount < 0 {
		return fmt.Errorf("point amount must not be negative, got %d", amount)
	}
	l.total += amount
	l.logger.Info("points awarded",
		zap.Int("amount", amount), zap.Int("total", l.total), zap.String("reason", reason))
	return l.store.SetInt(ctx, store.KeyTotalPoints, l.total)
}

// Total returns the current point total.
func (l *Ledger) Total() int {
	return l.total
}

// LevelProgress returns the level derived from the total.
func (l *Ledger) LevelProgress() model.LevelProgress {
	return Level(l.total)
}

// Level computes level numbers from a point total.
func Level(total int) model.LevelProgress {
	level := total/PointsPerLevel + 1
	pct := total - (level-1)*PointsPerLevel
	if pct > 100 {
		pct = 100
	}
	return model.LevelProgress{
		Level:       level,
		TotalPoints: total,
		ToNextLevel: level*PointsPerLevel - total,
		ProgressPct: pct,
	}
}
