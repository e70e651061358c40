// Package gamify wires the ledgers together: it watches state changes
// through the event bus, detects newly satisfied achievements, awards
// points exactly once per milestone, and produces the resulting
// notifications.
package gamify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dojang-app/dojang/internal/achievement"
	"github.com/dojang-app/dojang/internal/bus"
	"github.com/dojang-app/dojang/internal/model"
	"github.com/dojang-app/dojang/internal/notify"
	"github.com/dojang-app/dojang/internal/points"
	"github.com/dojang-app/dojang/internal/progress"
	"github.com/dojang-app/dojang/internal/stats"
	"github.com/dojang-app/dojang/internal/store"
)

// Engine bridges ledger mutations to point awards and notifications.
// Idempotency is guarded by persisted "last processed count" checkpoints
// so re-evaluation and process restarts never double-award.
type Engine struct {
	store      *store.Store
	ledger     *progress.Ledger
	points     *points.Ledger
	center     *notify.Center
	bus        *bus.Bus
	logger     *zap.Logger
	totalExams int

	// lastNotifiedLevel is session-scoped: a fresh process treats the
	// current level as already notified, so restarts never replay
	// level-up notifications.
	lastNotifiedLevel int
}

// New builds the engine and subscribes it to every state-change topic.
func New(st *store.Store, ledger *progress.Ledger, pts *points.Ledger, center *notify.Center, b *bus.Bus, totalExams int, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		store:             st,
		ledger:            ledger,
		points:            pts,
		center:            center,
		bus:               b,
		logger:            logger,
		totalExams:        totalExams,
		lastNotifiedLevel: pts.LevelProgress().Level,
	}
	refresh := func(bus.Event) error { return e.Refresh(context.Background()) }
	b.Subscribe(bus.TopicProgressChanged, refresh)
	b.Subscribe(bus.TopicAchievementsChanged, refresh)
	b.Subscribe(bus.TopicPracticeLogged, refresh)
	b.Subscribe(bus.TopicTheoryStudied, refresh)
	b.Subscribe(bus.TopicExamPassed, refresh)
	b.Subscribe(bus.TopicDashboardOpened, refresh)
	return e
}

// Refresh runs one reactive tick: evaluate achievements, award pending
// point deltas, and notify on a level change. It is cheap and
// idempotent, so being invoked more often than strictly necessary is
// fine.
func (e *Engine) Refresh(ctx context.Context) error {
	snapshot, err := stats.Collect(ctx, e.store, e.ledger, e.totalExams)
	if err != nil {
		return fmt.Errorf("failed to collect stats: %w", err)
	}

	unlockedCount, err := e.checkNewAchievements(ctx, snapshot)
	if err != nil {
		return err
	}
	if err := e.awardDelta(ctx, store.KeyCheckpointTuls, snapshot.CompletedTuls,
		points.PointsPerTul, "completed tuls"); err != nil {
		return err
	}
	if err := e.awardDelta(ctx, store.KeyCheckpointAchieves, unlockedCount,
		points.PointsPerAchievement, "unlocked achievements"); err != nil {
		return err
	}
	e.notifyLevelUp(ctx)
	return nil
}

// checkNewAchievements evaluates the rule table against the snapshot,
// persists new unlocks, and emits one notification per unlock. Returns
// the size of the unlocked set after evaluation.
func (e *Engine) checkNewAchievements(ctx context.Context, snapshot model.StatsSnapshot) (int, error) {
	var unlocked []achievement.Unlocked
	if _, err := e.store.GetJSON(ctx, store.KeyUnlockedAchievements, &unlocked); err != nil {
		return 0, fmt.Errorf("failed to load unlocked achievements: %w", err)
	}
	newly := achievement.Evaluate(snapshot, unlocked, e.logger)
	if len(newly) == 0 {
		return len(unlocked), nil
	}
	unlocked = append(unlocked, newly...)
	// Persist the unlocked set before notifying so a crash mid-tick
	// cannot unlock the same achievement twice.
	if err := e.store.SetJSON(ctx, store.KeyUnlockedAchievements, unlocked); err != nil {
		return len(unlocked), fmt.Errorf("failed to persist achievements: %w", err)
	}
	for _, u := range newly {
		rule, ok := achievement.ByID(u.AchievementID)
		if !ok {
			continue
		}
		e.center.Add(ctx, notify.NewAchievementPayload(rule.Title, nil))
		e.logger.Info("achievement unlocked", zap.String("achievement", rule.ID))
	}
	e.bus.Publish(bus.Event{Topic: bus.TopicAchievementsChanged})
	return len(unlocked), nil
}

// awardDelta awards per-unit points for the growth of a live count over
// its persisted checkpoint, then advances the checkpoint in the same
// tick. live <= checkpoint awards nothing, so points are neither
// replayed nor clawed back.
func (e *Engine) awardDelta(ctx context.Context, checkpointKey string, live, perUnit int, reason string) error {
	checkpoint, err := e.store.GetInt(ctx, checkpointKey, 0)
	if err != nil {
		return err
	}
	if live <= checkpoint {
		return nil
	}
	delta := live - checkpoint
	if err := e.store.SetInt(ctx, checkpointKey, live); err != nil {
		return fmt.Errorf("failed to advance checkpoint %s: %w", checkpointKey, err)
	}
	if err := e.points.AddPoints(ctx, delta*perUnit, fmt.Sprintf("%d new %s", delta, reason)); err != nil {
		return err
	}
	return nil
}

func (e *Engine) notifyLevelUp(ctx context.Context) {
	level := e.points.LevelProgress().Level
	if level <= e.lastNotifiedLevel || level <= 1 {
		return
	}
	e.lastNotifiedLevel = level
	e.center.Add(ctx, notify.NewMilestonePayload(
		fmt.Sprintf("You reached level %d! Keep training.", level), nil))
}

// DashboardEffects computes the notifications owed when the dashboard
// opens: the once-ever welcome message and the two load reminders. The
// reminders have no persisted guard and re-fire on every open while
// their conditions hold. Callers stagger the returned payloads with
// cosmetic delays.
func (e *Engine) DashboardEffects(ctx context.Context) ([]notify.Payload, error) {
	snapshot, err := stats.Collect(ctx, e.store, e.ledger, e.totalExams)
	if err != nil {
		return nil, err
	}
	var payloads []notify.Payload

	seen, _, err := e.store.Get(ctx, store.KeyHasSeenWelcome)
	if err != nil {
		return nil, err
	}
	if seen != "true" {
		payloads = append(payloads, notify.NewMotivationPayload(
			"Welcome to your dojang! Track your tuls, study theory, and earn achievements."))
		if err := e.store.Set(ctx, store.KeyHasSeenWelcome, "true"); err != nil {
			e.logger.Warn("failed to persist welcome flag", zap.Error(err))
		}
	}
	if snapshot.CurrentStreak == 0 && snapshot.CompletedTuls > 0 {
		payloads = append(payloads, notify.NewReminderPayload(
			"Your streak is broken. Come back and practice today!", nil))
	}
	if snapshot.CompletedTuls >= 5 && snapshot.UnlockedAchievements == 0 {
		payloads = append(payloads, notify.NewReminderPayload(
			"You have completed 5 tuls. Check your achievements!", nil))
	}
	return payloads, nil
}

// RecordTheorySession increments the study-session counter and triggers
// a reactive tick.
func (e *Engine) RecordTheorySession(ctx context.Context) error {
	n, err := e.store.GetInt(ctx, store.KeyTheorySessions, 0)
	if err != nil {
		return err
	}
	if err := e.store.SetInt(ctx, store.KeyTheorySessions, n+1); err != nil {
		return err
	}
	e.bus.Publish(bus.Event{Topic: bus.TopicTheoryStudied})
	return nil
}

// RecordExamPassed increments the passed-exam counter and triggers a
// reactive tick.
func (e *Engine) RecordExamPassed(ctx context.Context) error {
	n, err := e.store.GetInt(ctx, store.KeyCompletedExams, 0)
	if err != nil {
		return err
	}
	if err := e.store.SetInt(ctx, store.KeyCompletedExams, n+1); err != nil {
		return err
	}
	e.bus.Publish(bus.Event{Topic: bus.TopicExamPassed})
	return nil
}
