// Package achievement holds the static achievement rule table and the
// evaluator that detects newly satisfied rules.
package achievement

import (
	"time"

	"go.uber.org/zap"

	"github.com/dojang-app/dojang/internal/model"
)

// Rarity is a cosmetic classification with no gameplay effect.
type Rarity string

// Rarity values.
const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Label returns the display name for a rarity.
func (r Rarity) Label() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	}
	return "Common"
}

// Reward is the cosmetic title granted with an achievement.
type Reward struct {
	Title       string
	Description string
}

// Rule is one achievement definition. Condition must be a pure function
// of the snapshot.
type Rule struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Type        string
	Rarity      Rarity
	Reward      Reward
	Condition   func(model.StatsSnapshot) bool
}

// Unlocked records one earned achievement. The set is append-only and
// keyed by achievement id.
type Unlocked struct {
	AchievementID string    `json:"achievementId"`
	UnlockedAt    time.Time `json:"unlockedAt"`
}

// Evaluate walks the catalog in order and returns the rules that are
// newly satisfied by the snapshot, skipping ids already in unlocked.
// A panicking condition is contained per rule: it is logged and the
// remaining rules still run. Repeated evaluation never re-fires as long
// as the caller feeds the updated unlocked set back in.
func Evaluate(snapshot model.StatsSnapshot, unlocked []Unlocked, logger *zap.Logger) []Unlocked {
	if logger == nil {
		logger = zap.NewNop()
	}
	have := make(map[string]struct{}, len(unlocked))
	for _, u := range unlocked {
		have[u.AchievementID] = struct{}{}
	}
	var newly []Unlocked
	for _, rule := range Catalog() {
		if _, ok := have[rule.ID]; ok {
			continue
		}
		if satisfied(rule, snapshot, logger) {
			newly = append(newly, Unlocked{
				AchievementID: rule.ID,
				UnlockedAt:    time.Now(),
			})
		}
	}
	return newly
}

func satisfied(rule Rule, snapshot model.StatsSnapshot, logger *zap.Logger) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("achievement condition panicked",
				zap.String("achievement", rule.ID), zap.Any("panic", r))
			ok = false
		}
	}()
	return rule.Condition(snapshot)
}

// ByID returns the catalog rule with the given id.
func ByID(id string) (Rule, bool) {
	for _, rule := range Catalog() {
		if rule.ID == id {
			return rule, true
		}
	}
	return Rule{}, false
}
