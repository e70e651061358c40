// Package practice logs practice sessions and maintains the day streak
// counters derived from them.
package practice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dojang-app/dojang/internal/model"
	"github.com/dojang-app/dojang/internal/store"
)

const dateLayout = "2006-01-02"

// Log records one practice session: appends it to the log, adds the
// minutes to the running total, and updates the streak counters. It
// returns the stored session.
func Log(ctx context.Context, st *store.Store, minutes int, note string, now time.Time) (model.PracticeSession, error) {
	if minutes <= 0 {
		return model.PracticeSession{}, fmt.Errorf("minutes must be > 0")
	}
	session := model.PracticeSession{
		ID:      uuid.NewString(),
		Date:    now,
		Minutes: minutes,
		Note:    note,
	}
	if err := st.AppendPracticeSession(ctx, session); err != nil {
		return model.PracticeSession{}, fmt.Errorf("failed to log session: %w", err)
	}
	total, err := st.GetInt(ctx, store.KeyTotalPracticeTime, 0)
	if err != nil {
		return model.PracticeSession{}, err
	}
	if err := st.SetInt(ctx, store.KeyTotalPracticeTime, total+minutes); err != nil {
		return model.PracticeSession{}, err
	}
	if err := updateStreak(ctx, st, now); err != nil {
		return model.PracticeSession{}, err
	}
	return session, nil
}

// updateStreak advances the consecutive-day counters. Practicing again
// the same day keeps the streak, the next calendar day extends it, and
// any longer gap resets it to 1.
func updateStreak(ctx context.Context, st *store.Store, now time.Time) error {
	today := now.Format(dateLayout)
	last, hasLast, err := st.Get(ctx, store.KeyLastPracticeDate)
	if err != nil {
		return err
	}
	current, err := st.GetInt(ctx, store.KeyCurrentStreak, 0)
	if err != nil {
		return err
	}
	longest, err := st.GetInt(ctx, store.KeyLongestStreak, 0)
	if err != nil {
		return err
	}

	switch {
	case hasLast && last == today:
		if current == 0 {
			current = 1
		}
	case hasLast && isYesterday(last, now):
		current++
	default:
		current = 1
	}
	if current > longest {
		longest = current
	}

	if err := st.Set(ctx, store.KeyLastPracticeDate, today); err != nil {
		return err
	}
	if err := st.SetInt(ctx, store.KeyCurrentStreak, current); err != nil {
		return err
	}
	return st.SetInt(ctx, store.KeyLongestStreak, longest)
}

func isYesterday(date string, now time.Time) bool {
	return date == now.AddDate(0, 0, -1).Format(dateLayout)
}
