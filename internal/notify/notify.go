// Package notify implements the notification center: an ordered,
// newest-first list of user-facing alerts persisted across sessions.
package notify

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dojang-app/dojang/internal/store"
)

// Type classifies a notification.
type Type string

// Notification types.
const (
	TypeAchievement Type = "achievement"
	TypeReminder    Type = "reminder"
	TypeMilestone   Type = "milestone"
	TypeMotivation  Type = "motivation"
	TypeInfo        Type = "info"
)

// Action is a session-scoped affordance attached to a notification. It
// is never persisted: a notification reloaded from the store has lost
// its action.
type Action struct {
	Label string
	Run   func()
}

// Notification is one user-facing alert.
type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
	Icon      string    `json:"icon,omitempty"`
	Action    *Action   `json:"-"`
}

// Payload is what a producer supplies; the center assigns id, timestamp,
// and read state.
type Payload struct {
	Type    Type
	Title   string
	Message string
	Icon    string
	Action  *Action
}

// Center owns the notification list. New entries are prepended; read
// and clear operations persist immediately.
type Center struct {
	store  *store.Store
	logger *zap.Logger
	max    int
	list   []Notification
}

// Load builds the center from persisted state. max caps the number of
// kept notifications; 0 means unlimited.
func Load(ctx context.Context, st *store.Store, max int, logger *zap.Logger) (*Center, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Center{store: st, logger: logger, max: max}
	if _, err := st.GetJSON(ctx, store.KeyNotifications, &c.list); err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}
	return c, nil
}

// Add prepends a new notification and persists the list. The created
// notification is returned.
func (c *Center) Add(ctx context.Context, p Payload) Notification {
	n := Notification{
		ID:        nextID(),
		Type:      p.Type,
		Title:     p.Title,
		Message:   p.Message,
		CreatedAt: time.Now(),
		Icon:      p.Icon,
		Action:    p.Action,
	}
	c.list = append([]Notification{n}, c.list...)
	if c.max > 0 && len(c.list) > c.max {
		c.list = c.list[:c.max]
	}
	c.persist(ctx)
	return n
}

// List returns the notifications, newest first.
func (c *Center) List() []Notification {
	return c.list
}

// UnreadCount returns the number of unread notifications.
func (c *Center) UnreadCount() int {
	n := 0
	for _, item := range c.list {
		if !item.Read {
			n++
		}
	}
	return n
}

// MarkRead sets read on the matching notification.
func (c *Center) MarkRead(ctx context.Context, id string) {
	for i := range c.list {
		if c.list[i].ID == id {
			c.list[i].Read = true
		}
	}
	c.persist(ctx)
}

// MarkAllRead sets read on every notification.
func (c *Center) MarkAllRead(ctx context.Context) {
	for i := range c.list {
		c.list[i].Read = true
	}
	c.persist(ctx)
}

// Clear removes the matching notification.
func (c *Center) Clear(ctx context.Context, id string) {
	kept := c.list[:0]
	for _, item := range c.list {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	c.list = kept
	c.persist(ctx)
}

// ClearAll empties the list.
func (c *Center) ClearAll(ctx context.Context) {
	c.list = nil
	c.persist(ctx)
}

// persist writes the list minus actions. A failed write keeps the
// in-memory state correct for the session; only durability is lost.
func (c *Center) persist(ctx context.Context) {
	if err := c.store.SetJSON(ctx, store.KeyNotifications, c.list); err != nil {
		c.logger.Warn("failed to persist notifications", zap.Error(err))
	}
}

var (
	idMu   sync.Mutex
	lastID int64
)

// nextID returns a time-derived id, strictly increasing within the
// process so two notifications in the same instant never collide.
func nextID() string {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixNano()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return strconv.FormatInt(id, 10)
}
