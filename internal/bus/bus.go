// Package bus provides a small synchronous in-process event bus. The
// app is single-threaded and event-driven: state transitions publish an
// event, and reactive subscribers run in the same call before Publish
// returns.
package bus

import (
	"go.uber.org/zap"
)

// Topic identifies an event kind.
type Topic string

// Event topics.
const (
	TopicProgressChanged     Topic = "progress.changed"
	TopicAchievementsChanged Topic = "achievements.changed"
	TopicPracticeLogged      Topic = "practice.logged"
	TopicTheoryStudied       Topic = "theory.studied"
	TopicExamPassed          Topic = "exam.passed"
	TopicDashboardOpened     Topic = "dashboard.opened"
)

// Event is a published occurrence.
type Event struct {
	Topic   Topic
	Payload any
}

// Handler consumes one event. Errors are logged and do not stop other
// handlers.
type Handler func(Event) error

// Bus dispatches events synchronously in subscription order.
type Bus struct {
	handlers map[Topic][]Handler
	logger   *zap.Logger
}

// New creates an empty bus.
func New(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{handlers: map[Topic][]Handler{}, logger: logger}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic Topic, h Handler) {
	if h == nil {
		return
	}
	b.handlers[topic] = append(b.handlers[topic], h)
}

// Publish runs every handler for the event's topic. One failing handler
// never blocks the others.
func (b *Bus) Publish(ev Event) {
	for _, h := range b.handlers[ev.Topic] {
		if err := h(ev); err != nil {
			b.logger.Error("event handler failed",
				zap.String("topic", string(ev.Topic)), zap.Error(err))
		}
	}
}
