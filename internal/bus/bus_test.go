package bus

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestPublishRunsSubscribersInOrder(t *testing.T) {
	b := New(zap.NewNop())
	var order []int
	b.Subscribe(TopicProgressChanged, func(Event) error {
		order = append(order, 1)
		return nil
	})
	b.Subscribe(TopicProgressChanged, func(Event) error {
		order = append(order, 2)
		return nil
	})
	b.Subscribe(TopicExamPassed, func(Event) error {
		order = append(order, 3)
		return nil
	})

	b.Publish(Event{Topic: TopicProgressChanged})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("got order %v, want [1 2]", order)
	}
}

func TestPublishPassesPayload(t *testing.T) {
	b := New(zap.NewNop())
	var got any
	b.Subscribe(TopicPracticeLogged, func(ev Event) error {
		got = ev.Payload
		return nil
	})

	b.Publish(Event{Topic: TopicPracticeLogged, Payload: 42})
	if got != 42 {
		t.Fatalf("got payload %v, want 42", got)
	}
}

func TestFailingHandlerDoesNotBlockOthers(t *testing.T) {
	b := New(zap.NewNop())
	ran := false
	b.Subscribe(TopicTheoryStudied, func(Event) error {
		return errors.New("boom")
	})
	b.Subscribe(TopicTheoryStudied, func(Event) error {
		ran = true
		return nil
	})

	b.Publish(Event{Topic: TopicTheoryStudied})
	if !ran {
		t.Fatal("second handler did not run after first failed")
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	b := New(zap.NewNop())
	// Must not panic.
	b.Publish(Event{Topic: TopicDashboardOpened})
}
