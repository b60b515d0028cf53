package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_SubscribeReceivesOwnJobOnly(t *testing.T) {
	eb := NewEventBus()
	ch := eb.Subscribe("job-1")
	defer eb.Unsubscribe("job-1", ch)

	eb.Publish("job-2", Event{Type: EventStatus, Status: "running"})
	eb.Publish("job-1", Event{Type: EventStatus, Status: "succeeded"})

	select {
	case ev := <-ch:
		assert.Equal(t, "job-1", ev.JobID)
		assert.Equal(t, "succeeded", ev.Status)
	default:
		t.Fatal("expected an event")
	}
	assert.Len(t, ch, 0)
}

func TestEventBus_SlowSubscriberDropsEvents(t *testing.T) {
	eb := NewEventBus()
	ch := eb.Subscribe("job-1")

	for i := 0; i < 40; i++ {
		eb.Publish("job-1", Event{Type: EventOutput})
	}
	assert.Len(t, ch, 16)
}

func TestEventBus_UnsubscribeClosesChannel(t *testing.T) {
	eb := NewEventBus()
	ch := eb.Subscribe("job-1")
	eb.Unsubscribe("job-1", ch)

	_, ok := <-ch
	assert.False(t, ok)
	assert.Empty(t, eb.subscribers)

	// Publishing after unsubscribe must not panic.
	eb.Publish("job-1", Event{Type: EventStatus})
}

func TestEventBus_HandlersSeeEveryEventInOrder(t *testing.T) {
	eb := NewEventBus()

	var got []Event
	eb.Handle(func(e Event) { got = append(got, e) })

	eb.Publish("a", Event{Type: EventStatus, Status: "running"})
	eb.Publish("a", Event{Type: EventOutput, Message: "frame=1"})
	eb.Publish("", Event{Type: EventBatch, Status: "completed"})

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].JobID)
	assert.Equal(t, "frame=1", got[1].Message)
	assert.Equal(t, EventBatch, got[2].Type)
	assert.Empty(t, got[2].JobID)
}

func TestEventBus_HandlerMayPublish(t *testing.T) {
	eb := NewEventBus()

	var seen []string
	eb.Handle(func(e Event) {
		seen = append(seen, e.Status)
		if e.Status == "first" {
			eb.Publish("x", Event{Status: "second"})
		}
	})

	eb.Publish("x", Event{Status: "first"})
	assert.Equal(t, []string{"first", "second"}, seen)
}
