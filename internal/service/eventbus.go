package service

import (
	"sync"
)

const (
	EventStatus = "status"
	EventOutput = "output"
	EventBatch  = "batch"
)

// Event is published for every job status change, every encoder output
// line and every batch state change. Batch events carry an empty JobID.
type Event struct {
	JobID   string
	Type    string // "status", "output", "batch"
	Status  string
	Message string
}

type EventPublisher interface {
	Publish(jobID string, event Event)
}

// EventBus fans events out to per-job channel subscribers, which may drop
// events when slow, and to handlers, which are called synchronously in
// publish order.
type EventBus struct {
	subscribers map[string][]chan Event
	handlers    []func(Event)
	mu          sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]chan Event),
	}
}

func (eb *EventBus) Subscribe(jobID string) chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan Event, 16)
	eb.subscribers[jobID] = append(eb.subscribers[jobID], ch)
	return ch
}

func (eb *EventBus) Unsubscribe(jobID string, ch chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[jobID]
	for i, sub := range subs {
		if sub == ch {
			eb.subscribers[jobID] = append(subs[:i], subs[i+1:]...)
			close(ch)
			break
		}
	}

	if len(eb.subscribers[jobID]) == 0 {
		delete(eb.subscribers, jobID)
	}
}

// Handle registers fn for every event of every job.
func (eb *EventBus) Handle(fn func(Event)) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.handlers = append(eb.handlers, fn)
}

func (eb *EventBus) Publish(jobID string, event Event) {
	event.JobID = jobID

	eb.mu.RLock()
	handlers := append([]func(Event){}, eb.handlers...)
	for _, ch := range eb.subscribers[jobID] {
		select {
		case ch <- event:
		default:
			// Drop event if subscriber is slow
		}
	}
	eb.mu.RUnlock()

	for _, fn := range handlers {
		fn(event)
	}
}
