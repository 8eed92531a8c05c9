// Package events delivers state-change notifications from the slideshow
// session to whatever renders it. A frontend subscribes and redraws on each
// event instead of polling the session.
package events

import (
	"sync"
	"sync/atomic"
	"time"
)

// EventType identifies what changed.
type EventType string

const (
	// EventCollectionChanged fires after a reload, filter, or sort
	// replaces the working collection.
	EventCollectionChanged EventType = "collection_changed"
	// EventPlaybackChanged fires on any cursor movement or play/pause
	// transition, including timer ticks. Subscribers should re-render.
	EventPlaybackChanged EventType = "playback_changed"
	// EventSessionError fires when an operation fails; the session keeps
	// running.
	EventSessionError EventType = "session_error"
)

// Event is the interface all published events satisfy.
type Event interface {
	Type() EventType
	Timestamp() time.Time
}

// BaseEvent provides the common event fields.
type BaseEvent struct {
	EventType EventType
	Time      time.Time
}

func (e BaseEvent) Type() EventType      { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }

// NewBaseEvent stamps a BaseEvent with the current time.
func NewBaseEvent(t EventType) BaseEvent {
	return BaseEvent{EventType: t, Time: time.Now()}
}

// CollectionChangedEvent reports the new working collection size.
type CollectionChangedEvent struct {
	BaseEvent
	Count int
}

// PlaybackChangedEvent reports the cursor position after a change.
type PlaybackChangedEvent struct {
	BaseEvent
	Index   int
	Playing bool
}

// SessionErrorEvent carries a surfaced operation failure.
type SessionErrorEvent struct {
	BaseEvent
	Err error
}

const defaultBufferSize = 64

// Bus fans events out to subscribers. Publishing never blocks; an event sent
// to a subscriber with a full buffer is dropped and counted.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[EventType][]chan Event
	all         []chan Event
	bufferSize  int
	closed      bool
	dropped     atomic.Int64
}

// NewBus creates a bus whose subscriber channels buffer bufferSize events.
func NewBus(bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Bus{
		subscribers: make(map[EventType][]chan Event),
		bufferSize:  bufferSize,
	}
}

// Subscribe returns a channel receiving events of one type. After Close the
// returned channel is already closed.
func (b *Bus) Subscribe(t EventType) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}
	ch := make(chan Event, b.bufferSize)
	b.subscribers[t] = append(b.subscribers[t], ch)
	return ch
}

// SubscribeAll returns a channel receiving every event.
func (b *Bus) SubscribeAll() <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}
	ch := make(chan Event, b.bufferSize)
	b.all = append(b.all, ch)
	return ch
}

// Publish delivers event to every matching subscriber without blocking.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.subscribers[event.Type()] {
		select {
		case ch <- event:
		default:
			b.dropped.Add(1)
		}
	}
	for _, ch := range b.all {
		select {
		case ch <- event:
		default:
			b.dropped.Add(1)
		}
	}
}

// Dropped returns how many events were discarded due to full buffers.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

// Close shuts the bus down and closes all subscriber channels. Publishing
// after Close is a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, channels := range b.subscribers {
		for _, ch := range channels {
			close(ch)
		}
	}
	for _, ch := range b.all {
		close(ch)
	}
	b.subscribers = make(map[EventType][]chan Event)
	b.all = nil
}
