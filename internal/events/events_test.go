package events

import (
	"errors"
	"testing"
	"time"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatal("channel closed before event arrived")
		}
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestSubscribeReceivesMatchingType(t *testing.T) {
	bus := NewBus(4)
	defer bus.Close()

	playback := bus.Subscribe(EventPlaybackChanged)

	bus.Publish(CollectionChangedEvent{BaseEvent: NewBaseEvent(EventCollectionChanged), Count: 3})
	bus.Publish(PlaybackChangedEvent{BaseEvent: NewBaseEvent(EventPlaybackChanged), Index: 2, Playing: true})

	ev := receive(t, playback)
	pc, ok := ev.(PlaybackChangedEvent)
	if !ok {
		t.Fatalf("got %T, want PlaybackChangedEvent", ev)
	}
	if pc.Index != 2 || !pc.Playing {
		t.Errorf("event = %+v", pc)
	}

	select {
	case ev := <-playback:
		t.Errorf("unexpected second event %T", ev)
	default:
	}
}

func TestSubscribeAll(t *testing.T) {
	bus := NewBus(4)
	defer bus.Close()

	all := bus.SubscribeAll()

	bus.Publish(CollectionChangedEvent{BaseEvent: NewBaseEvent(EventCollectionChanged), Count: 1})
	bus.Publish(SessionErrorEvent{BaseEvent: NewBaseEvent(EventSessionError), Err: errors.New("boom")})

	first := receive(t, all)
	if first.Type() != EventCollectionChanged {
		t.Errorf("first event type = %v", first.Type())
	}
	second := receive(t, all)
	se, ok := second.(SessionErrorEvent)
	if !ok {
		t.Fatalf("got %T, want SessionErrorEvent", second)
	}
	if se.Err == nil || se.Err.Error() != "boom" {
		t.Errorf("error = %v", se.Err)
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	bus := NewBus(1)
	defer bus.Close()

	_ = bus.Subscribe(EventPlaybackChanged)

	// Overfill the one-slot buffer; extra events are dropped, not queued.
	for i := 0; i < 3; i++ {
		bus.Publish(PlaybackChangedEvent{BaseEvent: NewBaseEvent(EventPlaybackChanged), Index: i})
	}

	if got := bus.Dropped(); got != 2 {
		t.Errorf("Dropped() = %d, want 2", got)
	}
}

func TestCloseClosesSubscribers(t *testing.T) {
	bus := NewBus(4)
	ch := bus.Subscribe(EventPlaybackChanged)
	bus.Close()

	if _, ok := <-ch; ok {
		t.Error("channel should be closed after bus close")
	}

	// Safe to close twice and to publish after close.
	bus.Close()
	bus.Publish(PlaybackChangedEvent{BaseEvent: NewBaseEvent(EventPlaybackChanged)})

	late := bus.Subscribe(EventPlaybackChanged)
	if _, ok := <-late; ok {
		t.Error("subscription after close should return a closed channel")
	}
}
