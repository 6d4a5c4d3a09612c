package events

import (
	"context"
	"sync"
)

// DefaultMemoryHistory is how many recent events a MemoryBus keeps.
const DefaultMemoryHistory = 256

// MemoryBus delivers events in-process to its forwarders. It backs tests
// and runs without redis. Only the most recent events are retained for
// Published; older ones are overwritten.
type MemoryBus struct {
	mu        sync.RWMutex
	listeners []func(Event)

	history []Event
	next    int
	full    bool
}

func NewMemoryBus() *MemoryBus { return NewMemoryBusWithHistory(DefaultMemoryHistory) }

// NewMemoryBusWithHistory keeps the last size events; size<=0 keeps none.
func NewMemoryBusWithHistory(size int) *MemoryBus {
	if size < 0 {
		size = 0
	}
	return &MemoryBus{history: make([]Event, size)}
}

func (b *MemoryBus) Publish(ctx context.Context, ev Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	if len(b.history) > 0 {
		b.history[b.next] = ev
		b.next = (b.next + 1) % len(b.history)
		if b.next == 0 {
			b.full = true
		}
	}
	listeners := append([]func(Event){}, b.listeners...)
	b.mu.Unlock()
	for _, fn := range listeners {
		fn(ev)
	}
	return nil
}

func (b *MemoryBus) StartForwarder(ctx context.Context, onEvent func(ev Event)) error {
	if onEvent == nil {
		return nil
	}
	b.mu.Lock()
	b.listeners = append(b.listeners, onEvent)
	b.mu.Unlock()
	return nil
}

// Published returns the retained events, oldest first.
func (b *MemoryBus) Published() []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.full {
		return append([]Event(nil), b.history[:b.next]...)
	}
	out := make([]Event, 0, len(b.history))
	out = append(out, b.history[b.next:]...)
	return append(out, b.history[:b.next]...)
}

func (b *MemoryBus) Close() error { return nil }
