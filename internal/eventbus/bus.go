// Package eventbus routes operational events to subscribed airlines. Each
// airline has at most one sink channel; delivery is fire-and-forget with no
// buffering or retry on the bus side.
package eventbus

import (
	"errors"
	"sync"

	"github.com/groundops/aerodesk/pkg/types"
)

var (
	// ErrAlreadyRegistered is returned when the airline already has a sink.
	ErrAlreadyRegistered = errors.New("airline already registered")
	// ErrNotRegistered is returned when no sink is registered for the
	// airline.
	ErrNotRegistered = errors.New("airline not registered")
)

// Bus is the per-airline event registry. Safe for concurrent use.
type Bus struct {
	mu    sync.Mutex
	sinks map[string]chan<- types.Event
}

// New creates a bus with no subscribers.
func New() *Bus {
	return &Bus{sinks: make(map[string]chan<- types.Event)}
}

// Register stores sink as the sole subscriber for airline. The bus owns the
// channel from here on: Unregister closes it to signal end-of-stream, so the
// caller must not close it itself.
func (b *Bus) Register(airline string, sink chan<- types.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.sinks[airline]; exists {
		return ErrAlreadyRegistered
	}
	b.sinks[airline] = sink
	return nil
}

// Unregister closes the airline's sink and removes it.
func (b *Bus) Unregister(airline string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	sink, exists := b.sinks[airline]
	if !exists {
		return ErrNotRegistered
	}
	close(sink)
	delete(b.sinks, airline)
	return nil
}

// Notify delivers ev to the airline's sink and reports whether a sink was
// registered. The send never blocks; a subscriber that cannot keep up loses
// the event.
func (b *Bus) Notify(airline string, ev types.Event) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	sink, exists := b.sinks[airline]
	if !exists {
		return false
	}
	select {
	case sink <- ev:
	default:
	}
	return true
}

// IsRegistered reports whether the airline has a sink.
func (b *Bus) IsRegistered(airline string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, exists := b.sinks[airline]
	return exists
}
