// Package ledger is the append-only log of completed check-ins. Entries are
// kept in insertion order and are never mutated or removed; a booking checks
// in at most once.
package ledger

import (
	"errors"
	"sync"

	"github.com/groundops/aerodesk/pkg/types"
)

// ErrDuplicateCheckin is returned when the booking already has a recorded
// check-in.
var ErrDuplicateCheckin = errors.New("booking already checked in")

// Ledger is the check-in log. Safe for concurrent use; inserts are atomic
// and totally ordered.
type Ledger struct {
	mu       sync.RWMutex
	entries  []types.Checkin
	bookings map[string]struct{}
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{bookings: make(map[string]struct{})}
}

// Add appends a check-in record. The only write operation.
func (l *Ledger) Add(c types.Checkin) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.bookings[c.Booking]; exists {
		return ErrDuplicateCheckin
	}
	l.entries = append(l.entries, c)
	l.bookings[c.Booking] = struct{}{}
	return nil
}

// Checkins returns the full log in insertion order.
func (l *Ledger) Checkins() []types.Checkin {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]types.Checkin(nil), l.entries...)
}

// CheckinsFunc returns the entries matching pred, preserving insertion
// order.
func (l *Ledger) CheckinsFunc(pred func(types.Checkin) bool) []types.Checkin {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []types.Checkin
	for _, c := range l.entries {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

// HasCheckins reports whether anything has been recorded.
func (l *Ledger) HasCheckins() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries) > 0
}

// HasCheckin reports whether booking has a recorded check-in.
func (l *Ledger) HasCheckin(booking string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.bookings[booking]
	return ok
}
