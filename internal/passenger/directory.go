// Package passenger stores registered passengers keyed by booking code and
// enforces that every flight belongs to exactly one airline.
package passenger

import (
	"errors"
	"sync"

	"github.com/groundops/aerodesk/pkg/types"
)

var (
	// ErrDuplicateBooking is returned when the booking is already registered.
	ErrDuplicateBooking = errors.New("booking already registered")
	// ErrFlightOwnedByOtherAirline is returned when the passenger's flight
	// is already bound to a different airline.
	ErrFlightOwnedByOtherAirline = errors.New("flight belongs to another airline")
)

// Directory is the registered-passenger store. Safe for concurrent use.
type Directory struct {
	mu         sync.RWMutex
	passengers map[string]types.Passenger // keyed by booking
	airlines   map[string]string          // flight -> airline, derived from registrations
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		passengers: make(map[string]types.Passenger),
		airlines:   make(map[string]string),
	}
}

// Add registers a passenger. The booking must be new and the flight must not
// already belong to a different airline.
func (d *Directory) Add(p types.Passenger) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.passengers[p.Booking]; exists {
		return ErrDuplicateBooking
	}
	if airline, bound := d.airlines[p.Flight]; bound && airline != p.Airline {
		return ErrFlightOwnedByOtherAirline
	}

	d.passengers[p.Booking] = p
	d.airlines[p.Flight] = p.Airline
	return nil
}

// Passenger returns the record for booking, if registered.
func (d *Directory) Passenger(booking string) (types.Passenger, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	p, ok := d.passengers[booking]
	return p, ok
}

// HasAirline reports whether any registered passenger references airline.
func (d *Directory) HasAirline(airline string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, bound := range d.airlines {
		if bound == airline {
			return true
		}
	}
	return false
}

// HasPassenger reports full-value membership of p.
func (d *Directory) HasPassenger(p types.Passenger) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	stored, ok := d.passengers[p.Booking]
	return ok && stored == p
}
