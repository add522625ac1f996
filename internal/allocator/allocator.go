// Package allocator owns the global counter-id space and the per-sector
// interval lists. Counters are handed out from one monotonically increasing
// cursor shared by every sector, assigned to airlines first-fit, and merged
// back into contiguous free space when released. Requests that cannot be
// satisfied immediately wait in a per-sector FIFO queue.
package allocator

import (
	"errors"
	"sort"
	"sync"

	"github.com/groundops/aerodesk/pkg/types"
)

var (
	// ErrSectorExists is returned when adding a sector whose name is taken.
	ErrSectorExists = errors.New("sector already exists")
	// ErrSectorNotFound is returned when the target sector does not exist.
	ErrSectorNotFound = errors.New("sector not found")
	// ErrInvalidCount is returned for a non-positive counter count.
	ErrInvalidCount = errors.New("counter count must be positive")
	// ErrFlightAssigned is returned when a flight already holds counters.
	ErrFlightAssigned = errors.New("flight already has counters assigned")
	// ErrFlightQueued is returned when a flight is already waiting in a
	// pending-assignment queue.
	ErrFlightQueued = errors.New("flight already queued for counters")
	// ErrFlightServed is returned when a flight's counters were freed at
	// least once; such flights can never be assigned or queued again.
	ErrFlightServed = errors.New("flight already checked in")
	// ErrRangeNotFound is returned when no assigned range starts at the
	// given counter in the given sector.
	ErrRangeNotFound = errors.New("no assigned counter range at that position")
	// ErrNotRangeOwner is returned when the range exists but is held by a
	// different airline.
	ErrNotRangeOwner = errors.New("counter range belongs to another airline")
	// ErrHasPendingPassengers is returned when freeing counters that still
	// have passengers waiting at them.
	ErrHasPendingPassengers = errors.New("passengers still waiting at the counters")
	// ErrPassengerWaiting is returned when a booking is already in the
	// waiting list of the counters it tries to join.
	ErrPassengerWaiting = errors.New("passenger already waiting at the counters")
)

// AssignRequest asks for Count contiguous counters for one airline and one
// set of flights.
type AssignRequest struct {
	Airline string
	Flights []string
	Count   int
}

// Promotion reports a pending assignment that was satisfied while freeing
// counters.
type Promotion struct {
	Airline string
	Flights []string
	Range   types.Range
}

// QueueMove reports the new 0-based position of a still-pending assignment
// after the queue head was satisfied.
type QueueMove struct {
	Airline  string
	Flights  []string
	Position int
}

// FreeResult is everything a caller needs to notify airlines after a
// successful free: the range as it was before being released, the pending
// assignment promoted into the freed space (if any), and the queue shifts
// that promotion caused.
type FreeResult struct {
	Freed    types.CounterRange
	Promoted *Promotion
	Moves    []QueueMove
}

// counterRange is one contiguous block in a sector's interval list.
// assigned is nil for a free block; waiting holds the bookings queued at an
// assigned block, in arrival order.
type counterRange struct {
	rng      types.Range
	assigned *assignment
	waiting  []string
}

type assignment struct {
	airline string
	flights []string
}

type sector struct {
	name    string
	ranges  []*counterRange // ascending by rng.From, disjoint
	pending []*types.PendingAssignment
}

// Allocator is the sector and counter-range store. All exported methods are
// safe for concurrent use; each validates and mutates under one lock so no
// partial state is ever observable.
type Allocator struct {
	mu      sync.Mutex
	sectors map[string]*sector
	cursor  int // last counter id handed out, shared by all sectors
	served  map[string]struct{}
}

// New creates an empty allocator.
func New() *Allocator {
	return &Allocator{
		sectors: make(map[string]*sector),
		served:  make(map[string]struct{}),
	}
}

// AddSector creates a sector with an empty interval list.
func (a *Allocator) AddSector(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.sectors[name]; exists {
		return ErrSectorExists
	}
	a.sectors[name] = &sector{name: name}
	return nil
}

// AddCounters extends a sector's counter space by count new ids and returns
// the newly usable range. The sector's free tail is grown in place only when
// its end still equals the global cursor, i.e. no other sector has consumed
// ids since this sector last grew.
func (a *Allocator) AddCounters(sectorName string, count int) (types.Range, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if count <= 0 {
		return types.Range{}, ErrInvalidCount
	}
	sec, ok := a.sectors[sectorName]
	if !ok {
		return types.Range{}, ErrSectorNotFound
	}

	grown := types.Range{From: a.cursor + 1, To: a.cursor + count}

	if n := len(sec.ranges); n > 0 {
		last := sec.ranges[n-1]
		if last.assigned == nil && last.rng.To == a.cursor {
			last.rng.To += count
			a.cursor += count
			return grown, nil
		}
	}

	sec.ranges = append(sec.ranges, &counterRange{rng: grown})
	a.cursor += count
	return grown, nil
}

// AssignCounters satisfies req from the sector's lowest sufficient free
// interval (first-fit). On success it returns the assigned range and queue
// position 0. When no interval fits, the request joins the sector's FIFO
// queue and the returned position is its 0-based index there.
func (a *Allocator) AssignCounters(sectorName string, req AssignRequest) (*types.Range, int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if req.Count <= 0 {
		return nil, 0, ErrInvalidCount
	}
	sec, ok := a.sectors[sectorName]
	if !ok {
		return nil, 0, ErrSectorNotFound
	}

	// Flight lifecycle checks precede any mutation.
	for _, flight := range req.Flights {
		if a.flightAssignedLocked(flight) {
			return nil, 0, ErrFlightAssigned
		}
		if a.flightQueuedLocked(flight) {
			return nil, 0, ErrFlightQueued
		}
		if _, served := a.served[flight]; served {
			return nil, 0, ErrFlightServed
		}
	}

	if i, ok := sec.firstFit(req.Count); ok {
		rng := sec.carve(i, req.Count, req.Airline, req.Flights)
		return &rng, 0, nil
	}

	sec.pending = append(sec.pending, &types.PendingAssignment{
		Airline: req.Airline,
		Flights: append([]string(nil), req.Flights...),
		Count:   req.Count,
	})
	return nil, len(sec.pending) - 1, nil
}

// FreeCounters releases the assigned range starting exactly at counterFrom.
// The freed flights become permanently ineligible for reassignment, the
// block is merged with free neighbours, and the head of the sector's pending
// queue is given one first-fit attempt at the reclaimed space.
func (a *Allocator) FreeCounters(sectorName string, counterFrom int, airline string) (*FreeResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	sec, ok := a.sectors[sectorName]
	if !ok {
		return nil, ErrSectorNotFound
	}

	idx := -1
	for i, cr := range sec.ranges {
		if cr.assigned != nil && cr.rng.From == counterFrom {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrRangeNotFound
	}

	cr := sec.ranges[idx]
	if cr.assigned.airline != airline {
		return nil, ErrNotRangeOwner
	}
	if len(cr.waiting) > 0 {
		return nil, ErrHasPendingPassengers
	}

	result := &FreeResult{Freed: cr.snapshot()}

	// The freed flights are terminal: never assignable or queueable again.
	for _, flight := range cr.assigned.flights {
		a.served[flight] = struct{}{}
	}
	cr.assigned = nil
	cr.waiting = nil

	// Merge with the following free block, then the preceding one.
	if idx+1 < len(sec.ranges) && sec.ranges[idx+1].assigned == nil {
		cr.rng.To = sec.ranges[idx+1].rng.To
		sec.ranges = append(sec.ranges[:idx+1], sec.ranges[idx+2:]...)
	}
	if idx > 0 && sec.ranges[idx-1].assigned == nil {
		sec.ranges[idx-1].rng.To = cr.rng.To
		sec.ranges = append(sec.ranges[:idx], sec.ranges[idx+1:]...)
	}

	// One attempt at the queue head against the reclaimed space.
	if len(sec.pending) > 0 {
		head := sec.pending[0]
		if i, ok := sec.firstFit(head.Count); ok {
			rng := sec.carve(i, head.Count, head.Airline, head.Flights)
			sec.pending = sec.pending[1:]
			result.Promoted = &Promotion{
				Airline: head.Airline,
				Flights: head.Flights,
				Range:   rng,
			}
			for pos, p := range sec.pending {
				result.Moves = append(result.Moves, QueueMove{
					Airline:  p.Airline,
					Flights:  p.Flights,
					Position: pos,
				})
			}
		}
	}

	return result, nil
}

// FlightCounters returns the assigned range serving flight, if any.
func (a *Allocator) FlightCounters(flight string) (types.CounterRange, bool) {
	_, cr, ok := a.FlightCountersAndSector(flight)
	return cr, ok
}

// FlightCountersAndSector returns the sector name and assigned range serving
// flight, if any.
func (a *Allocator) FlightCountersAndSector(flight string) (string, types.CounterRange, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, name := range a.sortedNamesLocked() {
		for _, cr := range a.sectors[name].ranges {
			if cr.assigned != nil && containsFlight(cr.assigned.flights, flight) {
				return name, cr.snapshot(), true
			}
		}
	}
	return "", types.CounterRange{}, false
}

// Sectors returns a snapshot of every sector sorted by name.
func (a *Allocator) Sectors() []types.Sector {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]types.Sector, 0, len(a.sectors))
	for _, name := range a.sortedNamesLocked() {
		sec := a.sectors[name]
		counters := make([]types.CounterRange, 0, len(sec.ranges))
		for _, cr := range sec.ranges {
			counters = append(counters, cr.snapshot())
		}
		out = append(out, types.Sector{Name: name, Counters: counters})
	}
	return out
}

// QueuedAssignments returns the sector's pending queue in FIFO order.
func (a *Allocator) QueuedAssignments(sectorName string) ([]types.PendingAssignment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	sec, ok := a.sectors[sectorName]
	if !ok {
		return nil, ErrSectorNotFound
	}
	out := make([]types.PendingAssignment, 0, len(sec.pending))
	for _, p := range sec.pending {
		out = append(out, types.PendingAssignment{
			Airline: p.Airline,
			Flights: append([]string(nil), p.Flights...),
			Count:   p.Count,
		})
	}
	return out, nil
}

// AddPassengerToQueue appends booking to the waiting list of the assigned
// range starting at counterFrom and returns the new list length. A booking
// can wait at one set of counters at most once.
func (a *Allocator) AddPassengerToQueue(sectorName string, counterFrom int, booking string) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	cr, err := a.assignedRangeLocked(sectorName, counterFrom)
	if err != nil {
		return 0, err
	}
	for _, b := range cr.waiting {
		if b == booking {
			return 0, ErrPassengerWaiting
		}
	}
	cr.waiting = append(cr.waiting, booking)
	return len(cr.waiting), nil
}

// HasPassengerInCounter reports whether booking is waiting at the assigned
// range starting at counterFrom.
func (a *Allocator) HasPassengerInCounter(sectorName string, counterFrom int, booking string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	cr, err := a.assignedRangeLocked(sectorName, counterFrom)
	if err != nil {
		return false, err
	}
	for _, b := range cr.waiting {
		if b == booking {
			return true, nil
		}
	}
	return false, nil
}

func (a *Allocator) assignedRangeLocked(sectorName string, counterFrom int) (*counterRange, error) {
	sec, ok := a.sectors[sectorName]
	if !ok {
		return nil, ErrSectorNotFound
	}
	for _, cr := range sec.ranges {
		if cr.assigned != nil && cr.rng.From == counterFrom {
			return cr, nil
		}
	}
	return nil, ErrRangeNotFound
}

func (a *Allocator) flightAssignedLocked(flight string) bool {
	for _, sec := range a.sectors {
		for _, cr := range sec.ranges {
			if cr.assigned != nil && containsFlight(cr.assigned.flights, flight) {
				return true
			}
		}
	}
	return false
}

func (a *Allocator) flightQueuedLocked(flight string) bool {
	for _, sec := range a.sectors {
		for _, p := range sec.pending {
			if containsFlight(p.Flights, flight) {
				return true
			}
		}
	}
	return false
}

func (a *Allocator) sortedNamesLocked() []string {
	names := make([]string, 0, len(a.sectors))
	for name := range a.sectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// firstFit returns the index of the lowest free block of at least count
// counters.
func (s *sector) firstFit(count int) (int, bool) {
	for i, cr := range s.ranges {
		if cr.assigned == nil && cr.rng.Len() >= count {
			return i, true
		}
	}
	return -1, false
}

// carve assigns the first count counters of the free block at index i,
// leaving any remainder in place as a smaller free block.
func (s *sector) carve(i, count int, airline string, flights []string) types.Range {
	free := s.ranges[i]
	assigned := &counterRange{
		rng: types.Range{From: free.rng.From, To: free.rng.From + count - 1},
		assigned: &assignment{
			airline: airline,
			flights: append([]string(nil), flights...),
		},
	}

	if free.rng.Len() == count {
		s.ranges[i] = assigned
		return assigned.rng
	}

	free.rng.From = assigned.rng.To + 1
	s.ranges = append(s.ranges, nil)
	copy(s.ranges[i+1:], s.ranges[i:])
	s.ranges[i] = assigned
	return assigned.rng
}

func (cr *counterRange) snapshot() types.CounterRange {
	out := types.CounterRange{Range: cr.rng}
	if cr.assigned != nil {
		out.Assigned = &types.AssignedInfo{
			Airline:           cr.assigned.airline,
			Flights:           append([]string(nil), cr.assigned.flights...),
			PassengersInQueue: len(cr.waiting),
		}
	}
	return out
}

func containsFlight(flights []string, flight string) bool {
	for _, f := range flights {
		if f == flight {
			return true
		}
	}
	return false
}
