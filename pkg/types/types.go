// Package types defines the domain model shared by the aerodesk core stores.
package types

// Range is an inclusive interval [From, To] over the global counter-id space.
type Range struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Len returns the number of counters covered by the range.
func (r Range) Len() int {
	return r.To - r.From + 1
}

// MergeRanges coalesces an ascending-by-From sequence of disjoint ranges,
// joining adjacent entries where next.From == prev.To+1. The input is not
// modified. Used for display only; allocator state keeps assigned and free
// intervals apart.
func MergeRanges(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}

	merged := []Range{ranges[0]}
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if r.From == last.To+1 {
			last.To = r.To
		} else {
			merged = append(merged, r)
		}
	}
	return merged
}

// AssignedInfo describes who holds an assigned counter range.
type AssignedInfo struct {
	Airline           string   `json:"airline"`
	Flights           []string `json:"flights"`
	PassengersInQueue int      `json:"passengers_in_queue"`
}

// CounterRange is a contiguous block of counters, either entirely free or
// entirely assigned to one airline. Assigned is nil for a free block.
type CounterRange struct {
	Range    Range         `json:"range"`
	Assigned *AssignedInfo `json:"assigned,omitempty"`
}

// IsFree reports whether the block is unassigned.
func (cr CounterRange) IsFree() bool {
	return cr.Assigned == nil
}

// Sector is a snapshot of one sector's counter blocks, ascending by From.
type Sector struct {
	Name     string         `json:"name"`
	Counters []CounterRange `json:"counters"`
}

// PendingAssignment is a queued request for counters that could not be
// satisfied when it was made.
type PendingAssignment struct {
	Airline string   `json:"airline"`
	Flights []string `json:"flights"`
	Count   int      `json:"count"`
}

// Passenger is a registered passenger keyed by booking code.
type Passenger struct {
	Booking string `json:"booking"`
	Flight  string `json:"flight"`
	Airline string `json:"airline"`
}

// Checkin records one passenger served at one counter. Written once,
// never mutated.
type Checkin struct {
	Sector  string `json:"sector"`
	Counter int    `json:"counter"`
	Airline string `json:"airline"`
	Flight  string `json:"flight"`
	Booking string `json:"booking"`
}

// EventType discriminates the operational events pushed to airlines.
type EventType string

const (
	EventCountersAssigned   EventType = "counters_assigned"
	EventCountersFreed      EventType = "counters_freed"
	EventAssignmentQueued   EventType = "assignment_queued"
	EventQueueMoved         EventType = "queue_moved"
	EventPassengerArrived   EventType = "passenger_arrived"
	EventPassengerCheckedIn EventType = "passenger_checked_in"
)

// Event is one operational notification for a subscribed airline. Fields
// beyond Type and Airline are populated per event type.
type Event struct {
	Type    EventType `json:"type"`
	Airline string    `json:"airline"`
	Sector  string    `json:"sector,omitempty"`
	Range   *Range    `json:"range,omitempty"`
	Flights []string  `json:"flights,omitempty"`
	Booking string    `json:"booking,omitempty"`

	// QueuePosition is the 0-based position of a pending assignment for
	// assignment_queued and queue_moved events.
	QueuePosition int `json:"queue_position,omitempty"`

	// PassengersInQueue is the waiting-list length at the counters for
	// passenger_arrived and passenger_checked_in events.
	PassengersInQueue int `json:"passengers_in_queue,omitempty"`
}
