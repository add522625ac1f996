// Package server implements the aerodesk gRPC services. The services own
// request validation and the mapping from domain errors to wire status
// codes; all state lives in the core stores.
package server

import (
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/groundops/aerodesk/api/proto/v1"
	"github.com/groundops/aerodesk/internal/allocator"
	"github.com/groundops/aerodesk/internal/eventbus"
	"github.com/groundops/aerodesk/internal/ledger"
	"github.com/groundops/aerodesk/internal/metrics"
	"github.com/groundops/aerodesk/internal/passenger"
	"github.com/groundops/aerodesk/pkg/types"
)

var log = slog.Default()

// Core bundles the four stores, the event bus and the metrics collector.
// There are no cross-store transactions: each service handler sequences its
// calls and each store operation is atomic on its own.
type Core struct {
	alloc   *allocator.Allocator
	dir     *passenger.Directory
	ledger  *ledger.Ledger
	bus     *eventbus.Bus
	metrics *metrics.Collector
}

// NewCore creates empty stores wired to the given collector.
func NewCore(m *metrics.Collector) *Core {
	return &Core{
		alloc:   allocator.New(),
		dir:     passenger.NewDirectory(),
		ledger:  ledger.New(),
		bus:     eventbus.New(),
		metrics: m,
	}
}

// notify pushes ev to the airline named in it, best-effort.
func (c *Core) notify(ev types.Event) {
	c.metrics.RecordEvent(c.bus.Notify(ev.Airline, ev))
}

func (c *Core) observe(method string, start time.Time) {
	c.metrics.ObserveRequest(method, time.Since(start).Seconds())
}

// statusFromErr maps a domain error to its wire status code.
func statusFromErr(err error) error {
	switch {
	case errors.Is(err, allocator.ErrSectorExists),
		errors.Is(err, allocator.ErrPassengerWaiting),
		errors.Is(err, passenger.ErrDuplicateBooking),
		errors.Is(err, ledger.ErrDuplicateCheckin),
		errors.Is(err, eventbus.ErrAlreadyRegistered):
		return status.Error(codes.AlreadyExists, err.Error())

	case errors.Is(err, allocator.ErrSectorNotFound),
		errors.Is(err, allocator.ErrRangeNotFound),
		errors.Is(err, eventbus.ErrNotRegistered):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, allocator.ErrInvalidCount):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, allocator.ErrNotRangeOwner):
		return status.Error(codes.PermissionDenied, err.Error())

	case errors.Is(err, allocator.ErrFlightAssigned),
		errors.Is(err, allocator.ErrFlightQueued),
		errors.Is(err, allocator.ErrFlightServed),
		errors.Is(err, allocator.ErrHasPendingPassengers),
		errors.Is(err, passenger.ErrFlightOwnedByOtherAirline):
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

func errMissing(field string) error {
	return status.Errorf(codes.InvalidArgument, "%s must be provided", field)
}

// ---------------------------------------------------------------------------
// domain <-> proto conversion
// ---------------------------------------------------------------------------

func protoRange(r types.Range) *pb.Range {
	return &pb.Range{From: int32(r.From), To: int32(r.To)}
}

func protoCounterRange(cr types.CounterRange) *pb.CounterRange {
	out := &pb.CounterRange{Range: protoRange(cr.Range)}
	if cr.Assigned != nil {
		out.Assigned = &pb.AssignedInfo{
			Airline:           cr.Assigned.Airline,
			Flights:           cr.Assigned.Flights,
			PassengersInQueue: int32(cr.Assigned.PassengersInQueue),
		}
	}
	return out
}

func protoCheckin(c types.Checkin) *pb.Checkin {
	return &pb.Checkin{
		Sector:  c.Sector,
		Counter: int32(c.Counter),
		Airline: c.Airline,
		Flight:  c.Flight,
		Booking: c.Booking,
	}
}

var protoEventTypes = map[types.EventType]pb.EventType{
	types.EventCountersAssigned:   pb.EventType_EVENT_TYPE_COUNTERS_ASSIGNED,
	types.EventCountersFreed:      pb.EventType_EVENT_TYPE_COUNTERS_FREED,
	types.EventAssignmentQueued:   pb.EventType_EVENT_TYPE_ASSIGNMENT_QUEUED,
	types.EventQueueMoved:         pb.EventType_EVENT_TYPE_QUEUE_MOVED,
	types.EventPassengerArrived:   pb.EventType_EVENT_TYPE_PASSENGER_ARRIVED,
	types.EventPassengerCheckedIn: pb.EventType_EVENT_TYPE_PASSENGER_CHECKED_IN,
}

func protoEvent(ev types.Event) *pb.Event {
	out := &pb.Event{
		Type:              protoEventTypes[ev.Type],
		Airline:           ev.Airline,
		Sector:            ev.Sector,
		Flights:           ev.Flights,
		Booking:           ev.Booking,
		QueuePosition:     int32(ev.QueuePosition),
		PassengersInQueue: int32(ev.PassengersInQueue),
	}
	if ev.Range != nil {
		out.Range = protoRange(*ev.Range)
	}
	return out
}
