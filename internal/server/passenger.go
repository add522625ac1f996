package server

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/groundops/aerodesk/api/proto/v1"
	"github.com/groundops/aerodesk/pkg/types"
)

// PassengerServer implements PassengerService.
type PassengerServer struct {
	pb.UnimplementedPassengerServiceServer

	core *Core
}

// NewPassengerServer creates the passenger service over core.
func NewPassengerServer(core *Core) *PassengerServer {
	return &PassengerServer{core: core}
}

// FetchCounter tells a passenger where their flight checks in.
func (s *PassengerServer) FetchCounter(ctx context.Context, req *pb.FetchCounterRequest) (*pb.FetchCounterResponse, error) {
	defer s.core.observe("FetchCounter", time.Now())

	if req.GetBooking() == "" {
		return nil, errMissing("booking")
	}
	p, ok := s.core.dir.Passenger(req.GetBooking())
	if !ok {
		return nil, status.Error(codes.NotFound, "booking not registered")
	}

	resp := &pb.FetchCounterResponse{Flight: p.Flight, Airline: p.Airline}
	if sector, cr, found := s.core.alloc.FlightCountersAndSector(p.Flight); found {
		resp.HasCounters = true
		resp.Sector = sector
		resp.Range = protoRange(cr.Range)
	}
	return resp, nil
}

// CheckIn puts the passenger in the waiting list at their flight's counters
// and records the check-in. The two store writes are sequenced here; each is
// atomic on its own.
func (s *PassengerServer) CheckIn(ctx context.Context, req *pb.CheckInRequest) (*pb.CheckInResponse, error) {
	defer s.core.observe("CheckIn", time.Now())

	if req.GetBooking() == "" {
		return nil, errMissing("booking")
	}
	p, ok := s.core.dir.Passenger(req.GetBooking())
	if !ok {
		return nil, status.Error(codes.NotFound, "booking not registered")
	}
	if s.core.ledger.HasCheckin(p.Booking) {
		return nil, status.Error(codes.AlreadyExists, "booking already checked in")
	}

	sector, cr, found := s.core.alloc.FlightCountersAndSector(p.Flight)
	if !found {
		return nil, status.Error(codes.NotFound, "no counters assigned for flight")
	}

	waiting, err := s.core.alloc.AddPassengerToQueue(sector, cr.Range.From, p.Booking)
	if err != nil {
		return nil, statusFromErr(err)
	}
	s.core.notify(types.Event{
		Type:              types.EventPassengerArrived,
		Airline:           p.Airline,
		Sector:            sector,
		Range:             &cr.Range,
		Booking:           p.Booking,
		PassengersInQueue: waiting,
	})

	checkin := types.Checkin{
		Sector:  sector,
		Counter: cr.Range.From,
		Airline: p.Airline,
		Flight:  p.Flight,
		Booking: p.Booking,
	}
	if err := s.core.ledger.Add(checkin); err != nil {
		return nil, statusFromErr(err)
	}

	s.core.metrics.RecordCheckin()
	s.core.notify(types.Event{
		Type:              types.EventPassengerCheckedIn,
		Airline:           p.Airline,
		Sector:            sector,
		Range:             &cr.Range,
		Booking:           p.Booking,
		PassengersInQueue: waiting,
	})
	log.Info("passenger checked in",
		"booking", p.Booking,
		"flight", p.Flight,
		"sector", sector,
		"counter", checkin.Counter)
	return &pb.CheckInResponse{
		Checkin:           protoCheckin(checkin),
		PassengersInQueue: int32(waiting),
	}, nil
}

// PassengerStatus reports a passenger's check-in state and counters.
func (s *PassengerServer) PassengerStatus(ctx context.Context, req *pb.PassengerStatusRequest) (*pb.PassengerStatusResponse, error) {
	defer s.core.observe("PassengerStatus", time.Now())

	if req.GetBooking() == "" {
		return nil, errMissing("booking")
	}
	p, ok := s.core.dir.Passenger(req.GetBooking())
	if !ok {
		return nil, status.Error(codes.NotFound, "booking not registered")
	}

	resp := &pb.PassengerStatusResponse{
		Passenger: &pb.Passenger{Booking: p.Booking, Flight: p.Flight, Airline: p.Airline},
	}
	if sector, cr, found := s.core.alloc.FlightCountersAndSector(p.Flight); found {
		resp.HasCounters = true
		resp.Sector = sector
		resp.Range = protoRange(cr.Range)
	}
	matches := s.core.ledger.CheckinsFunc(func(c types.Checkin) bool {
		return c.Booking == p.Booking
	})
	if len(matches) > 0 {
		resp.CheckedIn = true
		resp.Checkin = protoCheckin(matches[0])
	}
	return resp, nil
}
