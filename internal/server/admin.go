package server

import (
	"context"
	"time"

	pb "github.com/groundops/aerodesk/api/proto/v1"
	"github.com/groundops/aerodesk/pkg/types"
)

// AdminServer implements AdminService for ground-operations administrators.
type AdminServer struct {
	pb.UnimplementedAdminServiceServer

	core *Core
}

// NewAdminServer creates the admin service over core.
func NewAdminServer(core *Core) *AdminServer {
	return &AdminServer{core: core}
}

// AddSector creates an empty sector.
func (s *AdminServer) AddSector(ctx context.Context, req *pb.AddSectorRequest) (*pb.AddSectorResponse, error) {
	defer s.core.observe("AddSector", time.Now())

	if req.GetName() == "" {
		return nil, errMissing("sector name")
	}
	if err := s.core.alloc.AddSector(req.GetName()); err != nil {
		return nil, statusFromErr(err)
	}

	s.core.metrics.RecordSector()
	log.Info("sector added", "sector", req.GetName())
	return &pb.AddSectorResponse{}, nil
}

// AddCounters extends a sector's counter space.
func (s *AdminServer) AddCounters(ctx context.Context, req *pb.AddCountersRequest) (*pb.AddCountersResponse, error) {
	defer s.core.observe("AddCounters", time.Now())

	if req.GetSector() == "" {
		return nil, errMissing("sector")
	}
	rng, err := s.core.alloc.AddCounters(req.GetSector(), int(req.GetCount()))
	if err != nil {
		return nil, statusFromErr(err)
	}

	s.core.metrics.RecordCountersAdded(int(req.GetCount()))
	log.Info("counters added",
		"sector", req.GetSector(),
		"from", rng.From,
		"to", rng.To)
	return &pb.AddCountersResponse{Range: protoRange(rng)}, nil
}

// AddPassenger registers an expected passenger.
func (s *AdminServer) AddPassenger(ctx context.Context, req *pb.AddPassengerRequest) (*pb.AddPassengerResponse, error) {
	defer s.core.observe("AddPassenger", time.Now())

	p := req.GetPassenger()
	switch {
	case p.GetBooking() == "":
		return nil, errMissing("booking")
	case p.GetFlight() == "":
		return nil, errMissing("flight")
	case p.GetAirline() == "":
		return nil, errMissing("airline")
	}

	if err := s.core.dir.Add(types.Passenger{
		Booking: p.GetBooking(),
		Flight:  p.GetFlight(),
		Airline: p.GetAirline(),
	}); err != nil {
		return nil, statusFromErr(err)
	}

	s.core.metrics.RecordPassenger()
	log.Info("passenger registered",
		"booking", p.GetBooking(),
		"flight", p.GetFlight(),
		"airline", p.GetAirline())
	return &pb.AddPassengerResponse{}, nil
}
