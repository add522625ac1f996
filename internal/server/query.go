package server

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/groundops/aerodesk/api/proto/v1"
	"github.com/groundops/aerodesk/pkg/types"
)

// QueryServer implements the reporting QueryService.
type QueryServer struct {
	pb.UnimplementedQueryServiceServer

	core *Core
}

// NewQueryServer creates the query service over core.
func NewQueryServer(core *Core) *QueryServer {
	return &QueryServer{core: core}
}

// Checkins returns the ledger filtered by the non-empty request fields, in
// insertion order.
func (s *QueryServer) Checkins(ctx context.Context, req *pb.CheckinsRequest) (*pb.CheckinsResponse, error) {
	defer s.core.observe("Checkins", time.Now())

	if !s.core.ledger.HasCheckins() {
		return nil, status.Error(codes.NotFound, "no check-ins recorded")
	}

	matches := s.core.ledger.CheckinsFunc(func(c types.Checkin) bool {
		if req.GetAirline() != "" && c.Airline != req.GetAirline() {
			return false
		}
		if req.GetFlight() != "" && c.Flight != req.GetFlight() {
			return false
		}
		if req.GetSector() != "" && c.Sector != req.GetSector() {
			return false
		}
		return true
	})

	resp := &pb.CheckinsResponse{}
	for _, c := range matches {
		resp.Checkins = append(resp.Checkins, protoCheckin(c))
	}
	return resp, nil
}

// Counters returns the full allocator state, sector by sector.
func (s *QueryServer) Counters(ctx context.Context, req *pb.CountersRequest) (*pb.CountersResponse, error) {
	defer s.core.observe("Counters", time.Now())

	sectors := s.core.alloc.Sectors()
	if len(sectors) == 0 {
		return nil, status.Error(codes.NotFound, "no sectors")
	}

	resp := &pb.CountersResponse{}
	for _, sec := range sectors {
		out := &pb.Sector{Name: sec.Name}
		for _, cr := range sec.Counters {
			out.Counters = append(out.Counters, protoCounterRange(cr))
		}
		resp.Sectors = append(resp.Sectors, out)
	}
	return resp, nil
}
