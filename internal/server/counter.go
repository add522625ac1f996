package server

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/groundops/aerodesk/api/proto/v1"
	"github.com/groundops/aerodesk/internal/allocator"
	"github.com/groundops/aerodesk/pkg/types"
)

// CounterServer implements CounterService for airline agents.
type CounterServer struct {
	pb.UnimplementedCounterServiceServer

	core *Core
}

// NewCounterServer creates the counter service over core.
func NewCounterServer(core *Core) *CounterServer {
	return &CounterServer{core: core}
}

// ListSectors returns every sector with its counter spans coalesced for
// display.
func (s *CounterServer) ListSectors(ctx context.Context, req *pb.ListSectorsRequest) (*pb.ListSectorsResponse, error) {
	defer s.core.observe("ListSectors", time.Now())

	sectors := s.core.alloc.Sectors()
	if len(sectors) == 0 {
		return nil, status.Error(codes.NotFound, "no sectors")
	}

	resp := &pb.ListSectorsResponse{}
	for _, sec := range sectors {
		spans := make([]types.Range, 0, len(sec.Counters))
		total := 0
		for _, cr := range sec.Counters {
			spans = append(spans, cr.Range)
			total += cr.Range.Len()
		}

		summary := &pb.SectorSummary{Name: sec.Name, CounterCount: int32(total)}
		for _, r := range types.MergeRanges(spans) {
			summary.MergedRanges = append(summary.MergedRanges, protoRange(r))
		}
		resp.Sectors = append(resp.Sectors, summary)
	}
	return resp, nil
}

// AssignCounters grants a contiguous counter range to an airline, or queues
// the request when the sector has no sufficient free interval.
func (s *CounterServer) AssignCounters(ctx context.Context, req *pb.AssignCountersRequest) (*pb.AssignCountersResponse, error) {
	defer s.core.observe("AssignCounters", time.Now())

	switch {
	case req.GetSector() == "":
		return nil, errMissing("sector")
	case req.GetAirline() == "":
		return nil, errMissing("airline")
	case len(req.GetFlights()) == 0:
		return nil, errMissing("flights")
	}

	rng, pos, err := s.core.alloc.AssignCounters(req.GetSector(), allocator.AssignRequest{
		Airline: req.GetAirline(),
		Flights: req.GetFlights(),
		Count:   int(req.GetCount()),
	})
	if err != nil {
		return nil, statusFromErr(err)
	}

	if rng != nil {
		s.core.metrics.RecordAssignment()
		s.core.notify(types.Event{
			Type:    types.EventCountersAssigned,
			Airline: req.GetAirline(),
			Sector:  req.GetSector(),
			Range:   rng,
			Flights: req.GetFlights(),
		})
		log.Info("counters assigned",
			"sector", req.GetSector(),
			"airline", req.GetAirline(),
			"from", rng.From,
			"to", rng.To)
		return &pb.AssignCountersResponse{Range: protoRange(*rng)}, nil
	}

	s.core.metrics.RecordQueued()
	s.core.notify(types.Event{
		Type:          types.EventAssignmentQueued,
		Airline:       req.GetAirline(),
		Sector:        req.GetSector(),
		Flights:       req.GetFlights(),
		QueuePosition: pos,
	})
	log.Info("assignment queued",
		"sector", req.GetSector(),
		"airline", req.GetAirline(),
		"position", pos)
	return &pb.AssignCountersResponse{Queued: true, QueuePosition: int32(pos)}, nil
}

// FreeCounters releases an assigned range and forwards the queue events the
// free produced.
func (s *CounterServer) FreeCounters(ctx context.Context, req *pb.FreeCountersRequest) (*pb.FreeCountersResponse, error) {
	defer s.core.observe("FreeCounters", time.Now())

	switch {
	case req.GetSector() == "":
		return nil, errMissing("sector")
	case req.GetAirline() == "":
		return nil, errMissing("airline")
	}

	res, err := s.core.alloc.FreeCounters(req.GetSector(), int(req.GetCounterFrom()), req.GetAirline())
	if err != nil {
		return nil, statusFromErr(err)
	}

	s.core.metrics.RecordFree()
	freed := res.Freed
	s.core.notify(types.Event{
		Type:    types.EventCountersFreed,
		Airline: freed.Assigned.Airline,
		Sector:  req.GetSector(),
		Range:   &freed.Range,
		Flights: freed.Assigned.Flights,
	})
	log.Info("counters freed",
		"sector", req.GetSector(),
		"airline", req.GetAirline(),
		"from", freed.Range.From,
		"to", freed.Range.To)

	if p := res.Promoted; p != nil {
		s.core.metrics.RecordPromotion()
		rng := p.Range
		s.core.notify(types.Event{
			Type:    types.EventCountersAssigned,
			Airline: p.Airline,
			Sector:  req.GetSector(),
			Range:   &rng,
			Flights: p.Flights,
		})
		log.Info("pending assignment promoted",
			"sector", req.GetSector(),
			"airline", p.Airline,
			"from", rng.From,
			"to", rng.To)
	}
	for _, m := range res.Moves {
		s.core.notify(types.Event{
			Type:          types.EventQueueMoved,
			Airline:       m.Airline,
			Sector:        req.GetSector(),
			Flights:       m.Flights,
			QueuePosition: m.Position,
		})
	}

	return &pb.FreeCountersResponse{Freed: protoCounterRange(freed)}, nil
}

// ListPendingAssignments returns a sector's queue in FIFO order.
func (s *CounterServer) ListPendingAssignments(ctx context.Context, req *pb.ListPendingAssignmentsRequest) (*pb.ListPendingAssignmentsResponse, error) {
	defer s.core.observe("ListPendingAssignments", time.Now())

	if req.GetSector() == "" {
		return nil, errMissing("sector")
	}
	pending, err := s.core.alloc.QueuedAssignments(req.GetSector())
	if err != nil {
		return nil, statusFromErr(err)
	}

	resp := &pb.ListPendingAssignmentsResponse{}
	for _, p := range pending {
		resp.Assignments = append(resp.Assignments, &pb.PendingAssignment{
			Airline: p.Airline,
			Flights: p.Flights,
			Count:   int32(p.Count),
		})
	}
	return resp, nil
}
