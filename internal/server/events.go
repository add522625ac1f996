package server

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/groundops/aerodesk/api/proto/v1"
	"github.com/groundops/aerodesk/pkg/types"
)

// eventSinkBuffer bounds how far a subscriber may lag before events are
// dropped; the bus never blocks on a slow stream.
const eventSinkBuffer = 64

// EventsServer implements the server-streaming EventsService.
type EventsServer struct {
	pb.UnimplementedEventsServiceServer

	core *Core
}

// NewEventsServer creates the events service over core.
func NewEventsServer(core *Core) *EventsServer {
	return &EventsServer{core: core}
}

// Subscribe registers the airline on the event bus and streams its events
// until the subscription is cancelled or unregistered. An airline with no
// expected passengers has nothing to subscribe to.
func (s *EventsServer) Subscribe(req *pb.SubscribeRequest, stream pb.EventsService_SubscribeServer) error {
	defer s.core.observe("Subscribe", time.Now())

	airline := req.GetAirline()
	if airline == "" {
		return errMissing("airline")
	}
	if !s.core.dir.HasAirline(airline) {
		return status.Error(codes.NotFound, "no expected passengers for airline")
	}

	sink := make(chan types.Event, eventSinkBuffer)
	if err := s.core.bus.Register(airline, sink); err != nil {
		return statusFromErr(err)
	}
	s.core.metrics.SubscriberAdded()
	defer s.core.metrics.SubscriberRemoved()
	log.Info("airline subscribed", "airline", airline)

	ctx := stream.Context()
	for {
		select {
		case ev, ok := <-sink:
			if !ok {
				// Unregistered; the closed sink is the end-of-stream signal.
				log.Info("airline unsubscribed", "airline", airline)
				return nil
			}
			if err := stream.Send(protoEvent(ev)); err != nil {
				_ = s.core.bus.Unregister(airline)
				return err
			}
		case <-ctx.Done():
			_ = s.core.bus.Unregister(airline)
			log.Info("subscription cancelled", "airline", airline)
			return ctx.Err()
		}
	}
}

// Unsubscribe removes the airline's subscription, ending its stream.
func (s *EventsServer) Unsubscribe(ctx context.Context, req *pb.UnsubscribeRequest) (*pb.UnsubscribeResponse, error) {
	defer s.core.observe("Unsubscribe", time.Now())

	if req.GetAirline() == "" {
		return nil, errMissing("airline")
	}
	if err := s.core.bus.Unregister(req.GetAirline()); err != nil {
		return nil, statusFromErr(err)
	}
	return &pb.UnsubscribeResponse{}, nil
}
