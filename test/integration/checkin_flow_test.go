// Package integration exercises the aerodesk core stores together the way
// the gRPC services drive them: counter-space growth, assignment, passenger
// check-in, freeing and queue promotion, with events observed on the bus.
package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groundops/aerodesk/internal/allocator"
	"github.com/groundops/aerodesk/internal/eventbus"
	"github.com/groundops/aerodesk/internal/ledger"
	"github.com/groundops/aerodesk/internal/passenger"
	"github.com/groundops/aerodesk/pkg/types"
)

func TestCheckinFlow(t *testing.T) {
	alloc := allocator.New()
	dir := passenger.NewDirectory()
	checkins := ledger.New()
	bus := eventbus.New()

	sink := make(chan types.Event, 32)
	require.NoError(t, bus.Register("Oceanic", sink))

	// Grow two sectors from the shared id space. C consumes ids between D's
	// grants, so D ends up with two disjoint blocks.
	require.NoError(t, alloc.AddSector("D"))
	require.NoError(t, alloc.AddSector("C"))
	for _, g := range []struct {
		sector string
		count  int
		want   types.Range
	}{
		{"D", 5, types.Range{From: 1, To: 5}},
		{"C", 3, types.Range{From: 6, To: 8}},
		{"D", 3, types.Range{From: 9, To: 11}},
	} {
		rng, err := alloc.AddCounters(g.sector, g.count)
		require.NoError(t, err)
		assert.Equal(t, g.want, rng)
	}

	require.NoError(t, dir.Add(types.Passenger{Booking: "XN-001", Flight: "OC815", Airline: "Oceanic"}))
	require.NoError(t, dir.Add(types.Passenger{Booking: "XN-002", Flight: "OC815", Airline: "Oceanic"}))

	// Oceanic takes the low end of D.
	rng, _, err := alloc.AssignCounters("D", allocator.AssignRequest{
		Airline: "Oceanic",
		Flights: []string{"OC815"},
		Count:   2,
	})
	require.NoError(t, err)
	require.NotNil(t, rng)
	assert.Equal(t, types.Range{From: 1, To: 2}, *rng)
	assert.True(t, bus.Notify("Oceanic", types.Event{
		Type:    types.EventCountersAssigned,
		Airline: "Oceanic",
		Sector:  "D",
		Range:   rng,
		Flights: []string{"OC815"},
	}))

	// Ajira asks for more than any one block holds and queues.
	queued, pos, err := alloc.AssignCounters("D", allocator.AssignRequest{
		Airline: "Ajira",
		Flights: []string{"AJ316"},
		Count:   7,
	})
	require.NoError(t, err)
	assert.Nil(t, queued)
	assert.Equal(t, 0, pos)

	// Both passengers find their flight's counters and check in.
	for i, booking := range []string{"XN-001", "XN-002"} {
		p, ok := dir.Passenger(booking)
		require.True(t, ok)

		sector, cr, ok := alloc.FlightCountersAndSector(p.Flight)
		require.True(t, ok)
		assert.Equal(t, "D", sector)

		waiting, err := alloc.AddPassengerToQueue(sector, cr.Range.From, booking)
		require.NoError(t, err)
		assert.Equal(t, i+1, waiting)

		require.NoError(t, checkins.Add(types.Checkin{
			Sector:  sector,
			Counter: cr.Range.From,
			Airline: p.Airline,
			Flight:  p.Flight,
			Booking: booking,
		}))
	}
	assert.Len(t, checkins.Checkins(), 2)
	assert.True(t, checkins.HasCheckin("XN-001"))

	// A booking checks in at most once, at either layer.
	_, err = alloc.AddPassengerToQueue("D", rng.From, "XN-001")
	assert.ErrorIs(t, err, allocator.ErrPassengerWaiting)
	err = checkins.Add(types.Checkin{Sector: "D", Counter: 1, Airline: "Oceanic", Flight: "OC815", Booking: "XN-001"})
	assert.ErrorIs(t, err, ledger.ErrDuplicateCheckin)

	// The counters cannot be freed while passengers are waiting at them.
	_, err = alloc.FreeCounters("D", rng.From, "Oceanic")
	assert.ErrorIs(t, err, allocator.ErrHasPendingPassengers)

	ev := <-sink
	assert.Equal(t, types.EventCountersAssigned, ev.Type)
	require.NoError(t, bus.Unregister("Oceanic"))
	_, open := <-sink
	assert.False(t, open)
}

func TestFreePromotesQueuedAirline(t *testing.T) {
	alloc := allocator.New()
	bus := eventbus.New()

	oceanic := make(chan types.Event, 8)
	ajira := make(chan types.Event, 8)
	require.NoError(t, bus.Register("Oceanic", oceanic))
	require.NoError(t, bus.Register("Ajira", ajira))

	require.NoError(t, alloc.AddSector("D"))
	_, err := alloc.AddCounters("D", 4)
	require.NoError(t, err)

	rng, _, err := alloc.AssignCounters("D", allocator.AssignRequest{
		Airline: "Oceanic",
		Flights: []string{"OC815"},
		Count:   4,
	})
	require.NoError(t, err)
	require.NotNil(t, rng)

	_, pos, err := alloc.AssignCounters("D", allocator.AssignRequest{
		Airline: "Ajira",
		Flights: []string{"AJ316"},
		Count:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	// Freeing Oceanic's range satisfies Ajira's pending request.
	res, err := alloc.FreeCounters("D", rng.From, "Oceanic")
	require.NoError(t, err)
	assert.Equal(t, types.Range{From: 1, To: 4}, res.Freed.Range)
	require.NotNil(t, res.Promoted)
	assert.Equal(t, "Ajira", res.Promoted.Airline)
	assert.Equal(t, types.Range{From: 1, To: 3}, res.Promoted.Range)
	assert.Empty(t, res.Moves)

	// The service layer fans the free result out as events.
	assert.True(t, bus.Notify("Oceanic", types.Event{
		Type:    types.EventCountersFreed,
		Airline: "Oceanic",
		Sector:  "D",
		Range:   &res.Freed.Range,
	}))
	assert.True(t, bus.Notify(res.Promoted.Airline, types.Event{
		Type:    types.EventCountersAssigned,
		Airline: res.Promoted.Airline,
		Sector:  "D",
		Range:   &res.Promoted.Range,
		Flights: res.Promoted.Flights,
	}))

	got := <-ajira
	assert.Equal(t, types.EventCountersAssigned, got.Type)
	assert.Equal(t, types.Range{From: 1, To: 3}, *got.Range)

	// The freed flight is done for good.
	_, _, err = alloc.AssignCounters("D", allocator.AssignRequest{
		Airline: "Oceanic",
		Flights: []string{"OC815"},
		Count:   1,
	})
	assert.ErrorIs(t, err, allocator.ErrFlightServed)
}
