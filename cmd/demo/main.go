// Command demo walks the aerodesk core stores through a morning of counter
// operations without the gRPC layer: growing sectors, assigning and queueing
// counter ranges, checking passengers in, and freeing counters back into the
// pool.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/groundops/aerodesk/internal/allocator"
	"github.com/groundops/aerodesk/internal/eventbus"
	"github.com/groundops/aerodesk/internal/ledger"
	"github.com/groundops/aerodesk/internal/passenger"
	"github.com/groundops/aerodesk/pkg/types"
)

func main() {
	alloc := allocator.New()
	dir := passenger.NewDirectory()
	checkins := ledger.New()
	bus := eventbus.New()

	// Oceanic subscribes to its operational events.
	sink := make(chan types.Event, 32)
	must(bus.Register("Oceanic", sink))

	// Grow two sectors from the shared counter pool. The second grant to D
	// cannot merge with the first because C consumed ids in between.
	must(alloc.AddSector("C"))
	must(alloc.AddSector("D"))
	grow(alloc, "D", 5)
	grow(alloc, "C", 3)
	grow(alloc, "D", 3)
	printSectors(alloc)

	must(dir.Add(types.Passenger{Booking: "XN-001", Flight: "OC815", Airline: "Oceanic"}))
	must(dir.Add(types.Passenger{Booking: "XN-002", Flight: "OC815", Airline: "Oceanic"}))

	// First-fit lands on the low interval of D.
	rng, _, err := alloc.AssignCounters("D", allocator.AssignRequest{
		Airline: "Oceanic",
		Flights: []string{"OC815"},
		Count:   2,
	})
	must(err)
	bus.Notify("Oceanic", types.Event{
		Type: types.EventCountersAssigned, Airline: "Oceanic",
		Sector: "D", Range: rng, Flights: []string{"OC815"},
	})
	fmt.Printf("assigned OC815 -> D [%d-%d]\n", rng.From, rng.To)

	// Ajira wants more than D has left in one block; it queues.
	_, pos, err := alloc.AssignCounters("D", allocator.AssignRequest{
		Airline: "Ajira",
		Flights: []string{"AJ316"},
		Count:   7,
	})
	must(err)
	fmt.Printf("AJ316 queued at position %d\n", pos)

	// Passengers arrive at the OC815 counters and check in.
	for _, booking := range []string{"XN-001", "XN-002"} {
		p, _ := dir.Passenger(booking)
		sector, cr, _ := alloc.FlightCountersAndSector(p.Flight)
		waiting, err := alloc.AddPassengerToQueue(sector, cr.Range.From, booking)
		must(err)
		must(checkins.Add(types.Checkin{
			Sector: sector, Counter: cr.Range.From,
			Airline: p.Airline, Flight: p.Flight, Booking: booking,
		}))
		bus.Notify(p.Airline, types.Event{
			Type: types.EventPassengerCheckedIn, Airline: p.Airline,
			Sector: sector, Booking: booking, PassengersInQueue: waiting,
		})
		fmt.Printf("checked in %s (%d waiting)\n", booking, waiting)
	}

	printSectors(alloc)
	fmt.Printf("ledger has %d check-ins\n", len(checkins.Checkins()))

	// Oceanic's counters cannot be freed while passengers are still waiting.
	_, err = alloc.FreeCounters("D", rng.From, "Oceanic")
	fmt.Printf("free with waiting passengers: %v\n", err)

	drain(sink)
	must(bus.Unregister("Oceanic"))
}

func grow(alloc *allocator.Allocator, sector string, count int) {
	rng, err := alloc.AddCounters(sector, count)
	must(err)
	fmt.Printf("sector %s grew by [%d-%d]\n", sector, rng.From, rng.To)
}

func printSectors(alloc *allocator.Allocator) {
	for _, sec := range alloc.Sectors() {
		parts := make([]string, 0, len(sec.Counters))
		for _, cr := range sec.Counters {
			state := "free"
			if cr.Assigned != nil {
				state = cr.Assigned.Airline
			}
			parts = append(parts, fmt.Sprintf("[%d-%d %s]", cr.Range.From, cr.Range.To, state))
		}
		fmt.Printf("sector %s: %s\n", sec.Name, strings.Join(parts, " "))
	}
}

func drain(sink chan types.Event) {
	for {
		select {
		case ev := <-sink:
			fmt.Printf("event: %s\n", ev.Type)
		default:
			return
		}
	}
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
