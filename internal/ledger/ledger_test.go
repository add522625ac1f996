package ledger

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/groundops/aerodesk/pkg/types"
)

func TestAddAndRead(t *testing.T) {
	l := New()
	if l.HasCheckins() {
		t.Error("empty ledger reports check-ins")
	}

	entries := []types.Checkin{
		{Sector: "D", Counter: 1, Airline: "Oceanic", Flight: "OC815", Booking: "XN-001"},
		{Sector: "D", Counter: 1, Airline: "Oceanic", Flight: "OC815", Booking: "XN-002"},
		{Sector: "C", Counter: 6, Airline: "Ajira", Flight: "AJ316", Booking: "XN-003"},
	}
	for _, c := range entries {
		if err := l.Add(c); err != nil {
			t.Fatalf("Add(%s): %v", c.Booking, err)
		}
	}

	got := l.Checkins()
	if len(got) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(got), len(entries))
	}
	for i, c := range got {
		if c != entries[i] {
			t.Errorf("entry %d: got %+v, want %+v", i, c, entries[i])
		}
	}

	if !l.HasCheckins() {
		t.Error("populated ledger reports no check-ins")
	}
	if !l.HasCheckin("XN-002") {
		t.Error("XN-002 not found")
	}
	if l.HasCheckin("XN-404") {
		t.Error("unknown booking found")
	}
}

func TestAddRejectsDuplicateBooking(t *testing.T) {
	l := New()
	c := types.Checkin{Sector: "D", Counter: 1, Airline: "Oceanic", Flight: "OC815", Booking: "XN-001"}

	if err := l.Add(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := l.Add(c)
	if !errors.Is(err, ErrDuplicateCheckin) {
		t.Errorf("got %v, want ErrDuplicateCheckin", err)
	}
	if len(l.Checkins()) != 1 {
		t.Errorf("duplicate was appended: %d entries", len(l.Checkins()))
	}
}

func TestCheckinsFunc(t *testing.T) {
	l := New()
	for i, airline := range []string{"Oceanic", "Ajira", "Oceanic"} {
		err := l.Add(types.Checkin{
			Sector:  "D",
			Counter: 1,
			Airline: airline,
			Flight:  "F" + fmt.Sprint(i),
			Booking: fmt.Sprintf("XN-%03d", i),
		})
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got := l.CheckinsFunc(func(c types.Checkin) bool { return c.Airline == "Oceanic" })
	if len(got) != 2 || got[0].Booking != "XN-000" || got[1].Booking != "XN-002" {
		t.Errorf("filtered entries: %+v", got)
	}
}

func TestCheckinsReturnsCopy(t *testing.T) {
	l := New()
	c := types.Checkin{Sector: "D", Counter: 1, Airline: "Oceanic", Flight: "OC815", Booking: "XN-001"}
	if err := l.Add(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := l.Checkins()
	snap[0].Booking = "mutated"
	if l.Checkins()[0] != c {
		t.Error("mutation of returned slice leaked into the ledger")
	}
}

func TestConcurrentAdds(t *testing.T) {
	const writers = 20

	l := New()
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := l.Add(types.Checkin{
				Sector:  "D",
				Counter: 1,
				Airline: "Oceanic",
				Flight:  "OC815",
				Booking: fmt.Sprintf("XN-%03d", i),
			})
			if err != nil {
				t.Errorf("Add %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	got := l.Checkins()
	if len(got) != writers {
		t.Fatalf("got %d entries, want %d", len(got), writers)
	}
	seen := make(map[string]bool, writers)
	for _, c := range got {
		if seen[c.Booking] {
			t.Errorf("booking %s recorded twice", c.Booking)
		}
		seen[c.Booking] = true
	}
}
