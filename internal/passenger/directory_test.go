package passenger

import (
	"errors"
	"testing"

	"github.com/groundops/aerodesk/pkg/types"
)

func TestAddAndLookup(t *testing.T) {
	d := NewDirectory()

	p := types.Passenger{Booking: "XN-001", Flight: "OC815", Airline: "Oceanic"}
	if err := d.Add(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := d.Passenger("XN-001")
	if !ok || got != p {
		t.Errorf("Passenger() = %+v, %v", got, ok)
	}
	if _, ok := d.Passenger("XN-404"); ok {
		t.Error("unknown booking reported as registered")
	}
}

func TestAddRejectsDuplicateBooking(t *testing.T) {
	d := NewDirectory()

	if err := d.Add(types.Passenger{Booking: "XN-001", Flight: "OC815", Airline: "Oceanic"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := d.Add(types.Passenger{Booking: "XN-001", Flight: "AJ316", Airline: "Ajira"})
	if !errors.Is(err, ErrDuplicateBooking) {
		t.Errorf("got %v, want ErrDuplicateBooking", err)
	}
}

func TestFlightBoundToOneAirline(t *testing.T) {
	d := NewDirectory()

	if err := d.Add(types.Passenger{Booking: "XN-001", Flight: "OC815", Airline: "Oceanic"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same flight, same airline is fine.
	if err := d.Add(types.Passenger{Booking: "XN-002", Flight: "OC815", Airline: "Oceanic"}); err != nil {
		t.Errorf("second passenger on same flight: %v", err)
	}

	// Same flight under another airline is not.
	err := d.Add(types.Passenger{Booking: "XN-003", Flight: "OC815", Airline: "Ajira"})
	if !errors.Is(err, ErrFlightOwnedByOtherAirline) {
		t.Errorf("got %v, want ErrFlightOwnedByOtherAirline", err)
	}
	if _, ok := d.Passenger("XN-003"); ok {
		t.Error("rejected passenger was stored")
	}
}

func TestHasAirline(t *testing.T) {
	d := NewDirectory()
	if d.HasAirline("Oceanic") {
		t.Error("empty directory reports Oceanic")
	}

	if err := d.Add(types.Passenger{Booking: "XN-001", Flight: "OC815", Airline: "Oceanic"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.HasAirline("Oceanic") {
		t.Error("Oceanic not reported after registration")
	}
	if d.HasAirline("Ajira") {
		t.Error("Ajira reported with no passengers")
	}
}

func TestHasPassengerFullValueMatch(t *testing.T) {
	d := NewDirectory()
	p := types.Passenger{Booking: "XN-001", Flight: "OC815", Airline: "Oceanic"}
	if err := d.Add(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !d.HasPassenger(p) {
		t.Error("exact record not found")
	}
	// Same booking with a different flight is not the same passenger.
	if d.HasPassenger(types.Passenger{Booking: "XN-001", Flight: "AJ316", Airline: "Oceanic"}) {
		t.Error("mismatched record reported as present")
	}
}
