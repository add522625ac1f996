package allocator

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/groundops/aerodesk/pkg/types"
)

// ============================================================================
// Test Helper Functions
// ============================================================================

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertError(t *testing.T, err error, want error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %v, got nil", want)
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected error %v, got %v", want, err)
	}
}

// newSplitAllocator builds the canonical split layout: sector D with free
// blocks [1,5] and [9,11], sector C with free block [6,8].
func newSplitAllocator(t *testing.T) *Allocator {
	t.Helper()
	a := New()
	assertNoError(t, a.AddSector("D"))
	assertNoError(t, a.AddSector("C"))
	mustAdd(t, a, "D", 5)
	mustAdd(t, a, "C", 3)
	mustAdd(t, a, "D", 3)
	return a
}

func mustAdd(t *testing.T, a *Allocator, sector string, count int) types.Range {
	t.Helper()
	rng, err := a.AddCounters(sector, count)
	assertNoError(t, err)
	return rng
}

func mustAssign(t *testing.T, a *Allocator, sector string, req AssignRequest) types.Range {
	t.Helper()
	rng, pos, err := a.AssignCounters(sector, req)
	assertNoError(t, err)
	if rng == nil {
		t.Fatalf("assignment unexpectedly queued at position %d", pos)
	}
	return *rng
}

// sectorRanges returns the named sector's blocks as (range, airline) pairs,
// with airline "" for free blocks.
func sectorRanges(t *testing.T, a *Allocator, name string) []types.CounterRange {
	t.Helper()
	for _, sec := range a.Sectors() {
		if sec.Name == name {
			return sec.Counters
		}
	}
	t.Fatalf("sector %s not found", name)
	return nil
}

func assertLayout(t *testing.T, got []types.CounterRange, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d blocks, want %d: %+v", len(got), len(want), got)
	}
	for i, cr := range got {
		owner := ""
		if cr.Assigned != nil {
			owner = " " + cr.Assigned.Airline
		}
		desc := fmt.Sprintf("[%d-%d]%s", cr.Range.From, cr.Range.To, owner)
		if desc != want[i] {
			t.Errorf("block %d: got %s, want %s", i, desc, want[i])
		}
	}
}

// ============================================================================
// Sector and counter-space growth
// ============================================================================

func TestAddSector(t *testing.T) {
	a := New()

	assertNoError(t, a.AddSector("D"))
	assertError(t, a.AddSector("D"), ErrSectorExists)
}

func TestSectorsSortedByName(t *testing.T) {
	a := New()
	for _, name := range []string{"D", "A", "C", "B"} {
		assertNoError(t, a.AddSector(name))
	}

	sectors := a.Sectors()
	want := []string{"A", "B", "C", "D"}
	for i, sec := range sectors {
		if sec.Name != want[i] {
			t.Errorf("sector %d: got %s, want %s", i, sec.Name, want[i])
		}
	}
}

func TestAddCountersValidation(t *testing.T) {
	a := New()
	assertNoError(t, a.AddSector("D"))

	_, err := a.AddCounters("E", 3)
	assertError(t, err, ErrSectorNotFound)

	for _, count := range []int{0, -1} {
		_, err := a.AddCounters("D", count)
		assertError(t, err, ErrInvalidCount)
	}
}

func TestAddCountersConsecutiveGrantsMerge(t *testing.T) {
	a := New()
	assertNoError(t, a.AddSector("D"))

	if got := mustAdd(t, a, "D", 5); got != (types.Range{From: 1, To: 5}) {
		t.Errorf("first grant: got %+v", got)
	}
	if got := mustAdd(t, a, "D", 3); got != (types.Range{From: 6, To: 8}) {
		t.Errorf("second grant: got %+v", got)
	}

	// With no other sector activity the two grants share one block.
	assertLayout(t, sectorRanges(t, a, "D"), "[1-8]")
}

func TestAddCountersInterleavedSectors(t *testing.T) {
	a := newSplitAllocator(t)

	// C consumed 6-8 between D's grants, so D keeps two blocks.
	assertLayout(t, sectorRanges(t, a, "D"), "[1-5]", "[9-11]")
	assertLayout(t, sectorRanges(t, a, "C"), "[6-8]")

	// D's tail is still the most recent grant, so another grant merges.
	if got := mustAdd(t, a, "D", 2); got != (types.Range{From: 12, To: 13}) {
		t.Errorf("third grant: got %+v", got)
	}
	assertLayout(t, sectorRanges(t, a, "D"), "[1-5]", "[9-13]")
}

func TestAddCountersNoMergeAfterAssignment(t *testing.T) {
	a := New()
	assertNoError(t, a.AddSector("D"))
	mustAdd(t, a, "D", 2)
	mustAssign(t, a, "D", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 2})

	// The tail block is assigned, so the new grant starts its own block.
	mustAdd(t, a, "D", 2)
	assertLayout(t, sectorRanges(t, a, "D"), "[1-2] Oceanic", "[3-4]")
}

// ============================================================================
// Assignment
// ============================================================================

func TestAssignFirstFitPrefersLowestFrom(t *testing.T) {
	a := newSplitAllocator(t)

	rng := mustAssign(t, a, "D", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 2})
	if rng != (types.Range{From: 1, To: 2}) {
		t.Errorf("got %+v, want [1-2]", rng)
	}
	assertLayout(t, sectorRanges(t, a, "D"), "[1-2] Oceanic", "[3-5]", "[9-11]")
}

func TestAssignSkipsTooSmallFreeBlock(t *testing.T) {
	a := newSplitAllocator(t)
	mustAssign(t, a, "D", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 4})

	// [5,5] is too small for two counters; first fit lands on [9,11].
	rng := mustAssign(t, a, "D", AssignRequest{Airline: "Ajira", Flights: []string{"AJ316"}, Count: 2})
	if rng != (types.Range{From: 9, To: 10}) {
		t.Errorf("got %+v, want [9-10]", rng)
	}
	assertLayout(t, sectorRanges(t, a, "D"),
		"[1-4] Oceanic", "[5-5]", "[9-10] Ajira", "[11-11]")
}

func TestAssignExactFitLeavesNoRemainder(t *testing.T) {
	a := newSplitAllocator(t)

	rng := mustAssign(t, a, "C", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 3})
	if rng != (types.Range{From: 6, To: 8}) {
		t.Errorf("got %+v, want [6-8]", rng)
	}
	assertLayout(t, sectorRanges(t, a, "C"), "[6-8] Oceanic")
}

func TestAssignValidation(t *testing.T) {
	a := newSplitAllocator(t)

	_, _, err := a.AssignCounters("E", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 1})
	assertError(t, err, ErrSectorNotFound)

	_, _, err = a.AssignCounters("D", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 0})
	assertError(t, err, ErrInvalidCount)
}

func TestAssignFlightLifecycleChecks(t *testing.T) {
	a := newSplitAllocator(t)

	mustAssign(t, a, "D", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 2})

	// Already assigned, in any sector.
	_, _, err := a.AssignCounters("C", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 1})
	assertError(t, err, ErrFlightAssigned)

	// Queued flights are rejected the same way.
	_, pos, err := a.AssignCounters("C", AssignRequest{Airline: "Ajira", Flights: []string{"AJ316"}, Count: 9})
	assertNoError(t, err)
	if pos != 0 {
		t.Fatalf("expected queue position 0, got %d", pos)
	}
	_, _, err = a.AssignCounters("D", AssignRequest{Airline: "Ajira", Flights: []string{"AJ316"}, Count: 1})
	assertError(t, err, ErrFlightQueued)

	// Freed flights are terminal.
	_, err = a.FreeCounters("D", 1, "Oceanic")
	assertNoError(t, err)
	_, _, err = a.AssignCounters("D", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 1})
	assertError(t, err, ErrFlightServed)
}

func TestAssignQueuePositions(t *testing.T) {
	a := newSplitAllocator(t)

	// Nothing in D fits six counters; both requests queue in order.
	_, pos, err := a.AssignCounters("D", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 6})
	assertNoError(t, err)
	if pos != 0 {
		t.Errorf("first request: got position %d, want 0", pos)
	}
	_, pos, err = a.AssignCounters("D", AssignRequest{Airline: "Ajira", Flights: []string{"AJ316"}, Count: 6})
	assertNoError(t, err)
	if pos != 1 {
		t.Errorf("second request: got position %d, want 1", pos)
	}

	pending, err := a.QueuedAssignments("D")
	assertNoError(t, err)
	if len(pending) != 2 || pending[0].Airline != "Oceanic" || pending[1].Airline != "Ajira" {
		t.Errorf("unexpected queue: %+v", pending)
	}
}

// ============================================================================
// Freeing and merging
// ============================================================================

func TestFreeCountersValidation(t *testing.T) {
	a := newSplitAllocator(t)
	mustAssign(t, a, "D", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 2})

	_, err := a.FreeCounters("E", 1, "Oceanic")
	assertError(t, err, ErrSectorNotFound)

	// Offset inside the range but not its start.
	_, err = a.FreeCounters("D", 2, "Oceanic")
	assertError(t, err, ErrRangeNotFound)

	// Offset of a free block.
	_, err = a.FreeCounters("D", 3, "Oceanic")
	assertError(t, err, ErrRangeNotFound)

	// Existing range, wrong airline.
	_, err = a.FreeCounters("D", 1, "Ajira")
	assertError(t, err, ErrNotRangeOwner)
}

func TestFreeReturnsPriorAssignment(t *testing.T) {
	a := newSplitAllocator(t)
	mustAssign(t, a, "D", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815", "OC816"}, Count: 2})

	res, err := a.FreeCounters("D", 1, "Oceanic")
	assertNoError(t, err)

	freed := res.Freed
	if freed.Range != (types.Range{From: 1, To: 2}) {
		t.Errorf("freed range: got %+v", freed.Range)
	}
	if freed.Assigned == nil || freed.Assigned.Airline != "Oceanic" || len(freed.Assigned.Flights) != 2 {
		t.Errorf("freed assignment: got %+v", freed.Assigned)
	}
}

func TestFreeMergesWithNeighbours(t *testing.T) {
	// Three adjacent singleton assignments over [1,3].
	a := New()
	assertNoError(t, a.AddSector("D"))
	mustAdd(t, a, "D", 3)
	for i, flight := range []string{"OC815", "AJ316", "KH707"} {
		rng := mustAssign(t, a, "D", AssignRequest{Airline: "Oceanic", Flights: []string{flight}, Count: 1})
		if rng.From != i+1 {
			t.Fatalf("setup: flight %s got %+v", flight, rng)
		}
	}

	// Freeing the middle leaves the outer assignments untouched.
	_, err := a.FreeCounters("D", 2, "Oceanic")
	assertNoError(t, err)
	assertLayout(t, sectorRanges(t, a, "D"), "[1-1] Oceanic", "[2-2]", "[3-3] Oceanic")

	// Freeing the first merges leftward into [1,2].
	_, err = a.FreeCounters("D", 1, "Oceanic")
	assertNoError(t, err)
	assertLayout(t, sectorRanges(t, a, "D"), "[1-2]", "[3-3] Oceanic")

	// Freeing the last restores the original contiguous span.
	_, err = a.FreeCounters("D", 3, "Oceanic")
	assertNoError(t, err)
	assertLayout(t, sectorRanges(t, a, "D"), "[1-3]")
}

func TestFreeMergesBothSides(t *testing.T) {
	a := New()
	assertNoError(t, a.AddSector("D"))
	mustAdd(t, a, "D", 6)
	mustAssign(t, a, "D", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 2})
	mustAssign(t, a, "D", AssignRequest{Airline: "Ajira", Flights: []string{"AJ316"}, Count: 2})
	assertLayout(t, sectorRanges(t, a, "D"), "[1-2] Oceanic", "[3-4] Ajira", "[5-6]")

	_, err := a.FreeCounters("D", 1, "Oceanic")
	assertNoError(t, err)
	assertLayout(t, sectorRanges(t, a, "D"), "[1-2]", "[3-4] Ajira", "[5-6]")

	// Ajira's block has free space on both sides; the free merges all three.
	_, err = a.FreeCounters("D", 3, "Ajira")
	assertNoError(t, err)
	assertLayout(t, sectorRanges(t, a, "D"), "[1-6]")
}

func TestFreeRefusedWithWaitingPassengers(t *testing.T) {
	a := newSplitAllocator(t)
	rng := mustAssign(t, a, "D", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 2})

	n, err := a.AddPassengerToQueue("D", rng.From, "XN-001")
	assertNoError(t, err)
	if n != 1 {
		t.Fatalf("queue length: got %d, want 1", n)
	}

	_, err = a.FreeCounters("D", rng.From, "Oceanic")
	assertError(t, err, ErrHasPendingPassengers)

	// The refusal must not mutate anything.
	assertLayout(t, sectorRanges(t, a, "D"), "[1-2] Oceanic", "[3-5]", "[9-11]")
	waiting, err := a.HasPassengerInCounter("D", rng.From, "XN-001")
	assertNoError(t, err)
	if !waiting {
		t.Error("passenger no longer waiting after refused free")
	}
}

// ============================================================================
// Queue promotion on free
// ============================================================================

func TestFreePromotesQueueHead(t *testing.T) {
	a := New()
	assertNoError(t, a.AddSector("D"))
	mustAdd(t, a, "D", 4)
	mustAssign(t, a, "D", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 4})

	// Three requests queue behind the full sector.
	for i, req := range []AssignRequest{
		{Airline: "Ajira", Flights: []string{"AJ316"}, Count: 3},
		{Airline: "Kaitak", Flights: []string{"KH707"}, Count: 2},
		{Airline: "Widmore", Flights: []string{"WM23"}, Count: 1},
	} {
		_, pos, err := a.AssignCounters("D", req)
		assertNoError(t, err)
		if pos != i {
			t.Fatalf("request %d queued at %d", i, pos)
		}
	}

	res, err := a.FreeCounters("D", 1, "Oceanic")
	assertNoError(t, err)

	if res.Promoted == nil {
		t.Fatal("expected the queue head to be promoted")
	}
	if res.Promoted.Airline != "Ajira" || res.Promoted.Range != (types.Range{From: 1, To: 3}) {
		t.Errorf("promotion: got %+v", res.Promoted)
	}

	// The two survivors shifted to positions 0 and 1.
	if len(res.Moves) != 2 {
		t.Fatalf("moves: got %d, want 2", len(res.Moves))
	}
	if res.Moves[0].Airline != "Kaitak" || res.Moves[0].Position != 0 {
		t.Errorf("first move: got %+v", res.Moves[0])
	}
	if res.Moves[1].Airline != "Widmore" || res.Moves[1].Position != 1 {
		t.Errorf("second move: got %+v", res.Moves[1])
	}

	assertLayout(t, sectorRanges(t, a, "D"), "[1-3] Ajira", "[4-4]")
	pending, err := a.QueuedAssignments("D")
	assertNoError(t, err)
	if len(pending) != 2 {
		t.Fatalf("queue after promotion: %+v", pending)
	}
}

func TestFreeLeavesUnsatisfiableHeadQueued(t *testing.T) {
	a := New()
	assertNoError(t, a.AddSector("D"))
	mustAdd(t, a, "D", 4)
	mustAssign(t, a, "D", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 2})
	mustAssign(t, a, "D", AssignRequest{Airline: "Ajira", Flights: []string{"AJ316"}, Count: 2})

	_, pos, err := a.AssignCounters("D", AssignRequest{Airline: "Kaitak", Flights: []string{"KH707"}, Count: 4})
	assertNoError(t, err)
	if pos != 0 {
		t.Fatalf("queued at %d", pos)
	}

	// Freeing two counters is not enough for the four-counter head.
	res, err := a.FreeCounters("D", 1, "Oceanic")
	assertNoError(t, err)
	if res.Promoted != nil {
		t.Errorf("unexpected promotion: %+v", res.Promoted)
	}
	if len(res.Moves) != 0 {
		t.Errorf("unexpected moves: %+v", res.Moves)
	}

	pending, err := a.QueuedAssignments("D")
	assertNoError(t, err)
	if len(pending) != 1 || pending[0].Airline != "Kaitak" {
		t.Errorf("queue: %+v", pending)
	}
}

// ============================================================================
// Lookups and passenger queues
// ============================================================================

func TestFlightCountersLookup(t *testing.T) {
	a := newSplitAllocator(t)
	mustAssign(t, a, "C", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815", "OC816"}, Count: 3})

	sector, cr, ok := a.FlightCountersAndSector("OC816")
	if !ok || sector != "C" || cr.Range != (types.Range{From: 6, To: 8}) {
		t.Errorf("got sector=%s cr=%+v ok=%v", sector, cr, ok)
	}

	if _, ok := a.FlightCounters("AJ316"); ok {
		t.Error("unassigned flight reported as having counters")
	}
}

func TestPassengerQueue(t *testing.T) {
	a := newSplitAllocator(t)
	rng := mustAssign(t, a, "D", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 2})

	n, err := a.AddPassengerToQueue("D", rng.From, "XN-001")
	assertNoError(t, err)
	if n != 1 {
		t.Errorf("first passenger: queue length %d, want 1", n)
	}
	n, err = a.AddPassengerToQueue("D", rng.From, "XN-002")
	assertNoError(t, err)
	if n != 2 {
		t.Errorf("second passenger: queue length %d, want 2", n)
	}

	_, err = a.AddPassengerToQueue("D", rng.From, "XN-001")
	assertError(t, err, ErrPassengerWaiting)

	waiting, err := a.HasPassengerInCounter("D", rng.From, "XN-002")
	assertNoError(t, err)
	if !waiting {
		t.Error("XN-002 should be waiting")
	}
	waiting, err = a.HasPassengerInCounter("D", rng.From, "XN-404")
	assertNoError(t, err)
	if waiting {
		t.Error("XN-404 should not be waiting")
	}

	_, err = a.AddPassengerToQueue("D", 9, "XN-003")
	assertError(t, err, ErrRangeNotFound)
}

func TestSectorsSnapshotIsolated(t *testing.T) {
	a := newSplitAllocator(t)
	mustAssign(t, a, "D", AssignRequest{Airline: "Oceanic", Flights: []string{"OC815"}, Count: 2})

	snap := sectorRanges(t, a, "D")
	snap[0].Assigned.Airline = "mutated"
	snap[0].Assigned.Flights[0] = "mutated"

	fresh := sectorRanges(t, a, "D")
	if fresh[0].Assigned.Airline != "Oceanic" || fresh[0].Assigned.Flights[0] != "OC815" {
		t.Error("snapshot mutation leaked into allocator state")
	}
}

// ============================================================================
// Concurrency
// ============================================================================

func TestConcurrentAssignments(t *testing.T) {
	const workers = 10

	a := New()
	assertNoError(t, a.AddSector("D"))
	mustAdd(t, a, "D", workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			flight := fmt.Sprintf("OC%03d", i)
			rng, pos, err := a.AssignCounters("D", AssignRequest{
				Airline: "Oceanic",
				Flights: []string{flight},
				Count:   1,
			})
			if err != nil {
				t.Errorf("assign %s: %v", flight, err)
				return
			}
			if rng == nil {
				t.Errorf("assign %s queued at %d with free space available", flight, pos)
			}
		}(i)
	}
	wg.Wait()

	// Every counter is assigned exactly once, with no overlap or gap.
	blocks := sectorRanges(t, a, "D")
	if len(blocks) != workers {
		t.Fatalf("got %d blocks, want %d", len(blocks), workers)
	}
	for i, cr := range blocks {
		if cr.Assigned == nil {
			t.Errorf("block %d unexpectedly free", i)
		}
		if cr.Range != (types.Range{From: i + 1, To: i + 1}) {
			t.Errorf("block %d: got %+v", i, cr.Range)
		}
	}
}
