package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groundops/aerodesk/pkg/types"
)

func TestNotifyWithoutSubscriber(t *testing.T) {
	b := New()

	delivered := b.Notify("Oceanic", types.Event{Type: types.EventCountersAssigned})
	assert.False(t, delivered, "event for an unregistered airline must be unrouted")
}

func TestRegisterAndNotify(t *testing.T) {
	b := New()
	sink := make(chan types.Event, 1)
	require.NoError(t, b.Register("Oceanic", sink))
	assert.True(t, b.IsRegistered("Oceanic"))

	ev := types.Event{Type: types.EventCountersAssigned, Airline: "Oceanic", Sector: "D"}
	assert.True(t, b.Notify("Oceanic", ev))

	got := <-sink
	assert.Equal(t, ev, got)

	// Other airlines still have no sink.
	assert.False(t, b.Notify("Ajira", ev))
}

func TestRegisterRejectsSecondSink(t *testing.T) {
	b := New()
	require.NoError(t, b.Register("Oceanic", make(chan types.Event, 1)))

	err := b.Register("Oceanic", make(chan types.Event, 1))
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestNotifyDropsWhenSinkFull(t *testing.T) {
	b := New()
	sink := make(chan types.Event, 1)
	require.NoError(t, b.Register("Oceanic", sink))

	first := types.Event{Type: types.EventCountersAssigned, Sector: "D"}
	second := types.Event{Type: types.EventCountersFreed, Sector: "D"}

	// Both count as routed even though the second one is dropped.
	assert.True(t, b.Notify("Oceanic", first))
	assert.True(t, b.Notify("Oceanic", second))

	got := <-sink
	assert.Equal(t, first, got)
	select {
	case ev := <-sink:
		t.Fatalf("unexpected buffered event: %+v", ev)
	default:
	}
}

func TestUnregisterClosesSink(t *testing.T) {
	b := New()
	sink := make(chan types.Event, 1)
	require.NoError(t, b.Register("Oceanic", sink))

	require.NoError(t, b.Unregister("Oceanic"))
	assert.False(t, b.IsRegistered("Oceanic"))

	_, open := <-sink
	assert.False(t, open, "sink must be closed to signal end-of-stream")

	// A second unregister has nothing to remove.
	assert.ErrorIs(t, b.Unregister("Oceanic"), ErrNotRegistered)
}

func TestReregisterAfterUnregister(t *testing.T) {
	b := New()
	require.NoError(t, b.Register("Oceanic", make(chan types.Event, 1)))
	require.NoError(t, b.Unregister("Oceanic"))

	sink := make(chan types.Event, 1)
	require.NoError(t, b.Register("Oceanic", sink))
	assert.True(t, b.Notify("Oceanic", types.Event{Type: types.EventPassengerArrived}))
}
