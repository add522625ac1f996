package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// newTestCollector swaps in a fresh registry so tests never collide on the
// global default.
func newTestCollector() *Collector {
	prometheus.DefaultRegisterer = prometheus.NewRegistry()
	return NewCollector()
}

func TestCountersStartAtZero(t *testing.T) {
	c := newTestCollector()

	assert.Equal(t, 0.0, testutil.ToFloat64(c.sectorsCreated))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.assignments))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.checkins))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.pendingAssignments))
}

func TestRecordAllocationActivity(t *testing.T) {
	c := newTestCollector()

	c.RecordSector()
	c.RecordCountersAdded(5)
	c.RecordCountersAdded(3)
	c.RecordAssignment()
	c.RecordFree()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.sectorsCreated))
	assert.Equal(t, 8.0, testutil.ToFloat64(c.countersAdded))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.assignments))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.countersFreed))
}

func TestQueueGaugeFollowsLifecycle(t *testing.T) {
	c := newTestCollector()

	c.RecordQueued()
	c.RecordQueued()
	assert.Equal(t, 2.0, testutil.ToFloat64(c.pendingAssignments))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.assignQueued))

	// A promotion drains the queue and counts as a satisfied assignment.
	c.RecordPromotion()
	assert.Equal(t, 1.0, testutil.ToFloat64(c.pendingAssignments))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.queuePromotions))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.assignments))
}

func TestRecordEventByOutcome(t *testing.T) {
	c := newTestCollector()

	c.RecordEvent(true)
	c.RecordEvent(true)
	c.RecordEvent(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.eventsDelivered))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.eventsUnrouted))
}

func TestSubscriberGauge(t *testing.T) {
	c := newTestCollector()

	c.SubscriberAdded()
	c.SubscriberAdded()
	c.SubscriberRemoved()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.subscribedAirlines))
}

func TestPassengerAndCheckinCounters(t *testing.T) {
	c := newTestCollector()

	c.RecordPassenger()
	c.RecordCheckin()
	c.RecordCheckin()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.passengers))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.checkins))
}

func TestObserveRequestByMethod(t *testing.T) {
	c := newTestCollector()

	c.ObserveRequest("AssignCounters", 0.02)
	c.ObserveRequest("AssignCounters", 0.04)
	c.ObserveRequest("CheckIn", 0.01)

	assert.Equal(t, 2, testutil.CollectAndCount(c.requestLatency))
}
