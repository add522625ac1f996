// Package metrics collects and exposes Prometheus metrics for the check-in
// service: allocation activity, queue depth, ledger growth and event
// delivery.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds every metric the service records.
type Collector struct {
	sectorsCreated  prometheus.Counter
	countersAdded   prometheus.Counter
	assignments     prometheus.Counter
	assignQueued    prometheus.Counter
	countersFreed   prometheus.Counter
	queuePromotions prometheus.Counter
	passengers      prometheus.Counter
	checkins        prometheus.Counter
	eventsDelivered prometheus.Counter
	eventsUnrouted  prometheus.Counter

	pendingAssignments prometheus.Gauge
	subscribedAirlines prometheus.Gauge

	requestLatency *prometheus.HistogramVec
}

// NewCollector creates and registers all metrics on the default registerer.
func NewCollector() *Collector {
	c := &Collector{
		sectorsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aerodesk_sectors_created_total",
			Help: "Total number of sectors created",
		}),
		countersAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aerodesk_counters_added_total",
			Help: "Total number of check-in counters added to the id space",
		}),
		assignments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aerodesk_assignments_total",
			Help: "Total number of counter ranges assigned to airlines",
		}),
		assignQueued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aerodesk_assignments_queued_total",
			Help: "Total number of assignment requests that had to queue",
		}),
		countersFreed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aerodesk_counters_freed_total",
			Help: "Total number of counter ranges freed",
		}),
		queuePromotions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aerodesk_queue_promotions_total",
			Help: "Total number of pending assignments satisfied after a free",
		}),
		passengers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aerodesk_passengers_registered_total",
			Help: "Total number of passengers registered",
		}),
		checkins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aerodesk_checkins_total",
			Help: "Total number of recorded check-ins",
		}),
		eventsDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aerodesk_events_delivered_total",
			Help: "Total number of events delivered to a subscribed airline",
		}),
		eventsUnrouted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aerodesk_events_unrouted_total",
			Help: "Total number of events with no subscriber to deliver to",
		}),
		pendingAssignments: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "aerodesk_pending_assignments",
			Help: "Current number of queued assignment requests across sectors",
		}),
		subscribedAirlines: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "aerodesk_subscribed_airlines",
			Help: "Current number of airlines subscribed to the event stream",
		}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "aerodesk_request_latency_seconds",
			Help:    "RPC handling latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}

	prometheus.MustRegister(
		c.sectorsCreated,
		c.countersAdded,
		c.assignments,
		c.assignQueued,
		c.countersFreed,
		c.queuePromotions,
		c.passengers,
		c.checkins,
		c.eventsDelivered,
		c.eventsUnrouted,
		c.pendingAssignments,
		c.subscribedAirlines,
		c.requestLatency,
	)

	return c
}

// RecordSector counts a created sector.
func (c *Collector) RecordSector() {
	c.sectorsCreated.Inc()
}

// RecordCountersAdded counts n counters added to the id space.
func (c *Collector) RecordCountersAdded(n int) {
	c.countersAdded.Add(float64(n))
}

// RecordAssignment counts an immediately satisfied assignment.
func (c *Collector) RecordAssignment() {
	c.assignments.Inc()
}

// RecordQueued counts an assignment request that joined a pending queue.
func (c *Collector) RecordQueued() {
	c.assignQueued.Inc()
	c.pendingAssignments.Inc()
}

// RecordFree counts a freed counter range.
func (c *Collector) RecordFree() {
	c.countersFreed.Inc()
}

// RecordPromotion counts a pending assignment satisfied after a free.
func (c *Collector) RecordPromotion() {
	c.assignments.Inc()
	c.queuePromotions.Inc()
	c.pendingAssignments.Dec()
}

// RecordPassenger counts a registered passenger.
func (c *Collector) RecordPassenger() {
	c.passengers.Inc()
}

// RecordCheckin counts a recorded check-in.
func (c *Collector) RecordCheckin() {
	c.checkins.Inc()
}

// RecordEvent counts one Notify call by outcome.
func (c *Collector) RecordEvent(delivered bool) {
	if delivered {
		c.eventsDelivered.Inc()
	} else {
		c.eventsUnrouted.Inc()
	}
}

// SubscriberAdded tracks a new event-stream subscription.
func (c *Collector) SubscriberAdded() {
	c.subscribedAirlines.Inc()
}

// SubscriberRemoved tracks a dropped event-stream subscription.
func (c *Collector) SubscriberRemoved() {
	c.subscribedAirlines.Dec()
}

// ObserveRequest records the handling latency of one RPC.
func (c *Collector) ObserveRequest(method string, seconds float64) {
	c.requestLatency.WithLabelValues(method).Observe(seconds)
}

// StartServer exposes /metrics on the given port. Blocks.
func StartServer(port int) error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
}
