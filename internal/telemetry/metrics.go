// Package telemetry holds the Prometheus metrics exposed on GET /metrics.
//
// HTTP metrics are labelled by the matched ServeMux pattern (for example
// "POST /activities/{name}/signup"), never the raw URL, so activity names and
// emails supplied by clients do not inflate label cardinality.
package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"activitysignup/internal/domain"
)

// Roster operation outcomes used as the "outcome" label of RosterChangesTotal.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed, by method, route pattern, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, by method and route pattern.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	// RosterChangesTotal counts signup and unregister attempts by outcome.
	RosterChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_roster_changes_total",
			Help: "Total number of signup and unregister attempts, by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)
)

var (
	participantsDesc = prometheus.NewDesc(
		"activity_participants",
		"Current number of participants signed up for an activity.",
		[]string{"activity"}, nil,
	)
	capacityDesc = prometheus.NewDesc(
		"activity_max_participants",
		"Configured maximum participant count of an activity.",
		[]string{"activity"}, nil,
	)
)

// rosterCollector reads roster sizes from the registry at scrape time.
type rosterCollector struct {
	repo domain.ActivityRepository
}

// NewRosterCollector returns a collector reporting participant counts and capacity
// per activity. The activity set is fixed at startup so the label set is bounded.
func NewRosterCollector(repo domain.ActivityRepository) prometheus.Collector {
	return &rosterCollector{repo: repo}
}

func (c *rosterCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- participantsDesc
	ch <- capacityDesc
}

func (c *rosterCollector) Collect(ch chan<- prometheus.Metric) {
	catalog, err := c.repo.List(context.Background())
	if err != nil {
		ch <- prometheus.NewInvalidMetric(participantsDesc, err)
		return
	}
	for _, a := range catalog {
		ch <- prometheus.MustNewConstMetric(participantsDesc, prometheus.GaugeValue, float64(len(a.Participants)), a.Name)
		ch <- prometheus.MustNewConstMetric(capacityDesc, prometheus.GaugeValue, float64(a.MaxParticipants), a.Name)
	}
}
