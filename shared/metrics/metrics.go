package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "livecity"

const (
	ReminderOutcomeSent    = "sent"
	ReminderOutcomeFailed  = "failed"
	ReminderOutcomeSkipped = "skipped"
	ReminderOutcomeRaced   = "raced"
)

var (
	// BookingsCreated counts stored bookings by payment method.
	BookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bookings",
			Name:      "created_total",
			Help:      "The total number of stored bookings",
		},
		[]string{"payment_method"},
	)

	// ValidationFailures counts rejected submissions by the rule that rejected them.
	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bookings",
			Name:      "validation_failures_total",
			Help:      "The total number of rejected booking submissions",
		},
		[]string{"rule"},
	)

	// Reminders counts per-booking reminder outcomes.
	Reminders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reminders",
			Name:      "processed_total",
			Help:      "The total number of bookings processed by the reminder job",
		},
		[]string{"outcome"},
	)

	// ReminderRunDuration (summary with quantiles 0.5, 0.9, and 0.99)
	ReminderRunDuration = promauto.NewSummary(
		prometheus.SummaryOpts{
			Namespace:  namespace,
			Subsystem:  "reminders",
			Name:       "run_duration_seconds",
			Help:       "The time spent on one reminder run",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
	)

	// HTTPRequests counts served requests by route pattern and status code.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "The total number of served HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
)
