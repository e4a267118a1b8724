package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	seedUpdates = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_seed_updates_total",
		Help: "Seed update attempts by result (ok, unauthorized, failed).",
	}, []string{"result"})

	seatShuffles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_seat_shuffles_total",
		Help: "Seat shuffle requests by result (accepted, rejected).",
	}, []string{"result"})

	remindersFired = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_reminders_fired_total",
		Help: "Reminder rules that matched and were queued, by type.",
	}, []string{"type"})

	remindersDismissed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_reminders_dismissed_total",
		Help: "Reminder notices dismissed by a user.",
	})
)

func init() {
	registry.MustRegister(
		seedUpdates,
		seatShuffles,
		remindersFired,
		remindersDismissed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the dashboard registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

// RecordSeedUpdate counts a seed update attempt.
func RecordSeedUpdate(result string) {
	seedUpdates.WithLabelValues(result).Inc()
}

// RecordShuffle counts a shuffle request.
func RecordShuffle(accepted bool) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	seatShuffles.WithLabelValues(result).Inc()
}

// RecordReminderFired counts a reminder rule match.
func RecordReminderFired(reminderType string) {
	remindersFired.WithLabelValues(reminderType).Inc()
}

// RecordReminderDismissed counts a dismissed notice.
func RecordReminderDismissed() {
	remindersDismissed.Inc()
}
