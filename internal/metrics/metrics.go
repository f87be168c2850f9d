// Package metrics collects and exposes Prometheus metrics for the
// background jobs and the renewal flow.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface used by workers and services.
type Recorder interface {
	RecordSweepRun()
	RecordSweepSkipped()
	RecordStatusTransition(status string)
	RecordReminderSent()
	RecordReminderFailure()
	RecordRenewal(outcome string)
}

type Collector struct {
	registry          *prometheus.Registry
	sweepRuns         prometheus.Counter
	sweepSkipped      prometheus.Counter
	statusTransitions *prometheus.CounterVec
	remindersSent     prometheus.Counter
	remindersFailed   prometheus.Counter
	renewals          *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		sweepRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "domainpro_sweep_runs_total",
			Help: "Completed reconciliation sweep cycles.",
		}),
		sweepSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "domainpro_sweep_skipped_total",
			Help: "Sweep cycles skipped because the previous one was still running.",
		}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "domainpro_status_transitions_total",
			Help: "Domain status transitions applied by the sweep, by new status.",
		}, []string{"status"}),
		remindersSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "domainpro_reminders_sent_total",
			Help: "Expiry reminder emails delivered.",
		}),
		remindersFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "domainpro_reminders_failed_total",
			Help: "Expiry reminder emails that could not be delivered.",
		}),
		renewals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "domainpro_renewals_total",
			Help: "Renewal transactions by outcome.",
		}, []string{"outcome"}),
	}

	c.registry.MustRegister(
		c.sweepRuns,
		c.sweepSkipped,
		c.statusTransitions,
		c.remindersSent,
		c.remindersFailed,
		c.renewals,
	)

	return c
}

func (c *Collector) RecordSweepRun() {
	c.sweepRuns.Inc()
}

func (c *Collector) RecordSweepSkipped() {
	c.sweepSkipped.Inc()
}

func (c *Collector) RecordStatusTransition(status string) {
	c.statusTransitions.WithLabelValues(status).Inc()
}

func (c *Collector) RecordReminderSent() {
	c.remindersSent.Inc()
}

func (c *Collector) RecordReminderFailure() {
	c.remindersFailed.Inc()
}

func (c *Collector) RecordRenewal(outcome string) {
	c.renewals.WithLabelValues(outcome).Inc()
}

// Handler exposes the collector's registry for the /metrics route.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
