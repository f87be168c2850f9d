package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectorHandler(t *testing.T) {
	c := NewCollector()

	c.RecordSweepRun()
	c.RecordSweepSkipped()
	c.RecordStatusTransition("expiring")
	c.RecordStatusTransition("expired")
	c.RecordReminderSent()
	c.RecordReminderFailure()
	c.RecordRenewal("completed")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "domainpro_sweep_runs_total 1")
	assert.Contains(t, body, "domainpro_sweep_skipped_total 1")
	assert.Contains(t, body, `domainpro_status_transitions_total{status="expiring"} 1`)
	assert.Contains(t, body, `domainpro_status_transitions_total{status="expired"} 1`)
	assert.Contains(t, body, "domainpro_reminders_sent_total 1")
	assert.Contains(t, body, "domainpro_reminders_failed_total 1")
	assert.Contains(t, body, `domainpro_renewals_total{outcome="completed"} 1`)
}
