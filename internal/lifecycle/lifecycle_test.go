package lifecycle

import (
	"testing"
	"time"

	"github.com/avdeev/domainpro/internal/domain"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func expiry(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name             string
		expiryDate       *time.Time
		expectedStatus   string
		expectedDays     int
		expectedProgress float64
	}{
		{
			name:             "Nil expiry is permanently active",
			expiryDate:       nil,
			expectedStatus:   domain.StatusActive,
			expectedDays:     365,
			expectedProgress: 100,
		},
		{
			name:             "Far future is active",
			expiryDate:       expiry(45 * 24 * time.Hour),
			expectedStatus:   domain.StatusActive,
			expectedDays:     45,
			expectedProgress: float64(45) / 365 * 100,
		},
		{
			name:             "Exactly 31 days is active",
			expiryDate:       expiry(31 * 24 * time.Hour),
			expectedStatus:   domain.StatusActive,
			expectedDays:     31,
			expectedProgress: float64(31) / 365 * 100,
		},
		{
			name:             "Exactly 30 days is expiring, not active",
			expiryDate:       expiry(30 * 24 * time.Hour),
			expectedStatus:   domain.StatusExpiring,
			expectedDays:     30,
			expectedProgress: float64(30) / 365 * 100,
		},
		{
			name:             "15 days is expiring",
			expiryDate:       expiry(15 * 24 * time.Hour),
			expectedStatus:   domain.StatusExpiring,
			expectedDays:     15,
			expectedProgress: float64(15) / 365 * 100,
		},
		{
			name:             "Fractional day rounds up into expiring window",
			expiryDate:       expiry(30*24*time.Hour - time.Hour),
			expectedStatus:   domain.StatusExpiring,
			expectedDays:     30,
			expectedProgress: float64(30) / 365 * 100,
		},
		{
			name:             "Expiring later today rounds up to one day",
			expiryDate:       expiry(6 * time.Hour),
			expectedStatus:   domain.StatusExpiring,
			expectedDays:     1,
			expectedProgress: float64(1) / 365 * 100,
		},
		{
			name:             "Exact expiry instant is day zero, expiring not expired",
			expiryDate:       expiry(0),
			expectedStatus:   domain.StatusExpiring,
			expectedDays:     0,
			expectedProgress: 0,
		},
		{
			name:             "One second past expiry still rounds to day zero",
			expiryDate:       expiry(-time.Second),
			expectedStatus:   domain.StatusExpiring,
			expectedDays:     0,
			expectedProgress: 0,
		},
		{
			name:             "A full day past expiry is expired",
			expiryDate:       expiry(-24 * time.Hour),
			expectedStatus:   domain.StatusExpired,
			expectedDays:     -1,
			expectedProgress: 0,
		},
		{
			name:             "Five days past expiry is expired",
			expiryDate:       expiry(-5 * 24 * time.Hour),
			expectedStatus:   domain.StatusExpired,
			expectedDays:     -5,
			expectedProgress: 0,
		},
		{
			name:             "Far future clamps progress to 100",
			expiryDate:       expiry(3 * 365 * 24 * time.Hour),
			expectedStatus:   domain.StatusActive,
			expectedDays:     3 * 365,
			expectedProgress: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.expiryDate, now)
			assert.Equal(t, tt.expectedStatus, c.Status)
			assert.Equal(t, tt.expectedDays, c.DaysUntilExpiry)
			assert.InDelta(t, tt.expectedProgress, c.ProgressPercentage, 1e-9)
		})
	}
}

func TestClassifyProgressMonotonic(t *testing.T) {
	prev := 101.0
	for d := 400; d >= -10; d-- {
		c := Classify(expiry(time.Duration(d)*24*time.Hour), now)
		assert.LessOrEqual(t, c.ProgressPercentage, prev, "progress must not increase as expiry approaches (day %d)", d)
		assert.GreaterOrEqual(t, c.ProgressPercentage, 0.0)
		assert.LessOrEqual(t, c.ProgressPercentage, 100.0)
		prev = c.ProgressPercentage
	}
}

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, 1, DaysUntil(now.Add(time.Minute), now))
	assert.Equal(t, 0, DaysUntil(now.Add(-time.Minute), now))
	assert.Equal(t, -1, DaysUntil(now.Add(-25*time.Hour), now))
	assert.Equal(t, 7, DaysUntil(now.Add(7*24*time.Hour), now))
}
