package lifecycle

import (
	"math"
	"time"

	"github.com/avdeev/domainpro/internal/domain"
)

const (
	// fullTermDays is the assumed registration term. Progress is a linear
	// decay over this fixed term, not the registration's actual length.
	fullTermDays = 365

	expiringThresholdDays = 30
)

type Classification struct {
	Status             string
	DaysUntilExpiry    int
	ProgressPercentage float64
}

// Classify derives a domain's lifecycle state from its expiry date.
// A nil expiry means "unknown / never expires": such domains report as
// active with a full year remaining. Day counting rounds up, so a domain
// is at day 0 only once its expiry instant has passed, and stays at day 0
// until a full day has elapsed.
func Classify(expiryDate *time.Time, now time.Time) Classification {
	if expiryDate == nil {
		return Classification{
			Status:             domain.StatusActive,
			DaysUntilExpiry:    fullTermDays,
			ProgressPercentage: 100,
		}
	}

	days := DaysUntil(*expiryDate, now)

	var status string
	switch {
	case days < 0:
		status = domain.StatusExpired
	case days <= expiringThresholdDays:
		status = domain.StatusExpiring
	default:
		status = domain.StatusActive
	}

	progress := float64(days) / fullTermDays * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return Classification{
		Status:             status,
		DaysUntilExpiry:    days,
		ProgressPercentage: progress,
	}
}

// DaysUntil counts whole days from now to expiry, rounding up.
func DaysUntil(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}
