package tourform

import (
	"math"
	"time"

	"github.com/tourmarket/backend/internal/domain"
)

// RecomputeDuration derives a tour's duration from its trip dates:
// days = ceil(end−start in days), nights = days−1.
// When either date is missing, or start is not strictly before end, the
// duration resets to the zero value. Resetting (rather than keeping a
// stale value) makes the function a pure map from the date pair, so
// recomputing with unchanged dates is always a no-op.
func RecomputeDuration(start, end *time.Time) domain.Duration {
	if start == nil || end == nil || !start.Before(*end) {
		return domain.Duration{}
	}
	days := int(math.Ceil(end.Sub(*start).Hours() / 24))
	nights := days - 1
	if nights < 0 {
		nights = 0
	}
	return domain.Duration{Days: days, Nights: nights}
}
