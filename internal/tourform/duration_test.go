package tourform_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tourmarket/backend/internal/domain"
	"github.com/tourmarket/backend/internal/tourform"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestRecomputeDuration_FiveDayTrip(t *testing.T) {
	got := tourform.RecomputeDuration(date(2024, 1, 10), date(2024, 1, 15))

	assert.Equal(t, domain.Duration{Days: 5, Nights: 4}, got)
}

func TestRecomputeDuration_PartialDayRoundsUp(t *testing.T) {
	start := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 12, 20, 0, 0, 0, time.UTC) // 2 days 12 hours

	got := tourform.RecomputeDuration(&start, &end)

	assert.Equal(t, domain.Duration{Days: 3, Nights: 2}, got)
}

func TestRecomputeDuration_OvernightIsOneDayZeroNights(t *testing.T) {
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)

	got := tourform.RecomputeDuration(&start, &end)

	assert.Equal(t, domain.Duration{Days: 1, Nights: 0}, got)
}

func TestRecomputeDuration_ResetsWhenDatesMissing(t *testing.T) {
	assert.Zero(t, tourform.RecomputeDuration(nil, nil))
	assert.Zero(t, tourform.RecomputeDuration(date(2024, 1, 10), nil))
	assert.Zero(t, tourform.RecomputeDuration(nil, date(2024, 1, 15)))
}

func TestRecomputeDuration_ResetsWhenRangeInverted(t *testing.T) {
	assert.Zero(t, tourform.RecomputeDuration(date(2024, 1, 15), date(2024, 1, 10)))
	// Equal dates are also an invalid range.
	assert.Zero(t, tourform.RecomputeDuration(date(2024, 1, 10), date(2024, 1, 10)))
}

func TestRecomputeDuration_Idempotent(t *testing.T) {
	start, end := date(2024, 1, 10), date(2024, 1, 15)

	first := tourform.RecomputeDuration(start, end)
	second := tourform.RecomputeDuration(start, end)

	assert.Equal(t, first, second)
}
