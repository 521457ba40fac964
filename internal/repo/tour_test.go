package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourmarket/backend/internal/domain"
	"github.com/tourmarket/backend/internal/repo"
	"github.com/tourmarket/backend/testutil"
)

// newTestTourRepo opens a transaction against the test database and returns a
// TourRepo backed by that transaction. The transaction is automatically rolled
// back when the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set; TestMain applies migrations first.
func newTestTourRepo(t *testing.T) repo.TourRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test — no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return repo.NewTourRepo(tx)
}

// tourFixture returns a domain.Tour with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tourFixture() domain.Tour {
	start := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	return domain.Tour{
		CompanyID:       uuid.New(),
		Title:           "Desert Safari",
		Description:     "Three days in the dunes",
		Category:        domain.CategoryAdventure,
		TripStartDate:   start,
		TripEndDate:     start.AddDate(0, 0, 4),
		BookingDeadline: start.AddDate(0, 0, -7),
		Location: domain.Location{
			Country: "Bahrain",
			Cities:  []string{"Manama", "Riffa"},
		},
		Pricing: domain.Pricing{
			Adult: domain.PricingCategory{Price: 100, Quantity: 20},
			Child: &domain.PricingCategory{Price: 50, Quantity: 10},
		},
		TourGuides:    []string{"Sara"},
		ToursIncluded: []string{"Camel ride"},
		Duration:      domain.Duration{Days: 5, Nights: 4},
		IsActive:      true,
	}
}

func TestTourRepo_Create(t *testing.T) {
	r := newTestTourRepo(t)
	ctx := context.Background()

	input := tourFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.CompanyID, got.CompanyID)
	assert.Equal(t, input.Title, got.Title)
	assert.Equal(t, input.Category, got.Category)
	assert.True(t, got.TripStartDate.Equal(input.TripStartDate), "TripStartDate mismatch")
	assert.Equal(t, input.Location, got.Location)
	assert.Equal(t, input.Pricing.Adult, got.Pricing.Adult)
	require.NotNil(t, got.Pricing.Child, "child pricing should round-trip")
	assert.Equal(t, *input.Pricing.Child, *got.Pricing.Child)
	assert.Nil(t, got.Pricing.Toddler, "toddler pricing was not offered")
	assert.Nil(t, got.Pricing.Baby, "baby pricing was not offered")
	assert.Equal(t, input.Duration, got.Duration)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestTourRepo_GetByID(t *testing.T) {
	r := newTestTourRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tourFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
}

func TestTourRepo_GetByID_NotFound(t *testing.T) {
	r := newTestTourRepo(t)
	ctx := context.Background()

	_, err := r.GetByID(ctx, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTourRepo_ListActive(t *testing.T) {
	r := newTestTourRepo(t)
	ctx := context.Background()

	early := tourFixture()
	early.Title = "Early Departure"

	late := tourFixture()
	late.Title = "Late Departure"
	late.TripStartDate = early.TripStartDate.AddDate(0, 1, 0)
	late.TripEndDate = early.TripEndDate.AddDate(0, 1, 0)
	late.BookingDeadline = early.BookingDeadline.AddDate(0, 1, 0)

	hidden := tourFixture()
	hidden.Title = "Unpublished"
	hidden.IsActive = false

	for _, input := range []domain.Tour{late, early, hidden} {
		_, err := r.Create(ctx, input)
		require.NoError(t, err)
	}

	tours, total, err := r.ListActive(ctx, domain.PaginationParams{Page: 1, Limit: 20})

	require.NoError(t, err)
	require.GreaterOrEqual(t, total, int64(2), "both active tours should be counted")

	var titles []string
	for _, tour := range tours {
		titles = append(titles, tour.Title)
	}
	assert.Contains(t, titles, "Early Departure")
	assert.Contains(t, titles, "Late Departure")
	assert.NotContains(t, titles, "Unpublished", "inactive tours must not be listed")
}

func TestTourRepo_ListActive_Pagination(t *testing.T) {
	r := newTestTourRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		input := tourFixture()
		input.TripStartDate = input.TripStartDate.AddDate(0, 0, i)
		input.TripEndDate = input.TripEndDate.AddDate(0, 0, i)
		_, err := r.Create(ctx, input)
		require.NoError(t, err)
	}

	page, total, err := r.ListActive(ctx, domain.PaginationParams{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.Len(t, page, 2, "page size must be honoured")
	assert.GreaterOrEqual(t, total, int64(3), "total must count all active tours, not the page")
}

func TestTourRepo_ListByCompany(t *testing.T) {
	r := newTestTourRepo(t)
	ctx := context.Background()

	companyID := uuid.New()

	mine := tourFixture()
	mine.CompanyID = companyID
	mine.IsActive = false // the dashboard shows inactive tours too

	other := tourFixture()
	other.Title = "Someone Else's Tour"

	_, err := r.Create(ctx, mine)
	require.NoError(t, err)
	_, err = r.Create(ctx, other)
	require.NoError(t, err)

	tours, err := r.ListByCompany(ctx, companyID)

	require.NoError(t, err)
	require.Len(t, tours, 1)
	assert.Equal(t, mine.Title, tours[0].Title)
	assert.False(t, tours[0].IsActive)
}

func TestTourRepo_Update(t *testing.T) {
	r := newTestTourRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tourFixture())
	require.NoError(t, err)

	created.Title = "Updated Title"
	created.Pricing.Child = nil // stop offering child seats
	created.IsActive = false

	updated, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Updated Title", updated.Title)
	assert.Nil(t, updated.Pricing.Child, "cleared optional pricing should persist as NULL")
	assert.False(t, updated.IsActive)
}

func TestTourRepo_Update_NotFound(t *testing.T) {
	r := newTestTourRepo(t)
	ctx := context.Background()

	input := tourFixture()
	input.ID = uuid.New()

	_, err := r.Update(ctx, input)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTourRepo_Delete(t *testing.T) {
	r := newTestTourRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tourFixture())
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTourRepo_Delete_NotFound(t *testing.T) {
	r := newTestTourRepo(t)
	ctx := context.Background()

	err := r.Delete(ctx, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
