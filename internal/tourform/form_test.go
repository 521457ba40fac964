package tourform_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourmarket/backend/internal/domain"
	"github.com/tourmarket/backend/internal/form"
	"github.com/tourmarket/backend/internal/tourform"
)

// mockTourSubmitter is a test double for tourform.Submitter.
type mockTourSubmitter struct {
	calls []tourform.Submission
	save  func(ctx context.Context, s tourform.Submission) (domain.Tour, error)
}

func (m *mockTourSubmitter) SaveTour(ctx context.Context, s tourform.Submission) (domain.Tour, error) {
	m.calls = append(m.calls, s)
	if m.save != nil {
		return m.save(ctx, s)
	}
	return domain.Tour{ID: uuid.New(), Title: s.Title}, nil
}

// compile-time check: mockTourSubmitter must satisfy tourform.Submitter.
var _ tourform.Submitter = (*mockTourSubmitter)(nil)

// fillValid applies validDraft's values through the form setters.
func fillValid(f *tourform.Form) {
	d := validDraft()
	f.SetTitle(d.Title)
	f.SetDescription(d.Description)
	f.SetCategory(d.Category)
	f.SetTripStartDate(d.TripStartDate)
	f.SetTripEndDate(d.TripEndDate)
	f.SetBookingDeadline(d.BookingDeadline)
	f.SetCountry(d.Location.Country)
	f.SetListEntry(tourform.ListCities, 0, d.Location.Cities[0])
	f.SetPrice(domain.AttendeeAdult, d.Pricing.Adult.Price)
	f.SetSeats(domain.AttendeeAdult, d.Pricing.Adult.Quantity)
}

// ---- field behavior --------------------------------------------------------

func TestForm_DateChangeRecomputesDuration(t *testing.T) {
	f := tourform.New(&mockTourSubmitter{})

	f.SetTripStartDate(date(2024, 1, 10))
	assert.Zero(t, f.Draft().Duration, "one date is not enough")

	f.SetTripEndDate(date(2024, 1, 15))
	assert.Equal(t, domain.Duration{Days: 5, Nights: 4}, f.Draft().Duration)

	// Clearing a date resets the duration rather than leaving it stale.
	f.SetTripEndDate(nil)
	assert.Zero(t, f.Draft().Duration)
}

func TestForm_EditingAFieldClearsItsError(t *testing.T) {
	f := tourform.New(&mockTourSubmitter{})

	_, err := f.Submit(context.Background())
	require.ErrorIs(t, err, domain.ErrValidation)
	require.True(t, f.Errors().Has("title"))
	require.True(t, f.Errors().Has("description"))

	f.SetTitle("Souq Walking Tour")

	assert.False(t, f.Errors().Has("title"))
	// Only the edited field's error is cleared.
	assert.True(t, f.Errors().Has("description"))
}

func TestForm_ListOperations(t *testing.T) {
	f := tourform.New(&mockTourSubmitter{})

	f.SetListEntry(tourform.ListCities, 0, "Manama")
	f.AddListEntry(tourform.ListCities)
	f.SetListEntry(tourform.ListCities, 1, "Muharraq")
	assert.Equal(t, []string{"Manama", "Muharraq"}, f.Draft().Location.Cities)

	f.RemoveListEntry(tourform.ListCities, 0)
	assert.Equal(t, []string{"Muharraq"}, f.Draft().Location.Cities)

	// Out-of-range indexes are ignored.
	f.SetListEntry(tourform.ListCities, 5, "x")
	f.RemoveListEntry(tourform.ListCities, -1)
	assert.Equal(t, []string{"Muharraq"}, f.Draft().Location.Cities)
}

func TestForm_SetPriceMaterializesOptionalCategory(t *testing.T) {
	f := tourform.New(&mockTourSubmitter{})

	f.SetPrice(domain.AttendeeChild, 12.5)
	f.SetSeats(domain.AttendeeChild, 4)

	child := f.Draft().Pricing.Child
	require.NotNil(t, child)
	assert.Equal(t, domain.PricingCategory{Price: 12.5, Quantity: 4}, *child)
}

func TestForm_CanAttemptSubmitTracksRequiredScalars(t *testing.T) {
	f := tourform.New(&mockTourSubmitter{})
	assert.False(t, f.CanAttemptSubmit())

	fillValid(f)
	assert.True(t, f.CanAttemptSubmit())
}

// ---- submit ----------------------------------------------------------------

func TestForm_Submit_BlockedByValidation(t *testing.T) {
	sub := &mockTourSubmitter{}
	f := tourform.New(sub)

	_, err := f.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, sub.calls, "invalid draft must never reach the collaborator")
	assert.Equal(t, form.Editing, f.State())
	assert.False(t, f.Errors().Empty())
}

func TestForm_Submit_NormalizesPayload(t *testing.T) {
	sub := &mockTourSubmitter{}
	f := tourform.New(sub)
	fillValid(f)

	f.AddListEntry(tourform.ListTourGuides)
	f.SetListEntry(tourform.ListTourGuides, 1, "  Fatima  ")
	f.AddListEntry(tourform.ListCities)
	f.SetListEntry(tourform.ListCities, 1, "   ")

	_, err := f.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, sub.calls, 1)
	got := sub.calls[0]
	assert.Equal(t, []string{"Fatima"}, got.TourGuides, "blank entries pruned, values trimmed")
	assert.Equal(t, []string{"Manama"}, got.Location.Cities)
	assert.Equal(t, []string{}, got.ToursIncluded)
	assert.Equal(t, "2024-06-10T00:00:00Z", got.TripStartDate)
	assert.Equal(t, domain.CategoryAdventure, got.Category)
}

func TestForm_Submit_CollaboratorFailure(t *testing.T) {
	sub := &mockTourSubmitter{
		save: func(_ context.Context, _ tourform.Submission) (domain.Tour, error) {
			return domain.Tour{}, errors.New("server rejected the tour")
		},
	}
	f := tourform.New(sub)
	fillValid(f)

	_, err := f.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, form.Failed, f.State())
	assert.Equal(t, "server rejected the tour", f.Message())
	// Inputs are re-enabled for a manual retry.
	f.SetTitle("Second Attempt")
	assert.Equal(t, "Second Attempt", f.Draft().Title)
}

func TestForm_Submit_SuccessFreezesInputs(t *testing.T) {
	f := tourform.New(&mockTourSubmitter{})
	fillValid(f)

	tour, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tour.ID)
	assert.Equal(t, form.Succeeded, f.State())

	f.SetTitle("too late")
	assert.NotEqual(t, "too late", f.Draft().Title)
}

func TestEdit_HydratesFromTour(t *testing.T) {
	start := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	tour := domain.Tour{
		ID:            uuid.New(),
		Title:         "Old Souq Tour",
		TripStartDate: start,
		TripEndDate:   end,
		Duration:      domain.Duration{Days: 2, Nights: 1},
		Location:      domain.Location{Country: "Bahrain", Cities: []string{"Manama"}},
	}

	f := tourform.Edit(tour, &mockTourSubmitter{})

	d := f.Draft()
	assert.Equal(t, "Old Souq Tour", d.Title)
	require.NotNil(t, d.TripStartDate)
	assert.True(t, d.TripStartDate.Equal(start))
	assert.Equal(t, domain.Duration{Days: 2, Nights: 1}, d.Duration)
}
