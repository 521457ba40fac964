package tourform

import (
	"context"
	"fmt"
	"time"

	"github.com/tourmarket/backend/internal/domain"
	"github.com/tourmarket/backend/internal/form"
)

// ListField names the three repeatable string-list inputs on the form.
type ListField string

const (
	ListCities        ListField = "cities"
	ListTourGuides    ListField = "tourGuides"
	ListToursIncluded ListField = "toursIncluded"
)

// Submitter hands a normalized draft to the create/update tour
// collaborator. The returned record is the persisted tour.
type Submitter interface {
	SaveTour(ctx context.Context, s Submission) (domain.Tour, error)
}

// Form wraps a Draft with the behavior the form contract requires:
// editing a field clears that field's error, changing either trip date
// recomputes the duration, and submission runs the full rule set before
// anything reaches the collaborator. One Form instance per open form.
type Form struct {
	draft     Draft
	errors    domain.FieldErrors
	gate      *form.Gate
	submitter Submitter
}

// New opens an empty create-tour form.
func New(submitter Submitter) *Form {
	return &Form{
		draft:     NewDraft(),
		errors:    domain.FieldErrors{},
		gate:      form.NewGate(),
		submitter: submitter,
	}
}

// Edit opens a form hydrated from an existing tour.
func Edit(t domain.Tour, submitter Submitter) *Form {
	return &Form{
		draft:     FromTour(t),
		errors:    domain.FieldErrors{},
		gate:      form.NewGate(),
		submitter: submitter,
	}
}

// Draft returns a copy of the current draft state.
func (f *Form) Draft() Draft {
	return f.draft
}

// Errors returns the current field error set.
func (f *Form) Errors() domain.FieldErrors {
	return f.errors
}

// State returns the submission state of the form.
func (f *Form) State() form.State {
	return f.gate.State()
}

// editable gates every mutator below: input is frozen mid-submission.
func (f *Form) editable() bool {
	return f.gate.Editable()
}

// SetTitle updates the title and clears its error.
func (f *Form) SetTitle(v string) {
	if !f.editable() {
		return
	}
	f.draft.Title = v
	f.errors.Clear("title")
}

// SetDescription updates the description and clears its error.
func (f *Form) SetDescription(v string) {
	if !f.editable() {
		return
	}
	f.draft.Description = v
	f.errors.Clear("description")
}

// SetCategory updates the category selection and clears its error.
func (f *Form) SetCategory(v string) {
	if !f.editable() {
		return
	}
	f.draft.Category = v
	f.errors.Clear("category")
}

// SetTripStartDate updates the start date, clears its error, and
// recomputes the derived duration.
func (f *Form) SetTripStartDate(v *time.Time) {
	if !f.editable() {
		return
	}
	f.draft.TripStartDate = v
	f.errors.Clear("tripStartDate")
	f.syncDuration()
}

// SetTripEndDate updates the end date, clears its error, and recomputes
// the derived duration.
func (f *Form) SetTripEndDate(v *time.Time) {
	if !f.editable() {
		return
	}
	f.draft.TripEndDate = v
	f.errors.Clear("tripEndDate")
	f.syncDuration()
}

// SetBookingDeadline updates the booking deadline and clears its error.
func (f *Form) SetBookingDeadline(v *time.Time) {
	if !f.editable() {
		return
	}
	f.draft.BookingDeadline = v
	f.errors.Clear("bookingDeadline")
}

// SetCountry updates the location country and clears its error.
func (f *Form) SetCountry(v string) {
	if !f.editable() {
		return
	}
	f.draft.Location.Country = v
	f.errors.Clear("location.country")
}

// SetPrice updates the per-person price for an attendee category,
// materializing the category if it was not offered before.
func (f *Form) SetPrice(c domain.AttendeeCategory, price float64) {
	if !f.editable() {
		return
	}
	f.draft.Pricing.Ensure(c).Price = price
	f.errors.Clear(fmt.Sprintf("pricing.%s.price", c))
}

// SetSeats updates the available seat count for an attendee category,
// materializing the category if it was not offered before.
func (f *Form) SetSeats(c domain.AttendeeCategory, quantity int) {
	if !f.editable() {
		return
	}
	f.draft.Pricing.Ensure(c).Quantity = quantity
	f.errors.Clear(fmt.Sprintf("pricing.%s.quantity", c))
}

// SetActive toggles whether the tour is published.
func (f *Form) SetActive(v bool) {
	if !f.editable() {
		return
	}
	f.draft.IsActive = v
}

// SetListEntry updates one entry of a repeatable list field.
// Out-of-range indexes are ignored.
func (f *Form) SetListEntry(field ListField, i int, v string) {
	if !f.editable() {
		return
	}
	list := f.list(field)
	if list == nil || i < 0 || i >= len(*list) {
		return
	}
	(*list)[i] = v
	f.errors.Clear(string(field))
}

// AddListEntry appends a blank entry to a repeatable list field.
func (f *Form) AddListEntry(field ListField) {
	if !f.editable() {
		return
	}
	if list := f.list(field); list != nil {
		*list = append(*list, "")
	}
}

// RemoveListEntry deletes one entry of a repeatable list field.
// Out-of-range indexes are ignored.
func (f *Form) RemoveListEntry(field ListField, i int) {
	if !f.editable() {
		return
	}
	list := f.list(field)
	if list == nil || i < 0 || i >= len(*list) {
		return
	}
	*list = append((*list)[:i], (*list)[i+1:]...)
}

func (f *Form) list(field ListField) *[]string {
	switch field {
	case ListCities:
		return &f.draft.Location.Cities
	case ListTourGuides:
		return &f.draft.TourGuides
	case ListToursIncluded:
		return &f.draft.ToursIncluded
	}
	return nil
}

// syncDuration applies the reset policy: the duration always mirrors the
// current date pair, dropping to zero when the pair is incomplete or
// inverted.
func (f *Form) syncDuration() {
	f.draft.Duration = RecomputeDuration(f.draft.TripStartDate, f.draft.TripEndDate)
}

// CanAttemptSubmit reports whether the submit control should be enabled:
// all required scalar fields filled and no submission in flight.
func (f *Form) CanAttemptSubmit() bool {
	return f.editable() && CanAttemptSubmit(f.draft)
}

// Submit validates the draft and, if every rule passes, hands the
// normalized submission to the collaborator. A non-empty error set
// blocks submission and is kept on the form for rendering; a
// collaborator rejection returns the form to an editable state with the
// rejection message attached.
func (f *Form) Submit(ctx context.Context) (domain.Tour, error) {
	if errs := Validate(f.draft); !errs.Empty() {
		f.errors = errs
		return domain.Tour{}, fmt.Errorf("tourform.Form.Submit: %w", domain.ErrValidation)
	}

	if !f.gate.Begin() {
		return domain.Tour{}, fmt.Errorf("tourform.Form.Submit: submission already in progress")
	}

	tour, err := f.submitter.SaveTour(ctx, f.draft.Submission())
	if err != nil {
		f.gate.Fail(err.Error())
		return domain.Tour{}, fmt.Errorf("tourform.Form.Submit: %w", err)
	}

	f.gate.Succeed("Tour saved")
	return tour, nil
}

// Message returns the banner message left by the last submission attempt.
func (f *Form) Message() string {
	return f.gate.Message()
}

// Close discards the form instance.
func (f *Form) Close() {
	f.gate.Close()
}
