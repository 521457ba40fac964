// Package booking implements the customer-facing booking flow for a
// single tour: quantity selection with clamping, the running price
// total, and the submit state machine that hands a finished request to
// the booking collaborator.
package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tourmarket/backend/internal/domain"
	"github.com/tourmarket/backend/internal/form"
)

// User-visible messages for the booking flow.
const (
	msgSelectSomeone = "Please select at least one person"
	msgConfirmed     = "Booking confirmed successfully!"
	msgFailed        = "Booking failed. Please try again."
)

// defaultNavigationDelay is how long the confirmation message stays on
// screen before the form hands off to navigation.
const defaultNavigationDelay = 2 * time.Second

// Request is the wire shape handed to the booking collaborator.
type Request struct {
	TourID     uuid.UUID         `json:"tourId"`
	Quantities domain.Quantities `json:"quantities"`
}

// Submitter sends a finished booking request to the backend.
// The returned booking confirmation is opaque to the form.
type Submitter interface {
	CreateBooking(ctx context.Context, req Request) (domain.Booking, error)
}

// Form drives one customer's booking of one tour. Quantities are clamped
// against the tour's pricing snapshot on every change; the total is
// recomputed from current state, never cached. A Form is owned by a
// single user flow — two open forms never share state.
type Form struct {
	mu         sync.Mutex
	tour       domain.Tour
	quantities domain.Quantities
	rejection  string // zero-total rejection message, cleared on edit
	gate       *form.Gate
	submitter  Submitter
	delay      time.Duration
}

// Option configures a Form.
type Option func(*Form)

// WithNavigationDelay overrides the confirmation display delay.
// Tests use this to avoid waiting out the real two seconds.
func WithNavigationDelay(d time.Duration) Option {
	return func(f *Form) { f.delay = d }
}

// NewForm opens a booking form against a tour snapshot.
// The initial selection is one adult, matching what a customer expects
// when the form opens (clamped in case the tour has no adult seats).
func NewForm(tour domain.Tour, submitter Submitter, opts ...Option) *Form {
	f := &Form{
		tour:      tour,
		gate:      form.NewGate(),
		submitter: submitter,
		delay:     defaultNavigationDelay,
	}
	f.quantities = domain.ClampQuantities(domain.Quantities{Adults: 1}, tour.Pricing)
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetQuantity applies a raw quantity input for one category. The value
// is parsed and clamped to [0, available]; garbage input becomes zero.
// Changes are ignored while a submission is in flight or after success.
func (f *Form) SetQuantity(c domain.AttendeeCategory, raw string) {
	if !f.gate.Editable() {
		return
	}
	n := domain.ClampQuantity(raw, f.tour.Pricing.Available(c))
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejection = ""
	switch c {
	case domain.AttendeeAdult:
		f.quantities.Adults = n
	case domain.AttendeeChild:
		f.quantities.Children = n
	case domain.AttendeeToddler:
		f.quantities.Toddlers = n
	case domain.AttendeeBaby:
		f.quantities.Babies = n
	}
}

// Quantities returns the current clamped selection.
func (f *Form) Quantities() domain.Quantities {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.quantities
}

// Total returns the current price of the selection.
func (f *Form) Total() float64 {
	return f.tour.Pricing.Total(f.Quantities())
}

// State returns the submission state of the form.
func (f *Form) State() form.State {
	return f.gate.State()
}

// Message returns the current user-visible banner message: the local
// zero-total rejection if one is pending, otherwise whatever the last
// submission attempt left on the gate.
func (f *Form) Message() string {
	f.mu.Lock()
	rejection := f.rejection
	f.mu.Unlock()
	if rejection != "" {
		return rejection
	}
	return f.gate.Message()
}

// Submit attempts the booking. A zero-total selection is rejected before
// any network call and leaves the form editable. On acceptance the
// confirmation message is shown and navigate (if non-nil) runs after the
// display delay, unless the form was closed in the meantime. On
// rejection by the collaborator the form returns to an editable state
// with the collaborator's message attached.
func (f *Form) Submit(ctx context.Context, navigate func()) error {
	total := f.Total()
	if !domain.CanSubmitBooking(total) {
		f.mu.Lock()
		f.rejection = msgSelectSomeone
		f.mu.Unlock()
		return fmt.Errorf("booking.Form.Submit: %w: %s", domain.ErrValidation, msgSelectSomeone)
	}

	if !f.gate.Begin() {
		return fmt.Errorf("booking.Form.Submit: submission already in progress")
	}

	req := Request{TourID: f.tour.ID, Quantities: f.Quantities()}
	if _, err := f.submitter.CreateBooking(ctx, req); err != nil {
		msg := err.Error()
		if msg == "" {
			msg = msgFailed
		}
		f.gate.Fail(msg)
		return fmt.Errorf("booking.Form.Submit: %w", err)
	}

	f.gate.Succeed(msgConfirmed)
	if navigate != nil {
		time.AfterFunc(f.delay, func() {
			if !f.gate.Closed() {
				navigate()
			}
		})
	}
	return nil
}

// Close discards the form. A submission response or navigation hand-off
// arriving afterwards is dropped silently.
func (f *Form) Close() {
	f.gate.Close()
}
