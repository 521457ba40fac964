package tourform

import (
	"strings"

	"github.com/tourmarket/backend/internal/domain"
)

// Validate evaluates the full rule set against a draft and returns a
// fresh error set keyed by field path. Every rule runs — rules never
// short-circuit each other, so one submit attempt surfaces all problems
// at once. An empty set means the draft may be submitted.
func Validate(d Draft) domain.FieldErrors {
	errs := domain.FieldErrors{}

	if strings.TrimSpace(d.Title) == "" {
		errs.Add("title", "Title is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		errs.Add("description", "Description is required")
	}
	if d.Category == "" {
		errs.Add("category", "Category is required")
	} else if !domain.Category(d.Category).Valid() {
		errs.Add("category", "Invalid category")
	}

	if d.TripStartDate == nil {
		errs.Add("tripStartDate", "Start date is required")
	}
	if d.TripEndDate == nil {
		errs.Add("tripEndDate", "End date is required")
	}
	if d.BookingDeadline == nil {
		errs.Add("bookingDeadline", "Booking deadline is required")
	}

	// Relative date rules only apply once both operands are present.
	if d.TripStartDate != nil && d.TripEndDate != nil && !d.TripStartDate.Before(*d.TripEndDate) {
		errs.Add("tripEndDate", "End date must be after start date")
	}
	if d.BookingDeadline != nil && d.TripStartDate != nil && !d.BookingDeadline.Before(*d.TripStartDate) {
		errs.Add("bookingDeadline", "Booking deadline must be before trip start date")
	}

	if strings.TrimSpace(d.Location.Country) == "" {
		errs.Add("location.country", "Country is required")
	}
	if len(pruneBlank(d.Location.Cities)) == 0 {
		errs.Add("cities", "At least one city is required")
	}

	// Adult pricing is mandatory; the two rules are independent so a
	// company sees both problems in one pass.
	if d.Pricing.Adult.Price <= 0 {
		errs.Add("pricing.adult.price", "Adult price must be greater than 0")
	}
	if d.Pricing.Adult.Quantity <= 0 {
		errs.Add("pricing.adult.quantity", "Adult quantity must be greater than 0")
	}

	// Guards against a submit racing ahead of the date-driven recompute.
	if d.Duration.Days < 1 {
		errs.Add("duration.days", "Days must be at least 1")
	}
	if d.Duration.Nights < 0 {
		errs.Add("duration.nights", "Nights cannot be negative")
	}

	return errs
}

// CanAttemptSubmit is the continuous structural gate on the submit
// control: every required scalar field must be non-empty. It is cheaper
// and looser than Validate, which runs only on an actual submit attempt.
func CanAttemptSubmit(d Draft) bool {
	return strings.TrimSpace(d.Title) != "" &&
		strings.TrimSpace(d.Description) != "" &&
		d.Category != "" &&
		d.TripStartDate != nil &&
		d.TripEndDate != nil &&
		d.BookingDeadline != nil &&
		strings.TrimSpace(d.Location.Country) != ""
}
