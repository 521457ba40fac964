// Package tourform implements the create/edit tour form: the mutable
// draft, the derived duration computation, the validation rule set, and
// submission normalization. The HTTP layer and the service layer both
// consume it, so a tour can never be persisted without passing the same
// rules the form enforces.
package tourform

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tourmarket/backend/internal/domain"
)

// Draft is the in-progress form state for creating or editing a tour.
// Date fields are pointers: nil means the user has not filled them in
// yet. A draft is owned by exactly one form instance and discarded on
// navigation away or successful submission.
type Draft struct {
	Title           string
	Description     string
	Category        string // raw select value, validated against domain.Category
	TripStartDate   *time.Time
	TripEndDate     *time.Time
	BookingDeadline *time.Time
	Location        domain.Location
	Pricing         domain.Pricing
	TourGuides      []string
	ToursIncluded   []string
	Duration        domain.Duration
	IsActive        bool
}

// NewDraft returns an empty draft for the create form. List fields start
// with a single blank entry so the form renders one input row each.
func NewDraft() Draft {
	return Draft{
		Location:      domain.Location{Cities: []string{""}},
		TourGuides:    []string{""},
		ToursIncluded: []string{""},
	}
}

// FromTour hydrates a draft from an existing tour record for the edit form.
func FromTour(t domain.Tour) Draft {
	start, end, deadline := t.TripStartDate, t.TripEndDate, t.BookingDeadline
	d := Draft{
		Title:           t.Title,
		Description:     t.Description,
		Category:        string(t.Category),
		TripStartDate:   &start,
		TripEndDate:     &end,
		BookingDeadline: &deadline,
		Location:        t.Location,
		Pricing:         t.Pricing,
		TourGuides:      append([]string(nil), t.TourGuides...),
		ToursIncluded:   append([]string(nil), t.ToursIncluded...),
		Duration:        t.Duration,
		IsActive:        t.IsActive,
	}
	if len(d.Location.Cities) == 0 {
		d.Location.Cities = []string{""}
	}
	if len(d.TourGuides) == 0 {
		d.TourGuides = []string{""}
	}
	if len(d.ToursIncluded) == 0 {
		d.ToursIncluded = []string{""}
	}
	return d
}

// Submission is the normalized payload handed to the create/update tour
// collaborator: blank list entries pruned, dates as canonical RFC 3339
// UTC strings.
type Submission struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Category        domain.Category `json:"category"`
	TripStartDate   string          `json:"tripStartDate"`
	TripEndDate     string          `json:"tripEndDate"`
	BookingDeadline string          `json:"bookingDeadline"`
	Location        domain.Location `json:"location"`
	Pricing         domain.Pricing  `json:"pricing"`
	TourGuides      []string        `json:"tourGuides"`
	ToursIncluded   []string        `json:"toursIncluded"`
	Duration        domain.Duration `json:"duration"`
	IsActive        bool            `json:"isActive"`
}

// Submission normalizes the draft for hand-off. Call only after Validate
// has returned an empty error set — the date fields must be present.
func (d Draft) Submission() Submission {
	return Submission{
		Title:           strings.TrimSpace(d.Title),
		Description:     strings.TrimSpace(d.Description),
		Category:        domain.Category(d.Category),
		TripStartDate:   canonicalTime(d.TripStartDate),
		TripEndDate:     canonicalTime(d.TripEndDate),
		BookingDeadline: canonicalTime(d.BookingDeadline),
		Location: domain.Location{
			Country: strings.TrimSpace(d.Location.Country),
			Cities:  pruneBlank(d.Location.Cities),
		},
		Pricing:       d.Pricing,
		TourGuides:    pruneBlank(d.TourGuides),
		ToursIncluded: pruneBlank(d.ToursIncluded),
		Duration:      d.Duration,
		IsActive:      d.IsActive,
	}
}

// Tour converts a validated draft into a domain record owned by the
// given company. ID and timestamps are left for the repo to fill.
func (d Draft) Tour(companyID uuid.UUID) domain.Tour {
	return domain.Tour{
		CompanyID:       companyID,
		Title:           strings.TrimSpace(d.Title),
		Description:     strings.TrimSpace(d.Description),
		Category:        domain.Category(d.Category),
		TripStartDate:   derefTime(d.TripStartDate),
		TripEndDate:     derefTime(d.TripEndDate),
		BookingDeadline: derefTime(d.BookingDeadline),
		Location: domain.Location{
			Country: strings.TrimSpace(d.Location.Country),
			Cities:  pruneBlank(d.Location.Cities),
		},
		Pricing:       d.Pricing,
		TourGuides:    pruneBlank(d.TourGuides),
		ToursIncluded: pruneBlank(d.ToursIncluded),
		Duration:      d.Duration,
		IsActive:      d.IsActive,
	}
}

// pruneBlank drops entries that are empty after trimming whitespace.
// Always returns a non-nil slice so JSON encodes [] rather than null.
func pruneBlank(ss []string) []string {
	out := []string{}
	for _, s := range ss {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// canonicalTime formats a form date as RFC 3339 in UTC, or "" when unset.
func canonicalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
