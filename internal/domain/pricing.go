package domain

import (
	"strconv"
	"strings"
)

// AttendeeCategory identifies one of the four pricing tiers a tour may offer.
type AttendeeCategory string

const (
	AttendeeAdult   AttendeeCategory = "adult"
	AttendeeChild   AttendeeCategory = "child"
	AttendeeToddler AttendeeCategory = "toddler"
	AttendeeBaby    AttendeeCategory = "baby"
)

// AttendeeCategories lists the four categories in their canonical order.
// Price totals are summed in this order so results are reproducible.
var AttendeeCategories = []AttendeeCategory{AttendeeAdult, AttendeeChild, AttendeeToddler, AttendeeBaby}

// PricingCategory holds the per-person price and available seat count for
// one attendee category.
type PricingCategory struct {
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Pricing holds a tour's per-category price and availability.
// Adult is mandatory — a valid tour has Adult.Price > 0 and
// Adult.Quantity > 0. The other categories are optional; a nil pointer
// means the category is not offered.
type Pricing struct {
	Adult   PricingCategory  `json:"adult"`
	Child   *PricingCategory `json:"child,omitempty"`
	Toddler *PricingCategory `json:"toddler,omitempty"`
	Baby    *PricingCategory `json:"baby,omitempty"`
}

// Category returns the pricing entry for c, or nil when the category is
// not offered. The adult entry is always returned by reference.
func (p *Pricing) Category(c AttendeeCategory) *PricingCategory {
	switch c {
	case AttendeeAdult:
		return &p.Adult
	case AttendeeChild:
		return p.Child
	case AttendeeToddler:
		return p.Toddler
	case AttendeeBaby:
		return p.Baby
	}
	return nil
}

// Ensure returns the pricing entry for c, materializing a zero-valued
// entry for an optional category that is not yet offered. Used by the
// tour form when the company first types into an optional category.
func (p *Pricing) Ensure(c AttendeeCategory) *PricingCategory {
	switch c {
	case AttendeeAdult:
		return &p.Adult
	case AttendeeChild:
		if p.Child == nil {
			p.Child = &PricingCategory{}
		}
		return p.Child
	case AttendeeToddler:
		if p.Toddler == nil {
			p.Toddler = &PricingCategory{}
		}
		return p.Toddler
	case AttendeeBaby:
		if p.Baby == nil {
			p.Baby = &PricingCategory{}
		}
		return p.Baby
	}
	return nil
}

// Offered reports whether the category has any seats to sell.
func (pc *PricingCategory) Offered() bool {
	return pc != nil && pc.Quantity > 0
}

// Available returns the number of seats that can be booked for c.
// Categories that are not offered have zero availability.
func (p *Pricing) Available(c AttendeeCategory) int {
	pc := p.Category(c)
	if pc == nil {
		return 0
	}
	return pc.Quantity
}

// price returns the per-person price for c, treating an absent category as free.
func (p *Pricing) price(c AttendeeCategory) float64 {
	pc := p.Category(c)
	if pc == nil {
		return 0
	}
	return pc.Price
}

// Quantities is a customer's selected head count per attendee category.
// All writes into a booking must pass through ClampQuantity (or
// ClampQuantities) first, so every field stays within the tour's
// availability.
type Quantities struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Toddlers int `json:"toddlers"`
	Babies   int `json:"babies"`
}

// Of returns the selected count for c.
func (q Quantities) Of(c AttendeeCategory) int {
	switch c {
	case AttendeeAdult:
		return q.Adults
	case AttendeeChild:
		return q.Children
	case AttendeeToddler:
		return q.Toddlers
	case AttendeeBaby:
		return q.Babies
	}
	return 0
}

// set stores n as the selection for c.
func (q *Quantities) set(c AttendeeCategory, n int) {
	switch c {
	case AttendeeAdult:
		q.Adults = n
	case AttendeeChild:
		q.Children = n
	case AttendeeToddler:
		q.Toddlers = n
	case AttendeeBaby:
		q.Babies = n
	}
}

// IsZero reports whether no seats are selected in any category.
func (q Quantities) IsZero() bool {
	return q == Quantities{}
}

// ClampQuantity converts a raw quantity input into a safe selection for
// one category. Non-numeric or empty input counts as zero; the result is
// always an integer in [0, available]. It never fails — bad input is a
// zero selection, not an error.
func ClampQuantity(raw string, available int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		n = 0
	}
	return clampInt(n, available)
}

// ClampQuantities clamps every category of a requested selection against
// the tour's current availability. This is the admission-control point
// for bookings arriving as already-parsed numbers.
func ClampQuantities(requested Quantities, p Pricing) Quantities {
	var out Quantities
	for _, c := range AttendeeCategories {
		out.set(c, clampInt(requested.Of(c), p.Available(c)))
	}
	return out
}

func clampInt(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// Total computes the booking price for a selection: the sum of
// selected×price over the four categories, in canonical order.
// Pure; the result is non-negative for any clamped selection.
func (p Pricing) Total(q Quantities) float64 {
	var total float64
	for _, c := range AttendeeCategories {
		total += float64(q.Of(c)) * p.price(c)
	}
	return total
}

// CanSubmitBooking reports whether a booking with the given total may be
// submitted. A zero total means nobody was selected and the attempt must
// be rejected before it reaches the network.
func CanSubmitBooking(total float64) bool {
	return total > 0
}
