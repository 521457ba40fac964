// Package domain contains the core data types for the tour marketplace.
// This package has no dependencies on other internal packages and is
// imported by every other layer (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies a tour. The set of valid values is fixed.
type Category string

const (
	CategoryAdventure  Category = "adventure"
	CategoryCultural   Category = "cultural"
	CategoryRelaxation Category = "relaxation"
	CategoryBusiness   Category = "business"
	CategoryFamily     Category = "family"
)

// Valid reports whether c is one of the five known tour categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAdventure, CategoryCultural, CategoryRelaxation, CategoryBusiness, CategoryFamily:
		return true
	}
	return false
}

// Location is where a tour takes place: one country, one or more cities.
type Location struct {
	Country string   `json:"country"`
	Cities  []string `json:"cities"`
}

// Duration is the length of a tour, derived from its trip dates.
// Days is always nights+1 for a valid tour; both are zero until the
// dates have been filled in.
type Duration struct {
	Days   int `json:"days"`
	Nights int `json:"nights"`
}

// Tour is a bookable trip offering published by a tour company.
// A tour is the top-level aggregate; bookings belong to a tour.
type Tour struct {
	ID              uuid.UUID `json:"id"`
	CompanyID       uuid.UUID `json:"companyId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        Category  `json:"category"`
	TripStartDate   time.Time `json:"tripStartDate"`
	TripEndDate     time.Time `json:"tripEndDate"`
	BookingDeadline time.Time `json:"bookingDeadline"`
	Location        Location  `json:"location"`
	Pricing         Pricing   `json:"pricing"`
	TourGuides      []string  `json:"tourGuides"`
	ToursIncluded   []string  `json:"toursIncluded"`
	Duration        Duration  `json:"duration"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
