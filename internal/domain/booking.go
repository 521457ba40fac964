package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a customer's reserved seats on a tour.
// TotalPrice is a snapshot of the price at booking time — later pricing
// changes on the tour do not alter existing bookings.
type Booking struct {
	ID         uuid.UUID  `json:"id"`
	TourID     uuid.UUID  `json:"tourId"`
	UserID     uuid.UUID  `json:"userId"`
	Quantities Quantities `json:"quantities"`
	TotalPrice float64    `json:"totalPrice"`
	CreatedAt  time.Time  `json:"createdAt"`
}
