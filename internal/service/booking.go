package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tourmarket/backend/internal/domain"
	"github.com/tourmarket/backend/internal/repo"
)

// BookingService implements business logic for booking operations.
// It holds both repos because creating a booking prices the request
// against the tour's current availability, not the client's snapshot.
type BookingService struct {
	tours    repo.TourRepo
	bookings repo.BookingRepo
	now      func() time.Time
}

// NewBookingService constructs a BookingService backed by the provided repos.
func NewBookingService(tours repo.TourRepo, bookings repo.BookingRepo) *BookingService {
	return &BookingService{tours: tours, bookings: bookings, now: time.Now}
}

// Create books seats on a tour for the acting user. The requested
// quantities are clamped against the tour's availability as it is right
// now, so a stale client snapshot can never oversell a category. A
// selection that clamps down to nothing is rejected before anything is
// persisted.
func (s *BookingService) Create(ctx context.Context, actor domain.Actor, tourID uuid.UUID, requested domain.Quantities) (domain.Booking, error) {
	tour, err := s.tours.GetByID(ctx, tourID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}

	if !tour.IsActive {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w: tour is not open for booking", domain.ErrValidation)
	}
	if s.now().After(tour.BookingDeadline) {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w: booking deadline has passed", domain.ErrValidation)
	}

	quantities := domain.ClampQuantities(requested, tour.Pricing)
	total := tour.Pricing.Total(quantities)
	if !domain.CanSubmitBooking(total) {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w: select at least one person", domain.ErrValidation)
	}

	booking, err := s.bookings.Create(ctx, domain.Booking{
		TourID:     tour.ID,
		UserID:     actor.UserID,
		Quantities: quantities,
		TotalPrice: total,
	})
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.Create: %w", err)
	}
	return booking, nil
}

// ListByUser returns the acting user's bookings, newest first.
// Users may only list their own bookings.
// Always returns a non-nil slice so callers can safely range over it.
func (s *BookingService) ListByUser(ctx context.Context, actor domain.Actor, userID uuid.UUID) ([]domain.Booking, error) {
	if actor.UserID != userID {
		return nil, fmt.Errorf("service.BookingService.ListByUser: %w", domain.ErrForbidden)
	}
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.ListByUser: %w", err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}
