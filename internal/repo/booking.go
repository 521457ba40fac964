package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tourmarket/backend/internal/domain"
)

// BookingRepo defines the persistence operations for bookings.
type BookingRepo interface {
	// Create inserts a new booking and returns the persisted record.
	Create(ctx context.Context, booking domain.Booking) (domain.Booking, error)

	// GetByID retrieves a single booking by its UUID primary key.
	// Returns domain.ErrNotFound if no booking with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error)

	// ListByUser returns a user's bookings, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error)
}

// pgBookingRepo is the Postgres implementation of BookingRepo.
type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

const bookingColumns = `id, tour_id, user_id, adults, children, toddlers, babies, total_price, created_at`

// Create inserts a new booking row and returns the full persisted record.
func (r *pgBookingRepo) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	const q = `
		INSERT INTO bookings (tour_id, user_id, adults, children, toddlers, babies, total_price)
		VALUES (@tour_id, @user_id, @adults, @children, @toddlers, @babies, @total_price)
		RETURNING ` + bookingColumns

	args := pgx.NamedArgs{
		"tour_id":     booking.TourID,
		"user_id":     booking.UserID,
		"adults":      booking.Quantities.Adults,
		"children":    booking.Quantities.Children,
		"toddlers":    booking.Quantities.Toddlers,
		"babies":      booking.Quantities.Babies,
		"total_price": booking.TotalPrice,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanBooking(row)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a booking by primary key.
func (r *pgBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanBooking(row)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByUser returns all bookings made by a user, newest first.
func (r *pgBookingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	const q = `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = @user_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.BookingRepo.ListByUser: scan: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.ListByUser: rows: %w", err)
	}

	return bookings, nil
}

// scanBooking maps a single database row into a domain.Booking.
func scanBooking(s scanner) (domain.Booking, error) {
	var (
		b      domain.Booking
		id     pgtype.UUID
		tourID pgtype.UUID
		userID pgtype.UUID
	)

	err := s.Scan(
		&id, &tourID, &userID,
		&b.Quantities.Adults, &b.Quantities.Children,
		&b.Quantities.Toddlers, &b.Quantities.Babies,
		&b.TotalPrice, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}

	b.ID = uuid.UUID(id.Bytes)
	b.TourID = uuid.UUID(tourID.Bytes)
	b.UserID = uuid.UUID(userID.Bytes)

	return b, nil
}
