package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tourmarket/backend/internal/domain"
)

// uniqueViolation is the Postgres error code for a unique constraint violation.
const uniqueViolation = "23505"

// FavoriteRepo defines the persistence operations for favorites.
type FavoriteRepo interface {
	// Add inserts a favorite for the (user, tour) pair. Only Tour.ID is
	// populated on the returned favorite; callers hydrate the rest.
	// Returns domain.ErrValidation if the pair is already favorited.
	Add(ctx context.Context, userID, tourID uuid.UUID) (domain.Favorite, error)

	// Remove deletes the favorite for the (user, tour) pair.
	// Returns domain.ErrNotFound if the tour was not favorited.
	Remove(ctx context.Context, userID, tourID uuid.UUID) error

	// ListByUser returns a user's favorites with their tours, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Favorite, error)
}

// pgFavoriteRepo is the Postgres implementation of FavoriteRepo.
type pgFavoriteRepo struct {
	db db
}

// NewFavoriteRepo constructs a FavoriteRepo backed by the provided db connection.
func NewFavoriteRepo(db db) FavoriteRepo {
	return &pgFavoriteRepo{db: db}
}

// Add inserts a favorite row. The unique constraint turns a duplicate
// add into a validation error rather than a second row.
func (r *pgFavoriteRepo) Add(ctx context.Context, userID, tourID uuid.UUID) (domain.Favorite, error) {
	const q = `
		INSERT INTO favorites (user_id, tour_id)
		VALUES (@user_id, @tour_id)
		RETURNING id, user_id, tour_id, created_at`

	var (
		f      domain.Favorite
		id     pgtype.UUID
		user   pgtype.UUID
		tourdb pgtype.UUID
	)
	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID, "tour_id": tourID})
	if err := row.Scan(&id, &user, &tourdb, &f.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.Favorite{}, fmt.Errorf("repo.FavoriteRepo.Add: %w: tour is already in favorites", domain.ErrValidation)
		}
		return domain.Favorite{}, fmt.Errorf("repo.FavoriteRepo.Add: %w", err)
	}

	f.ID = uuid.UUID(id.Bytes)
	f.UserID = uuid.UUID(user.Bytes)
	f.Tour.ID = uuid.UUID(tourdb.Bytes)
	return f, nil
}

// Remove deletes a favorite by its (user, tour) pair.
func (r *pgFavoriteRepo) Remove(ctx context.Context, userID, tourID uuid.UUID) error {
	const q = `DELETE FROM favorites WHERE user_id = @user_id AND tour_id = @tour_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"user_id": userID, "tour_id": tourID})
	if err != nil {
		return fmt.Errorf("repo.FavoriteRepo.Remove: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.FavoriteRepo.Remove: %w", domain.ErrNotFound)
	}
	return nil
}

// ListByUser returns a user's favorites joined with their tours, newest first.
func (r *pgFavoriteRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Favorite, error) {
	const q = `
		SELECT f.id, f.user_id, f.created_at,
			t.id, t.company_id, t.title, t.description, t.category,
			t.trip_start_date, t.trip_end_date, t.booking_deadline, t.country, t.cities,
			t.adult_price, t.adult_quantity, t.child_price, t.child_quantity,
			t.toddler_price, t.toddler_quantity, t.baby_price, t.baby_quantity,
			t.duration_days, t.duration_nights, t.tour_guides, t.tours_included,
			t.is_active, t.created_at, t.updated_at
		FROM favorites f
		JOIN tours t ON t.id = f.tour_id
		WHERE f.user_id = @user_id
		ORDER BY f.created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.FavoriteRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	var favorites []domain.Favorite
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.FavoriteRepo.ListByUser: scan: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.FavoriteRepo.ListByUser: rows: %w", err)
	}

	return favorites, nil
}

// scanFavorite maps one joined favorites+tours row into a domain.Favorite.
func scanFavorite(s scanner) (domain.Favorite, error) {
	var (
		f        domain.Favorite
		id       pgtype.UUID
		userID   pgtype.UUID
		tourID   pgtype.UUID
		company  pgtype.UUID
		category string
		childP   pgtype.Float8
		childQ   pgtype.Int4
		toddlerP pgtype.Float8
		toddlerQ pgtype.Int4
		babyP    pgtype.Float8
		babyQ    pgtype.Int4
	)

	t := &f.Tour
	err := s.Scan(
		&id, &userID, &f.CreatedAt,
		&tourID, &company, &t.Title, &t.Description, &category,
		&t.TripStartDate, &t.TripEndDate, &t.BookingDeadline,
		&t.Location.Country, &t.Location.Cities,
		&t.Pricing.Adult.Price, &t.Pricing.Adult.Quantity,
		&childP, &childQ, &toddlerP, &toddlerQ, &babyP, &babyQ,
		&t.Duration.Days, &t.Duration.Nights,
		&t.TourGuides, &t.ToursIncluded,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Favorite{}, err
	}

	f.ID = uuid.UUID(id.Bytes)
	f.UserID = uuid.UUID(userID.Bytes)
	t.ID = uuid.UUID(tourID.Bytes)
	t.CompanyID = uuid.UUID(company.Bytes)
	t.Category = domain.Category(category)
	t.Pricing.Child = optionalPricing(childP, childQ)
	t.Pricing.Toddler = optionalPricing(toddlerP, toddlerQ)
	t.Pricing.Baby = optionalPricing(babyP, babyQ)

	return f, nil
}
