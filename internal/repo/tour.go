// Package repo contains all database access logic for the tour
// marketplace API. Each resource has its own file with an interface and
// a Postgres implementation. No business logic lives here — only SQL and
// type mapping.
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

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TourRepo defines the persistence operations for tours.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TourRepo interface {
	// Create inserts a new tour and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, tour domain.Tour) (domain.Tour, error)

	// GetByID retrieves a single tour by its UUID primary key.
	// Returns domain.ErrNotFound if no tour with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Tour, error)

	// ListActive returns one page of active tours ordered by trip start
	// date ascending, plus the total number of active tours.
	ListActive(ctx context.Context, p domain.PaginationParams) ([]domain.Tour, int64, error)

	// ListByCompany returns all tours published by a company, including
	// inactive ones, ordered by creation time descending.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Tour, error)

	// Update overwrites the mutable fields of an existing tour and returns
	// the updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, tour domain.Tour) (domain.Tour, error)

	// Delete removes a tour by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTourRepo is the Postgres implementation of TourRepo.
type pgTourRepo struct {
	db db
}

// NewTourRepo constructs a TourRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTourRepo(db db) TourRepo {
	return &pgTourRepo{db: db}
}

const tourColumns = `id, company_id, title, description, category,
		trip_start_date, trip_end_date, booking_deadline, country, cities,
		adult_price, adult_quantity, child_price, child_quantity,
		toddler_price, toddler_quantity, baby_price, baby_quantity,
		duration_days, duration_nights, tour_guides, tours_included,
		is_active, created_at, updated_at`

// Create inserts a new tour row and returns the full persisted record.
func (r *pgTourRepo) Create(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	const q = `
		INSERT INTO tours (
			company_id, title, description, category,
			trip_start_date, trip_end_date, booking_deadline, country, cities,
			adult_price, adult_quantity, child_price, child_quantity,
			toddler_price, toddler_quantity, baby_price, baby_quantity,
			duration_days, duration_nights, tour_guides, tours_included, is_active)
		VALUES (
			@company_id, @title, @description, @category,
			@trip_start_date, @trip_end_date, @booking_deadline, @country, @cities,
			@adult_price, @adult_quantity, @child_price, @child_quantity,
			@toddler_price, @toddler_quantity, @baby_price, @baby_quantity,
			@duration_days, @duration_nights, @tour_guides, @tours_included, @is_active)
		RETURNING ` + tourColumns

	row := r.db.QueryRow(ctx, q, tourArgs(tour))
	result, err := scanTour(row)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a tour by primary key.
func (r *pgTourRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Tour, error) {
	const q = `SELECT ` + tourColumns + ` FROM tours WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTour(row)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListActive returns one page of active tours, soonest departure first.
func (r *pgTourRepo) ListActive(ctx context.Context, p domain.PaginationParams) ([]domain.Tour, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM tours WHERE is_active`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TourRepo.ListActive: count: %w", err)
	}

	const q = `SELECT ` + tourColumns + `
		FROM tours
		WHERE is_active
		ORDER BY trip_start_date ASC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TourRepo.ListActive: %w", err)
	}
	defer rows.Close()

	tours, err := collectTours(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TourRepo.ListActive: %w", err)
	}
	return tours, total, nil
}

// ListByCompany returns every tour owned by a company, newest first.
func (r *pgTourRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Tour, error) {
	const q = `SELECT ` + tourColumns + `
		FROM tours
		WHERE company_id = @company_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"company_id": companyID})
	if err != nil {
		return nil, fmt.Errorf("repo.TourRepo.ListByCompany: %w", err)
	}
	defer rows.Close()

	tours, err := collectTours(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TourRepo.ListByCompany: %w", err)
	}
	return tours, nil
}

// Update overwrites the mutable fields of a tour and returns the updated record.
func (r *pgTourRepo) Update(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	const q = `
		UPDATE tours
		SET title            = @title,
		    description      = @description,
		    category         = @category,
		    trip_start_date  = @trip_start_date,
		    trip_end_date    = @trip_end_date,
		    booking_deadline = @booking_deadline,
		    country          = @country,
		    cities           = @cities,
		    adult_price      = @adult_price,
		    adult_quantity   = @adult_quantity,
		    child_price      = @child_price,
		    child_quantity   = @child_quantity,
		    toddler_price    = @toddler_price,
		    toddler_quantity = @toddler_quantity,
		    baby_price       = @baby_price,
		    baby_quantity    = @baby_quantity,
		    duration_days    = @duration_days,
		    duration_nights  = @duration_nights,
		    tour_guides      = @tour_guides,
		    tours_included   = @tours_included,
		    is_active        = @is_active,
		    updated_at       = now()
		WHERE id = @id
		RETURNING ` + tourColumns

	args := tourArgs(tour)
	args["id"] = tour.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTour(row)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a tour by primary key.
func (r *pgTourRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM tours WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TourRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TourRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// tourArgs maps a domain.Tour onto named SQL arguments.
// Optional pricing categories become NULL pairs when not offered.
func tourArgs(t domain.Tour) pgx.NamedArgs {
	args := pgx.NamedArgs{
		"company_id":       t.CompanyID,
		"title":            t.Title,
		"description":      t.Description,
		"category":         string(t.Category),
		"trip_start_date":  t.TripStartDate,
		"trip_end_date":    t.TripEndDate,
		"booking_deadline": t.BookingDeadline,
		"country":          t.Location.Country,
		"cities":           t.Location.Cities,
		"adult_price":      t.Pricing.Adult.Price,
		"adult_quantity":   t.Pricing.Adult.Quantity,
		"duration_days":    t.Duration.Days,
		"duration_nights":  t.Duration.Nights,
		"tour_guides":      t.TourGuides,
		"tours_included":   t.ToursIncluded,
		"is_active":        t.IsActive,
	}
	for name, pc := range map[string]*domain.PricingCategory{
		"child":   t.Pricing.Child,
		"toddler": t.Pricing.Toddler,
		"baby":    t.Pricing.Baby,
	} {
		if pc != nil {
			args[name+"_price"] = pc.Price
			args[name+"_quantity"] = pc.Quantity
		} else {
			args[name+"_price"] = nil
			args[name+"_quantity"] = nil
		}
	}
	return args
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTour to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTour maps a single database row into a domain.Tour.
// It handles the UUID columns and the nullable optional pricing pairs.
func scanTour(s scanner) (domain.Tour, error) {
	var (
		t         domain.Tour
		id        pgtype.UUID
		companyID pgtype.UUID
		category  string
		childP    pgtype.Float8
		childQ    pgtype.Int4
		toddlerP  pgtype.Float8
		toddlerQ  pgtype.Int4
		babyP     pgtype.Float8
		babyQ     pgtype.Int4
	)

	err := s.Scan(
		&id, &companyID, &t.Title, &t.Description, &category,
		&t.TripStartDate, &t.TripEndDate, &t.BookingDeadline,
		&t.Location.Country, &t.Location.Cities,
		&t.Pricing.Adult.Price, &t.Pricing.Adult.Quantity,
		&childP, &childQ, &toddlerP, &toddlerQ, &babyP, &babyQ,
		&t.Duration.Days, &t.Duration.Nights,
		&t.TourGuides, &t.ToursIncluded,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Tour{}, domain.ErrNotFound
		}
		return domain.Tour{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.CompanyID = uuid.UUID(companyID.Bytes)
	t.Category = domain.Category(category)
	t.Pricing.Child = optionalPricing(childP, childQ)
	t.Pricing.Toddler = optionalPricing(toddlerP, toddlerQ)
	t.Pricing.Baby = optionalPricing(babyP, babyQ)

	return t, nil
}

// optionalPricing builds an optional category from its nullable column
// pair; a NULL pair means the category is not offered.
func optionalPricing(price pgtype.Float8, quantity pgtype.Int4) *domain.PricingCategory {
	if !price.Valid && !quantity.Valid {
		return nil
	}
	return &domain.PricingCategory{Price: price.Float64, Quantity: int(quantity.Int32)}
}

// collectTours drains rows into a slice, propagating scan and row errors.
func collectTours(rows pgx.Rows) ([]domain.Tour, error) {
	var tours []domain.Tour
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		tours = append(tours, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return tours, nil
}
