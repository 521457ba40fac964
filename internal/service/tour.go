// Package service contains the business logic for the tour marketplace
// API. Services validate inputs, enforce ownership and business rules,
// and orchestrate repo calls. No SQL lives here — services depend on
// repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/tourmarket/backend/internal/domain"
	"github.com/tourmarket/backend/internal/repo"
	"github.com/tourmarket/backend/internal/tourform"
)

// TourService implements business logic for tour operations.
type TourService struct {
	repo repo.TourRepo
}

// NewTourService constructs a TourService backed by the provided TourRepo.
func NewTourService(r repo.TourRepo) *TourService {
	return &TourService{repo: r}
}

// ListActive returns one page of publicly visible tours plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TourService) ListActive(ctx context.Context, p domain.PaginationParams) ([]domain.Tour, int64, error) {
	tours, total, err := s.repo.ListActive(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TourService.ListActive: %w", err)
	}
	if tours == nil {
		tours = []domain.Tour{}
	}
	return tours, total, nil
}

// GetByID returns a single tour by ID.
func (s *TourService) GetByID(ctx context.Context, id uuid.UUID) (domain.Tour, error) {
	tour, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.GetByID: %w", err)
	}
	return tour, nil
}

// ListByCompany returns a company's full tour list, inactive tours
// included. Only the owning company may see it.
func (s *TourService) ListByCompany(ctx context.Context, actor domain.Actor, companyID uuid.UUID) ([]domain.Tour, error) {
	if !actor.IsCompany() || actor.CompanyID != companyID {
		return nil, fmt.Errorf("service.TourService.ListByCompany: %w", domain.ErrForbidden)
	}
	tours, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("service.TourService.ListByCompany: %w", err)
	}
	if tours == nil {
		tours = []domain.Tour{}
	}
	return tours, nil
}

// Create validates a draft and persists it as a new tour owned by the
// actor's company. Only tour companies may create tours.
func (s *TourService) Create(ctx context.Context, actor domain.Actor, draft tourform.Draft) (domain.Tour, error) {
	if !actor.IsCompany() {
		return domain.Tour{}, fmt.Errorf("service.TourService.Create: %w", domain.ErrForbidden)
	}
	if err := checkDraft(&draft); err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Create: %w", err)
	}
	tour, err := s.repo.Create(ctx, draft.Tour(actor.CompanyID))
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Create: %w", err)
	}
	return tour, nil
}

// Update validates a draft and overwrites an existing tour.
// Only the company that published the tour may update it.
func (s *TourService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, draft tourform.Draft) (domain.Tour, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Update: %w", err)
	}
	if !actor.Owns(existing) {
		return domain.Tour{}, fmt.Errorf("service.TourService.Update: %w", domain.ErrForbidden)
	}
	if err := checkDraft(&draft); err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Update: %w", err)
	}

	tour := draft.Tour(existing.CompanyID)
	tour.ID = existing.ID
	updated, err := s.repo.Update(ctx, tour)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a tour. Only the company that published it may delete it.
func (s *TourService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.TourService.Delete: %w", err)
	}
	if !actor.Owns(existing) {
		return fmt.Errorf("service.TourService.Delete: %w", domain.ErrForbidden)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TourService.Delete: %w", err)
	}
	return nil
}

// checkDraft recomputes the derived duration from the draft's dates and
// runs the full form rule set. The recompute means a client cannot smuggle
// in a duration that disagrees with the dates.
func checkDraft(d *tourform.Draft) error {
	d.Duration = tourform.RecomputeDuration(d.TripStartDate, d.TripEndDate)
	if errs := tourform.Validate(*d); !errs.Empty() {
		return validationError(errs)
	}
	return nil
}

// validationError folds a field error set into a single ErrValidation,
// with fields in sorted order so the message is deterministic.
func validationError(errs domain.FieldErrors) error {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + errs[f]
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(parts, "; "))
}
