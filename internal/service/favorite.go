package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tourmarket/backend/internal/domain"
	"github.com/tourmarket/backend/internal/repo"
)

// FavoriteService implements business logic for a user's favorite tours.
// It holds the tour repo as well because adding a favorite verifies the
// tour exists and returns it embedded in the favorite.
type FavoriteService struct {
	tours     repo.TourRepo
	favorites repo.FavoriteRepo
}

// NewFavoriteService constructs a FavoriteService backed by the provided repos.
func NewFavoriteService(tours repo.TourRepo, favorites repo.FavoriteRepo) *FavoriteService {
	return &FavoriteService{tours: tours, favorites: favorites}
}

// Add favorites a tour for the acting user and returns the favorite with
// the tour embedded. Favoriting an unknown tour is a not-found error;
// favoriting the same tour twice is a validation error.
func (s *FavoriteService) Add(ctx context.Context, actor domain.Actor, tourID uuid.UUID) (domain.Favorite, error) {
	tour, err := s.tours.GetByID(ctx, tourID)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("service.FavoriteService.Add: %w", err)
	}

	favorite, err := s.favorites.Add(ctx, actor.UserID, tourID)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("service.FavoriteService.Add: %w", err)
	}

	favorite.Tour = tour
	return favorite, nil
}

// Remove un-favorites a tour for the acting user.
func (s *FavoriteService) Remove(ctx context.Context, actor domain.Actor, tourID uuid.UUID) error {
	if err := s.favorites.Remove(ctx, actor.UserID, tourID); err != nil {
		return fmt.Errorf("service.FavoriteService.Remove: %w", err)
	}
	return nil
}

// ListByUser returns the acting user's favorites, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *FavoriteService) ListByUser(ctx context.Context, actor domain.Actor) ([]domain.Favorite, error) {
	favorites, err := s.favorites.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("service.FavoriteService.ListByUser: %w", err)
	}
	if favorites == nil {
		favorites = []domain.Favorite{}
	}
	return favorites, nil
}
