package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourmarket/backend/internal/domain"
	"github.com/tourmarket/backend/internal/handler"
)

// mockFavoriteServicer is a test double for handler.FavoriteServicer.
type mockFavoriteServicer struct {
	add        func(ctx context.Context, actor domain.Actor, tourID uuid.UUID) (domain.Favorite, error)
	remove     func(ctx context.Context, actor domain.Actor, tourID uuid.UUID) error
	listByUser func(ctx context.Context, actor domain.Actor) ([]domain.Favorite, error)
}

func (m *mockFavoriteServicer) Add(ctx context.Context, actor domain.Actor, tourID uuid.UUID) (domain.Favorite, error) {
	return m.add(ctx, actor, tourID)
}
func (m *mockFavoriteServicer) Remove(ctx context.Context, actor domain.Actor, tourID uuid.UUID) error {
	return m.remove(ctx, actor, tourID)
}
func (m *mockFavoriteServicer) ListByUser(ctx context.Context, actor domain.Actor) ([]domain.Favorite, error) {
	return m.listByUser(ctx, actor)
}

// compile-time check: mockFavoriteServicer must satisfy handler.FavoriteServicer.
var _ handler.FavoriteServicer = (*mockFavoriteServicer)(nil)

// ---- POST /users/favorites/{tourID} ----------------------------------------

func TestAddFavorite_201(t *testing.T) {
	tourID := uuid.New()
	userID := uuid.New()
	fixture := domain.Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		Tour:      tourFixture(),
		CreatedAt: time.Now().UTC(),
	}
	svc := &mockFavoriteServicer{
		add: func(_ context.Context, actor domain.Actor, id uuid.UUID) (domain.Favorite, error) {
			assert.Equal(t, tourID, id)
			assert.Equal(t, userID, actor.UserID)
			return fixture, nil
		},
	}

	req := withUser(httptest.NewRequest(http.MethodPost, "/users/favorites/"+tourID.String(), nil), userID)
	rec := httptest.NewRecorder()
	newFavoritesHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Favorite
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, fixture.ID, got.ID)
	assert.Equal(t, fixture.Tour.Title, got.Tour.Title, "the tour rides along in the response")
}

func TestAddFavorite_422_Duplicate(t *testing.T) {
	svc := &mockFavoriteServicer{
		add: func(_ context.Context, _ domain.Actor, _ uuid.UUID) (domain.Favorite, error) {
			return domain.Favorite{}, fmt.Errorf("service.FavoriteService.Add: %w: tour is already in favorites", domain.ErrValidation)
		},
	}

	req := withUser(httptest.NewRequest(http.MethodPost, "/users/favorites/"+uuid.NewString(), nil), uuid.New())
	rec := httptest.NewRecorder()
	newFavoritesHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "tour is already in favorites")
}

func TestAddFavorite_404_UnknownTour(t *testing.T) {
	svc := &mockFavoriteServicer{
		add: func(_ context.Context, _ domain.Actor, _ uuid.UUID) (domain.Favorite, error) {
			return domain.Favorite{}, fmt.Errorf("service.FavoriteService.Add: %w", domain.ErrNotFound)
		},
	}

	req := withUser(httptest.NewRequest(http.MethodPost, "/users/favorites/"+uuid.NewString(), nil), uuid.New())
	rec := httptest.NewRecorder()
	newFavoritesHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddFavorite_403_NoIdentity(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users/favorites/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	newFavoritesHandler(&mockFavoriteServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAddFavorite_400_BadTourID(t *testing.T) {
	req := withUser(httptest.NewRequest(http.MethodPost, "/users/favorites/not-a-uuid", nil), uuid.New())
	rec := httptest.NewRecorder()
	newFavoritesHandler(&mockFavoriteServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- DELETE /users/favorites/{tourID} --------------------------------------

func TestRemoveFavorite_204(t *testing.T) {
	tourID := uuid.New()
	userID := uuid.New()
	svc := &mockFavoriteServicer{
		remove: func(_ context.Context, actor domain.Actor, id uuid.UUID) error {
			assert.Equal(t, tourID, id)
			assert.Equal(t, userID, actor.UserID)
			return nil
		},
	}

	req := withUser(httptest.NewRequest(http.MethodDelete, "/users/favorites/"+tourID.String(), nil), userID)
	rec := httptest.NewRecorder()
	newFavoritesHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRemoveFavorite_404_NotFavorited(t *testing.T) {
	svc := &mockFavoriteServicer{
		remove: func(_ context.Context, _ domain.Actor, _ uuid.UUID) error {
			return fmt.Errorf("service.FavoriteService.Remove: %w", domain.ErrNotFound)
		},
	}

	req := withUser(httptest.NewRequest(http.MethodDelete, "/users/favorites/"+uuid.NewString(), nil), uuid.New())
	rec := httptest.NewRecorder()
	newFavoritesHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /users/favorites --------------------------------------------------

func TestListFavorites_200(t *testing.T) {
	userID := uuid.New()
	svc := &mockFavoriteServicer{
		listByUser: func(_ context.Context, actor domain.Actor) ([]domain.Favorite, error) {
			assert.Equal(t, userID, actor.UserID)
			return []domain.Favorite{}, nil
		},
	}

	req := withUser(httptest.NewRequest(http.MethodGet, "/users/favorites", nil), userID)
	rec := httptest.NewRecorder()
	newFavoritesHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestListFavorites_403_NoIdentity(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users/favorites", nil)
	rec := httptest.NewRecorder()
	newFavoritesHandler(&mockFavoriteServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
