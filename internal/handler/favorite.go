package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tourmarket/backend/internal/domain"
)

// AddFavorite handles POST /users/favorites/{tourID}.
func (s *Server) AddFavorite(w http.ResponseWriter, r *http.Request) {
	tourID, err := uuid.Parse(chi.URLParam(r, "tourID"))
	if err != nil {
		badRequest(w, "invalid tour id")
		return
	}
	actor := actorFrom(r)
	if actor.UserID == uuid.Nil {
		writeError(w, domain.ErrForbidden)
		return
	}
	favorite, err := s.favorites.Add(r.Context(), actor, tourID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, favorite)
}

// RemoveFavorite handles DELETE /users/favorites/{tourID}.
func (s *Server) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	tourID, err := uuid.Parse(chi.URLParam(r, "tourID"))
	if err != nil {
		badRequest(w, "invalid tour id")
		return
	}
	actor := actorFrom(r)
	if actor.UserID == uuid.Nil {
		writeError(w, domain.ErrForbidden)
		return
	}
	if err := s.favorites.Remove(r.Context(), actor, tourID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListFavorites handles GET /users/favorites — the acting user's
// favorites with their tours embedded.
func (s *Server) ListFavorites(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)
	if actor.UserID == uuid.Nil {
		writeError(w, domain.ErrForbidden)
		return
	}
	favorites, err := s.favorites.ListByUser(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": favorites})
}
