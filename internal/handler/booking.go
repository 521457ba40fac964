package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tourmarket/backend/internal/domain"
)

// bookingRequest is the booking submission shape: the tour comes from
// the URL, the body carries only the selected quantities.
type bookingRequest struct {
	Quantities domain.Quantities `json:"quantities"`
}

// CreateBooking handles POST /tours/{tourID}/bookings.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
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
	var req bookingRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	booking, err := s.bookings.Create(r.Context(), actor, tourID, req.Quantities)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

// ListBookings handles GET /bookings — the acting user's own bookings.
func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)
	if actor.UserID == uuid.Nil {
		writeError(w, domain.ErrForbidden)
		return
	}
	bookings, err := s.bookings.ListByUser(r.Context(), actor, actor.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": bookings})
}
