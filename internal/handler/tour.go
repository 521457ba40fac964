package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tourmarket/backend/internal/domain"
	"github.com/tourmarket/backend/internal/tourform"
)

// tourRequest is the draft shape the frontend submits for create/update.
// Dates arrive as strings (RFC 3339 or plain yyyy-mm-dd); empty means
// the user left the field blank and the validator reports it.
type tourRequest struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	TripStartDate   string          `json:"tripStartDate"`
	TripEndDate     string          `json:"tripEndDate"`
	BookingDeadline string          `json:"bookingDeadline"`
	Location        domain.Location `json:"location"`
	Pricing         domain.Pricing  `json:"pricing"`
	TourGuides      []string        `json:"tourGuides"`
	ToursIncluded   []string        `json:"toursIncluded"`
	IsActive        bool            `json:"isActive"`
}

// draft converts the request into a form draft. Only structurally
// malformed dates fail here — business rules are the validator's job.
func (req tourRequest) draft() (tourform.Draft, error) {
	start, err := parseDate(req.TripStartDate)
	if err != nil {
		return tourform.Draft{}, fmt.Errorf("tripStartDate: %w", err)
	}
	end, err := parseDate(req.TripEndDate)
	if err != nil {
		return tourform.Draft{}, fmt.Errorf("tripEndDate: %w", err)
	}
	deadline, err := parseDate(req.BookingDeadline)
	if err != nil {
		return tourform.Draft{}, fmt.Errorf("bookingDeadline: %w", err)
	}

	return tourform.Draft{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		TripStartDate:   start,
		TripEndDate:     end,
		BookingDeadline: deadline,
		Location:        req.Location,
		Pricing:         req.Pricing,
		TourGuides:      req.TourGuides,
		ToursIncluded:   req.ToursIncluded,
		IsActive:        req.IsActive,
	}, nil
}

// parseDate accepts RFC 3339 timestamps and bare dates; "" maps to nil.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", s)
}

// tourListResponse is the paginated list envelope.
type tourListResponse struct {
	Data       []domain.Tour `json:"data"`
	Pagination pagination    `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ListTours handles GET /tours.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTours(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	tours, total, err := s.tours.ListActive(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tourListResponse{
		Data: tours,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetTour handles GET /tours/{tourID}.
func (s *Server) GetTour(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "tourID"))
	if err != nil {
		badRequest(w, "invalid tour id")
		return
	}
	tour, err := s.tours.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tour)
}

// CreateTour handles POST /tours.
func (s *Server) CreateTour(w http.ResponseWriter, r *http.Request) {
	var req tourRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	draft, err := req.draft()
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	tour, err := s.tours.Create(r.Context(), actorFrom(r), draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tour)
}

// UpdateTour handles PUT /tours/{tourID}.
func (s *Server) UpdateTour(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "tourID"))
	if err != nil {
		badRequest(w, "invalid tour id")
		return
	}
	var req tourRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	draft, err := req.draft()
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	tour, err := s.tours.Update(r.Context(), actorFrom(r), id, draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tour)
}

// DeleteTour handles DELETE /tours/{tourID}.
func (s *Server) DeleteTour(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "tourID"))
	if err != nil {
		badRequest(w, "invalid tour id")
		return
	}
	if err := s.tours.Delete(r.Context(), actorFrom(r), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCompanyTours handles GET /companies/{companyID}/tours — the
// owner's dashboard list, inactive tours included.
func (s *Server) ListCompanyTours(w http.ResponseWriter, r *http.Request) {
	companyID, err := uuid.Parse(chi.URLParam(r, "companyID"))
	if err != nil {
		badRequest(w, "invalid company id")
		return
	}
	tours, err := s.tours.ListByCompany(r.Context(), actorFrom(r), companyID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": tours})
}

// queryInt returns the named query parameter as *int, or nil when absent
// or non-numeric.
func queryInt(r *http.Request, name string) *int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
