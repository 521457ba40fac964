// Package handler implements the HTTP surface of the tour marketplace
// API. All handlers are methods on Server; methods are split into
// resource-specific files (tour.go, booking.go, health.go) but share the
// same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tourmarket/backend/internal/domain"
	"github.com/tourmarket/backend/internal/tourform"
	"github.com/tourmarket/backend/spec"
)

// TourServicer defines the business operations the tour handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TourServicer interface {
	ListActive(ctx context.Context, p domain.PaginationParams) ([]domain.Tour, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Tour, error)
	ListByCompany(ctx context.Context, actor domain.Actor, companyID uuid.UUID) ([]domain.Tour, error)
	Create(ctx context.Context, actor domain.Actor, draft tourform.Draft) (domain.Tour, error)
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, draft tourform.Draft) (domain.Tour, error)
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}

// BookingServicer defines the business operations the booking handlers
// depend on.
type BookingServicer interface {
	Create(ctx context.Context, actor domain.Actor, tourID uuid.UUID, requested domain.Quantities) (domain.Booking, error)
	ListByUser(ctx context.Context, actor domain.Actor, userID uuid.UUID) ([]domain.Booking, error)
}

// FavoriteServicer defines the business operations the favorites handlers
// depend on.
type FavoriteServicer interface {
	Add(ctx context.Context, actor domain.Actor, tourID uuid.UUID) (domain.Favorite, error)
	Remove(ctx context.Context, actor domain.Actor, tourID uuid.UUID) error
	ListByUser(ctx context.Context, actor domain.Actor) ([]domain.Favorite, error)
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	tours     TourServicer
	bookings  BookingServicer
	favorites FavoriteServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(tours TourServicer, bookings BookingServicer, favorites FavoriteServicer) *Server {
	return &Server{tours: tours, bookings: bookings, favorites: favorites}
}

// Routes returns the chi router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Route("/tours", func(r chi.Router) {
		r.Get("/", s.ListTours)
		r.Post("/", s.CreateTour)
		r.Route("/{tourID}", func(r chi.Router) {
			r.Get("/", s.GetTour)
			r.Put("/", s.UpdateTour)
			r.Delete("/", s.DeleteTour)
			r.Post("/bookings", s.CreateBooking)
		})
	})

	r.Get("/bookings", s.ListBookings)
	r.Get("/companies/{companyID}/tours", s.ListCompanyTours)

	r.Route("/users/favorites", func(r chi.Router) {
		r.Get("/", s.ListFavorites)
		r.Post("/{tourID}", s.AddFavorite)
		r.Delete("/{tourID}", s.RemoveFavorite)
	})

	return r
}

// serveOpenAPI serves the embedded API specification, so the spec and
// the running code are always in sync.
func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
