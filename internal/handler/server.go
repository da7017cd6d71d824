// Package handler implements the HTTP handlers for the travel portal API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (package.go, content.go, booking.go, watch.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tripora/portal/backend/internal/domain"
	"github.com/tripora/portal/backend/internal/forms"
	"github.com/tripora/portal/backend/internal/service"
)

// PackageServicer defines the business operations the package handlers depend
// on. Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type PackageServicer interface {
	List(ctx context.Context, category domain.Category) ([]domain.TripPackage, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.TripPackage, error)
	Watch(ctx context.Context) (<-chan []domain.TripPackage, func())

	FormState() service.FormState
	SelectCategory(category domain.Category) (service.FormState, error)
	BeginEdit(ctx context.Context, id uuid.UUID) (service.FormState, error)
	Cancel() service.FormState
	Submit(ctx context.Context, shared forms.Shared, v forms.Variant) (domain.TripPackage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContentServicer defines the operations the content handlers depend on.
type ContentServicer interface {
	ListHeroSlides(ctx context.Context) ([]domain.HeroSlide, error)
	SaveHeroSlide(ctx context.Context, slide domain.HeroSlide, imageFile []byte) (domain.HeroSlide, error)
	DeleteHeroSlide(ctx context.Context, id uuid.UUID) error
	WatchHeroSlides(ctx context.Context) (<-chan []domain.HeroSlide, func())

	ListPlaces(ctx context.Context) ([]domain.Place, error)
	SavePlace(ctx context.Context, place domain.Place, imageFile []byte) (domain.Place, error)
	DeletePlace(ctx context.Context, id uuid.UUID) error
	WatchPlaces(ctx context.Context) (<-chan []domain.Place, func())

	ListRegions(ctx context.Context) ([]domain.RegionSection, error)
	SaveRegion(ctx context.Context, section domain.RegionSection, imageFile []byte) (domain.RegionSection, error)
	DeleteRegion(ctx context.Context, id uuid.UUID) error
	WatchRegions(ctx context.Context) (<-chan []domain.RegionSection, func())
}

// BookingServicer defines the operations the booking handlers depend on.
type BookingServicer interface {
	CreateTicket(ctx context.Context, b domain.TicketBooking) (domain.TicketBooking, error)
	ListTickets(ctx context.Context, p domain.PaginationParams) ([]domain.TicketBooking, int64, error)
	SetTicketStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.TicketBooking, error)

	CreateTour(ctx context.Context, b domain.TourBooking) (domain.TourBooking, error)
	ListTours(ctx context.Context, p domain.PaginationParams) ([]domain.TourBooking, int64, error)
	SetTourStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.TourBooking, error)

	CreateVehicle(ctx context.Context, b domain.VehicleBooking) (domain.VehicleBooking, error)
	ListVehicles(ctx context.Context, p domain.PaginationParams) ([]domain.VehicleBooking, int64, error)
	SetVehicleStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.VehicleBooking, error)
}

// Server implements all API endpoints. Methods are in domain-specific files
// but all operate on this struct.
type Server struct {
	packages PackageServicer
	content  ContentServicer
	bookings BookingServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(packages PackageServicer, content ContentServicer, bookings BookingServicer) *Server {
	return &Server{packages: packages, content: content, bookings: bookings}
}

// Routes registers every endpoint on r. adminGate wraps the admin subtree;
// pass chi's no-op middleware in tests that don't exercise auth.
func (s *Server) Routes(r chi.Router, adminGate func(http.Handler) http.Handler) {
	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/packages", s.ListPackages)
		r.Get("/packages/{id}", s.GetPackage)
		r.Get("/hero-slides", s.ListHeroSlides)
		r.Get("/places", s.ListPlaces)
		r.Get("/regions", s.ListRegions)

		r.Post("/bookings/tickets", s.CreateTicketBooking)
		r.Post("/bookings/tours", s.CreateTourBooking)
		r.Post("/bookings/vehicles", s.CreateVehicleBooking)

		r.Get("/watch/{collection}", s.WatchCollection)

		r.Route("/admin", func(r chi.Router) {
			r.Use(adminGate)

			r.Get("/form", s.GetFormState)
			r.Post("/form/category", s.SelectFormCategory)
			r.Post("/form/edit/{id}", s.BeginEditPackage)
			r.Post("/form/cancel", s.CancelForm)

			r.Post("/packages", s.SubmitPackage)
			r.Delete("/packages/{id}", s.DeletePackage)

			r.Post("/hero-slides", s.SaveHeroSlide)
			r.Delete("/hero-slides/{id}", s.DeleteHeroSlide)
			r.Post("/places", s.SavePlace)
			r.Delete("/places/{id}", s.DeletePlace)
			r.Post("/regions", s.SaveRegion)
			r.Delete("/regions/{id}", s.DeleteRegion)

			r.Get("/bookings/tickets", s.ListTicketBookings)
			r.Patch("/bookings/tickets/{id}/status", s.SetTicketBookingStatus)
			r.Get("/bookings/tours", s.ListTourBookings)
			r.Patch("/bookings/tours/{id}/status", s.SetTourBookingStatus)
			r.Get("/bookings/vehicles", s.ListVehicleBookings)
			r.Patch("/bookings/vehicles/{id}/status", s.SetVehicleBookingStatus)
		})
	})
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses the {id} URL parameter as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
