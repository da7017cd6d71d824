package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripora/portal/backend/internal/domain"
	"github.com/tripora/portal/backend/internal/repo"
)

// Notifier is the outbound notification side channel fired after booking
// writes. Implementations must never fail the booking: Send logs its own
// errors and returns nothing.
type Notifier interface {
	Send(ctx context.Context, subject, message string)
}

// BookingService implements the public booking forms and the admin status
// transitions. Bookings are append-only; no delete is exposed anywhere.
type BookingService struct {
	tickets  repo.TicketBookingRepo
	tours    repo.TourBookingRepo
	vehicles repo.VehicleBookingRepo
	notifier Notifier
}

// NewBookingService constructs a BookingService. notifier may be nil, in
// which case no notifications are sent.
func NewBookingService(tickets repo.TicketBookingRepo, tours repo.TourBookingRepo, vehicles repo.VehicleBookingRepo, notifier Notifier) *BookingService {
	return &BookingService{tickets: tickets, tours: tours, vehicles: vehicles, notifier: notifier}
}

// CreateTicket validates and persists a ticket booking, then fires a
// notification. The notification runs after the write and cannot fail it.
func (s *BookingService) CreateTicket(ctx context.Context, b domain.TicketBooking) (domain.TicketBooking, error) {
	if !b.Mode.Valid() {
		return domain.TicketBooking{}, fmt.Errorf("service.BookingService.CreateTicket: %w: unknown travel mode %q", domain.ErrValidation, b.Mode)
	}
	if err := requireFields(map[string]string{
		"name": b.Name, "phone": b.Phone, "from": b.From, "to": b.To, "travelDate": b.TravelDate,
	}); err != nil {
		return domain.TicketBooking{}, fmt.Errorf("service.BookingService.CreateTicket: %w", err)
	}
	if b.Passengers < 1 {
		b.Passengers = 1
	}

	created, err := s.tickets.Create(ctx, b)
	if err != nil {
		return domain.TicketBooking{}, fmt.Errorf("service.BookingService.CreateTicket: %w", err)
	}

	s.notify(ctx, "New ticket booking",
		fmt.Sprintf("%s booking from %s to %s on %s by %s (%s)",
			created.Mode, created.From, created.To, created.TravelDate, created.Name, created.Phone))
	return created, nil
}

// ListTickets returns ticket bookings newest-first with the total count.
func (s *BookingService) ListTickets(ctx context.Context, p domain.PaginationParams) ([]domain.TicketBooking, int64, error) {
	bookings, total, err := s.tickets.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.BookingService.ListTickets: %w", err)
	}
	if bookings == nil {
		bookings = []domain.TicketBooking{}
	}
	return bookings, total, nil
}

// SetTicketStatus transitions one ticket booking's status.
func (s *BookingService) SetTicketStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.TicketBooking, error) {
	if !status.Valid() {
		return domain.TicketBooking{}, fmt.Errorf("service.BookingService.SetTicketStatus: %w: unknown status %q", domain.ErrValidation, status)
	}
	b, err := s.tickets.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.TicketBooking{}, fmt.Errorf("service.BookingService.SetTicketStatus: %w", err)
	}
	return b, nil
}

// CreateTour validates and persists a tour booking, then fires a notification.
func (s *BookingService) CreateTour(ctx context.Context, b domain.TourBooking) (domain.TourBooking, error) {
	if err := requireFields(map[string]string{
		"name": b.Name, "phone": b.Phone, "packageTitle": b.PackageTitle,
	}); err != nil {
		return domain.TourBooking{}, fmt.Errorf("service.BookingService.CreateTour: %w", err)
	}
	if b.Guests < 1 {
		b.Guests = 1
	}

	created, err := s.tours.Create(ctx, b)
	if err != nil {
		return domain.TourBooking{}, fmt.Errorf("service.BookingService.CreateTour: %w", err)
	}

	s.notify(ctx, "New tour inquiry",
		fmt.Sprintf("%q inquiry by %s (%s), %d guests",
			created.PackageTitle, created.Name, created.Phone, created.Guests))
	return created, nil
}

// ListTours returns tour bookings newest-first with the total count.
func (s *BookingService) ListTours(ctx context.Context, p domain.PaginationParams) ([]domain.TourBooking, int64, error) {
	bookings, total, err := s.tours.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.BookingService.ListTours: %w", err)
	}
	if bookings == nil {
		bookings = []domain.TourBooking{}
	}
	return bookings, total, nil
}

// SetTourStatus transitions one tour booking's status.
func (s *BookingService) SetTourStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.TourBooking, error) {
	if !status.Valid() {
		return domain.TourBooking{}, fmt.Errorf("service.BookingService.SetTourStatus: %w: unknown status %q", domain.ErrValidation, status)
	}
	b, err := s.tours.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.TourBooking{}, fmt.Errorf("service.BookingService.SetTourStatus: %w", err)
	}
	return b, nil
}

// CreateVehicle validates and persists a vehicle booking, then fires a
// notification.
func (s *BookingService) CreateVehicle(ctx context.Context, b domain.VehicleBooking) (domain.VehicleBooking, error) {
	if err := requireFields(map[string]string{
		"name": b.Name, "phone": b.Phone, "vehicleType": b.VehicleType,
		"pickupDate": b.PickupDate, "pickup": b.Pickup,
	}); err != nil {
		return domain.VehicleBooking{}, fmt.Errorf("service.BookingService.CreateVehicle: %w", err)
	}

	created, err := s.vehicles.Create(ctx, b)
	if err != nil {
		return domain.VehicleBooking{}, fmt.Errorf("service.BookingService.CreateVehicle: %w", err)
	}

	s.notify(ctx, "New vehicle booking",
		fmt.Sprintf("%s from %s on %s by %s (%s)",
			created.VehicleType, created.Pickup, created.PickupDate, created.Name, created.Phone))
	return created, nil
}

// ListVehicles returns vehicle bookings newest-first with the total count.
func (s *BookingService) ListVehicles(ctx context.Context, p domain.PaginationParams) ([]domain.VehicleBooking, int64, error) {
	bookings, total, err := s.vehicles.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.BookingService.ListVehicles: %w", err)
	}
	if bookings == nil {
		bookings = []domain.VehicleBooking{}
	}
	return bookings, total, nil
}

// SetVehicleStatus transitions one vehicle booking's status.
func (s *BookingService) SetVehicleStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.VehicleBooking, error) {
	if !status.Valid() {
		return domain.VehicleBooking{}, fmt.Errorf("service.BookingService.SetVehicleStatus: %w: unknown status %q", domain.ErrValidation, status)
	}
	b, err := s.vehicles.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.VehicleBooking{}, fmt.Errorf("service.BookingService.SetVehicleStatus: %w", err)
	}
	return b, nil
}

// notify fires the notification outside the request lifecycle. The booking
// is already committed; a lost notification is logged by the notifier and
// never rolls anything back.
func (s *BookingService) notify(ctx context.Context, subject, message string) {
	if s.notifier == nil {
		return
	}
	go s.notifier.Send(context.WithoutCancel(ctx), subject, message)
}

// requireFields returns ErrValidation naming the first empty field.
func requireFields(fields map[string]string) error {
	// Deterministic order for stable error messages.
	for _, name := range []string{"name", "phone", "from", "to", "travelDate", "packageTitle", "vehicleType", "pickupDate", "pickup"} {
		v, ok := fields[name]
		if ok && strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrValidation, name)
		}
	}
	return nil
}
