package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripora/portal/backend/internal/domain"
)

// Booking tables are append-only: rows are inserted by the public forms and
// only their status column is ever mutated afterwards, by the admin. There
// is deliberately no Delete on any booking repo.

// TicketBookingRepo persists bus/train/flight ticket requests.
type TicketBookingRepo interface {
	Create(ctx context.Context, b domain.TicketBooking) (domain.TicketBooking, error)
	// ListPaged returns bookings newest-first plus the total row count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.TicketBooking, int64, error)
	// UpdateStatus transitions the status of one booking.
	// Returns domain.ErrNotFound if the ID is unknown.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.TicketBooking, error)
}

// TourBookingRepo persists trip-package inquiries.
type TourBookingRepo interface {
	Create(ctx context.Context, b domain.TourBooking) (domain.TourBooking, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.TourBooking, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.TourBooking, error)
}

// VehicleBookingRepo persists vehicle rental requests.
type VehicleBookingRepo interface {
	Create(ctx context.Context, b domain.VehicleBooking) (domain.VehicleBooking, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.VehicleBooking, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.VehicleBooking, error)
}

// --- ticket bookings ---------------------------------------------------------

type pgTicketBookingRepo struct {
	db db
}

// NewTicketBookingRepo constructs a TicketBookingRepo backed by db.
func NewTicketBookingRepo(db db) TicketBookingRepo {
	return &pgTicketBookingRepo{db: db}
}

const ticketColumns = `
	id, mode, name, phone, email, origin, destination, travel_date,
	passengers, notes, status, created_at, updated_at`

func (r *pgTicketBookingRepo) Create(ctx context.Context, b domain.TicketBooking) (domain.TicketBooking, error) {
	q := `
		INSERT INTO ticket_bookings (
			mode, name, phone, email, origin, destination, travel_date,
			passengers, notes, status)
		VALUES (
			@mode, @name, @phone, @email, @origin, @destination, @travel_date,
			@passengers, @notes, @status)
		RETURNING` + ticketColumns

	args := pgx.NamedArgs{
		"mode":        string(b.Mode),
		"name":        b.Name,
		"phone":       b.Phone,
		"email":       b.Email,
		"origin":      b.From,
		"destination": b.To,
		"travel_date": b.TravelDate,
		"passengers":  b.Passengers,
		"notes":       b.Notes,
		"status":      string(domain.BookingPending),
	}

	result, err := scanTicketBooking(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.TicketBooking{}, fmt.Errorf("repo.TicketBookingRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTicketBookingRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.TicketBooking, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM ticket_bookings`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TicketBookingRepo.ListPaged: count: %w", err)
	}

	q := `SELECT` + ticketColumns + `
		FROM ticket_bookings
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TicketBookingRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var bookings []domain.TicketBooking
	for rows.Next() {
		b, err := scanTicketBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TicketBookingRepo.ListPaged: scan: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TicketBookingRepo.ListPaged: rows: %w", err)
	}

	return bookings, total, nil
}

func (r *pgTicketBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.TicketBooking, error) {
	q := `
		UPDATE ticket_bookings
		SET status = @status, updated_at = now()
		WHERE id = @id
		RETURNING` + ticketColumns

	result, err := scanTicketBooking(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "status": string(status)}))
	if err != nil {
		return domain.TicketBooking{}, fmt.Errorf("repo.TicketBookingRepo.UpdateStatus: %w", err)
	}
	return result, nil
}

func scanTicketBooking(s scanner) (domain.TicketBooking, error) {
	var (
		b      domain.TicketBooking
		id     pgtype.UUID
		mode   string
		status string
	)

	err := s.Scan(&id, &mode, &b.Name, &b.Phone, &b.Email, &b.From, &b.To,
		&b.TravelDate, &b.Passengers, &b.Notes, &status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TicketBooking{}, domain.ErrNotFound
		}
		return domain.TicketBooking{}, err
	}

	b.ID = uuid.UUID(id.Bytes)
	b.Mode = domain.TravelMode(mode)
	b.Status = domain.BookingStatus(status)
	return b, nil
}

// --- tour bookings -------------------------------------------------------------

type pgTourBookingRepo struct {
	db db
}

// NewTourBookingRepo constructs a TourBookingRepo backed by db.
func NewTourBookingRepo(db db) TourBookingRepo {
	return &pgTourBookingRepo{db: db}
}

const tourColumns = `
	id, name, phone, email, package_title, package_location, travel_date,
	guests, notes, status, created_at, updated_at`

func (r *pgTourBookingRepo) Create(ctx context.Context, b domain.TourBooking) (domain.TourBooking, error) {
	q := `
		INSERT INTO tour_bookings (
			name, phone, email, package_title, package_location, travel_date,
			guests, notes, status)
		VALUES (
			@name, @phone, @email, @package_title, @package_location,
			@travel_date, @guests, @notes, @status)
		RETURNING` + tourColumns

	args := pgx.NamedArgs{
		"name":             b.Name,
		"phone":            b.Phone,
		"email":            b.Email,
		"package_title":    b.PackageTitle,
		"package_location": b.PackageLocation,
		"travel_date":      b.TravelDate,
		"guests":           b.Guests,
		"notes":            b.Notes,
		"status":           string(domain.BookingPending),
	}

	result, err := scanTourBooking(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.TourBooking{}, fmt.Errorf("repo.TourBookingRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTourBookingRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.TourBooking, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM tour_bookings`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TourBookingRepo.ListPaged: count: %w", err)
	}

	q := `SELECT` + tourColumns + `
		FROM tour_bookings
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TourBookingRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var bookings []domain.TourBooking
	for rows.Next() {
		b, err := scanTourBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TourBookingRepo.ListPaged: scan: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TourBookingRepo.ListPaged: rows: %w", err)
	}

	return bookings, total, nil
}

func (r *pgTourBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.TourBooking, error) {
	q := `
		UPDATE tour_bookings
		SET status = @status, updated_at = now()
		WHERE id = @id
		RETURNING` + tourColumns

	result, err := scanTourBooking(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "status": string(status)}))
	if err != nil {
		return domain.TourBooking{}, fmt.Errorf("repo.TourBookingRepo.UpdateStatus: %w", err)
	}
	return result, nil
}

func scanTourBooking(s scanner) (domain.TourBooking, error) {
	var (
		b      domain.TourBooking
		id     pgtype.UUID
		status string
	)

	err := s.Scan(&id, &b.Name, &b.Phone, &b.Email, &b.PackageTitle,
		&b.PackageLocation, &b.TravelDate, &b.Guests, &b.Notes, &status,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TourBooking{}, domain.ErrNotFound
		}
		return domain.TourBooking{}, err
	}

	b.ID = uuid.UUID(id.Bytes)
	b.Status = domain.BookingStatus(status)
	return b, nil
}

// --- vehicle bookings ----------------------------------------------------------

type pgVehicleBookingRepo struct {
	db db
}

// NewVehicleBookingRepo constructs a VehicleBookingRepo backed by db.
func NewVehicleBookingRepo(db db) VehicleBookingRepo {
	return &pgVehicleBookingRepo{db: db}
}

const vehicleColumns = `
	id, name, phone, vehicle_type, pickup_date, return_date, pickup_point,
	drop_point, notes, status, created_at, updated_at`

func (r *pgVehicleBookingRepo) Create(ctx context.Context, b domain.VehicleBooking) (domain.VehicleBooking, error) {
	q := `
		INSERT INTO vehicle_bookings (
			name, phone, vehicle_type, pickup_date, return_date, pickup_point,
			drop_point, notes, status)
		VALUES (
			@name, @phone, @vehicle_type, @pickup_date, @return_date,
			@pickup_point, @drop_point, @notes, @status)
		RETURNING` + vehicleColumns

	args := pgx.NamedArgs{
		"name":         b.Name,
		"phone":        b.Phone,
		"vehicle_type": b.VehicleType,
		"pickup_date":  b.PickupDate,
		"return_date":  b.ReturnDate,
		"pickup_point": b.Pickup,
		"drop_point":   b.Drop,
		"notes":        b.Notes,
		"status":       string(domain.BookingPending),
	}

	result, err := scanVehicleBooking(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.VehicleBooking{}, fmt.Errorf("repo.VehicleBookingRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgVehicleBookingRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.VehicleBooking, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM vehicle_bookings`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.VehicleBookingRepo.ListPaged: count: %w", err)
	}

	q := `SELECT` + vehicleColumns + `
		FROM vehicle_bookings
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.VehicleBookingRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var bookings []domain.VehicleBooking
	for rows.Next() {
		b, err := scanVehicleBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.VehicleBookingRepo.ListPaged: scan: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.VehicleBookingRepo.ListPaged: rows: %w", err)
	}

	return bookings, total, nil
}

func (r *pgVehicleBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.VehicleBooking, error) {
	q := `
		UPDATE vehicle_bookings
		SET status = @status, updated_at = now()
		WHERE id = @id
		RETURNING` + vehicleColumns

	result, err := scanVehicleBooking(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "status": string(status)}))
	if err != nil {
		return domain.VehicleBooking{}, fmt.Errorf("repo.VehicleBookingRepo.UpdateStatus: %w", err)
	}
	return result, nil
}

func scanVehicleBooking(s scanner) (domain.VehicleBooking, error) {
	var (
		b      domain.VehicleBooking
		id     pgtype.UUID
		status string
	)

	err := s.Scan(&id, &b.Name, &b.Phone, &b.VehicleType, &b.PickupDate,
		&b.ReturnDate, &b.Pickup, &b.Drop, &b.Notes, &status,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.VehicleBooking{}, domain.ErrNotFound
		}
		return domain.VehicleBooking{}, err
	}

	b.ID = uuid.UUID(id.Bytes)
	b.Status = domain.BookingStatus(status)
	return b, nil
}
