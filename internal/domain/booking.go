package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the admin-controlled state of a booking record.
// Bookings are append-only: the public forms create them as pending and the
// admin moves them between statuses; nothing ever deletes them.
type BookingStatus string

// Booking status values.
const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the fixed status values.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// TravelMode distinguishes the ticket booking sub-kinds.
type TravelMode string

// Ticket booking travel modes.
const (
	ModeBus    TravelMode = "bus"
	ModeTrain  TravelMode = "train"
	ModeFlight TravelMode = "flight"
)

// Valid reports whether m is one of the fixed travel modes.
func (m TravelMode) Valid() bool {
	switch m {
	case ModeBus, ModeTrain, ModeFlight:
		return true
	}
	return false
}

// TicketBooking is a bus/train/flight ticket request from the public site.
type TicketBooking struct {
	ID         uuid.UUID     `json:"id"`
	Mode       TravelMode    `json:"mode"`
	Name       string        `json:"name"`
	Phone      string        `json:"phone"`
	Email      string        `json:"email,omitempty"`
	From       string        `json:"from"`
	To         string        `json:"to"`
	TravelDate string        `json:"travelDate"`
	Passengers int           `json:"passengers"`
	Notes      string        `json:"notes,omitempty"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// TourBooking is a trip-package inquiry from the public site.
// PackageTitle/PackageLocation are copied from the package at submit time;
// there is no foreign key back to trip_packages, so renaming or deleting a
// package leaves old bookings untouched.
type TourBooking struct {
	ID              uuid.UUID     `json:"id"`
	Name            string        `json:"name"`
	Phone           string        `json:"phone"`
	Email           string        `json:"email,omitempty"`
	PackageTitle    string        `json:"packageTitle"`
	PackageLocation string        `json:"packageLocation,omitempty"`
	TravelDate      string        `json:"travelDate,omitempty"`
	Guests          int           `json:"guests"`
	Notes           string        `json:"notes,omitempty"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// VehicleBooking is a vehicle rental request from the public site.
type VehicleBooking struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Phone       string        `json:"phone"`
	VehicleType string        `json:"vehicleType"`
	PickupDate  string        `json:"pickupDate"`
	ReturnDate  string        `json:"returnDate,omitempty"`
	Pickup      string        `json:"pickup"`
	Drop        string        `json:"drop,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
