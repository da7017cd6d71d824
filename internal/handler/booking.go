package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tripora/portal/backend/internal/domain"
)

// pageResponse wraps a paged admin list.
type pageResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination pagination `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// pageParams reads optional ?page= and ?limit= query parameters.
func pageParams(r *http.Request) domain.PaginationParams {
	var page, limit *int
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		page = &v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		limit = &v
	}
	return domain.NewPaginationParams(page, limit)
}

// statusBody reads the {"status": "..."} body of a status transition.
func statusBody(r *http.Request) (domain.BookingStatus, bool) {
	var body struct {
		Status domain.BookingStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return "", false
	}
	return body.Status, true
}

// CreateTicketBooking handles POST /api/bookings/tickets.
func (s *Server) CreateTicketBooking(w http.ResponseWriter, r *http.Request) {
	var b domain.TicketBooking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeRequestError(w, "request body is required")
		return
	}

	created, err := s.bookings.CreateTicket(r.Context(), b)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListTicketBookings handles GET /api/admin/bookings/tickets.
func (s *Server) ListTicketBookings(w http.ResponseWriter, r *http.Request) {
	params := pageParams(r)
	bookings, total, err := s.bookings.ListTickets(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageResponse[domain.TicketBooking]{
		Data:       bookings,
		Pagination: pagination{Page: params.Page, Limit: params.Limit, Total: int(total)},
	})
}

// SetTicketBookingStatus handles PATCH /api/admin/bookings/tickets/{id}/status.
func (s *Server) SetTicketBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeRequestError(w, "invalid booking id")
		return
	}
	status, ok := statusBody(r)
	if !ok {
		writeRequestError(w, "request body is required")
		return
	}

	updated, err := s.bookings.SetTicketStatus(r.Context(), id, status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// CreateTourBooking handles POST /api/bookings/tours.
func (s *Server) CreateTourBooking(w http.ResponseWriter, r *http.Request) {
	var b domain.TourBooking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeRequestError(w, "request body is required")
		return
	}

	created, err := s.bookings.CreateTour(r.Context(), b)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListTourBookings handles GET /api/admin/bookings/tours.
func (s *Server) ListTourBookings(w http.ResponseWriter, r *http.Request) {
	params := pageParams(r)
	bookings, total, err := s.bookings.ListTours(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageResponse[domain.TourBooking]{
		Data:       bookings,
		Pagination: pagination{Page: params.Page, Limit: params.Limit, Total: int(total)},
	})
}

// SetTourBookingStatus handles PATCH /api/admin/bookings/tours/{id}/status.
func (s *Server) SetTourBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeRequestError(w, "invalid booking id")
		return
	}
	status, ok := statusBody(r)
	if !ok {
		writeRequestError(w, "request body is required")
		return
	}

	updated, err := s.bookings.SetTourStatus(r.Context(), id, status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// CreateVehicleBooking handles POST /api/bookings/vehicles.
func (s *Server) CreateVehicleBooking(w http.ResponseWriter, r *http.Request) {
	var b domain.VehicleBooking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeRequestError(w, "request body is required")
		return
	}

	created, err := s.bookings.CreateVehicle(r.Context(), b)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListVehicleBookings handles GET /api/admin/bookings/vehicles.
func (s *Server) ListVehicleBookings(w http.ResponseWriter, r *http.Request) {
	params := pageParams(r)
	bookings, total, err := s.bookings.ListVehicles(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageResponse[domain.VehicleBooking]{
		Data:       bookings,
		Pagination: pagination{Page: params.Page, Limit: params.Limit, Total: int(total)},
	})
}

// SetVehicleBookingStatus handles PATCH /api/admin/bookings/vehicles/{id}/status.
func (s *Server) SetVehicleBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeRequestError(w, "invalid booking id")
		return
	}
	status, ok := statusBody(r)
	if !ok {
		writeRequestError(w, "request body is required")
		return
	}

	updated, err := s.bookings.SetVehicleStatus(r.Context(), id, status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
