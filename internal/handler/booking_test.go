package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripora/portal/backend/internal/domain"
)

func TestCreateTicketBooking_Returns201(t *testing.T) {
	var gotBooking domain.TicketBooking
	bookings := &mockBookings{
		CreateTicketFn: func(ctx context.Context, b domain.TicketBooking) (domain.TicketBooking, error) {
			gotBooking = b
			b.ID = uuid.New()
			b.Status = domain.BookingPending
			return b, nil
		},
	}
	r := newTestRouter(nil, nil, bookings)

	body := `{
		"mode": "train",
		"name": "Asha Nair",
		"phone": "+91 98470 12345",
		"from": "Kochi",
		"to": "Chennai",
		"travelDate": "2026-09-15",
		"passengers": 2
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/tickets", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Asha Nair", gotBooking.Name)
	assert.Equal(t, domain.ModeTrain, gotBooking.Mode)

	var created domain.TicketBooking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, domain.BookingPending, created.Status)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCreateTicketBooking_ValidationError_Maps422(t *testing.T) {
	bookings := &mockBookings{
		CreateTicketFn: func(ctx context.Context, b domain.TicketBooking) (domain.TicketBooking, error) {
			return domain.TicketBooking{}, fmt.Errorf("service: %w: phone is required", domain.ErrValidation)
		},
	}
	r := newTestRouter(nil, nil, bookings)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/tickets", strings.NewReader(`{"mode":"bus"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "phone is required")
}

func TestListTicketBookings_PagedEnvelope(t *testing.T) {
	var gotParams domain.PaginationParams
	bookings := &mockBookings{
		ListTicketsFn: func(ctx context.Context, p domain.PaginationParams) ([]domain.TicketBooking, int64, error) {
			gotParams = p
			return []domain.TicketBooking{{Name: "Asha Nair"}, {Name: "Vikram Rao"}}, 42, nil
		},
	}
	r := newTestRouter(nil, nil, bookings)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings/tickets?page=3&limit=10", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, gotParams.Page)
	assert.Equal(t, 10, gotParams.Limit)

	var envelope struct {
		Data       []domain.TicketBooking `json:"data"`
		Pagination struct {
			Page  int `json:"page"`
			Limit int `json:"limit"`
			Total int `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 2)
	assert.Equal(t, 3, envelope.Pagination.Page)
	assert.Equal(t, 10, envelope.Pagination.Limit)
	assert.Equal(t, 42, envelope.Pagination.Total)
}

func TestSetTourBookingStatus_Returns200(t *testing.T) {
	id := uuid.New()
	var gotStatus domain.BookingStatus
	bookings := &mockBookings{
		SetTourStatusFn: func(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) (domain.TourBooking, error) {
			gotStatus = status
			return domain.TourBooking{ID: bookingID, Status: status}, nil
		},
	}
	r := newTestRouter(nil, nil, bookings)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/bookings/tours/"+id.String()+"/status",
		strings.NewReader(`{"status":"confirmed"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.BookingConfirmed, gotStatus)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
}

func TestSetVehicleBookingStatus_InvalidStatus_Maps422(t *testing.T) {
	bookings := &mockBookings{
		SetVehicleStatusFn: func(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (domain.VehicleBooking, error) {
			return domain.VehicleBooking{}, fmt.Errorf("service: %w: unknown status %q", domain.ErrValidation, status)
		},
	}
	r := newTestRouter(nil, nil, bookings)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/bookings/vehicles/"+uuid.NewString()+"/status",
		strings.NewReader(`{"status":"maybe"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown status")
}
