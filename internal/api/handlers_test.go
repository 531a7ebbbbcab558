package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kean-laurente/sanctupoint-booking/internal/booking"
	"github.com/kean-laurente/sanctupoint-booking/internal/schedule"
)

type stubService struct {
	statuses []schedule.SlotStatus
	event    *booking.Event
	err      error
}

func (s *stubService) Availability(_ context.Context, _ string, _ time.Time) ([]schedule.SlotStatus, error) {
	return s.statuses, s.err
}

func (s *stubService) Book(_ context.Context, _, _, _, _ string, _ time.Time) (*booking.Event, error) {
	return s.event, s.err
}

func (s *stubService) Cancel(_ context.Context, _ uuid.UUID) (*booking.Event, error) {
	return s.event, s.err
}

func (s *stubService) DayEvents(_ context.Context, _ string) ([]booking.Event, error) {
	if s.event == nil {
		return nil, s.err
	}
	return []booking.Event{*s.event}, s.err
}

func (s *stubService) EventsByDay(_ context.Context, _, _ string) (schedule.DayIndex, error) {
	return schedule.DayIndex{}, s.err
}

func TestAvailabilityHandler_MissingDate(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability", nil)

	availabilityHandler(&stubService{})(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAvailabilityHandler_InvalidDate(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability?date=tomorrow", nil)

	availabilityHandler(&stubService{err: booking.ErrInvalidDate})(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid_date", body.Error)
}

func TestAvailabilityHandler_ResponseShape(t *testing.T) {
	svc := &stubService{statuses: []schedule.SlotStatus{
		{Time: "8:00 AM", Hour24: 8, Status: schedule.StatusAvailable, IsBookable: true},
		{
			Time:       "9:00 AM",
			Hour24:     9,
			Status:     schedule.StatusTaken,
			Reason:     "Booked",
			BoundEvent: &schedule.Event{ID: "e1", Time: "9:00 AM", Title: "Baptism", CustomerName: "Ana Reyes"},
		},
	}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability?date=2026-09-10", nil)

	availabilityHandler(svc)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-09-10", body.Date)
	require.Len(t, body.Slots, 2)

	assert.True(t, body.Slots[0].IsBookable)
	assert.Nil(t, body.Slots[0].Booking)

	assert.Equal(t, "taken", body.Slots[1].Status)
	require.NotNil(t, body.Slots[1].Booking)
	assert.Equal(t, "Ana Reyes", body.Slots[1].Booking.CustomerName)
}

func TestCreateBookingHandler_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", "{"},
		{"missing title", `{"date":"2026-09-10","time":"10:00 AM","customer_name":"Ana"}`},
		{"missing customer", `{"date":"2026-09-10","time":"10:00 AM","title":"Baptism"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tc.body))

			createBookingHandler(&stubService{})(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateBookingHandler_ConflictMapping(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantTag  string
	}{
		{booking.ErrSlotTaken, http.StatusConflict, "slot_taken"},
		{booking.ErrSlotNotBookable, http.StatusConflict, "slot_not_bookable"},
		{booking.ErrSlotBeingBooked, http.StatusConflict, "slot_being_booked"},
		{booking.ErrOutsideWorkingHours, http.StatusUnprocessableEntity, "outside_working_hours"},
	}

	for _, tc := range cases {
		t.Run(tc.wantTag, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/bookings",
				strings.NewReader(`{"date":"2026-09-10","time":"10:00 AM","title":"Baptism","customer_name":"Ana"}`))

			createBookingHandler(&stubService{err: tc.err})(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantTag, body.Error)
		})
	}
}

func TestCreateBookingHandler_Created(t *testing.T) {
	ev := &booking.Event{
		ID:           uuid.New(),
		Date:         "2026-09-10",
		Time:         "10:00 AM",
		Title:        "Baptism",
		CustomerName: "Ana Reyes",
		Status:       booking.StatusConfirmed,
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings",
		strings.NewReader(`{"date":"2026-09-10","time":"10:00 AM","title":"Baptism","customer_name":"Ana Reyes"}`))

	createBookingHandler(&stubService{event: ev})(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body EventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ev.ID, body.ID)
	assert.Equal(t, "confirmed", body.Status)
}

func TestCancelBookingHandler_InvalidID(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/bookings/{id}/cancel", cancelBookingHandler(&stubService{}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/not-a-uuid/cancel", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelBookingHandler_NotFound(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/bookings/{id}/cancel", cancelBookingHandler(&stubService{err: booking.ErrEventNotFound}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/"+uuid.NewString()+"/cancel", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
