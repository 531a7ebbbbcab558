package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kean-laurente/sanctupoint-booking/internal/booking"
	"github.com/kean-laurente/sanctupoint-booking/internal/schedule"
)

// BookingService is the service surface the handlers need. "now" is resolved
// here, at the edge, and threaded down so everything below stays clock-free.
type BookingService interface {
	Availability(ctx context.Context, date string, now time.Time) ([]schedule.SlotStatus, error)
	Book(ctx context.Context, date, timeText, title, customerName string, now time.Time) (*booking.Event, error)
	Cancel(ctx context.Context, id uuid.UUID) (*booking.Event, error)
	DayEvents(ctx context.Context, date string) ([]booking.Event, error)
	EventsByDay(ctx context.Context, from, to string) (schedule.DayIndex, error)
}

func availabilityHandler(svc BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			writeError(w, http.StatusBadRequest, "missing_date", "date query parameter is required")
			return
		}

		statuses, err := svc.Availability(r.Context(), date, time.Now())
		if err != nil {
			handleServiceError(w, err)
			return
		}

		resp := AvailabilityResponse{
			Date:  date,
			Slots: make([]SlotResponse, 0, len(statuses)),
		}
		for _, st := range statuses {
			resp.Slots = append(resp.Slots, toSlotResponse(st))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func createBookingHandler(svc BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		if strings.TrimSpace(req.Title) == "" {
			writeError(w, http.StatusBadRequest, "missing_title", "title is required")
			return
		}
		if strings.TrimSpace(req.CustomerName) == "" {
			writeError(w, http.StatusBadRequest, "missing_customer_name", "customer_name is required")
			return
		}

		ev, err := svc.Book(r.Context(), req.Date, req.Time, req.Title, req.CustomerName, time.Now())
		if err != nil {
			handleServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toEventResponse(*ev))
	}
}

func cancelBookingHandler(svc BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "id")
		id, err := uuid.Parse(idStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_booking_id", "id must be a valid UUID")
			return
		}

		ev, err := svc.Cancel(r.Context(), id)
		if err != nil {
			handleServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toEventResponse(*ev))
	}
}

func dayEventsHandler(svc BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			writeError(w, http.StatusBadRequest, "missing_date", "date query parameter is required")
			return
		}

		events, err := svc.DayEvents(r.Context(), date)
		if err != nil {
			handleServiceError(w, err)
			return
		}

		resp := DayEventsResponse{
			Date:   date,
			Events: make([]EventResponse, 0, len(events)),
		}
		for _, ev := range events {
			resp.Events = append(resp.Events, toEventResponse(ev))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func overviewHandler(svc BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if from == "" || to == "" {
			writeError(w, http.StatusBadRequest, "missing_range", "from and to query parameters are required")
			return
		}

		idx, err := svc.EventsByDay(r.Context(), from, to)
		if err != nil {
			handleServiceError(w, err)
			return
		}

		days := make(map[string][]EventResponse, len(idx))
		for date, events := range idx {
			out := make([]EventResponse, 0, len(events))
			for _, ev := range events {
				id, _ := uuid.Parse(ev.ID)
				out = append(out, EventResponse{
					ID:           id,
					Date:         ev.Date,
					Time:         ev.Time,
					Title:        ev.Title,
					CustomerName: ev.CustomerName,
					Status:       string(booking.StatusConfirmed),
				})
			}
			days[date] = out
		}

		writeJSON(w, http.StatusOK, OverviewResponse{From: from, To: to, Days: days})
	}
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, "invalid_date", err.Error())
	case errors.Is(err, booking.ErrEventNotFound):
		writeError(w, http.StatusNotFound, "booking_not_found", err.Error())
	case errors.Is(err, booking.ErrOutsideWorkingHours):
		writeError(w, http.StatusUnprocessableEntity, "outside_working_hours", err.Error())
	case errors.Is(err, booking.ErrSlotTaken):
		writeError(w, http.StatusConflict, "slot_taken", err.Error())
	case errors.Is(err, booking.ErrSlotNotBookable):
		writeError(w, http.StatusConflict, "slot_not_bookable", err.Error())
	case errors.Is(err, booking.ErrSlotBeingBooked):
		writeError(w, http.StatusConflict, "slot_being_booked", "slot is currently being booked, please retry shortly")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
