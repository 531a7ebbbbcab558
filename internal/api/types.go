package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/kean-laurente/sanctupoint-booking/internal/booking"
	"github.com/kean-laurente/sanctupoint-booking/internal/schedule"
)

type CreateBookingRequest struct {
	Date         string `json:"date"`
	Time         string `json:"time"`
	Title        string `json:"title"`
	CustomerName string `json:"customer_name"`
}

type EventResponse struct {
	ID           uuid.UUID  `json:"id"`
	Date         string     `json:"date"`
	Time         string     `json:"time"`
	Title        string     `json:"title"`
	CustomerName string     `json:"customer_name"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
}

type SlotResponse struct {
	Time       string            `json:"time"`
	Hour24     int               `json:"hour24"`
	Status     string            `json:"status"`
	Reason     string            `json:"reason,omitempty"`
	Booking    *SlotEventSummary `json:"booking,omitempty"`
	IsBookable bool              `json:"is_bookable"`
}

// SlotEventSummary is the slim event view attached to a taken slot.
type SlotEventSummary struct {
	ID           string `json:"id"`
	Time         string `json:"time"`
	Title        string `json:"title"`
	CustomerName string `json:"customer_name"`
}

type AvailabilityResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type DayEventsResponse struct {
	Date   string          `json:"date"`
	Events []EventResponse `json:"events"`
}

type OverviewResponse struct {
	From string                     `json:"from"`
	To   string                     `json:"to"`
	Days map[string][]EventResponse `json:"days"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func toEventResponse(ev booking.Event) EventResponse {
	return EventResponse{
		ID:           ev.ID,
		Date:         ev.Date,
		Time:         ev.Time,
		Title:        ev.Title,
		CustomerName: ev.CustomerName,
		Status:       string(ev.Status),
		CreatedAt:    ev.CreatedAt,
		CancelledAt:  ev.CancelledAt,
	}
}

func toSlotResponse(st schedule.SlotStatus) SlotResponse {
	resp := SlotResponse{
		Time:       st.Time,
		Hour24:     st.Hour24,
		Status:     string(st.Status),
		Reason:     st.Reason,
		IsBookable: st.IsBookable,
	}

	if st.BoundEvent != nil {
		resp.Booking = &SlotEventSummary{
			ID:           st.BoundEvent.ID,
			Time:         st.BoundEvent.Time,
			Title:        st.BoundEvent.Title,
			CustomerName: st.BoundEvent.CustomerName,
		}
	}

	return resp
}
