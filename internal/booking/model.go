package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/kean-laurente/sanctupoint-booking/internal/schedule"
)

type EventStatus string

const (
	StatusConfirmed EventStatus = "confirmed"
	StatusCancelled EventStatus = "cancelled"
)

// Event is a stored booking. Date is a YYYY-MM-DD string and Time is the
// customer-entered clock text; both stay strings end to end because the
// availability engine parses Time itself.
type Event struct {
	ID           uuid.UUID
	Date         string
	Time         string
	Title        string
	CustomerName string
	Status       EventStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CancelledAt  *time.Time
}

// ScheduleEvent projects the stored booking into the engine's read-only view.
func (e *Event) ScheduleEvent() schedule.Event {
	return schedule.Event{
		ID:           e.ID.String(),
		Date:         e.Date,
		Time:         e.Time,
		Title:        e.Title,
		CustomerName: e.CustomerName,
	}
}

type AuditEntry struct {
	ID        int64
	EntryType string
	EventID   *uuid.UUID
	Payload   []byte
	CreatedAt time.Time
}
