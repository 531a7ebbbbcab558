package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	redisclient "github.com/kean-laurente/sanctupoint-booking/internal/redis"
	"github.com/kean-laurente/sanctupoint-booking/internal/schedule"
)

const (
	AuditBookingCreated   = "BOOKING_CREATED"
	AuditBookingCancelled = "BOOKING_CANCELLED"
)

var (
	ErrSlotTaken           = errors.New("slot already has a confirmed booking")
	ErrSlotNotBookable     = errors.New("slot is not bookable")
	ErrSlotBeingBooked     = errors.New("slot is currently being booked, please retry")
	ErrOutsideWorkingHours = errors.New("requested time is outside working hours")
	ErrInvalidDate         = errors.New("date must be a YYYY-MM-DD calendar date")
)

type Service struct {
	repo     Repository
	locker   redisclient.Locker
	cache    redisclient.AvailabilityCache
	schedCfg schedule.Config
}

func NewService(repo Repository, locker redisclient.Locker, cache redisclient.AvailabilityCache, schedCfg schedule.Config) *Service {
	return &Service{
		repo:     repo,
		locker:   locker,
		cache:    cache,
		schedCfg: schedCfg,
	}
}

// Availability classifies every slot of the working day for date. now comes
// from the caller so the engine stays a pure function; this layer only adds
// event loading and the Redis memo around it.
func (s *Service) Availability(ctx context.Context, date string, now time.Time) ([]schedule.SlotStatus, error) {
	if _, err := time.Parse(schedule.DateFormat, date); err != nil {
		return nil, ErrInvalidDate
	}

	if statuses, ok := s.cache.Get(ctx, date, now); ok {
		return statuses, nil
	}

	events, err := s.activeDayEvents(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("load events for %s: %w", date, err)
	}

	statuses := schedule.Compute(events, date, now, s.schedCfg)
	s.cache.Set(ctx, date, now, statuses)

	return statuses, nil
}

// Book reserves an Available slot. The availability re-check runs inside a
// per-slot distributed lock so concurrent requests for the same slot cannot
// both pass it.
func (s *Service) Book(ctx context.Context, date, timeText, title, customerName string, now time.Time) (*Event, error) {
	if _, err := time.Parse(schedule.DateFormat, date); err != nil {
		return nil, ErrInvalidDate
	}

	hour := schedule.ParseClockHour(timeText)
	if hour < s.schedCfg.WorkStartHour || hour >= s.schedCfg.WorkEndHour {
		return nil, ErrOutsideWorkingHours
	}

	var created *Event

	err := s.locker.WithSlotLock(ctx, date, hour, func(lockCtx context.Context) error {
		events, err := s.activeDayEvents(lockCtx, date)
		if err != nil {
			return fmt.Errorf("load events for %s: %w", date, err)
		}

		statuses := schedule.Compute(events, date, now, s.schedCfg)
		slot, ok := slotAtHour(statuses, hour)
		if !ok {
			return ErrOutsideWorkingHours
		}

		switch {
		case slot.Status == schedule.StatusTaken:
			return ErrSlotTaken
		case !slot.IsBookable:
			return fmt.Errorf("%w: %s", ErrSlotNotBookable, slot.Reason)
		}

		ev, err := s.repo.Create(lockCtx, Event{
			Date:         date,
			Time:         timeText,
			Title:        title,
			CustomerName: customerName,
		})
		if err != nil {
			return fmt.Errorf("create event: %w", err)
		}

		created = ev

		s.audit(lockCtx, ev.ID, AuditBookingCreated, map[string]any{
			"date": date,
			"time": timeText,
			"hour": hour,
		})

		return nil
	})

	if err != nil {
		if errors.Is(err, redisclient.ErrLockNotAcquired) {
			return nil, ErrSlotBeingBooked
		}
		return nil, err
	}

	s.cache.Invalidate(ctx, date)

	return created, nil
}

// Cancel flips a confirmed booking to cancelled and frees its slot.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*Event, error) {
	ev, err := s.repo.CancelEvent(ctx, id)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("cancel event: %w", err)
	}

	s.audit(ctx, ev.ID, AuditBookingCancelled, map[string]any{
		"date": ev.Date,
		"time": ev.Time,
	})

	s.cache.Invalidate(ctx, ev.Date)

	return ev, nil
}

// DayEvents returns all of a date's events, cancelled included, for the admin view.
func (s *Service) DayEvents(ctx context.Context, date string) ([]Event, error) {
	if _, err := time.Parse(schedule.DateFormat, date); err != nil {
		return nil, ErrInvalidDate
	}

	events, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list events for %s: %w", date, err)
	}
	return events, nil
}

// EventsByDay groups the active events of a date range by calendar date, for
// calendar overviews.
func (s *Service) EventsByDay(ctx context.Context, from, to string) (schedule.DayIndex, error) {
	if _, err := time.Parse(schedule.DateFormat, from); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse(schedule.DateFormat, to); err != nil {
		return nil, ErrInvalidDate
	}

	events, err := s.repo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list events %s..%s: %w", from, to, err)
	}

	active := make([]schedule.Event, 0, len(events))
	for i := range events {
		if events[i].Status == StatusCancelled {
			continue
		}
		active = append(active, events[i].ScheduleEvent())
	}

	return schedule.IndexByDate(active), nil
}

func (s *Service) activeDayEvents(ctx context.Context, date string) ([]schedule.Event, error) {
	stored, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	events := make([]schedule.Event, 0, len(stored))
	for i := range stored {
		if stored[i].Status == StatusCancelled {
			continue
		}
		events = append(events, stored[i].ScheduleEvent())
	}

	return events, nil
}

func slotAtHour(statuses []schedule.SlotStatus, hour int) (schedule.SlotStatus, bool) {
	for _, st := range statuses {
		if st.Hour24 == hour {
			return st, true
		}
	}
	return schedule.SlotStatus{}, false
}

func (s *Service) audit(ctx context.Context, eventID uuid.UUID, entryType string, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("failed to marshal audit payload for %s: %v", entryType, err)
		data = nil
	}

	evID := eventID

	entry := AuditEntry{
		EntryType: entryType,
		EventID:   &evID,
		Payload:   data,
		CreatedAt: time.Now(),
	}

	if err := s.repo.InsertAudit(ctx, entry); err != nil {
		log.Printf("failed to insert audit entry %s for event %s: %v", entryType, eventID, err)
	}
}
