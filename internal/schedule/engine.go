package schedule

import (
	"fmt"
	"sort"
	"time"
)

// Status classifies a single slot of the working day.
type Status string

const (
	StatusAvailable Status = "available"
	StatusTaken     Status = "taken"
	StatusBlocked   Status = "blocked"
	StatusPast      Status = "past"
)

const (
	reasonBooked   = "Booked"
	reasonPastSlot = "This time slot has passed"
	reasonPastDate = "View only - this date has passed"
)

// SlotStatus is the engine's verdict for one slot. BoundEvent is set only for
// Taken slots; Reason is empty only for Available ones.
type SlotStatus struct {
	Time       string
	Hour24     int
	Status     Status
	BoundEvent *Event
	Reason     string
	IsBookable bool
}

type parsedEvent struct {
	Event
	hour int
}

// Compute classifies every slot of the working day for one calendar date.
//
// events must already be the selected date's events (see DayIndex.Lookup), in
// their stored order. now is supplied by the caller so the result is a pure
// function of its arguments; calling twice with identical inputs yields
// identical output.
//
// Rules apply in fixed order per slot, first match wins:
//
//  1. Taken: the first event (input order) whose parsed hour equals the slot.
//  2. Blocked: some event sits at exactly RequiredGapHours distance. The cited
//     event is the first match in time-sorted order (stable on ties), which is
//     a fixed tie-break, not a nearest-event guarantee.
//  3. Past: a date before now's calendar day is view-only in full; on today's
//     date the current hour and everything earlier has expired.
//  4. Available.
func Compute(events []Event, date string, now time.Time, cfg Config) []SlotStatus {
	if date == "" {
		return nil
	}

	day, err := time.ParseInLocation(DateFormat, date, now.Location())
	if err != nil {
		// A malformed date cannot be classified against "now"; treat it the
		// same as no selected date.
		return nil
	}

	slots := Slots(cfg)
	if len(slots) == 0 {
		return nil
	}

	parsed := make([]parsedEvent, len(events))
	for i, ev := range events {
		parsed[i] = parsedEvent{Event: ev, hour: ParseClockHour(ev.Time)}
	}

	byTime := make([]parsedEvent, len(parsed))
	copy(byTime, parsed)
	sort.SliceStable(byTime, func(i, j int) bool {
		return byTime[i].hour < byTime[j].hour
	})

	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	pastDate := day.Before(nowDay)
	today := day.Equal(nowDay)

	statuses := make([]SlotStatus, 0, len(slots))
	for _, slot := range slots {
		statuses = append(statuses, classify(slot, parsed, byTime, pastDate, today, now, cfg))
	}

	return statuses
}

func classify(slot TimeSlot, parsed, byTime []parsedEvent, pastDate, today bool, now time.Time, cfg Config) SlotStatus {
	st := SlotStatus{
		Time:   slot.Display,
		Hour24: slot.Hour24,
	}

	for _, ev := range parsed {
		if ev.hour == slot.Hour24 {
			bound := ev.Event
			st.Status = StatusTaken
			st.BoundEvent = &bound
			st.Reason = reasonBooked
			return st
		}
	}

	for _, ev := range byTime {
		if absInt(ev.hour-slot.Hour24) == cfg.RequiredGapHours {
			st.Status = StatusBlocked
			st.Reason = fmt.Sprintf("Requires a %d-hour gap from the %s booking",
				cfg.RequiredGapHours, FormatHour(ev.hour))
			return st
		}
	}

	if pastDate {
		st.Status = StatusPast
		st.Reason = reasonPastDate
		return st
	}
	if today && slot.Hour24 <= now.Hour() {
		// A slot starting at the current hour counts as expired, not in progress.
		st.Status = StatusPast
		st.Reason = reasonPastSlot
		return st
	}

	st.Status = StatusAvailable
	st.IsBookable = true
	return st
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
