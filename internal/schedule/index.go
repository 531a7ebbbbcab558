package schedule

// Event is the read-only view of a booking as the availability engine sees it.
// ID is opaque, Date is a YYYY-MM-DD string, and Time is free text handled by
// ParseClockHour. Title and CustomerName pass through for display only.
type Event struct {
	ID           string
	Date         string
	Time         string
	Title        string
	CustomerName string
}

// DayIndex groups events by their calendar date string.
type DayIndex map[string][]Event

// IndexByDate builds a DayIndex from a flat event list. Events keep their input
// relative order within each date group.
func IndexByDate(events []Event) DayIndex {
	idx := make(DayIndex)
	for _, ev := range events {
		idx[ev.Date] = append(idx[ev.Date], ev)
	}
	return idx
}

// Lookup returns the events recorded for date, empty when the date is absent.
func (idx DayIndex) Lookup(date string) []Event {
	return idx[date]
}
