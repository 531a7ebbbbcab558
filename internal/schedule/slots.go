package schedule

// DateFormat is the calendar-date layout used everywhere an Event carries a date.
const DateFormat = "2006-01-02"

// SlotGranularityMinutes fixes the scheduling granularity. All hour comparisons
// in this package assume one slot per hour; changing granularity means revisiting
// ParseClockHour's minute handling, not just this constant.
const SlotGranularityMinutes = 60

// Config holds the scheduling rules for a working day. The hour range is
// half-open: WorkStartHour is the first bookable slot, WorkEndHour the first
// hour past the working day.
type Config struct {
	WorkStartHour    int
	WorkEndHour      int
	RequiredGapHours int
}

// TimeSlot is one bookable hour of the working day.
type TimeSlot struct {
	Hour24  int
	Display string
}

// Slots expands cfg into the ordered slot scaffold for a working day, one entry
// per hour in [WorkStartHour, WorkEndHour). A degenerate range yields no slots.
func Slots(cfg Config) []TimeSlot {
	if cfg.WorkEndHour <= cfg.WorkStartHour {
		return nil
	}

	slots := make([]TimeSlot, 0, cfg.WorkEndHour-cfg.WorkStartHour)
	for h := cfg.WorkStartHour; h < cfg.WorkEndHour; h++ {
		slots = append(slots, TimeSlot{
			Hour24:  h,
			Display: FormatHour(h),
		})
	}

	return slots
}
