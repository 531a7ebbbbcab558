package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Booking times arrive as free text ("9:00 AM", "14:30", "9 PM"), so the hour
// is extracted with a forgiving pattern rather than time.Parse.
var clockPattern = regexp.MustCompile(`^\s*(\d{1,2})(?::(\d{2}))?\s*([AaPp][Mm])?\s*$`)

// ParseClockHour normalizes a free-text clock string to an hour of day in [0,23].
//
// Minutes are accepted but discarded: scheduling runs at hourly granularity, so
// "9:15" and "9:45" both normalize to 9. A missing AM/PM marker defaults to AM
// (bare "9" means 9 AM), with 12 AM mapping to 0 and 12 PM staying 12.
//
// Empty or unparseable input returns 0. That conflates "no time recorded" with a
// literal midnight booking; it keeps the computation total at the cost of a
// known data-quality risk, which callers surface instead of failing a whole day.
func ParseClockHour(text string) int {
	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}

	meridiem := strings.ToUpper(m[3])
	if meridiem == "" {
		meridiem = "AM"
	}

	switch {
	case meridiem == "AM" && hour == 12:
		hour = 0
	case meridiem == "PM" && hour != 12:
		hour += 12
	}

	if hour < 0 || hour > 23 {
		return 0
	}

	return hour
}

// FormatHour renders an hour of day as its 12-hour slot label, e.g. 14 -> "2:00 PM".
func FormatHour(hour24 int) string {
	h := hour24 % 12
	if h == 0 {
		h = 12
	}

	suffix := "AM"
	if hour24 >= 12 {
		suffix = "PM"
	}

	return fmt.Sprintf("%d:00 %s", h, suffix)
}
