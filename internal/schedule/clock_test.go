package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClockHour(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"morning with minutes", "9:00 AM", 9},
		{"twenty four hour", "14:30", 14},
		{"bare hour pm", "9 PM", 21},
		{"bare hour defaults to am", "9", 9},
		{"lowercase marker", "7:15 pm", 19},
		{"surrounding whitespace", "  10:00 AM  ", 10},
		{"midnight literal", "12 AM", 0},
		{"noon", "12:00 PM", 12},
		{"bare twelve defaults to am", "12:30", 0},
		{"empty", "", 0},
		{"garbage", "soon after lunch", 0},
		{"out of range hour", "99", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseClockHour(tc.text))
		})
	}
}

func TestParseClockHour_MinutesDiscarded(t *testing.T) {
	// Hourly granularity: events at 9:15 and 9:45 are indistinguishable.
	assert.Equal(t, ParseClockHour("9:15 AM"), ParseClockHour("9:45 AM"))
}

func TestFormatHour(t *testing.T) {
	assert.Equal(t, "12:00 AM", FormatHour(0))
	assert.Equal(t, "8:00 AM", FormatHour(8))
	assert.Equal(t, "12:00 PM", FormatHour(12))
	assert.Equal(t, "4:00 PM", FormatHour(16))
	assert.Equal(t, "11:00 PM", FormatHour(23))
}
