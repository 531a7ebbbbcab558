package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots_StandardWorkingDay(t *testing.T) {
	slots := Slots(Config{WorkStartHour: 8, WorkEndHour: 17})

	require.Len(t, slots, 9)
	assert.Equal(t, 8, slots[0].Hour24)
	assert.Equal(t, "8:00 AM", slots[0].Display)
	assert.Equal(t, 16, slots[8].Hour24)
	assert.Equal(t, "4:00 PM", slots[8].Display)

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].Hour24+1, slots[i].Hour24, "slots must ascend by one hour")
	}
}

func TestSlots_DegenerateRange(t *testing.T) {
	assert.Empty(t, Slots(Config{WorkStartHour: 9, WorkEndHour: 9}))
	assert.Empty(t, Slots(Config{WorkStartHour: 17, WorkEndHour: 8}))
}

func TestIndexByDate(t *testing.T) {
	events := []Event{
		{ID: "a", Date: "2026-09-01", Time: "10:00 AM"},
		{ID: "b", Date: "2026-09-02", Time: "9:00 AM"},
		{ID: "c", Date: "2026-09-01", Time: "8:00 AM"},
	}

	idx := IndexByDate(events)

	day := idx.Lookup("2026-09-01")
	require.Len(t, day, 2)
	// Insertion order within a group, not time order.
	assert.Equal(t, "a", day[0].ID)
	assert.Equal(t, "c", day[1].ID)

	assert.Len(t, idx.Lookup("2026-09-02"), 1)
	assert.Empty(t, idx.Lookup("2026-09-03"))
}
