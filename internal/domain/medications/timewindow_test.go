package medications

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 1, 15, hour, minute, 0, 0, time.UTC)
}

func TestIsWithinTimeWindow(t *testing.T) {
	tests := []struct {
		name string
		slot TimeSlot
		t    time.Time
		want bool
	}{
		{"start is inclusive", SlotAfterBreakfast, at(8, 0), true},
		{"end is inclusive", SlotAfterBreakfast, at(10, 0), true},
		{"one minute late", SlotAfterBreakfast, at(10, 1), false},
		{"one minute early", SlotAfterBreakfast, at(7, 59), false},
		{"inside", SlotHighTea, at(17, 30), true},
		{"shared boundary belongs to both", SlotBeforeLunch, at(13, 0), true},
		{"shared boundary next slot", SlotAfterLunch, at(13, 0), true},
		{"after dinner late", SlotAfterDinner, at(22, 0), true},
		{"empty slot is unbounded", "", at(3, 0), true},
		{"unknown slot is unbounded", TimeSlot("Midnight Snack"), at(3, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWithinTimeWindow(tt.slot, tt.t))
		})
	}
}

func TestIsWithinTimeWindow_UsesInstantLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	// 11:30 UTC son 08:30 en UTC-3.
	instant := time.Date(2024, 1, 15, 11, 30, 0, 0, time.UTC).In(loc)

	assert.True(t, IsWithinTimeWindow(SlotAfterBreakfast, instant))
	assert.False(t, IsWithinTimeWindow(SlotBeforeLunch, instant))
}

func TestWindowLabel(t *testing.T) {
	label, ok := WindowLabel(SlotBeforeDinner)
	assert.True(t, ok)
	assert.Equal(t, "18:00–20:00", label)

	label, ok = WindowLabel("")
	assert.False(t, ok)
	assert.Empty(t, label)

	assert.True(t, KnownSlot(SlotAfterLunch))
	assert.False(t, KnownSlot("Brunch"))
}
