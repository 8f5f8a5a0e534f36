package medications

import (
	"fmt"
	"time"
)

type window struct {
	start int // minutos desde medianoche
	end   int
}

var slotWindows = map[TimeSlot]window{
	SlotAfterBreakfast: {start: 8 * 60, end: 10 * 60},
	SlotBeforeLunch:    {start: 11 * 60, end: 13 * 60},
	SlotAfterLunch:     {start: 13 * 60, end: 15 * 60},
	SlotHighTea:        {start: 16 * 60, end: 18 * 60},
	SlotBeforeDinner:   {start: 18 * 60, end: 20 * 60},
	SlotAfterDinner:    {start: 20 * 60, end: 22 * 60},
}

// KnownSlot indica si slot es una de las seis franjas definidas.
func KnownSlot(slot TimeSlot) bool {
	_, ok := slotWindows[slot]
	return ok
}

// IsWithinTimeWindow compara la hora local de t contra la franja (ambos extremos inclusive).
// Franja vacía o desconocida => sin restricción.
func IsWithinTimeWindow(slot TimeSlot, t time.Time) bool {
	w, ok := slotWindows[slot]
	if !ok {
		return true
	}
	m := t.Hour()*60 + t.Minute()
	return m >= w.start && m <= w.end
}

// WindowLabel devuelve el rango legible ("08:00–10:00") o false si no hay franja.
func WindowLabel(slot TimeSlot) (string, bool) {
	w, ok := slotWindows[slot]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s–%s", clock(w.start), clock(w.end)), true
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
