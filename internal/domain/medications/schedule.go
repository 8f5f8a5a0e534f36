package medications

import "time"

var weekdayAbbr = [...]Weekday{Sun, Mon, Tue, Wed, Thu, Fri, Sat}

// WeekdayOf devuelve la abreviatura del día de la semana de d.
func WeekdayOf(d time.Time) Weekday {
	return weekdayAbbr[d.Weekday()]
}

// IsScheduledOn indica si la medicación toca el día d.
// Sin días configurados se asume diaria.
func IsScheduledOn(m Medication, d time.Time) bool {
	if len(m.Days) == 0 {
		return true
	}
	wd := WeekdayOf(d)
	for _, day := range m.Days {
		if day == wd {
			return true
		}
	}
	return false
}

// ParseWeekday acepta la abreviatura exacta (Mon..Sun).
func ParseWeekday(s string) (Weekday, bool) {
	for _, wd := range AllWeekdays {
		if string(wd) == s {
			return wd, true
		}
	}
	return "", false
}
