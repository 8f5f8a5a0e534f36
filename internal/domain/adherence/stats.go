package adherence

import (
	"time"

	"medicare-companion/internal/domain/medlogs"
)

// StreakLookback es el máximo de días (hoy incluido) que se miran hacia atrás.
const StreakLookback = 30

// Stats resume la adherencia de una ventana de registros.
type Stats struct {
	Rate          int // 0..100
	MissedCount   int
	TakenThisWeek int
	Streak        int
}

// ComputeStats agrega logs en [windowStart, windowEnd] (fechas, ambos inclusive).
// TakenThisWeek y Streak se calculan respecto de today sobre todos los logs recibidos.
func ComputeStats(logs []medlogs.LogEntry, windowStart, windowEnd, today time.Time) Stats {
	start := medlogs.DateOnly(windowStart)
	end := medlogs.DateOnly(windowEnd)
	today = medlogs.DateOnly(today)
	weekStart := today.AddDate(0, 0, -7)

	var st Stats
	total, taken := 0, 0
	for _, l := range logs {
		d := medlogs.DateOnly(l.Date)

		if !d.Before(start) && !d.After(end) {
			total++
			if l.Taken {
				taken++
			} else {
				st.MissedCount++
			}
		}
		if l.Taken && !d.Before(weekStart) {
			st.TakenThisWeek++
		}
	}

	st.Rate = Percent(taken, total)
	st.Streak = Streak(logs, today)
	return st
}

// Streak cuenta días consecutivos, terminando hoy, con al menos un registro y todos taken.
func Streak(logs []medlogs.LogEntry, today time.Time) int {
	byDate := medlogs.GroupByDate(logs)
	today = medlogs.DateOnly(today)

	streak := 0
	for i := 0; i < StreakLookback; i++ {
		day := today.AddDate(0, 0, -i)
		if medlogs.Rollup(byDate[medlogs.FormatDate(day)]) != medlogs.StatusTaken {
			break
		}
		streak++
	}
	return streak
}

// Percent redondea 100*part/total (mitad hacia arriba). total 0 => 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*part + total) / (2 * total)
}

// Monthly es el progreso del mes calendario que contiene a today.
type Monthly struct {
	Year      int
	Month     time.Month
	TotalDays int
	Taken     int // días con todos los registros taken
	Missed    int // días con algún registro no taken
	Remaining int // días sin registro (incluye futuros)
	Percent   int // Taken sobre TotalDays
}

func ComputeMonthly(logs []medlogs.LogEntry, today time.Time) Monthly {
	today = medlogs.DateOnly(today)
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	inMonth := make([]medlogs.LogEntry, 0, len(logs))
	for _, l := range logs {
		d := medlogs.DateOnly(l.Date)
		if d.Before(first) || d.After(last) {
			continue
		}
		inMonth = append(inMonth, l)
	}

	m := Monthly{
		Year:      first.Year(),
		Month:     first.Month(),
		TotalDays: last.Day(),
	}
	for _, group := range medlogs.GroupByDate(inMonth) {
		if medlogs.Rollup(group) == medlogs.StatusTaken {
			m.Taken++
		} else {
			m.Missed++
		}
	}
	m.Remaining = m.TotalDays - m.Taken - m.Missed
	m.Percent = Percent(m.Taken, m.TotalDays)
	return m
}
