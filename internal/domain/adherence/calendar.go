package adherence

import "time"

// YearMonth usa mes base 0 (0 = enero, 11 = diciembre).
type YearMonth struct {
	Year  int
	Month int
}

func (ym YearMonth) Valid() bool {
	return ym.Month >= 0 && ym.Month <= 11
}

func (ym YearMonth) Previous() YearMonth {
	if ym.Month == 0 {
		return YearMonth{Year: ym.Year - 1, Month: 11}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

func (ym YearMonth) Next() YearMonth {
	if ym.Month == 11 {
		return YearMonth{Year: ym.Year + 1, Month: 0}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// First devuelve el día 1 del mes (medianoche UTC).
func (ym YearMonth) First() time.Time {
	return time.Date(ym.Year, time.Month(ym.Month+1), 1, 0, 0, 0, 0, time.UTC)
}

// YearMonthOf pasa una fecha a mes base 0.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: int(t.Month()) - 1}
}

// DaysInMonth usa el día 0 del mes siguiente.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday es el índice (0 = domingo) del día 1.
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Cell es una celda de la grilla; Day == 0 es un hueco inicial.
type Cell struct {
	Day int
}

func (c Cell) Blank() bool { return c.Day == 0 }

// BuildGrid arma huecos iniciales + días 1..N. No sabe nada de estados.
func BuildGrid(year, month int) []Cell {
	blanks := FirstWeekday(year, month)
	n := DaysInMonth(year, month)

	out := make([]Cell, 0, blanks+n)
	for i := 0; i < blanks; i++ {
		out = append(out, Cell{})
	}
	for d := 1; d <= n; d++ {
		out = append(out, Cell{Day: d})
	}
	return out
}
