package medlogs

import (
	"strings"
	"time"
)

// DateLayout es el formato de fecha (sin hora) que usan API y almacenamiento.
const DateLayout = "2006-01-02"

// LogEntry registra una toma (o una toma omitida) de una medicación en un día.
type LogEntry struct {
	ID           string
	MedicationID string
	PatientID    string

	Date  time.Time // solo fecha, medianoche UTC
	Taken bool

	RecordedBy string
	CreatedAt  time.Time
}

// Status es el modelo canónico de tres estados para una ocurrencia o un día.
// @Enum taken, missed, not_logged
type Status string

const (
	StatusTaken     Status = "taken"
	StatusMissed    Status = "missed"
	StatusNotLogged Status = "not_logged"
)

// DateOnly se queda con la fecha calendario de t (en la zona de t).
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate interpreta YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// FormatDate es el inverso de ParseDate.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
