package medlogs

import "time"

// Match resuelve el estado de una ocurrencia (medicación, paciente, fecha).
// Sin registros => not_logged; todos taken => taken; alguno no taken => missed.
// Duplicados no cambian el resultado.
func Match(logs []LogEntry, medicationID, patientID string, date time.Time) Status {
	found := false
	for _, l := range logs {
		if l.MedicationID != medicationID || l.PatientID != patientID || !sameDate(l.Date, date) {
			continue
		}
		if !l.Taken {
			return StatusMissed
		}
		found = true
	}
	if !found {
		return StatusNotLogged
	}
	return StatusTaken
}

// DayStatus agrega todos los registros de un día, sin importar la medicación:
// el día es taken solo si todos sus registros lo son.
func DayStatus(logs []LogEntry, date time.Time) Status {
	return Rollup(ForDate(logs, date))
}

// ForDate filtra los registros de una fecha.
func ForDate(logs []LogEntry, date time.Time) []LogEntry {
	out := make([]LogEntry, 0)
	for _, l := range logs {
		if sameDate(l.Date, date) {
			out = append(out, l)
		}
	}
	return out
}

// GroupByDate agrupa por fecha (clave YYYY-MM-DD).
func GroupByDate(logs []LogEntry) map[string][]LogEntry {
	out := make(map[string][]LogEntry)
	for _, l := range logs {
		k := FormatDate(l.Date)
		out[k] = append(out[k], l)
	}
	return out
}

// Rollup aplica la regla "todos taken" a un grupo ya filtrado.
func Rollup(group []LogEntry) Status {
	if len(group) == 0 {
		return StatusNotLogged
	}
	for _, l := range group {
		if !l.Taken {
			return StatusMissed
		}
	}
	return StatusTaken
}
