package medlogs

import (
	"context"
	"time"
)

type Repository interface {
	// Create devuelve ErrDuplicate si ya existe un registro para (medicación, paciente, fecha).
	Create(ctx context.Context, e LogEntry) error
	FindByKey(ctx context.Context, medicationID, patientID string, date time.Time) ([]LogEntry, error)
	List(ctx context.Context, filter ListFilter) ([]LogEntry, error)
}

// ListFilter: campos vacíos no filtran. From/To son inclusive.
type ListFilter struct {
	PatientID     string
	MedicationIDs []string
	From          *time.Time
	To            *time.Time
}
