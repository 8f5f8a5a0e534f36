package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"medicare-companion/internal/domain/medlogs"
)

type logRepo struct {
	mu    sync.RWMutex
	items []medlogs.LogEntry
}

func NewLogRepo() medlogs.Repository {
	return &logRepo{}
}

// Create rechaza una segunda fila para la misma (medicación, paciente, fecha),
// igual que el índice único de Postgres.
func (r *logRepo) Create(ctx context.Context, e medlogs.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("log id required")
	}
	for _, x := range r.items {
		if x.MedicationID == e.MedicationID && x.PatientID == e.PatientID && x.Date.Equal(e.Date) {
			return medlogs.ErrDuplicate
		}
	}
	r.items = append(r.items, e)
	return nil
}

func (r *logRepo) FindByKey(ctx context.Context, medicationID, patientID string, date time.Time) ([]medlogs.LogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	date = medlogs.DateOnly(date)
	out := make([]medlogs.LogEntry, 0, 1)
	for _, x := range r.items {
		if x.MedicationID == medicationID && x.PatientID == patientID && x.Date.Equal(date) {
			out = append(out, x)
		}
	}
	return out, nil
}

func (r *logRepo) List(ctx context.Context, filter medlogs.ListFilter) ([]medlogs.LogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var medIDs map[string]struct{}
	if len(filter.MedicationIDs) > 0 {
		medIDs = make(map[string]struct{}, len(filter.MedicationIDs))
		for _, id := range filter.MedicationIDs {
			medIDs[id] = struct{}{}
		}
	}

	out := make([]medlogs.LogEntry, 0)
	for _, x := range r.items {
		if filter.PatientID != "" && x.PatientID != filter.PatientID {
			continue
		}
		if medIDs != nil {
			if _, ok := medIDs[x.MedicationID]; !ok {
				continue
			}
		}
		if filter.From != nil && x.Date.Before(medlogs.DateOnly(*filter.From)) {
			continue
		}
		if filter.To != nil && x.Date.After(medlogs.DateOnly(*filter.To)) {
			continue
		}
		out = append(out, x)
	}

	// Orden por fecha desc, luego created_at desc
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (r *logRepo) deleteByMedication(medicationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	for _, x := range r.items {
		if x.MedicationID != medicationID {
			kept = append(kept, x)
		}
	}
	r.items = kept
}
