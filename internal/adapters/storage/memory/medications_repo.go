package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"medicare-companion/internal/domain/medications"
	"medicare-companion/internal/domain/medlogs"
)

type medicationRepo struct {
	mu   sync.RWMutex
	byID map[string]medications.Medication

	// onDelete se llama con el id borrado, fuera del lock.
	onDelete func(id string)
}

func NewMedicationRepo() medications.Repository {
	return newMedicationRepo()
}

func newMedicationRepo() *medicationRepo {
	return &medicationRepo{
		byID: make(map[string]medications.Medication),
	}
}

// NewMedicationAndLogRepos comparte estado entre ambos repos: borrar una
// medicación borra sus logs, igual que ON DELETE CASCADE en Postgres.
func NewMedicationAndLogRepos() (medications.Repository, medlogs.Repository) {
	logs := &logRepo{}
	meds := newMedicationRepo()
	meds.onDelete = logs.deleteByMedication
	return meds, logs
}

func (r *medicationRepo) Create(ctx context.Context, m medications.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("medication id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return errors.New("medication already exists")
	}
	r.byID[m.ID] = clone(m)
	return nil
}

func (r *medicationRepo) Update(ctx context.Context, m medications.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID]; !exists {
		return medications.ErrNotFound
	}
	r.byID[m.ID] = clone(m)
	return nil
}

func (r *medicationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	if _, exists := r.byID[id]; !exists {
		r.mu.Unlock()
		return medications.ErrNotFound
	}
	delete(r.byID, id)
	r.mu.Unlock()

	if r.onDelete != nil {
		r.onDelete(id)
	}
	return nil
}

func (r *medicationRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return medications.Medication{}, medications.ErrNotFound
	}
	return clone(m), nil
}

func (r *medicationRepo) ListByCaretaker(ctx context.Context, caretakerID string) ([]medications.Medication, error) {
	return r.list(func(m medications.Medication) bool { return m.CaretakerID == caretakerID }), nil
}

func (r *medicationRepo) ListByPatient(ctx context.Context, patientID string) ([]medications.Medication, error) {
	return r.list(func(m medications.Medication) bool { return m.PatientID == patientID }), nil
}

func (r *medicationRepo) list(keep func(medications.Medication) bool) []medications.Medication {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medications.Medication, 0)
	for _, m := range r.byID {
		if keep(m) {
			out = append(out, clone(m))
		}
	}

	// Orden estable por created_at asc (igual que Postgres)
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// clone evita compartir el slice Days con quien llama.
func clone(m medications.Medication) medications.Medication {
	if m.Days != nil {
		m.Days = append([]medications.Weekday(nil), m.Days...)
	}
	return m
}
