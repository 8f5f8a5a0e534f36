package medications

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("medication not found")
	ErrForbidden    = errors.New("forbidden")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	PatientID string
	Name      string
	Dosage    string
	Days      []string
	TimeSlot  string
}

func (s *Service) Create(ctx context.Context, caretakerID string, in CreateInput) (Medication, error) {
	caretakerID = strings.TrimSpace(caretakerID)
	patientID := strings.TrimSpace(in.PatientID)
	name := strings.TrimSpace(in.Name)
	dosage := strings.TrimSpace(in.Dosage)

	if caretakerID == "" || patientID == "" || name == "" || dosage == "" {
		return Medication{}, ErrInvalidInput
	}

	days, err := normalizeDaysStrict(in.Days)
	if err != nil {
		return Medication{}, err
	}
	slot, err := normalizeSlotStrict(in.TimeSlot)
	if err != nil {
		return Medication{}, err
	}

	now := s.now()
	m := Medication{
		ID:          uuid.NewString(),
		PatientID:   patientID,
		CaretakerID: caretakerID,
		Name:        name,
		Dosage:      dosage,
		Days:        days,
		TimeSlot:    slot,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

// UpdateInput usa punteros: nil = no tocar.
type UpdateInput struct {
	Name     *string
	Dosage   *string
	Days     *[]string
	TimeSlot *string
}

// Update solo lo puede hacer el caretaker que creó la medicación.
func (s *Service) Update(ctx context.Context, id, caretakerID string, in UpdateInput) (Medication, error) {
	m, err := s.ownedBy(ctx, id, caretakerID)
	if err != nil {
		return Medication{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Medication{}, ErrInvalidInput
		}
		m.Name = v
	}
	if in.Dosage != nil {
		v := strings.TrimSpace(*in.Dosage)
		if v == "" {
			return Medication{}, ErrInvalidInput
		}
		m.Dosage = v
	}
	if in.Days != nil {
		days, err := normalizeDaysStrict(*in.Days)
		if err != nil {
			return Medication{}, err
		}
		m.Days = days
	}
	if in.TimeSlot != nil {
		slot, err := normalizeSlotStrict(*in.TimeSlot)
		if err != nil {
			return Medication{}, err
		}
		m.TimeSlot = slot
	}

	m.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id, caretakerID string) error {
	m, err := s.ownedBy(ctx, id, caretakerID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, m.ID)
}

func (s *Service) GetByID(ctx context.Context, id string) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByCaretaker(ctx context.Context, caretakerID string) ([]Medication, error) {
	caretakerID = strings.TrimSpace(caretakerID)
	if caretakerID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByCaretaker(ctx, caretakerID)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]Medication, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ownedBy(ctx context.Context, id, caretakerID string) (Medication, error) {
	caretakerID = strings.TrimSpace(caretakerID)
	if caretakerID == "" {
		return Medication{}, ErrInvalidInput
	}
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return Medication{}, err
	}
	if m.CaretakerID != caretakerID {
		return Medication{}, ErrForbidden
	}
	return m, nil
}

// normalizeDaysStrict deduplica y ordena Mon..Sun. Valores desconocidos => ErrInvalidInput.
func normalizeDaysStrict(in []string) ([]Weekday, error) {
	seen := map[Weekday]struct{}{}
	for _, raw := range in {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		wd, ok := ParseWeekday(raw)
		if !ok {
			return nil, ErrInvalidInput
		}
		seen[wd] = struct{}{}
	}

	out := make([]Weekday, 0, len(seen))
	for _, wd := range AllWeekdays {
		if _, ok := seen[wd]; ok {
			out = append(out, wd)
		}
	}
	return out, nil
}

func normalizeSlotStrict(raw string) (TimeSlot, error) {
	slot := TimeSlot(strings.TrimSpace(raw))
	if slot == "" {
		return "", nil
	}
	if !KnownSlot(slot) {
		return "", ErrInvalidInput
	}
	return slot, nil
}
