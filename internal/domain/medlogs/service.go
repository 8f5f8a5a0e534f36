package medlogs

import (
	"context"
	"errors"
	"strings"
	"time"

	"medicare-companion/internal/domain/medications"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicate     = errors.New("log already exists")
	ErrConflict      = errors.New("log already recorded with a different value")
	ErrFutureDate    = errors.New("date is in the future")
	ErrNotScheduled  = errors.New("medication not scheduled for this date")
	ErrOutsideWindow = errors.New("outside of time window")
)

type Service struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

// NewService: loc es la zona donde se evalúan "hoy" y las franjas horarias (nil = time.Local).
func NewService(repo Repository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

type MarkInput struct {
	Date    time.Time
	Taken   bool
	ActorID string

	// EnforceWindow exige, para el día de hoy, que la medicación toque
	// y que la hora actual esté dentro de su franja.
	EnforceWindow bool
}

// Mark registra la ocurrencia de med en in.Date.
// Es idempotente: si ya existe un registro igual lo devuelve con created=false.
// Un registro existente con otro valor de Taken no se pisa: ErrConflict.
func (s *Service) Mark(ctx context.Context, med medications.Medication, in MarkInput) (LogEntry, bool, error) {
	if strings.TrimSpace(med.ID) == "" || strings.TrimSpace(med.PatientID) == "" {
		return LogEntry{}, false, ErrInvalidInput
	}
	if strings.TrimSpace(in.ActorID) == "" || in.Date.IsZero() {
		return LogEntry{}, false, ErrInvalidInput
	}

	now := s.now().In(s.loc)
	today := DateOnly(now)
	date := DateOnly(in.Date)

	if date.After(today) {
		return LogEntry{}, false, ErrFutureDate
	}
	if in.EnforceWindow && date.Equal(today) {
		if !medications.IsScheduledOn(med, date) {
			return LogEntry{}, false, ErrNotScheduled
		}
		if in.Taken && !medications.IsWithinTimeWindow(med.TimeSlot, now) {
			return LogEntry{}, false, ErrOutsideWindow
		}
	}

	if existing, ok, err := s.existing(ctx, med.ID, med.PatientID, date, in.Taken); err != nil {
		return LogEntry{}, false, err
	} else if ok {
		return sameOrConflict(existing, in.Taken)
	}

	e := LogEntry{
		ID:           uuid.NewString(),
		MedicationID: med.ID,
		PatientID:    med.PatientID,
		Date:         date,
		Taken:        in.Taken,
		RecordedBy:   strings.TrimSpace(in.ActorID),
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		if !errors.Is(err, ErrDuplicate) {
			return LogEntry{}, false, err
		}
		// Otra escritura ganó la carrera: devolvemos la que quedó.
		existing, ok, ferr := s.existing(ctx, med.ID, med.PatientID, date, in.Taken)
		if ferr != nil {
			return LogEntry{}, false, ferr
		}
		if ok {
			return sameOrConflict(existing, in.Taken)
		}
		return LogEntry{}, false, err
	}
	return e, true, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]LogEntry, error) {
	return s.repo.List(ctx, filter)
}

// Today devuelve la fecha de hoy en la zona del servicio.
func (s *Service) Today() time.Time {
	return DateOnly(s.now().In(s.loc))
}

// existing prefiere, entre duplicados heredados, el que coincide con taken.
func (s *Service) existing(ctx context.Context, medicationID, patientID string, date time.Time, taken bool) (LogEntry, bool, error) {
	items, err := s.repo.FindByKey(ctx, medicationID, patientID, date)
	if err != nil {
		return LogEntry{}, false, err
	}
	if len(items) == 0 {
		return LogEntry{}, false, nil
	}
	for _, e := range items {
		if e.Taken == taken {
			return e, true, nil
		}
	}
	return items[0], true, nil
}

func sameOrConflict(e LogEntry, taken bool) (LogEntry, bool, error) {
	if e.Taken != taken {
		return e, false, ErrConflict
	}
	return e, false, nil
}
