package adherence

import (
	"context"
	"errors"
	"strings"
	"time"

	"medicare-companion/internal/domain/medications"
	"medicare-companion/internal/domain/medlogs"
	"medicare-companion/internal/domain/profiles"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

// StatsWindowDays es la ventana móvil del dashboard del caretaker.
const StatsWindowDays = 30

// Service arma las vistas de adherencia a partir de una única lectura de logs por request.
type Service struct {
	meds     *medications.Service
	logs     *medlogs.Service
	profiles *profiles.Service

	loc *time.Location
	now func() time.Time
}

func NewService(meds *medications.Service, logs *medlogs.Service, profilesSvc *profiles.Service, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		meds:     meds,
		logs:     logs,
		profiles: profilesSvc,
		loc:      loc,
		now:      time.Now,
	}
}

// Summary es lo que muestra la tarjeta de estadísticas.
type Summary struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Stats       Stats
	Monthly     Monthly
}

func (s *Service) Summary(ctx context.Context, viewerID, patientID string) (Summary, error) {
	sc, err := s.scope(ctx, viewerID, patientID)
	if err != nil {
		return Summary{}, err
	}

	today := s.today()
	start := today.AddDate(0, 0, -StatsWindowDays)

	logs, err := s.fetch(ctx, sc, start, nil)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		WindowStart: start,
		WindowEnd:   today,
		Stats:       ComputeStats(logs, start, today, today),
		Monthly:     ComputeMonthly(logs, today),
	}, nil
}

// CalendarCell es una celda anotada.
type CalendarCell struct {
	Day        int
	Date       time.Time
	IsToday    bool
	IsSelected bool
	Scheduled  bool
	Status     medlogs.Status
}

type Calendar struct {
	Month    YearMonth
	Previous YearMonth
	Next     YearMonth
	Cells    []CalendarCell
}

// Calendar anota la grilla del mes con el estado de cada día (modelo de tres estados).
func (s *Service) Calendar(ctx context.Context, viewerID, patientID string, ym YearMonth, selected *time.Time) (Calendar, error) {
	if !ym.Valid() {
		return Calendar{}, ErrInvalidInput
	}
	sc, err := s.scope(ctx, viewerID, patientID)
	if err != nil {
		return Calendar{}, err
	}

	first := ym.First()
	last := first.AddDate(0, 1, -1)
	logs, err := s.fetch(ctx, sc, first, &last)
	if err != nil {
		return Calendar{}, err
	}
	byDate := medlogs.GroupByDate(logs)
	today := s.today()

	grid := BuildGrid(ym.Year, ym.Month)
	cells := make([]CalendarCell, 0, len(grid))
	for _, c := range grid {
		if c.Blank() {
			cells = append(cells, CalendarCell{})
			continue
		}
		date := first.AddDate(0, 0, c.Day-1)
		cells = append(cells, CalendarCell{
			Day:        c.Day,
			Date:       date,
			IsToday:    date.Equal(today),
			IsSelected: selected != nil && date.Equal(medlogs.DateOnly(*selected)),
			Scheduled:  anyScheduled(sc.meds, date),
			Status:     medlogs.Rollup(byDate[medlogs.FormatDate(date)]),
		})
	}

	return Calendar{
		Month:    ym,
		Previous: ym.Previous(),
		Next:     ym.Next(),
		Cells:    cells,
	}, nil
}

// DayItem es el estado de una medicación en una fecha.
type DayItem struct {
	Medication   medications.Medication
	Scheduled    bool
	WithinWindow bool // solo puede ser true para hoy
	WindowLabel  string
	Status       medlogs.Status
}

type DayView struct {
	Date   time.Time
	Status medlogs.Status
	Items  []DayItem
}

// Day lista cada medicación visible con su estado para date.
func (s *Service) Day(ctx context.Context, viewerID, patientID string, date time.Time) (DayView, error) {
	if date.IsZero() {
		return DayView{}, ErrInvalidInput
	}
	sc, err := s.scope(ctx, viewerID, patientID)
	if err != nil {
		return DayView{}, err
	}

	date = medlogs.DateOnly(date)
	logs, err := s.fetch(ctx, sc, date, &date)
	if err != nil {
		return DayView{}, err
	}

	now := s.now().In(s.loc)
	isToday := date.Equal(medlogs.DateOnly(now))

	items := make([]DayItem, 0, len(sc.meds))
	for _, m := range sc.meds {
		label, _ := medications.WindowLabel(m.TimeSlot)
		items = append(items, DayItem{
			Medication:   m,
			Scheduled:    medications.IsScheduledOn(m, date),
			WithinWindow: isToday && medications.IsWithinTimeWindow(m.TimeSlot, now),
			WindowLabel:  label,
			Status:       medlogs.Match(logs, m.ID, m.PatientID, date),
		})
	}

	return DayView{
		Date:   date,
		Status: medlogs.DayStatus(logs, date),
		Items:  items,
	}, nil
}

// Logs lista los registros visibles para viewerID en [from, to].
func (s *Service) Logs(ctx context.Context, viewerID, patientID string, from, to *time.Time) ([]medlogs.LogEntry, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, ErrInvalidInput
	}
	sc, err := s.scope(ctx, viewerID, patientID)
	if err != nil {
		return nil, err
	}
	if sc.empty {
		return []medlogs.LogEntry{}, nil
	}
	f := sc.filter
	f.From = from
	f.To = to
	return s.logs.List(ctx, f)
}

type scope struct {
	filter medlogs.ListFilter
	meds   []medications.Medication
	empty  bool // no hay nada visible; no se consulta el repo
}

// scope resuelve qué logs puede ver viewerID:
// - paciente: solo los suyos (patientID vacío o igual a sí mismo)
// - caretaker: los de las medicaciones que asignó, opcionalmente filtrados por paciente
func (s *Service) scope(ctx context.Context, viewerID, patientID string) (scope, error) {
	viewerID = strings.TrimSpace(viewerID)
	patientID = strings.TrimSpace(patientID)

	viewer, err := s.profiles.GetByID(ctx, viewerID)
	if err != nil {
		return scope{}, err
	}

	switch viewer.Role {
	case profiles.RolePatient:
		if patientID != "" && patientID != viewer.ID {
			return scope{}, ErrForbidden
		}
		meds, err := s.meds.ListByPatient(ctx, viewer.ID)
		if err != nil {
			return scope{}, err
		}
		return scope{
			filter: medlogs.ListFilter{PatientID: viewer.ID},
			meds:   meds,
		}, nil

	case profiles.RoleCaretaker:
		all, err := s.meds.ListByCaretaker(ctx, viewer.ID)
		if err != nil {
			return scope{}, err
		}
		meds := make([]medications.Medication, 0, len(all))
		ids := make([]string, 0, len(all))
		for _, m := range all {
			if patientID != "" && m.PatientID != patientID {
				continue
			}
			meds = append(meds, m)
			ids = append(ids, m.ID)
		}
		return scope{
			filter: medlogs.ListFilter{PatientID: patientID, MedicationIDs: ids},
			meds:   meds,
			empty:  len(ids) == 0,
		}, nil

	default:
		return scope{}, ErrForbidden
	}
}

func (s *Service) fetch(ctx context.Context, sc scope, from time.Time, to *time.Time) ([]medlogs.LogEntry, error) {
	// Caretaker sin medicaciones: un filtro vacío traería todo.
	if sc.empty {
		return nil, nil
	}
	f := sc.filter
	f.From = &from
	f.To = to
	return s.logs.List(ctx, f)
}

func (s *Service) today() time.Time {
	return medlogs.DateOnly(s.now().In(s.loc))
}

func anyScheduled(meds []medications.Medication, date time.Time) bool {
	for _, m := range meds {
		if medications.IsScheduledOn(m, date) {
			return true
		}
	}
	return false
}

// CurrentMonth es el mes de hoy en la zona del servicio.
func (s *Service) CurrentMonth() YearMonth {
	return YearMonthOf(s.today())
}
