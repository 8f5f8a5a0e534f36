package adherence

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"medicare-companion/internal/domain/medications"
	"medicare-companion/internal/domain/medlogs"
	"medicare-companion/internal/domain/profiles"
	"medicare-companion/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adherence", func(ar chi.Router) {
		ar.Get("/stats", statsHandler(svc))
		ar.Get("/calendar", calendarHandler(svc))
		ar.Get("/day", dayHandler(svc))
	})

	r.Get("/me/today", todayHandler(svc))
	r.Get("/logs", listLogsHandler(svc))
}

type statsResponse struct {
	WindowStart   string          `json:"window_start"`
	WindowEnd     string          `json:"window_end"`
	Rate          int             `json:"adherence_rate"`
	MissedCount   int             `json:"missed_count"`
	TakenThisWeek int             `json:"taken_this_week"`
	Streak        int             `json:"current_streak"`
	Monthly       monthlyResponse `json:"monthly"`
}

type monthlyResponse struct {
	Year      int `json:"year"`
	Month     int `json:"month"` // base 0
	TotalDays int `json:"total_days"`
	Taken     int `json:"taken_days"`
	Missed    int `json:"missed_days"`
	Remaining int `json:"remaining_days"`
	Percent   int `json:"progress_percent"`
}

type monthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type calendarCellResponse struct {
	Day        int            `json:"day"` // 0 = celda vacía
	Date       string         `json:"date,omitempty"`
	IsToday    bool           `json:"is_today,omitempty"`
	IsSelected bool           `json:"is_selected,omitempty"`
	Scheduled  bool           `json:"scheduled,omitempty"`
	Status     medlogs.Status `json:"status,omitempty"`
}

type calendarResponse struct {
	Year     int                    `json:"year"`
	Month    int                    `json:"month"`
	Previous monthRef               `json:"previous"`
	Next     monthRef               `json:"next"`
	Cells    []calendarCellResponse `json:"cells"`
}

type dayItemResponse struct {
	MedicationID string               `json:"medication_id"`
	PatientID    string               `json:"patient_id"`
	Name         string               `json:"name"`
	Dosage       string               `json:"dosage"`
	TimeSlot     medications.TimeSlot `json:"time_slot"`
	WindowLabel  string               `json:"window_label,omitempty"`
	Scheduled    bool                 `json:"scheduled"`
	WithinWindow bool                 `json:"within_window"`
	Status       medlogs.Status       `json:"status"`
}

type dayResponse struct {
	Date   string            `json:"date"`
	Status medlogs.Status    `json:"status"`
	Items  []dayItemResponse `json:"items"`
}

type logResponse struct {
	ID           string    `json:"id"`
	MedicationID string    `json:"medication_id"`
	PatientID    string    `json:"patient_id"`
	Date         string    `json:"date"`
	Taken        bool      `json:"taken"`
	RecordedBy   string    `json:"recorded_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// statsHandler godoc
// @Summary Estadísticas de adherencia
// @Description Tasa de adherencia de los últimos 30 días, tomas perdidas, tomas de la última semana, racha actual y progreso del mes en curso. El paciente ve lo suyo; el caretaker lo de las medicaciones que asignó (opcionalmente filtrado por paciente).
// @Tags adherence
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param patient_id query string false "Filtrar por paciente"
// @Success 200 {object} statsResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden / profile required"
// @Router /adherence/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sum, err := svc.Summary(r.Context(), uid, r.URL.Query().Get("patient_id"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statsResponse{
			WindowStart:   medlogs.FormatDate(sum.WindowStart),
			WindowEnd:     medlogs.FormatDate(sum.WindowEnd),
			Rate:          sum.Stats.Rate,
			MissedCount:   sum.Stats.MissedCount,
			TakenThisWeek: sum.Stats.TakenThisWeek,
			Streak:        sum.Stats.Streak,
			Monthly: monthlyResponse{
				Year:      sum.Monthly.Year,
				Month:     int(sum.Monthly.Month) - 1,
				TotalDays: sum.Monthly.TotalDays,
				Taken:     sum.Monthly.Taken,
				Missed:    sum.Monthly.Missed,
				Remaining: sum.Monthly.Remaining,
				Percent:   sum.Monthly.Percent,
			},
		})
	}
}

// calendarHandler godoc
// @Summary Calendario mensual
// @Description Grilla del mes (mes base 0) con celdas vacías al inicio según el día de la semana del día 1. Cada día trae su estado (taken, missed, not_logged). Sin year/month se usa el mes actual.
// @Tags adherence
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param year query int false "Año"
// @Param month query int false "Mes base 0 (0 = enero)"
// @Param patient_id query string false "Filtrar por paciente"
// @Param selected query string false "Fecha seleccionada YYYY-MM-DD"
// @Success 200 {object} calendarResponse
// @Failure 400 {string} string "invalid year / invalid month / invalid selected"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden / profile required"
// @Router /adherence/calendar [get]
func calendarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q := r.URL.Query()
		ym := svc.CurrentMonth()
		if v := strings.TrimSpace(q.Get("year")); v != "" {
			y, err := strconv.Atoi(v)
			if err != nil || y < 1 {
				http.Error(w, "invalid year", http.StatusBadRequest)
				return
			}
			ym.Year = y
		}
		if v := strings.TrimSpace(q.Get("month")); v != "" {
			m, err := strconv.Atoi(v)
			if err != nil || m < 0 || m > 11 {
				http.Error(w, "invalid month", http.StatusBadRequest)
				return
			}
			ym.Month = m
		}

		selected, ok := optionalDate(q.Get("selected"))
		if !ok {
			http.Error(w, "invalid selected", http.StatusBadRequest)
			return
		}

		cal, err := svc.Calendar(r.Context(), uid, q.Get("patient_id"), ym, selected)
		if err != nil {
			writeError(w, err)
			return
		}

		out := calendarResponse{
			Year:     cal.Month.Year,
			Month:    cal.Month.Month,
			Previous: monthRef{Year: cal.Previous.Year, Month: cal.Previous.Month},
			Next:     monthRef{Year: cal.Next.Year, Month: cal.Next.Month},
			Cells:    make([]calendarCellResponse, 0, len(cal.Cells)),
		}
		for _, c := range cal.Cells {
			if c.Day == 0 {
				out.Cells = append(out.Cells, calendarCellResponse{})
				continue
			}
			out.Cells = append(out.Cells, calendarCellResponse{
				Day:        c.Day,
				Date:       medlogs.FormatDate(c.Date),
				IsToday:    c.IsToday,
				IsSelected: c.IsSelected,
				Scheduled:  c.Scheduled,
				Status:     c.Status,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// dayHandler godoc
// @Summary Detalle de un día
// @Description Estado de cada medicación visible en la fecha pedida y el estado agregado del día.
// @Tags adherence
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param date query string true "YYYY-MM-DD"
// @Param patient_id query string false "Filtrar por paciente"
// @Success 200 {object} dayResponse
// @Failure 400 {string} string "invalid date"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden / profile required"
// @Router /adherence/day [get]
func dayHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		date, err := medlogs.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}

		day, err := svc.Day(r.Context(), uid, r.URL.Query().Get("patient_id"), date)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDayResponse(day))
	}
}

// todayHandler godoc
// @Summary Medicaciones de hoy
// @Description Medicaciones del usuario para hoy (o la fecha indicada), con franja horaria, si está dentro de ella ahora y su estado.
// @Tags adherence
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param date query string false "YYYY-MM-DD (default hoy)"
// @Success 200 {object} dayResponse
// @Failure 400 {string} string "invalid date"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "profile required"
// @Router /me/today [get]
func todayHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		date := svc.today()
		if d, ok := optionalDate(r.URL.Query().Get("date")); !ok {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		} else if d != nil {
			date = *d
		}

		day, err := svc.Day(r.Context(), uid, "", date)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toDayResponse(day))
	}
}

// listLogsHandler godoc
// @Summary Listar registros de tomas
// @Description Registros visibles para el usuario, ordenados por fecha descendente. from/to inclusive.
// @Tags logs
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param patient_id query string false "Filtrar por paciente"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {array} logResponse
// @Failure 400 {string} string "invalid from / invalid to / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden / profile required"
// @Router /logs [get]
func listLogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q := r.URL.Query()
		from, ok := optionalDate(q.Get("from"))
		if !ok {
			http.Error(w, "invalid from", http.StatusBadRequest)
			return
		}
		to, ok := optionalDate(q.Get("to"))
		if !ok {
			http.Error(w, "invalid to", http.StatusBadRequest)
			return
		}

		items, err := svc.Logs(r.Context(), uid, q.Get("patient_id"), from, to)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]logResponse, 0, len(items))
		for _, e := range items {
			out = append(out, logResponse{
				ID:           e.ID,
				MedicationID: e.MedicationID,
				PatientID:    e.PatientID,
				Date:         medlogs.FormatDate(e.Date),
				Taken:        e.Taken,
				RecordedBy:   e.RecordedBy,
				CreatedAt:    e.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toDayResponse(d DayView) dayResponse {
	out := dayResponse{
		Date:   medlogs.FormatDate(d.Date),
		Status: d.Status,
		Items:  make([]dayItemResponse, 0, len(d.Items)),
	}
	for _, it := range d.Items {
		out.Items = append(out.Items, dayItemResponse{
			MedicationID: it.Medication.ID,
			PatientID:    it.Medication.PatientID,
			Name:         it.Medication.Name,
			Dosage:       it.Medication.Dosage,
			TimeSlot:     it.Medication.TimeSlot,
			WindowLabel:  it.WindowLabel,
			Scheduled:    it.Scheduled,
			WithinWindow: it.WithinWindow,
			Status:       it.Status,
		})
	}
	return out
}

// optionalDate: vacío => nil, ok.
func optionalDate(s string) (*time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, true
	}
	d, err := medlogs.ParseDate(s)
	if err != nil {
		return nil, false
	}
	return &d, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, profiles.ErrNotFound):
		http.Error(w, "profile required", http.StatusForbidden)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
