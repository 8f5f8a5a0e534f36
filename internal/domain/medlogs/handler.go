package medlogs

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"medicare-companion/internal/domain/medications"
	"medicare-companion/internal/middleware"
	"medicare-companion/internal/platform/logger"
	"medicare-companion/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes: writeLimit (opcional) envuelve solo la escritura.
func RegisterRoutes(r chi.Router, svc *Service, medsSvc *medications.Service, v *validation.Validator, log logger.Logger, writeLimit func(http.Handler) http.Handler) {
	wr := r
	if writeLimit != nil {
		wr = r.With(writeLimit)
	}
	wr.Post("/medications/{medicationID}/logs", markHandler(svc, medsSvc, v, log))
}

// markRequest: date por defecto hoy; taken por defecto true.
type markRequest struct {
	Date  string `json:"date" validate:"omitempty,date"`
	Taken *bool  `json:"taken"`
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

// markHandler godoc
// @Summary Marcar toma
// @Description Registra la toma de una medicación en una fecha. El paciente solo puede marcar sus medicaciones y, para hoy, dentro de la franja horaria y si la medicación toca ese día. El caretaker que la asignó puede marcar sin restricción horaria. Es idempotente: si ya existe el mismo registro para (medicación, paciente, fecha) se devuelve con 200; si existe con otro valor de taken se responde 409 y no se pisa.
// @Tags logs
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param medicationID path string true "ID de la medicación"
// @Param payload body markRequest false "date YYYY-MM-DD (default hoy), taken (default true)"
// @Success 201 {object} logResponse
// @Success 200 {object} logResponse "ya estaba registrado"
// @Failure 400 {string} string "invalid json / validation failed / date is in the future"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "medication not found"
// @Failure 409 {string} string "outside of time window / not scheduled / log already recorded with a different value"
// @Failure 429 {string} string "too many requests"
// @Router /medications/{medicationID}/logs [post]
func markHandler(svc *Service, medsSvc *medications.Service, v *validation.Validator, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		med, err := medsSvc.GetByID(r.Context(), chi.URLParam(r, "medicationID"))
		if err != nil {
			if errors.Is(err, medications.ErrNotFound) {
				http.Error(w, "medication not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// Permisos:
		// - Paciente dueño: con franja horaria
		// - Caretaker que la asignó: sin franja
		enforce := false
		switch uid {
		case med.PatientID:
			enforce = true
		case med.CaretakerID:
		default:
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		// Body vacío (incluso chunked) = defaults.
		var req markRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := v.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		date := svc.Today()
		if strings.TrimSpace(req.Date) != "" {
			date, _ = ParseDate(req.Date)
		}
		taken := true
		if req.Taken != nil {
			taken = *req.Taken
		}

		e, created, err := svc.Mark(r.Context(), med, MarkInput{
			Date:          date,
			Taken:         taken,
			ActorID:       uid,
			EnforceWindow: enforce,
		})
		if err != nil {
			log.Warn("mark rejected", map[string]any{
				"medication_id": med.ID,
				"user_id":       uid,
				"date":          FormatDate(date),
				"err":           err,
			})
			writeError(w, err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, toLogResponse(e))
	}
}

func toLogResponse(e LogEntry) logResponse {
	return logResponse{
		ID:           e.ID,
		MedicationID: e.MedicationID,
		PatientID:    e.PatientID,
		Date:         FormatDate(e.Date),
		Taken:        e.Taken,
		RecordedBy:   e.RecordedBy,
		CreatedAt:    e.CreatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrFutureDate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrOutsideWindow), errors.Is(err, ErrNotScheduled), errors.Is(err, ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
