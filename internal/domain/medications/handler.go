package medications

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"medicare-companion/internal/domain/profiles"
	"medicare-companion/internal/middleware"
	"medicare-companion/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

// RegisterValidations agrega los tags weekday y timeslot.
func RegisterValidations(v *validation.Validator) {
	days := make([]string, 0, len(AllWeekdays))
	for _, d := range AllWeekdays {
		days = append(days, string(d))
	}
	v.RegisterEnum("weekday", "must be one of Mon, Tue, Wed, Thu, Fri, Sat, Sun", days...)

	slots := make([]string, 0, len(slotWindows))
	for s := range slotWindows {
		slots = append(slots, string(s))
	}
	v.RegisterEnum("timeslot", "must be a known time slot", slots...)
}

func RegisterRoutes(r chi.Router, svc *Service, profilesSvc *profiles.Service, v *validation.Validator) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Post("/", createMedicationHandler(svc, profilesSvc, v))
		mr.Get("/", listMedicationsHandler(svc, profilesSvc))

		mr.Get("/{medicationID}", getMedicationHandler(svc))
		mr.Patch("/{medicationID}", updateMedicationHandler(svc, v))
		mr.Delete("/{medicationID}", deleteMedicationHandler(svc))
	})
}

// createMedicationRequest asigna una medicación a un paciente.
// days vacío = diaria; time_slot vacío = sin restricción horaria.
type createMedicationRequest struct {
	PatientID string   `json:"patient_id" validate:"required"`
	Name      string   `json:"name" validate:"required,max=120"`
	Dosage    string   `json:"dosage" validate:"required,max=120"`
	Days      []string `json:"days" validate:"omitempty,dive,weekday"`
	TimeSlot  string   `json:"time_slot" validate:"omitempty,timeslot" enums:"After Breakfast,Before Lunch,After Lunch,High Tea,Before Dinner,After Dinner"`
}

type updateMedicationRequest struct {
	Name     *string   `json:"name" validate:"omitempty,max=120"`
	Dosage   *string   `json:"dosage" validate:"omitempty,max=120"`
	Days     *[]string `json:"days" validate:"omitempty,dive,weekday"`
	TimeSlot *string   `json:"time_slot" validate:"omitempty,timeslot"`
}

// medicationResponse representa una medicación asignada.
type medicationResponse struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	CaretakerID string    `json:"caretaker_id"`
	Name        string    `json:"name"`
	Dosage      string    `json:"dosage"`
	Days        []Weekday `json:"days"`
	TimeSlot    TimeSlot  `json:"time_slot"`
	WindowLabel string    `json:"window_label,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// createMedicationHandler godoc
// @Summary Asignar medicación
// @Description Un caretaker asigna una medicación a un paciente existente. `days` vacío significa todos los días; `time_slot` vacío significa sin restricción horaria.
// @Tags medications
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createMedicationRequest true "Medicación"
// @Success 201 {object} medicationResponse
// @Failure 400 {string} string "invalid json / validation failed / unknown patient"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /medications [post]
func createMedicationHandler(svc *Service, profilesSvc *profiles.Service, v *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if _, err := profilesSvc.Require(r.Context(), uid, profiles.RoleCaretaker); err != nil {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req createMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := v.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if _, err := profilesSvc.Require(r.Context(), req.PatientID, profiles.RolePatient); err != nil {
			http.Error(w, "unknown patient", http.StatusBadRequest)
			return
		}

		m, err := svc.Create(r.Context(), uid, CreateInput{
			PatientID: req.PatientID,
			Name:      req.Name,
			Dosage:    req.Dosage,
			Days:      req.Days,
			TimeSlot:  req.TimeSlot,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toMedicationResponse(m))
	}
}

// listMedicationsHandler godoc
// @Summary Listar medicaciones
// @Description Caretaker: las que asignó. Paciente: las suyas.
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Success 200 {array} medicationResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "profile required"
// @Router /medications [get]
func listMedicationsHandler(svc *Service, profilesSvc *profiles.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		p, err := profilesSvc.GetByID(r.Context(), uid)
		if err != nil {
			http.Error(w, "profile required", http.StatusForbidden)
			return
		}

		var items []Medication
		if p.Role == profiles.RoleCaretaker {
			items, err = svc.ListByCaretaker(r.Context(), uid)
		} else {
			items, err = svc.ListByPatient(r.Context(), uid)
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicationResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getMedicationHandler(svc *Service) http.HandlerFunc {
	// Visible para su caretaker y su paciente
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "medicationID"))
		if err != nil {
			writeError(w, err)
			return
		}
		if m.CaretakerID != uid && m.PatientID != uid {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		writeJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

// updateMedicationHandler godoc
// @Summary Editar medicación
// @Description Solo el caretaker que la asignó. Campos ausentes no se tocan; `days: []` la vuelve diaria.
// @Tags medications
// @Accept json
// @Produce json
// @Param medicationID path string true "ID de la medicación"
// @Param payload body updateMedicationRequest true "Cambios"
// @Success 200 {object} medicationResponse
// @Failure 400 {string} string "invalid json / validation failed"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medicationID} [patch]
func updateMedicationHandler(svc *Service, v *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateMedicationRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := v.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		m, err := svc.Update(r.Context(), chi.URLParam(r, "medicationID"), uid, UpdateInput{
			Name:     req.Name,
			Dosage:   req.Dosage,
			Days:     req.Days,
			TimeSlot: req.TimeSlot,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

func deleteMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "medicationID"), uid); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toMedicationResponse(m Medication) medicationResponse {
	days := m.Days
	if days == nil {
		days = []Weekday{}
	}
	label, _ := WindowLabel(m.TimeSlot)
	return medicationResponse{
		ID:          m.ID,
		PatientID:   m.PatientID,
		CaretakerID: m.CaretakerID,
		Name:        m.Name,
		Dosage:      m.Dosage,
		Days:        days,
		TimeSlot:    m.TimeSlot,
		WindowLabel: label,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "medication not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado en cada módulo a propósito; si aparece en más, se extrae.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
