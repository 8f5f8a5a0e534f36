package profiles

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"medicare-companion/internal/middleware"
	"medicare-companion/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

// RegisterValidations agrega el tag role.
func RegisterValidations(v *validation.Validator) {
	v.RegisterEnum("role", "must be patient or caretaker", string(RolePatient), string(RoleCaretaker))
}

func RegisterRoutes(r chi.Router, svc *Service, v *validation.Validator) {
	r.Get("/me", getMeHandler(svc))
	r.Post("/me/profile", createProfileHandler(svc, v))

	// Para el selector de pacientes del caretaker
	r.Get("/patients", listPatientsHandler(svc))
}

type createProfileRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	Role string `json:"role" validate:"required,role" enums:"patient,caretaker"`
}

type profileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// getMeHandler godoc
// @Summary Perfil del usuario autenticado
// @Tags profiles
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} profileResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "profile not found"
// @Router /me [get]
func getMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), uid)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// createProfileHandler godoc
// @Summary Completar alta
// @Description Crea el perfil (nombre y rol) del usuario ya registrado en el proveedor de identidad.
// @Tags profiles
// @Accept json
// @Produce json
// @Param payload body createProfileRequest true "Perfil"
// @Success 201 {object} profileResponse
// @Failure 400 {string} string "invalid json / validation failed"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "profile already exists"
// @Router /me/profile [post]
func createProfileHandler(svc *Service, v *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := v.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), uid, CreateInput{Name: req.Name, Role: req.Role})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toProfileResponse(p))
	}
}

func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middleware.UserID(r.Context())
		if uid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if _, err := svc.Require(r.Context(), uid, RoleCaretaker); err != nil {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		items, err := svc.ListPatients(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]profileResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toProfileResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toProfileResponse(p Profile) profileResponse {
	return profileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	case errors.Is(err, ErrConflict):
		http.Error(w, "profile already exists", http.StatusConflict)
	case errors.Is(err, ErrWrongRole):
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
