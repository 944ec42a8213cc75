package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vax-tracker/internal/middleware"
	"vax-tracker/internal/ports/activity"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

// RegisterRoutes monta /admin/*; todo el grupo exige rol admin.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/admin", func(ar chi.Router) {
		ar.Use(middleware.RequireRole("admin"))

		ar.Get("/users", listUsersHandler(svc))
		ar.Post("/users", addUserHandler(svc))
		ar.Get("/vaccines", listVaccinesHandler(svc))
		ar.Post("/vaccines", addVaccineHandler(svc))
		ar.Get("/logs", listLogsHandler(svc))
		ar.Get("/stats", statsHandler(svc))
	})
}

type addUserRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role" enums:"admin,veterinarian,vaccinator,viewer"`
	Municipality string `json:"municipality"`
}

type userResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         UserRole   `json:"role"`
	Municipality string     `json:"municipality"`
	Status       UserStatus `json:"status"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

type addVaccineRequest struct {
	Name         string `json:"name"`
	Type         string `json:"type" enums:"injectable,oral"`
	Manufacturer string `json:"manufacturer"`
	Quantity     int    `json:"quantity"`
	BatchNo      string `json:"batch_no"`
	ExpiryDate   string `json:"expiry_date"` // YYYY-MM-DD
}

type vaccineResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Type         VaccineType `json:"type"`
	Manufacturer string      `json:"manufacturer"`
	Quantity     int         `json:"quantity"`
	BatchNo      string      `json:"batch_no"`
	ExpiryDate   string      `json:"expiry_date"`
	Status       StockStatus `json:"status"`
}

type LogResponse struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Action    string            `json:"action"`
	User      string            `json:"user"`
	Details   string            `json:"details"`
	Severity  activity.Severity `json:"severity"`
}

type statsResponse struct {
	TotalUsers        int        `json:"total_users"`
	ActiveUsers       int        `json:"active_users"`
	TotalPets         int        `json:"total_pets"`
	TotalVaccinations int        `json:"total_vaccinations"`
	LastBackup        *time.Time `json:"last_backup,omitempty"`
}

// listUsersHandler godoc
// @Summary Listar usuarios del sistema
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer token (rol admin)"
// @Success 200 {array} userResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /admin/users [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Users(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// addUserHandler godoc
// @Summary Alta de usuario
// @Description Crea un usuario activo. Todos los campos son obligatorios y el email debe ser único.
// @Tags admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token (rol admin)"
// @Param payload body addUserRequest true "Usuario"
// @Success 201 {object} userResponse
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Failure 403 {string} string "forbidden"
// @Failure 409 {string} string "email already registered"
// @Router /admin/users [post]
func addUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req addUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.AddUser(r.Context(), claims.DisplayName, AddUserInput(req))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrDuplicateEmail):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusCreated, toUserResponse(u))
	}
}

// listVaccinesHandler godoc
// @Summary Inventario de vacunas
// @Description Lotes con estado derivado: Expired si venció, Low Stock si quedan menos de 50 dosis.
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer token (rol admin)"
// @Success 200 {array} vaccineResponse
// @Failure 403 {string} string "forbidden"
// @Router /admin/vaccines [get]
func listVaccinesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Vaccines(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out := make([]vaccineResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVaccineResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// addVaccineHandler godoc
// @Summary Agregar lote de vacunas
// @Tags admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token (rol admin)"
// @Param payload body addVaccineRequest true "Lote"
// @Success 201 {object} vaccineResponse
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Failure 403 {string} string "forbidden"
// @Router /admin/vaccines [post]
func addVaccineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req addVaccineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := AddVaccineInput{
			Name:         req.Name,
			Type:         req.Type,
			Manufacturer: req.Manufacturer,
			Quantity:     req.Quantity,
			BatchNo:      req.BatchNo,
		}
		if v := strings.TrimSpace(req.ExpiryDate); v != "" {
			t, err := time.Parse(dateLayout, v)
			if err != nil {
				http.Error(w, "expiry_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.ExpiryDate = t
		}

		v, err := svc.AddVaccine(r.Context(), claims.DisplayName, in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toVaccineResponse(v))
	}
}

// listLogsHandler godoc
// @Summary Log del sistema
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer token (rol admin)"
// @Param severity query string false "all | info | success | warning | error"
// @Success 200 {array} LogResponse
// @Failure 403 {string} string "forbidden"
// @Router /admin/logs [get]
func listLogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Logs(r.Context(), r.URL.Query().Get("severity"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out := make([]LogResponse, 0, len(items))
		for _, e := range items {
			out = append(out, ToLogResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// statsHandler godoc
// @Summary Estadísticas del sistema
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer token (rol admin)"
// @Success 200 {object} statsResponse
// @Failure 403 {string} string "forbidden"
// @Router /admin/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Stats(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, statsResponse{
			TotalUsers:        st.TotalUsers,
			ActiveUsers:       st.ActiveUsers,
			TotalPets:         st.TotalPets,
			TotalVaccinations: st.TotalVaccinations,
			LastBackup:        st.LastBackup,
		})
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		Municipality: u.Municipality,
		Status:       u.Status,
		LastLogin:    u.LastLogin,
	}
}

func toVaccineResponse(v VaccineStock) vaccineResponse {
	return vaccineResponse{
		ID:           v.ID,
		Name:         v.Name,
		Type:         v.Type,
		Manufacturer: v.Manufacturer,
		Quantity:     v.Quantity,
		BatchNo:      v.BatchNo,
		ExpiryDate:   v.ExpiryDate.Format(dateLayout),
		Status:       v.Status,
	}
}

// ToLogResponse lo reutiliza el dashboard para "Recent Activity".
func ToLogResponse(e LogEntry) LogResponse {
	return LogResponse{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		Action:    e.Action,
		User:      e.User,
		Details:   e.Details,
		Severity:  e.Severity,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
