package dashboard

import (
	"encoding/json"
	"net/http"
	"strings"

	"vax-tracker/internal/domain/admin"
	"vax-tracker/internal/domain/navigation"
	"vax-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/dashboard", getDashboardHandler(svc))
}

type statsResponse struct {
	VaccinatedPets  int `json:"total_vaccinated_pets"`
	VaccinatedToday int `json:"pets_vaccinated_today"`
	RabiesCases     int `json:"total_rabies_cases"`
	RegisteredPets  int `json:"total_registered_pets"`
}

type dashboardResponse struct {
	Stats          statsResponse            `json:"stats"`
	QuickActions   []navigation.QuickAction `json:"quick_actions"`
	RecentActivity []admin.LogResponse      `json:"recent_activity"`
}

// getDashboardHandler godoc
// @Summary Dashboard
// @Description Contadores, accesos rápidos según rol y las últimas 3 entradas del log.
// @Tags dashboard
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dashboardResponse
// @Failure 401 {string} string "unauthorized"
// @Router /dashboard [get]
func getDashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		role, err := navigation.ParseRole(claims.Role)
		if err != nil {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		ov, err := svc.Overview(r.Context(), role)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := dashboardResponse{
			Stats:          statsResponse(ov.Stats),
			QuickActions:   ov.QuickActions,
			RecentActivity: make([]admin.LogResponse, 0, len(ov.Recent)),
		}
		for _, e := range ov.Recent {
			out.RecentActivity = append(out.RecentActivity, admin.ToLogResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
