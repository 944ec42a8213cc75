package reports

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vax-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/reports", getReportHandler(svc))
}

type summaryResponse struct {
	TotalVaccinations    int     `json:"total_vaccinations"`
	ThisMonth            int     `json:"this_month"`
	TotalPets            int     `json:"total_pets"`
	CoverageRate         float64 `json:"coverage_rate"`
	ActiveMunicipalities int     `json:"active_municipalities"`
	ActiveVeterinarians  int     `json:"active_veterinarians"`
}

type monthResponse struct {
	Month        string `json:"month"`
	Label        string `json:"label"`
	Vaccinations int    `json:"vaccinations"`
}

type shareResponse struct {
	Name       string  `json:"name"`
	Value      int     `json:"value"`
	Percentage float64 `json:"percentage"`
}

type vetResponse struct {
	Name           string `json:"name"`
	Vaccinations   int    `json:"vaccinations"`
	Municipalities int    `json:"municipalities"`
}

type overdueResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Owner           string `json:"owner"`
	Location        string `json:"location"`
	LastVaccination string `json:"last_vaccination,omitempty"`
	DaysOverdue     int    `json:"days_overdue"`
}

type reportResponse struct {
	From               string            `json:"from"`
	To                 string            `json:"to"`
	Summary            summaryResponse   `json:"summary"`
	Monthly            []monthResponse   `json:"monthly"`
	ByLocation         []shareResponse   `json:"by_location"`
	BySpecies          []shareResponse   `json:"by_species"`
	Veterinarians      []vetResponse     `json:"veterinarians"`
	NeedingVaccination []overdueResponse `json:"needing_vaccination"`
}

// getReportHandler godoc
// @Summary Reportes y estadísticas de vacunación
// @Description Calculado sobre el historial de las mascotas. Sin fechas se usa el año en curso.
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param municipality query string false "all | municipality-a | ..."
// @Param veterinarian query string false "all | nombre del veterinario"
// @Param species query string false "all | dogs | cats"
// @Success 200 {object} reportResponse
// @Failure 400 {string} string "fechas o filtros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /reports [get]
func getReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q := r.URL.Query()
		f := Filter{
			Municipality: q.Get("municipality"),
			Veterinarian: q.Get("veterinarian"),
			Species:      q.Get("species"),
		}
		var err error
		if f.From, err = parseDate(q.Get("from")); err != nil {
			http.Error(w, "from must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if f.To, err = parseDate(q.Get("to")); err != nil {
			http.Error(w, "to must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		rep, err := svc.Generate(r.Context(), f)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toReportResponse(rep))
	}
}

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, v)
}

func toReportResponse(rep Report) reportResponse {
	out := reportResponse{
		From: rep.From.Format(dateLayout),
		To:   rep.To.Format(dateLayout),
		Summary: summaryResponse{
			TotalVaccinations:    rep.Summary.TotalVaccinations,
			ThisMonth:            rep.Summary.ThisMonth,
			TotalPets:            rep.Summary.TotalPets,
			CoverageRate:         rep.Summary.CoverageRate,
			ActiveMunicipalities: rep.Summary.ActiveMunicipalities,
			ActiveVeterinarians:  rep.Summary.ActiveVeterinarians,
		},
		Monthly:            make([]monthResponse, 0, len(rep.Monthly)),
		ByLocation:         toShares(rep.ByLocation),
		BySpecies:          toShares(rep.BySpecies),
		Veterinarians:      make([]vetResponse, 0, len(rep.Veterinarians)),
		NeedingVaccination: make([]overdueResponse, 0, len(rep.NeedingVaccination)),
	}
	for _, m := range rep.Monthly {
		out.Monthly = append(out.Monthly, monthResponse(m))
	}
	for _, v := range rep.Veterinarians {
		out.Veterinarians = append(out.Veterinarians, vetResponse(v))
	}
	for _, p := range rep.NeedingVaccination {
		o := overdueResponse{
			ID:          p.ID,
			Name:        p.Name,
			Owner:       p.Owner,
			Location:    p.Location,
			DaysOverdue: p.DaysOverdue,
		}
		if p.LastVaccination != nil {
			o.LastVaccination = p.LastVaccination.Format(dateLayout)
		}
		out.NeedingVaccination = append(out.NeedingVaccination, o)
	}
	return out
}

func toShares(items []Share) []shareResponse {
	out := make([]shareResponse, 0, len(items))
	for _, s := range items {
		out = append(out, shareResponse(s))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
