package rabiescases

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
	r.Route("/rabies-cases", func(rr chi.Router) {
		rr.Post("/", submitHandler(svc))
		rr.Get("/", listHandler(svc))
		rr.Get("/options", optionsHandler())
		rr.Get("/{caseID}", getHandler(svc))
	})
}

type biteVictimPayload struct {
	HasVictim        bool   `json:"has_victim"`
	Name             string `json:"victim_name"`
	Age              string `json:"victim_age"`
	Contact          string `json:"victim_contact"`
	BiteLocation     string `json:"bite_location"`
	MedicalAttention bool   `json:"medical_attention"`
}

type submitRequest struct {
	ReportDate       string            `json:"report_date"` // YYYY-MM-DD, por defecto hoy
	ReporterName     string            `json:"reporter_name"`
	AnimalTag        string            `json:"animal_tag"`
	AnimalSpecies    string            `json:"animal_species" enums:"dog,cat,stray-dog,stray-cat,bat,other"`
	LocationIncident string            `json:"location_incident"`
	Symptoms         []string          `json:"symptoms"`
	BiteVictim       biteVictimPayload `json:"bite_victim"`
	ActionTaken      string            `json:"action_taken"`
	AdditionalNotes  string            `json:"additional_notes"`
}

type reportResponse struct {
	ID               string            `json:"id"`
	ReportDate       string            `json:"report_date"`
	ReporterName     string            `json:"reporter_name"`
	AnimalTag        string            `json:"animal_tag"`
	AnimalSpecies    AnimalSpecies     `json:"animal_species"`
	LocationIncident string            `json:"location_incident"`
	Symptoms         []string          `json:"symptoms"`
	BiteVictim       biteVictimPayload `json:"bite_victim"`
	ActionTaken      string            `json:"action_taken"`
	AdditionalNotes  string            `json:"additional_notes"`
	ReportedBy       string            `json:"reported_by"`
	CreatedAt        time.Time         `json:"created_at"`
}

type optionsResponse struct {
	Species  []AnimalSpecies `json:"species"`
	Symptoms []string        `json:"symptoms"`
	Actions  []string        `json:"actions"`
}

// submitHandler godoc
// @Summary Reportar caso de rabia
// @Description Registra un caso sospechoso. report_date, reporter_name, animal_species y location_incident son obligatorios; victim_name es obligatorio si has_victim. Devuelve el ID RBR+6 dígitos.
// @Tags rabies-cases
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payload body submitRequest true "Reporte"
// @Success 201 {object} reportResponse
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 401 {string} string "unauthorized"
// @Router /rabies-cases [post]
func submitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := SubmitInput{
			ReporterName:     req.ReporterName,
			AnimalTag:        req.AnimalTag,
			AnimalSpecies:    req.AnimalSpecies,
			LocationIncident: req.LocationIncident,
			Symptoms:         req.Symptoms,
			BiteVictim:       BiteVictim(req.BiteVictim),
			ActionTaken:      req.ActionTaken,
			AdditionalNotes:  req.AdditionalNotes,
		}
		if v := strings.TrimSpace(req.ReportDate); v != "" {
			t, err := time.Parse(dateLayout, v)
			if err != nil {
				http.Error(w, "report_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.ReportDate = &t
		}

		rep, err := svc.Submit(r.Context(), claims.DisplayName, in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toReportResponse(rep))
	}
}

// listHandler godoc
// @Summary Listar casos de rabia
// @Tags rabies-cases
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} reportResponse
// @Failure 401 {string} string "unauthorized"
// @Router /rabies-cases [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out := make([]reportResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toReportResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rep, err := svc.Get(r.Context(), chi.URLParam(r, "caseID"))
		if err != nil {
			http.Error(w, "rabies case not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toReportResponse(rep))
	}
}

func optionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, optionsResponse{
			Species:  []AnimalSpecies{SpeciesDog, SpeciesCat, SpeciesStrayDog, SpeciesStrayCat, SpeciesBat, SpeciesOther},
			Symptoms: Symptoms(),
			Actions:  Actions(),
		})
	}
}

func toReportResponse(r Report) reportResponse {
	symptoms := r.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	return reportResponse{
		ID:               r.ID,
		ReportDate:       r.ReportDate.Format(dateLayout),
		ReporterName:     r.ReporterName,
		AnimalTag:        r.AnimalTag,
		AnimalSpecies:    r.AnimalSpecies,
		LocationIncident: r.LocationIncident,
		Symptoms:         symptoms,
		BiteVictim:       biteVictimPayload(r.BiteVictim),
		ActionTaken:      r.ActionTaken,
		AdditionalNotes:  r.AdditionalNotes,
		ReportedBy:       r.ReportedBy,
		CreatedAt:        r.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
