package vaccinations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vax-tracker/internal/domain/pets"
	"vax-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Post("/pets/{petID}/vaccinations", recordVaccinationHandler(svc, petsSvc))

	r.Route("/vaccinations", func(vr chi.Router) {
		vr.Get("/today", todayHandler(svc))
		vr.Get("/locations", locationsHandler(svc))
		vr.Get("/options", optionsHandler())
	})
}

type recordVaccinationRequest struct {
	VaccineType  string `json:"vaccine_type" enums:"Rabies Vaccine,Rabies Vaccine (Annual),Rabies Vaccine (3-Year)"`
	BatchNo      string `json:"batch_no"`
	Location     string `json:"location"`
	Veterinarian string `json:"veterinarian"`
	Date         string `json:"date"`     // YYYY-MM-DD opcional, por defecto hoy
	NextDue      string `json:"next_due"` // YYYY-MM-DD opcional
	Notes        string `json:"notes"`
}

type dailyRecordResponse struct {
	ID           string       `json:"id"`
	Date         string       `json:"date"`
	Time         string       `json:"time"`
	PetID        string       `json:"pet_id"`
	PetName      string       `json:"pet_name"`
	PetSpecies   string       `json:"pet_species"`
	PetBreed     string       `json:"pet_breed"`
	Owner        string       `json:"owner"`
	OwnerContact string       `json:"owner_contact"`
	VaccineType  string       `json:"vaccine_type"`
	BatchNo      string       `json:"batch_no"`
	Location     string       `json:"location"`
	Municipality string       `json:"municipality"`
	Veterinarian string       `json:"veterinarian"`
	Status       RecordStatus `json:"status"`
	Notes        string       `json:"notes"`
}

type recordVaccinationResponse struct {
	Pet    any                 `json:"pet"`
	Record dailyRecordResponse `json:"record"`
}

type countsResponse struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Scheduled  int `json:"scheduled"`
}

type todayResponse struct {
	Date    string                `json:"date"`
	Items   []dailyRecordResponse `json:"items"`
	Showing int                   `json:"showing"`
	Counts  countsResponse        `json:"counts"`
}

type optionsResponse struct {
	VaccineTypes  []string `json:"vaccine_types"`
	Veterinarians []string `json:"veterinarians"`
	Locations     []string `json:"locations"`
}

// recordVaccinationHandler godoc
// @Summary Registrar vacunación
// @Description Antepone la vacuna al historial de la mascota y la agrega al registro del día. vaccine_type, batch_no, location y veterinarian son obligatorios.
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param petID path string true "ID de la mascota"
// @Param payload body recordVaccinationRequest true "Datos de la vacunación"
// @Success 201 {object} recordVaccinationResponse
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/vaccinations [post]
func recordVaccinationHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req recordVaccinationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := RecordInput{
			PetID:        chi.URLParam(r, "petID"),
			VaccineType:  req.VaccineType,
			BatchNo:      req.BatchNo,
			Location:     req.Location,
			Veterinarian: req.Veterinarian,
			Notes:        req.Notes,
		}
		if v := strings.TrimSpace(req.Date); v != "" {
			t, err := time.Parse(dateLayout, v)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.Date = &t
		}
		if v := strings.TrimSpace(req.NextDue); v != "" {
			t, err := time.Parse(dateLayout, v)
			if err != nil {
				http.Error(w, "next_due must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.NextDue = &t
		}

		res, err := svc.Record(r.Context(), claims.DisplayName, in)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrPetNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		profile, err := petsSvc.Get(r.Context(), res.Pet.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, recordVaccinationResponse{
			Pet:    pets.ToResponse(profile),
			Record: toDailyRecordResponse(res.Record),
		})
	}
}

// todayHandler godoc
// @Summary Vacunados hoy
// @Description Registro del día con búsqueda y filtros. Los contadores por estado se calculan sobre el día completo.
// @Tags vaccinations
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param q query string false "Texto libre sobre mascota, dueño o ID"
// @Param municipality query string false "all | municipality-a | ..."
// @Param veterinarian query string false "all | nombre exacto"
// @Param location query string false "all | substring de ubicación"
// @Success 200 {object} todayResponse
// @Failure 401 {string} string "unauthorized"
// @Router /vaccinations/today [get]
func todayHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q := r.URL.Query()
		res, err := svc.Today(r.Context(), TodayFilter{
			Query:        q.Get("q"),
			Municipality: q.Get("municipality"),
			Veterinarian: q.Get("veterinarian"),
			Location:     q.Get("location"),
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := todayResponse{
			Date:    res.Date.Format(dateLayout),
			Items:   make([]dailyRecordResponse, 0, len(res.Items)),
			Showing: len(res.Items),
			Counts: countsResponse{
				Total:      res.Counts.Total,
				Completed:  res.Counts.Completed,
				InProgress: res.Counts.InProgress,
				Scheduled:  res.Counts.Scheduled,
			},
		}
		for _, rec := range res.Items {
			out.Items = append(out.Items, toDailyRecordResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// locationsHandler godoc
// @Summary Sugerencias de ubicación
// @Tags vaccinations
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param q query string false "Substring a buscar"
// @Success 200 {array} string
// @Failure 401 {string} string "unauthorized"
// @Router /vaccinations/locations [get]
func locationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, svc.LocationSuggestions(r.URL.Query().Get("q")))
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
			VaccineTypes:  pets.VaccineTypes(),
			Veterinarians: Veterinarians(),
			Locations:     RecentLocations(),
		})
	}
}

func toDailyRecordResponse(rec DailyRecord) dailyRecordResponse {
	return dailyRecordResponse{
		ID:           rec.ID,
		Date:         rec.Date.Format(dateLayout),
		Time:         rec.Time,
		PetID:        rec.PetID,
		PetName:      rec.PetName,
		PetSpecies:   rec.PetSpecies,
		PetBreed:     rec.PetBreed,
		Owner:        rec.Owner,
		OwnerContact: rec.OwnerContact,
		VaccineType:  rec.VaccineType,
		BatchNo:      rec.BatchNo,
		Location:     rec.Location,
		Municipality: rec.Municipality,
		Veterinarian: rec.Veterinarian,
		Status:       rec.Status,
		Notes:        rec.Notes,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
