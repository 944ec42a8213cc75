package pets

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
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", registerPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
	})
}

type registerPetRequest struct {
	OwnerName     string `json:"owner_name"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
	OwnerEmail    string `json:"owner_email"`
	PetName       string `json:"pet_name"`
	PetType       string `json:"pet_type" enums:"Dog,Cat"`
	Breed         string `json:"breed"`
	Gender        string `json:"gender" enums:"Male,Female"`
	Age           string `json:"age"`
	ColorMarkings string `json:"color_markings"`
	Microchip     string `json:"microchip"`
}

type ownerResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	Email   string `json:"email,omitempty"`
}

type eventResponse struct {
	ID           string      `json:"id"`
	Date         string      `json:"date"`
	Vaccine      string      `json:"vaccine"`
	BatchNo      string      `json:"batch_no"`
	Location     string      `json:"location"`
	Veterinarian string      `json:"veterinarian"`
	NextDue      string      `json:"next_due"`
	Status       EventStatus `json:"status"`
}

type healthNoteResponse struct {
	Date string `json:"date"`
	Note string `json:"note"`
}

// petResponse representa una mascota con su estado de vacunación derivado.
type petResponse struct {
	ID                string               `json:"id"`
	Name              string               `json:"name"`
	Species           Species              `json:"species"`
	SpeciesLabel      string               `json:"species_label"`
	Breed             string               `json:"breed"`
	Age               string               `json:"age"`
	Gender            Gender               `json:"gender"`
	Color             string               `json:"color"`
	Owner             ownerResponse        `json:"owner"`
	RegistrationDate  string               `json:"registration_date"`
	Microchip         string               `json:"microchip,omitempty"`
	VaccinationStatus VaccinationStatus    `json:"vaccination_status"`
	LastVaccination   string               `json:"last_vaccination,omitempty"`
	NextDue           string               `json:"next_vaccination_due,omitempty"`
	History           []eventResponse      `json:"vaccination_history"`
	HealthNotes       []healthNoteResponse `json:"health_notes"`
	QRPayload         string               `json:"qr_payload,omitempty"`
}

type listPetsResponse struct {
	Items   []petResponse `json:"items"`
	Showing int           `json:"showing"`
	Total   int           `json:"total"`
}

type registrationResponse struct {
	Pet       petResponse `json:"pet"`
	QRPayload string      `json:"qr_payload"`
}

// registerPetHandler godoc
// @Summary Registrar mascota
// @Description Da de alta una mascota con los datos del dueño. Asigna un ID PET+6 dígitos y devuelve el payload del QR.
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payload body registerPetRequest true "Datos del dueño y la mascota"
// @Success 201 {object} registrationResponse
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func registerPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req registerPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		reg, err := svc.Register(r.Context(), claims.DisplayName, RegisterInput(req))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		p := svc.profile(reg.Pet, svc.Today())
		writeJSON(w, http.StatusCreated, registrationResponse{
			Pet:       toPetResponse(p),
			QRPayload: reg.QRPayload,
		})
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Lista las mascotas registradas aplicando búsqueda y filtros. Todos los filtros se combinan con AND; "all" o vacío no restringe.
// @Tags pets
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param q query string false "Texto libre sobre nombre, dueño o ID"
// @Param species query string false "all | dog | cat"
// @Param status query string false "all | up-to-date | overdue | due-soon"
// @Param location query string false "all | municipality-a | municipality-b | ..."
// @Success 200 {object} listPetsResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q := r.URL.Query()
		res, err := svc.List(r.Context(), ListFilter{
			Query:    q.Get("q"),
			Species:  q.Get("species"),
			Status:   q.Get("status"),
			Location: q.Get("location"),
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := listPetsResponse{
			Items:   make([]petResponse, 0, len(res.Items)),
			Showing: len(res.Items),
			Total:   res.Total,
		}
		for _, p := range res.Items {
			out.Items = append(out.Items, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Perfil de mascota
// @Description Devuelve el perfil completo: dueño, historial de vacunación (más reciente primero), estado derivado y payload del QR.
// @Tags pets
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param petID path string true "ID de la mascota (PET123456)"
// @Success 200 {object} petResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.Get(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := toPetResponse(p)
		if qr, err := QRPayload(p.Pet); err == nil {
			out.QRPayload = qr
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// ToResponse expone el mapeo para los módulos que devuelven mascotas (vacunación).
func ToResponse(p Profile) any {
	return toPetResponse(p)
}

func toPetResponse(p Profile) petResponse {
	out := petResponse{
		ID:           p.ID,
		Name:         p.Name,
		Species:      p.Species,
		SpeciesLabel: p.Species.Label(),
		Breed:        p.Breed,
		Age:          p.Age,
		Gender:       p.Gender,
		Color:        p.Color,
		Owner: ownerResponse{
			Name:    p.Owner.Name,
			Address: p.Owner.Address,
			Contact: p.Owner.Contact,
			Email:   p.Owner.Email,
		},
		RegistrationDate:  formatDate(p.RegistrationDate),
		Microchip:         p.Microchip,
		VaccinationStatus: p.Status,
		History:           make([]eventResponse, 0, len(p.History)),
		HealthNotes:       make([]healthNoteResponse, 0, len(p.HealthNotes)),
	}
	if p.LastVaccinatedAt != nil {
		out.LastVaccination = formatDate(*p.LastVaccinatedAt)
	}
	if p.NextDue != nil {
		out.NextDue = formatDate(*p.NextDue)
	}
	for i, e := range p.History {
		out.History = append(out.History, eventResponse{
			ID:           e.ID,
			Date:         formatDate(e.Date),
			Vaccine:      e.Vaccine,
			BatchNo:      e.BatchNo,
			Location:     e.Location,
			Veterinarian: e.Veterinarian,
			NextDue:      formatDate(e.NextDue),
			Status:       EventStatusAt(i),
		})
	}
	for _, n := range p.HealthNotes {
		out.HealthNotes = append(out.HealthNotes, healthNoteResponse{Date: formatDate(n.Date), Note: n.Note})
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
