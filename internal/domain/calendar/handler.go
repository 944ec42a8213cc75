package calendar

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vax-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/calendar", func(cr chi.Router) {
		cr.Get("/events", listEventsHandler(svc))
		cr.Post("/events", createEventHandler(svc))
		cr.Get("/upcoming", upcomingHandler(svc))
		cr.Get("/week", weekHandler(svc))
	})
}

type createEventRequest struct {
	Title        string `json:"title"`
	Location     string `json:"location"`
	Date         string `json:"date"`       // YYYY-MM-DD
	StartTime    string `json:"start_time"` // HH:MM
	EndTime      string `json:"end_time"`   // HH:MM
	Type         string `json:"type" enums:"drive,program,mobile,checkup,emergency"`
	ExpectedPets int    `json:"expected_pets"`
}

type eventResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Location       string    `json:"location"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Type           EventType `json:"type"`
	ExpectedPets   int       `json:"expected_pets"`
	RegisteredPets int       `json:"registered_pets"`
}

type weekDayResponse struct {
	Date   string          `json:"date"`
	Events []eventResponse `json:"events"`
}

// listEventsHandler godoc
// @Summary Listar jornadas de vacunación
// @Tags calendar
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param location query string false "all | substring de ubicación"
// @Success 200 {array} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Router /calendar/events [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context(), r.URL.Query().Get("location"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponses(items))
	}
}

// createEventHandler godoc
// @Summary Programar jornada
// @Description title, location, date, start_time y end_time son obligatorios; end_time debe ser posterior a start_time.
// @Tags calendar
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payload body createEventRequest true "Jornada"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 401 {string} string "unauthorized"
// @Router /calendar/events [post]
func createEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		in := CreateInput{
			Title:        req.Title,
			Location:     req.Location,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Type:         req.Type,
			ExpectedPets: req.ExpectedPets,
		}
		if v := strings.TrimSpace(req.Date); v != "" {
			t, err := time.Parse(dateLayout, v)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.Date = t
		}

		e, err := svc.Create(r.Context(), claims.DisplayName, in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

func upcomingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		limit := 5
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
				limit = n
			}
		}
		items, err := svc.Upcoming(r.Context(), limit)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponses(items))
	}
}

func weekHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ref := svc.now()
		if v := strings.TrimSpace(r.URL.Query().Get("date")); v != "" {
			t, err := time.Parse(dateLayout, v)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			ref = t
		}

		days, err := svc.Week(r.Context(), ref)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out := make([]weekDayResponse, 0, len(days))
		for _, d := range days {
			out = append(out, weekDayResponse{Date: d.Date.Format(dateLayout), Events: toEventResponses(d.Events)})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toEventResponses(items []Event) []eventResponse {
	out := make([]eventResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toEventResponse(e))
	}
	return out
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:             e.ID,
		Title:          e.Title,
		Location:       e.Location,
		Date:           e.Date.Format(dateLayout),
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		Type:           e.Type,
		ExpectedPets:   e.ExpectedPets,
		RegisteredPets: e.RegisteredPets,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
