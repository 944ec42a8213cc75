package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"vax-tracker/internal/domain/navigation"
	"vax-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/auth/login", loginHandler(svc))
	r.Post("/auth/logout", logoutHandler(svc))

	r.Route("/me", func(mr chi.Router) {
		mr.Get("/", meHandler(svc))
		mr.Get("/menu", menuHandler(svc))
		mr.Post("/navigate", navigateHandler(svc))
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token        string                   `json:"token,omitempty"`
	Email        string                   `json:"email"`
	Role         navigation.Role          `json:"role"`
	RoleLabel    string                   `json:"role_label"`
	DisplayName  string                   `json:"display_name"`
	View         navigation.State         `json:"view"`
	Menu         []navigation.MenuEntry   `json:"menu"`
	QuickActions []navigation.QuickAction `json:"quick_actions"`
}

type navigateRequest struct {
	Page             string `json:"page"`
	SelectedEntityID string `json:"selected_entity_id"`
}

type logoutResponse struct {
	View navigation.State `json:"view"`
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Valida email/password contra la tabla de cuentas demo y abre una sesión. Devuelve el token Bearer y el view-state inicial.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} sessionResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "invalid email or password"
// @Router /auth/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sess, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidCredentials):
				http.Error(w, err.Error(), http.StatusUnauthorized)
			case r.Context().Err() != nil:
				// cliente canceló durante la espera simulada
				return
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toSessionResponse(sess, true))
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Description Destruye la sesión actual y devuelve el view-state reseteado (dashboard).
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} logoutResponse
// @Failure 401 {string} string "unauthorized"
// @Router /auth/logout [post]
func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Token) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		view, err := svc.Logout(r.Context(), claims.Token)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		writeJSON(w, http.StatusOK, logoutResponse{View: view})
	}
}

func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := currentSession(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(sess, false))
	}
}

func menuHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := currentSession(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, navigation.Menu(sess.Role))
	}
}

// navigateHandler godoc
// @Summary Navegar a una pantalla
// @Description Reemplaza la pantalla actual. selected_entity_id vacío conserva la entidad previa. La pantalla admin resuelve a dashboard para roles no admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payload body navigateRequest true "Pantalla destino"
// @Success 200 {object} navigation.State
// @Failure 400 {string} string "unknown page"
// @Failure 401 {string} string "unauthorized"
// @Router /me/navigate [post]
func navigateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Token) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req navigateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		page, err := navigation.ParsePage(req.Page)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		view, err := svc.Navigate(r.Context(), claims.Token, page, req.SelectedEntityID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, view)
	}
}

func currentSession(w http.ResponseWriter, r *http.Request, svc *Service) (Session, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.Token) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Session{}, false
	}
	sess, err := svc.Get(r.Context(), claims.Token)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Session{}, false
	}
	return sess, true
}

func toSessionResponse(s Session, withToken bool) sessionResponse {
	out := sessionResponse{
		Email:        s.Email,
		Role:         s.Role,
		RoleLabel:    s.Role.Label(),
		DisplayName:  s.DisplayName,
		View:         s.View,
		Menu:         navigation.Menu(s.Role),
		QuickActions: navigation.QuickActions(s.Role),
	}
	if withToken {
		out.Token = s.Token
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
