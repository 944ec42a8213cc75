package navigation

import "strings"

// State es el view-state serializable: pantalla actual + entidad seleccionada opcional.
type State struct {
	CurrentPage      Page   `json:"current_page"`
	SelectedEntityID string `json:"selected_entity_id,omitempty"`
}

// Initial es el estado al iniciar sesión.
func Initial() State {
	return State{CurrentPage: PageDashboard}
}

// Reset es el estado tras logout: dashboard y sin entidad.
func Reset() State {
	return Initial()
}

// Navigate reemplaza la pantalla sin historial.
// entityID vacío conserva la entidad seleccionada previa.
// La pantalla admin resuelve a dashboard si el rol no es admin.
func Navigate(current State, role Role, page Page, entityID string) State {
	next := current
	next.CurrentPage = Resolve(role, page)
	if id := strings.TrimSpace(entityID); id != "" {
		next.SelectedEntityID = id
	}
	return next
}

// Resolve aplica el único gate de navegación (admin).
func Resolve(role Role, page Page) Page {
	if page == PageAdmin && !role.IsAdmin() {
		return PageDashboard
	}
	return page
}
