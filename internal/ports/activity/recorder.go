package activity

import "context"

type Severity string

const (
	SeverityInfo    Severity = "Info"
	SeveritySuccess Severity = "Success"
	SeverityWarning Severity = "Warning"
	SeverityError   Severity = "Error"
)

// Acciones que aparecen en el log del sistema y en "Recent Activity" del dashboard.
const (
	ActionUserLogin         = "User Login"
	ActionUserLogout        = "User Logout"
	ActionPetRegistration   = "Pet Registration"
	ActionVaccinationRecord = "Vaccination Record"
	ActionRabiesCaseReport  = "Rabies Case Report"
	ActionUserCreated       = "User Created"
	ActionVaccineAdded      = "Vaccine Added"
	ActionCalendarEvent     = "Calendar Event"
)

type Entry struct {
	Action   string
	User     string
	Details  string
	Severity Severity
}

// Recorder registra actividad de negocio. Lo implementa el log del panel admin;
// se inyecta como interfaz para no importar admin desde cada módulo.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Nop no registra nada.
type Nop struct{}

func (Nop) Record(context.Context, Entry) error { return nil }
