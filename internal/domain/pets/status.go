package pets

import (
	"strings"
	"time"
)

// VaccinationStatus se deriva del historial contra la fecha de referencia; nunca se guarda.
type VaccinationStatus string

const (
	StatusUpToDate VaccinationStatus = "Up to date"
	StatusDueSoon  VaccinationStatus = "Due soon"
	StatusOverdue  VaccinationStatus = "Overdue"
)

// EventStatus es la etiqueta de cada fila del historial.
type EventStatus string

const (
	EventCurrent   EventStatus = "Current"
	EventCompleted EventStatus = "Completed"
)

// DueSoonWindow: un refuerzo que vence dentro de esta ventana cuenta como "Due soon".
const DueSoonWindow = 30 * 24 * time.Hour

// Catálogo de vacunas antirrábicas que acepta el registro de vacunación.
const (
	VaccineRabies       = "Rabies Vaccine"
	VaccineRabiesAnnual = "Rabies Vaccine (Annual)"
	VaccineRabies3Year  = "Rabies Vaccine (3-Year)"
)

var boosterMonths = map[string]int{
	VaccineRabies:       12,
	VaccineRabiesAnnual: 12,
	VaccineRabies3Year:  36,
}

// VaccineTypes devuelve el catálogo en el orden del formulario.
func VaccineTypes() []string {
	return []string{VaccineRabies, VaccineRabiesAnnual, VaccineRabies3Year}
}

// IsKnownVaccine compara sin distinguir mayúsculas y devuelve el nombre canónico.
func IsKnownVaccine(name string) (string, bool) {
	for _, v := range VaccineTypes() {
		if strings.EqualFold(strings.TrimSpace(name), v) {
			return v, true
		}
	}
	return "", false
}

// NextDueFor calcula el próximo refuerzo según el intervalo de la vacuna.
// Vacunas fuera del catálogo usan el intervalo anual.
func NextDueFor(vaccine string, date time.Time) time.Time {
	months, ok := boosterMonths[vaccine]
	if !ok {
		months = 12
	}
	return Day(date).AddDate(0, months, 0)
}

// StatusAt evalúa el estado de vacunación a la fecha today.
func StatusAt(p Pet, today time.Time) VaccinationStatus {
	last, ok := p.LastVaccination()
	if !ok {
		return StatusOverdue
	}
	due := Day(last.NextDue)
	if last.NextDue.IsZero() {
		due = NextDueFor(last.Vaccine, last.Date)
	}
	t := Day(today)
	switch {
	case due.Before(t):
		return StatusOverdue
	case !due.After(t.Add(DueSoonWindow)):
		return StatusDueSoon
	default:
		return StatusUpToDate
	}
}

// DaysOverdue devuelve cuántos días pasaron desde el vencimiento (0 si no está vencida).
func DaysOverdue(p Pet, today time.Time) int {
	last, ok := p.LastVaccination()
	if !ok {
		return 0
	}
	due := Day(last.NextDue)
	if last.NextDue.IsZero() {
		due = NextDueFor(last.Vaccine, last.Date)
	}
	d := int(Day(today).Sub(due).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// EventStatusAt: la posición 0 del historial es la vigente.
func EventStatusAt(index int) EventStatus {
	if index == 0 {
		return EventCurrent
	}
	return EventCompleted
}

// Day trunca a la fecha calendario en UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func normalizeEnum(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
