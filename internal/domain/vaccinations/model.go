package vaccinations

import "time"

// RecordStatus es el estado de una fila del registro diario.
// @Enum Completed, In Progress, Scheduled
type RecordStatus string

const (
	StatusCompleted  RecordStatus = "Completed"
	StatusInProgress RecordStatus = "In Progress"
	StatusScheduled  RecordStatus = "Scheduled"
)

// DailyRecord es una vacunación (hecha, en curso o agendada) dentro del registro del día.
type DailyRecord struct {
	ID   string
	Date time.Time
	Time string // "08:30 AM"

	PetID        string
	PetName      string
	PetSpecies   string
	PetBreed     string
	Owner        string
	OwnerContact string

	VaccineType  string
	BatchNo      string
	Location     string
	Municipality string
	Veterinarian string

	Status RecordStatus
	Notes  string
}

// StatusCounts se calcula sobre el día completo, sin filtros.
type StatusCounts struct {
	Total      int
	Completed  int
	InProgress int
	Scheduled  int
}

// Veterinarians es la lista del select "Attending Veterinarian".
func Veterinarians() []string {
	return []string{"Dr. Maria Cruz", "Dr. Jose Santos", "Dr. Ana Rodriguez", "Dr. Carlos Mendoza"}
}

// RecentLocations son las sugerencias del campo ubicación.
func RecentLocations() []string {
	return []string{
		"Municipal Veterinary Office",
		"Barangay Health Center 1",
		"Barangay Health Center 2",
		"Mobile Clinic - Barangay 1",
		"Mobile Clinic - Barangay 2",
		"Municipal Animal Shelter",
		"Veterinary Clinic - Downtown",
		"Community Health Center",
	}
}
