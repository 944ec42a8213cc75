package pets

import "time"

// Species define las especies soportadas.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// Gender define el sexo de la mascota.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Owner son los datos de contacto del dueño tal como se capturan en el registro.
type Owner struct {
	Name    string
	Address string // "Barangay 1, Municipality A"
	Contact string
	Email   string
}

// VaccinationEvent es una aplicación de vacuna en el historial de la mascota.
type VaccinationEvent struct {
	ID           string
	Date         time.Time
	Vaccine      string
	BatchNo      string
	Location     string
	Veterinarian string
	NextDue      time.Time
}

type HealthNote struct {
	Date time.Time
	Note string
}

// Pet representa el perfil de una mascota registrada.
// History va del evento más reciente al más antiguo.
type Pet struct {
	ID      string
	Name    string
	Species Species
	Breed   string
	Age     string // texto libre: "3 years"
	Gender  Gender
	Color   string

	Owner Owner

	RegistrationDate time.Time
	Microchip        string

	History     []VaccinationEvent
	HealthNotes []HealthNote
}

// LastVaccination devuelve el evento más reciente, si existe.
func (p Pet) LastVaccination() (VaccinationEvent, bool) {
	if len(p.History) == 0 {
		return VaccinationEvent{}, false
	}
	return p.History[0], true
}

func ParseSpecies(s string) (Species, bool) {
	switch Species(normalizeEnum(s)) {
	case SpeciesDog:
		return SpeciesDog, true
	case SpeciesCat:
		return SpeciesCat, true
	}
	return "", false
}

func ParseGender(s string) (Gender, bool) {
	switch Gender(normalizeEnum(s)) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	}
	return "", false
}

// Label es la forma en que la UI muestra la especie ("Dog").
func (s Species) Label() string {
	switch s {
	case SpeciesDog:
		return "Dog"
	case SpeciesCat:
		return "Cat"
	}
	return string(s)
}

func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	}
	return string(g)
}
