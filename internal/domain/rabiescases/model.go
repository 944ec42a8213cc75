package rabiescases

import "time"

// AnimalSpecies del animal sospechoso.
// @Enum dog, cat, stray-dog, stray-cat, bat, other
type AnimalSpecies string

const (
	SpeciesDog      AnimalSpecies = "dog"
	SpeciesCat      AnimalSpecies = "cat"
	SpeciesStrayDog AnimalSpecies = "stray-dog"
	SpeciesStrayCat AnimalSpecies = "stray-cat"
	SpeciesBat      AnimalSpecies = "bat"
	SpeciesOther    AnimalSpecies = "other"
)

func ParseSpecies(s string) (AnimalSpecies, bool) {
	switch v := AnimalSpecies(s); v {
	case SpeciesDog, SpeciesCat, SpeciesStrayDog, SpeciesStrayCat, SpeciesBat, SpeciesOther:
		return v, true
	}
	return "", false
}

// Symptoms es la lista de síntomas que se pueden marcar en el reporte.
func Symptoms() []string {
	return []string{
		"Excessive drooling",
		"Difficulty swallowing",
		"Aggressive behavior",
		"Fear of water (hydrophobia)",
		"Paralysis",
		"Disorientation",
		"Seizures",
		"Unusual vocalization",
		"Loss of appetite",
		"Weakness/lethargy",
	}
}

// Actions son las acciones tomadas que acepta el reporte.
func Actions() []string {
	return []string{
		"Animal observed and monitored",
		"Animal quarantined",
		"Animal euthanized",
		"Animal tested for rabies",
		"Victim referred for medical treatment",
		"Area cordoned off",
		"Other animals in area vaccinated",
		"Authorities notified",
	}
}

type BiteVictim struct {
	HasVictim        bool
	Name             string
	Age              string
	Contact          string
	BiteLocation     string
	MedicalAttention bool
}

// Report es un caso sospechoso de rabia reportado en campo.
type Report struct {
	ID               string // "RBR" + 6 dígitos
	ReportDate       time.Time
	ReporterName     string
	AnimalTag        string
	AnimalSpecies    AnimalSpecies
	LocationIncident string
	Symptoms         []string
	BiteVictim       BiteVictim
	ActionTaken      string
	AdditionalNotes  string

	ReportedBy string
	CreatedAt  time.Time
}
