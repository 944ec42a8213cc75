package reports

import "time"

// Filter acota el reporte. From/To son inclusivos; cero = año en curso.
type Filter struct {
	From         time.Time
	To           time.Time
	Municipality string
	Veterinarian string
	Species      string
}

type Summary struct {
	TotalVaccinations    int
	ThisMonth            int
	TotalPets            int
	CoverageRate         float64
	ActiveMunicipalities int
	ActiveVeterinarians  int
}

// MonthCount: Month en formato "2006-01", Label abreviado ("Aug").
type MonthCount struct {
	Month        string
	Label        string
	Vaccinations int
}

// Share es una porción de un desglose; Percentage sobre el total del rango.
type Share struct {
	Name       string
	Value      int
	Percentage float64
}

type VetPerformance struct {
	Name           string
	Vaccinations   int
	Municipalities int
}

type OverduePet struct {
	ID              string
	Name            string
	Owner           string
	Location        string
	LastVaccination *time.Time
	DaysOverdue     int
}

type Report struct {
	From               time.Time
	To                 time.Time
	Summary            Summary
	Monthly            []MonthCount
	ByLocation         []Share
	BySpecies          []Share
	Veterinarians      []VetPerformance
	NeedingVaccination []OverduePet
}
