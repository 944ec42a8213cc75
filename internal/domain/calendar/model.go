package calendar

import "time"

// EventType clasifica las jornadas del calendario.
// @Enum drive, program, mobile, checkup, emergency
type EventType string

const (
	TypeDrive     EventType = "drive"
	TypeProgram   EventType = "program"
	TypeMobile    EventType = "mobile"
	TypeCheckup   EventType = "checkup"
	TypeEmergency EventType = "emergency"
)

func ParseEventType(s string) (EventType, bool) {
	switch v := EventType(s); v {
	case TypeDrive, TypeProgram, TypeMobile, TypeCheckup, TypeEmergency:
		return v, true
	}
	return "", false
}

// Event es una jornada de vacunación programada.
// StartTime/EndTime van en formato 24h "HH:MM".
type Event struct {
	ID             string
	Title          string
	Location       string
	Date           time.Time
	StartTime      string
	EndTime        string
	Type           EventType
	ExpectedPets   int
	RegisteredPets int
}
