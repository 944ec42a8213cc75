package session

import (
	"time"

	"vax-tracker/internal/domain/navigation"
)

// Identity es lo que resuelve la tabla de credenciales.
type Identity struct {
	Email       string
	Role        navigation.Role
	DisplayName string
}

// Session vive solo en memoria mientras dure el login.
type Session struct {
	Token       string
	Email       string
	Role        navigation.Role
	DisplayName string

	View navigation.State

	CreatedAt  time.Time
	LastSeenAt time.Time
}

func (s Session) Identity() Identity {
	return Identity{Email: s.Email, Role: s.Role, DisplayName: s.DisplayName}
}
