package session

import (
	"strings"

	"vax-tracker/internal/domain/navigation"
)

type credential struct {
	password    string
	role        navigation.Role
	displayName string
}

// Tabla estática de cuentas demo. No es un control de seguridad: sin hashing ni lockout.
var credentials = map[string]credential{
	"admin@vaxtracker.com": {password: "admin123", role: navigation.RoleAdmin, displayName: "System Administrator"},
	"vet@vaxtracker.com":   {password: "vet123", role: navigation.RoleVeterinarian, displayName: "Dr. Maria Cruz"},
	"user@vaxtracker.com":  {password: "user123", role: navigation.RoleUser, displayName: "Jose Santos"},
}

// Resolve busca el email (recortado, match exacto) y compara la password tal cual.
func Resolve(email, password string) (Identity, error) {
	email = strings.TrimSpace(email)
	c, ok := credentials[email]
	if !ok || c.password != password {
		return Identity{}, ErrInvalidCredentials
	}
	return Identity{
		Email:       email,
		Role:        c.role,
		DisplayName: c.displayName,
	}, nil
}
