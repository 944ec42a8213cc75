package navigation

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRole = errors.New("unknown role")

// Role es el rol de la sesión. Los switches sobre Role deben ser exhaustivos.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleVeterinarian Role = "veterinarian"
	RoleUser         Role = "user"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleVeterinarian, RoleUser:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// Label es el texto del badge de rol ("Admin", "Veterinarian", "User").
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleVeterinarian:
		return "Veterinarian"
	case RoleUser:
		return "User"
	}
	panic(fmt.Sprintf("navigation: unhandled role %q", string(r)))
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }
