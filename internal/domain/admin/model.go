package admin

import (
	"time"

	"vax-tracker/internal/ports/activity"
)

// UserRole son los roles de personal que administra el panel.
// @Enum admin, veterinarian, vaccinator, viewer
type UserRole string

const (
	UserRoleAdmin        UserRole = "admin"
	UserRoleVeterinarian UserRole = "veterinarian"
	UserRoleVaccinator   UserRole = "vaccinator"
	UserRoleViewer       UserRole = "viewer"
)

func ParseUserRole(s string) (UserRole, bool) {
	switch v := UserRole(s); v {
	case UserRoleAdmin, UserRoleVeterinarian, UserRoleVaccinator, UserRoleViewer:
		return v, true
	}
	return "", false
}

type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
)

type User struct {
	ID           string
	Name         string
	Email        string
	Role         UserRole
	Municipality string
	Status       UserStatus
	LastLogin    *time.Time
}

// VaccineType es la vía de aplicación.
// @Enum injectable, oral
type VaccineType string

const (
	VaccineInjectable VaccineType = "injectable"
	VaccineOral       VaccineType = "oral"
)

type StockStatus string

const (
	StockIn      StockStatus = "In Stock"
	StockLow     StockStatus = "Low Stock"
	StockExpired StockStatus = "Expired"
)

// LowStockThreshold: por debajo de esta cantidad el lote se marca Low Stock.
const LowStockThreshold = 50

type Vaccine struct {
	ID           string
	Name         string
	Type         VaccineType
	Manufacturer string
	Quantity     int
	BatchNo      string
	ExpiryDate   time.Time
}

// StockStatusAt deriva el estado del lote a la fecha today.
func StockStatusAt(v Vaccine, today time.Time) StockStatus {
	y, m, d := today.Date()
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	switch {
	case v.ExpiryDate.Before(t):
		return StockExpired
	case v.Quantity < LowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}

// LogEntry es una fila del log del sistema.
type LogEntry struct {
	ID        string
	Timestamp time.Time
	Action    string
	User      string
	Details   string
	Severity  activity.Severity
}

// ActionDataBackup marca las corridas de respaldo; la última define LastBackup.
const ActionDataBackup = "Data Backup"

type Stats struct {
	TotalUsers        int
	ActiveUsers       int
	TotalPets         int
	TotalVaccinations int
	LastBackup        *time.Time
}
