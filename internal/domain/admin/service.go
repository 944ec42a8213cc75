package admin

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"vax-tracker/internal/domain/listfilter"
	"vax-tracker/internal/domain/pets"
	"vax-tracker/internal/ports/activity"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrDuplicateEmail = errors.New("email already registered")
)

// PetSource alcanza con el listado de mascotas para las estadísticas.
type PetSource interface {
	List(ctx context.Context) ([]pets.Pet, error)
}

type Service struct {
	repo Repository
	pets PetSource
	now  func() time.Time
}

func NewService(repo Repository, petSource PetSource, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, pets: petSource, now: now}
}

var _ activity.Recorder = (*Service)(nil)

// Record implementa activity.Recorder: cada módulo deja su rastro en el log del sistema.
func (s *Service) Record(ctx context.Context, e activity.Entry) error {
	if strings.TrimSpace(e.Action) == "" {
		return ErrInvalidInput
	}
	sev := e.Severity
	if sev == "" {
		sev = activity.SeverityInfo
	}
	return s.repo.AppendLog(ctx, LogEntry{
		ID:        uuid.NewString(),
		Timestamp: s.now(),
		Action:    e.Action,
		User:      e.User,
		Details:   e.Details,
		Severity:  sev,
	})
}

// Logs filtra por severidad (all | info | success | warning | error).
func (s *Service) Logs(ctx context.Context, severity string) ([]LogEntry, error) {
	all, err := s.repo.ListLogs(ctx)
	if err != nil {
		return nil, err
	}
	return listfilter.Apply(all, func(e LogEntry) bool {
		return listfilter.MatchCategory(severity, string(e.Severity))
	}), nil
}

// Recent devuelve las n entradas más nuevas.
func (s *Service) Recent(ctx context.Context, n int) ([]LogEntry, error) {
	all, err := s.repo.ListLogs(ctx)
	if err != nil {
		return nil, err
	}
	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return all, nil
}

type AddUserInput struct {
	Name         string
	Email        string
	Role         string
	Municipality string
}

func (s *Service) AddUser(ctx context.Context, actor string, in AddUserInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	muni := strings.TrimSpace(in.Municipality)
	if name == "" || email == "" || muni == "" {
		return User{}, fmt.Errorf("%w: name, email, role and municipality are required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return User{}, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	role, ok := ParseUserRole(strings.ToLower(strings.TrimSpace(in.Role)))
	if !ok {
		return User{}, fmt.Errorf("%w: role must be admin, veterinarian, vaccinator or viewer", ErrInvalidInput)
	}

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return User{}, ErrDuplicateEmail
		}
	}

	u := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Role:         role,
		Municipality: muni,
		Status:       UserActive,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return User{}, err
	}

	_ = s.Record(ctx, activity.Entry{
		Action:   activity.ActionUserCreated,
		User:     actor,
		Details:  fmt.Sprintf("Created %s account for %s", role, name),
		Severity: activity.SeveritySuccess,
	})
	return u, nil
}

func (s *Service) Users(ctx context.Context) ([]User, error) {
	return s.repo.ListUsers(ctx)
}

type AddVaccineInput struct {
	Name         string
	Type         string
	Manufacturer string
	Quantity     int
	BatchNo      string
	ExpiryDate   time.Time
}

// VaccineStock es un lote con su estado derivado.
type VaccineStock struct {
	Vaccine
	Status StockStatus
}

func (s *Service) AddVaccine(ctx context.Context, actor string, in AddVaccineInput) (VaccineStock, error) {
	name := strings.TrimSpace(in.Name)
	maker := strings.TrimSpace(in.Manufacturer)
	batch := strings.TrimSpace(in.BatchNo)
	if name == "" || maker == "" || batch == "" {
		return VaccineStock{}, fmt.Errorf("%w: name, manufacturer and batch number are required", ErrInvalidInput)
	}
	typ := VaccineType(strings.ToLower(strings.TrimSpace(in.Type)))
	if typ != VaccineInjectable && typ != VaccineOral {
		return VaccineStock{}, fmt.Errorf("%w: type must be injectable or oral", ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return VaccineStock{}, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	if in.ExpiryDate.IsZero() {
		return VaccineStock{}, fmt.Errorf("%w: expiry date required", ErrInvalidInput)
	}

	v := Vaccine{
		ID:           uuid.NewString(),
		Name:         name,
		Type:         typ,
		Manufacturer: maker,
		Quantity:     in.Quantity,
		BatchNo:      batch,
		ExpiryDate:   in.ExpiryDate,
	}
	if err := s.repo.CreateVaccine(ctx, v); err != nil {
		return VaccineStock{}, err
	}

	_ = s.Record(ctx, activity.Entry{
		Action:   activity.ActionVaccineAdded,
		User:     actor,
		Details:  fmt.Sprintf("Added %d doses of %s (batch %s)", v.Quantity, v.Name, v.BatchNo),
		Severity: activity.SeveritySuccess,
	})
	return VaccineStock{Vaccine: v, Status: StockStatusAt(v, s.now())}, nil
}

func (s *Service) Vaccines(ctx context.Context) ([]VaccineStock, error) {
	items, err := s.repo.ListVaccines(ctx)
	if err != nil {
		return nil, err
	}
	today := s.now()
	out := make([]VaccineStock, 0, len(items))
	for _, v := range items {
		out = append(out, VaccineStock{Vaccine: v, Status: StockStatusAt(v, today)})
	}
	return out, nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return Stats{}, err
	}
	all, err := s.pets.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	logs, err := s.repo.ListLogs(ctx)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{
		TotalUsers:  len(users),
		ActiveUsers: listfilter.Count(users, func(u User) bool { return u.Status == UserActive }),
		TotalPets:   len(all),
	}
	for _, p := range all {
		st.TotalVaccinations += len(p.History)
	}
	for _, e := range logs {
		if e.Action == ActionDataBackup {
			ts := e.Timestamp
			st.LastBackup = &ts
			break
		}
	}
	return st, nil
}
