package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vax-tracker/internal/domain/admin"
)

type adminRepo struct {
	mu       sync.RWMutex
	users    []admin.User
	vaccines []admin.Vaccine
	logs     []admin.LogEntry
}

func NewAdminRepo() admin.Repository {
	return &adminRepo{}
}

// NewSeededAdminRepo carga usuarios, inventario y log demo.
func NewSeededAdminRepo() admin.Repository {
	return &adminRepo{
		users:    SeedUsers(),
		vaccines: SeedVaccines(),
		logs:     SeedLogs(),
	}
}

func (r *adminRepo) CreateUser(ctx context.Context, u admin.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return admin.ErrDuplicateEmail
		}
	}
	r.users = append(r.users, u)
	return nil
}

func (r *adminRepo) ListUsers(ctx context.Context) ([]admin.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]admin.User{}, r.users...), nil
}

func (r *adminRepo) CreateVaccine(ctx context.Context, v admin.Vaccine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("vaccine id required")
	}
	r.vaccines = append(r.vaccines, v)
	return nil
}

func (r *adminRepo) ListVaccines(ctx context.Context) ([]admin.Vaccine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]admin.Vaccine{}, r.vaccines...), nil
}

func (r *adminRepo) AppendLog(ctx context.Context, e admin.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs = append(r.logs, e)
	return nil
}

func (r *adminRepo) ListLogs(ctx context.Context) ([]admin.LogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// más nuevo primero; a igual timestamp gana el último insertado
	out := make([]admin.LogEntry, 0, len(r.logs))
	for i := len(r.logs) - 1; i >= 0; i-- {
		out = append(out, r.logs[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}
