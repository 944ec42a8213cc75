package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vax-tracker/internal/domain/rabiescases"
)

type rabiesCaseRepo struct {
	mu   sync.RWMutex
	byID map[string]rabiescases.Report
}

func NewRabiesCaseRepo() rabiescases.Repository {
	return &rabiesCaseRepo{
		byID: make(map[string]rabiescases.Report),
	}
}

func (r *rabiesCaseRepo) Create(ctx context.Context, rep rabiescases.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rep.ID) == "" {
		return errors.New("report id required")
	}
	if _, exists := r.byID[rep.ID]; exists {
		return errors.New("report already exists")
	}
	rep.Symptoms = append([]string(nil), rep.Symptoms...)
	r.byID[rep.ID] = rep
	return nil
}

func (r *rabiesCaseRepo) GetByID(ctx context.Context, id string) (rabiescases.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rep, ok := r.byID[id]
	if !ok {
		return rabiescases.Report{}, rabiescases.ErrNotFound
	}
	return rep, nil
}

func (r *rabiesCaseRepo) List(ctx context.Context) ([]rabiescases.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]rabiescases.Report, 0, len(r.byID))
	for _, rep := range r.byID {
		out = append(out, rep)
	}

	// created_at desc, id como desempate
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
