package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"vax-tracker/internal/domain/listfilter"
	"vax-tracker/internal/domain/pets"
	"vax-tracker/internal/domain/vaccinations"
)

type vaccinationLogRepo struct {
	mu      sync.RWMutex
	records []vaccinations.DailyRecord
}

func NewVaccinationLogRepo() vaccinations.Repository {
	return &vaccinationLogRepo{}
}

// NewSeededVaccinationLogRepo carga el registro demo fechado en day.
func NewSeededVaccinationLogRepo(day time.Time) vaccinations.Repository {
	return &vaccinationLogRepo{records: SeedDailyRecords(day)}
}

func (r *vaccinationLogRepo) Append(ctx context.Context, rec vaccinations.DailyRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("record id required")
	}
	r.records = append(r.records, rec)
	return nil
}

func (r *vaccinationLogRepo) ListByDate(ctx context.Context, day time.Time, filter vaccinations.TodayFilter) ([]vaccinations.DailyRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day = pets.Day(day)
	preds := append(filter.Predicates(), func(rec vaccinations.DailyRecord) bool {
		return pets.Day(rec.Date).Equal(day)
	})
	return listfilter.Apply(r.records, preds...), nil
}
