package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vax-tracker/internal/domain/calendar"
)

type calendarRepo struct {
	mu     sync.RWMutex
	events []calendar.Event
}

func NewCalendarRepo() calendar.Repository {
	return &calendarRepo{}
}

func NewSeededCalendarRepo() calendar.Repository {
	return &calendarRepo{events: SeedCalendarEvents()}
}

func (r *calendarRepo) Create(ctx context.Context, e calendar.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("event id required")
	}
	for _, cur := range r.events {
		if cur.ID == e.ID {
			return errors.New("event already exists")
		}
	}
	r.events = append(r.events, e)
	return nil
}

func (r *calendarRepo) List(ctx context.Context) ([]calendar.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]calendar.Event, len(r.events))
	copy(out, r.events)

	// fecha asc, hora de inicio como desempate
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}
