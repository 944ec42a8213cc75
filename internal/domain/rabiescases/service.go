package rabiescases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vax-tracker/internal/platform/ids"
	"vax-tracker/internal/ports/activity"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("rabies case not found")
)

const idAttempts = 5

type Service struct {
	repo     Repository
	recorder activity.Recorder
	now      func() time.Time
	newID    func() string
}

type Options struct {
	Recorder activity.Recorder
	Now      func() time.Time
}

func NewService(repo Repository, opts Options) *Service {
	rec := opts.Recorder
	if rec == nil {
		rec = activity.Nop{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:     repo,
		recorder: rec,
		now:      now,
		newID:    func() string { return ids.Numeric("RBR") },
	}
}

type SubmitInput struct {
	ReportDate       *time.Time // nil = hoy
	ReporterName     string
	AnimalTag        string
	AnimalSpecies    string
	LocationIncident string
	Symptoms         []string
	BiteVictim       BiteVictim
	ActionTaken      string
	AdditionalNotes  string
}

// Submit valida y guarda el reporte. Queda en el log del sistema como Warning.
func (s *Service) Submit(ctx context.Context, actor string, in SubmitInput) (Report, error) {
	if strings.TrimSpace(in.ReporterName) == "" {
		return Report{}, fmt.Errorf("%w: reporter name required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.LocationIncident) == "" {
		return Report{}, fmt.Errorf("%w: incident location required", ErrInvalidInput)
	}
	species, ok := ParseSpecies(strings.ToLower(strings.TrimSpace(in.AnimalSpecies)))
	if !ok {
		return Report{}, fmt.Errorf("%w: animal species must be one of dog, cat, stray-dog, stray-cat, bat, other", ErrInvalidInput)
	}
	symptoms, err := canonicalSymptoms(in.Symptoms)
	if err != nil {
		return Report{}, err
	}
	action := strings.TrimSpace(in.ActionTaken)
	if action != "" {
		canon, ok := lookup(Actions(), action)
		if !ok {
			return Report{}, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
		}
		action = canon
	}

	victim := in.BiteVictim
	if victim.HasVictim {
		if strings.TrimSpace(victim.Name) == "" {
			return Report{}, fmt.Errorf("%w: victim name required", ErrInvalidInput)
		}
		victim.Name = strings.TrimSpace(victim.Name)
		victim.Age = strings.TrimSpace(victim.Age)
		victim.Contact = strings.TrimSpace(victim.Contact)
		victim.BiteLocation = strings.TrimSpace(victim.BiteLocation)
	} else {
		victim = BiteVictim{}
	}

	now := s.now()
	reportDate := truncateDay(now)
	if in.ReportDate != nil {
		reportDate = truncateDay(*in.ReportDate)
	}

	id, err := s.freeID(ctx)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		ID:               id,
		ReportDate:       reportDate,
		ReporterName:     strings.TrimSpace(in.ReporterName),
		AnimalTag:        strings.TrimSpace(in.AnimalTag),
		AnimalSpecies:    species,
		LocationIncident: strings.TrimSpace(in.LocationIncident),
		Symptoms:         symptoms,
		BiteVictim:       victim,
		ActionTaken:      action,
		AdditionalNotes:  strings.TrimSpace(in.AdditionalNotes),
		ReportedBy:       actor,
		CreatedAt:        now,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return Report{}, err
	}

	_ = s.recorder.Record(ctx, activity.Entry{
		Action:   activity.ActionRabiesCaseReport,
		User:     actor,
		Details:  fmt.Sprintf("Suspected rabies case %s reported at %s", r.ID, r.LocationIncident),
		Severity: activity.SeverityWarning,
	})
	return r, nil
}

func (s *Service) List(ctx context.Context) ([]Report, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Report, error) {
	r, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Report{}, ErrNotFound
	}
	return r, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *Service) freeID(ctx context.Context) (string, error) {
	for i := 0; i < idAttempts; i++ {
		id := s.newID()
		_, err := s.repo.GetByID(ctx, id)
		if errors.Is(err, ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("could not allocate report id")
}

// canonicalSymptoms valida contra la lista conocida, deduplica y conserva el orden de marcado.
func canonicalSymptoms(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, raw := range in {
		canon, ok := lookup(Symptoms(), raw)
		if !ok {
			return nil, fmt.Errorf("%w: unknown symptom %q", ErrInvalidInput, raw)
		}
		if _, dup := seen[canon]; dup {
			continue
		}
		seen[canon] = struct{}{}
		out = append(out, canon)
	}
	return out, nil
}

func lookup(list []string, v string) (string, bool) {
	v = strings.TrimSpace(v)
	for _, it := range list {
		if strings.EqualFold(it, v) {
			return it, true
		}
	}
	return "", false
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
