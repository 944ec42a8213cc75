package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vax-tracker/internal/domain/listfilter"
	"vax-tracker/internal/ports/activity"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

const clockLayout = "15:04"

type Service struct {
	repo     Repository
	recorder activity.Recorder
	now      func() time.Time
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
	return &Service{repo: repo, recorder: rec, now: now}
}

// List filtra por substring de ubicación ("all" o vacío = todos).
func (s *Service) List(ctx context.Context, location string) ([]Event, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return listfilter.Apply(all, func(e Event) bool {
		return listfilter.MatchContains(location, e.Location)
	}), nil
}

// Upcoming devuelve hasta n eventos desde hoy inclusive, por fecha ascendente.
func (s *Service) Upcoming(ctx context.Context, n int) ([]Event, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	today := day(s.now())
	out := listfilter.Apply(all, func(e Event) bool { return !day(e.Date).Before(today) })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}

type WeekDay struct {
	Date   time.Time
	Events []Event
}

// Week devuelve los siete días (domingo a sábado) de la semana de ref con sus eventos.
func (s *Service) Week(ctx context.Context, ref time.Time) ([]WeekDay, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	start := WeekStart(ref)
	out := make([]WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		out = append(out, WeekDay{
			Date:   d,
			Events: listfilter.Apply(all, func(e Event) bool { return day(e.Date).Equal(d) }),
		})
	}
	return out, nil
}

// WeekStart es el domingo de la semana de t.
func WeekStart(t time.Time) time.Time {
	d := day(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

type CreateInput struct {
	Title        string
	Location     string
	Date         time.Time
	StartTime    string
	EndTime      string
	Type         string
	ExpectedPets int
}

func (s *Service) Create(ctx context.Context, actor string, in CreateInput) (Event, error) {
	title := strings.TrimSpace(in.Title)
	loc := strings.TrimSpace(in.Location)
	if title == "" || loc == "" || in.Date.IsZero() {
		return Event{}, fmt.Errorf("%w: title, location and date are required", ErrInvalidInput)
	}
	start, err := time.Parse(clockLayout, strings.TrimSpace(in.StartTime))
	if err != nil {
		return Event{}, fmt.Errorf("%w: start time must be HH:MM", ErrInvalidInput)
	}
	end, err := time.Parse(clockLayout, strings.TrimSpace(in.EndTime))
	if err != nil {
		return Event{}, fmt.Errorf("%w: end time must be HH:MM", ErrInvalidInput)
	}
	if !end.After(start) {
		return Event{}, fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
	}
	typ := TypeDrive
	if v := strings.ToLower(strings.TrimSpace(in.Type)); v != "" {
		parsed, ok := ParseEventType(v)
		if !ok {
			return Event{}, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, in.Type)
		}
		typ = parsed
	}
	if in.ExpectedPets < 0 {
		return Event{}, fmt.Errorf("%w: expected pets must not be negative", ErrInvalidInput)
	}

	e := Event{
		ID:           uuid.NewString(),
		Title:        title,
		Location:     loc,
		Date:         day(in.Date),
		StartTime:    start.Format(clockLayout),
		EndTime:      end.Format(clockLayout),
		Type:         typ,
		ExpectedPets: in.ExpectedPets,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, err
	}

	_ = s.recorder.Record(ctx, activity.Entry{
		Action:   activity.ActionCalendarEvent,
		User:     actor,
		Details:  fmt.Sprintf("Scheduled %s at %s on %s", e.Title, e.Location, e.Date.Format("2006-01-02")),
		Severity: activity.SeverityInfo,
	})
	return e, nil
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
