package vaccinations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vax-tracker/internal/domain/listfilter"
	"vax-tracker/internal/domain/pets"
	"vax-tracker/internal/ports/activity"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrPetNotFound  = errors.New("pet not found")
)

// PetBook es lo que este módulo necesita del registro de mascotas.
type PetBook interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
	AppendVaccination(ctx context.Context, petID string, e pets.VaccinationEvent) (pets.Pet, error)
}

type Service struct {
	repo     Repository
	pets     PetBook
	recorder activity.Recorder
	now      func() time.Time
}

type Options struct {
	Recorder activity.Recorder
	Now      func() time.Time
}

func NewService(repo Repository, petBook PetBook, opts Options) *Service {
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
		pets:     petBook,
		recorder: rec,
		now:      now,
	}
}

type RecordInput struct {
	PetID        string
	VaccineType  string
	BatchNo      string
	Location     string
	Veterinarian string
	Date         *time.Time // nil = hoy
	NextDue      *time.Time // nil = según intervalo de la vacuna
	Notes        string
}

// Result es el historial actualizado más la fila agregada al registro diario.
type Result struct {
	Pet    pets.Pet
	Record DailyRecord
}

// Record registra la vacuna en el historial de la mascota y en el registro diario.
// Los cuatro campos del formulario son obligatorios.
func (s *Service) Record(ctx context.Context, actor string, in RecordInput) (Result, error) {
	required := []struct{ name, value string }{
		{"pet id", in.PetID},
		{"vaccine type", in.VaccineType},
		{"batch number", in.BatchNo},
		{"location", in.Location},
		{"veterinarian", in.Veterinarian},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return Result{}, fmt.Errorf("%w: %s required", ErrInvalidInput, f.name)
		}
	}
	vaccine, ok := pets.IsKnownVaccine(in.VaccineType)
	if !ok {
		return Result{}, fmt.Errorf("%w: unknown vaccine type %q", ErrInvalidInput, in.VaccineType)
	}

	now := s.now()
	day := pets.Day(now)
	if in.Date != nil {
		day = pets.Day(*in.Date)
	}
	if day.After(pets.Day(now)) {
		return Result{}, fmt.Errorf("%w: vaccination date is in the future", ErrInvalidInput)
	}
	ev := pets.VaccinationEvent{
		ID:           uuid.NewString(),
		Date:         day,
		Vaccine:      vaccine,
		BatchNo:      strings.TrimSpace(in.BatchNo),
		Location:     strings.TrimSpace(in.Location),
		Veterinarian: strings.TrimSpace(in.Veterinarian),
	}
	if in.NextDue != nil {
		if !pets.Day(*in.NextDue).After(day) {
			return Result{}, fmt.Errorf("%w: next due must be after the vaccination date", ErrInvalidInput)
		}
		ev.NextDue = pets.Day(*in.NextDue)
	}

	p, err := s.pets.AppendVaccination(ctx, strings.TrimSpace(in.PetID), ev)
	if err != nil {
		switch {
		case errors.Is(err, pets.ErrNotFound):
			return Result{}, ErrPetNotFound
		case errors.Is(err, pets.ErrInvalidInput):
			return Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return Result{}, err
	}

	rec := DailyRecord{
		ID:           ev.ID,
		Date:         day,
		Time:         now.Format("03:04 PM"),
		PetID:        p.ID,
		PetName:      p.Name,
		PetSpecies:   p.Species.Label(),
		PetBreed:     p.Breed,
		Owner:        p.Owner.Name,
		OwnerContact: p.Owner.Contact,
		VaccineType:  ev.Vaccine,
		BatchNo:      ev.BatchNo,
		Location:     ev.Location,
		Municipality: MunicipalityOf(p.Owner.Address),
		Veterinarian: ev.Veterinarian,
		Status:       StatusCompleted,
		Notes:        strings.TrimSpace(in.Notes),
	}
	if err := s.repo.Append(ctx, rec); err != nil {
		return Result{}, err
	}

	_ = s.recorder.Record(ctx, activity.Entry{
		Action:   activity.ActionVaccinationRecord,
		User:     actor,
		Details:  fmt.Sprintf("Recorded vaccination for %s (%s)", p.Name, p.ID),
		Severity: activity.SeverityInfo,
	})
	return Result{Pet: p, Record: rec}, nil
}

type TodayResult struct {
	Date   time.Time
	Items  []DailyRecord
	Counts StatusCounts
}

// Today devuelve los registros del día filtrados; los contadores ignoran el filtro.
func (s *Service) Today(ctx context.Context, f TodayFilter) (TodayResult, error) {
	day := pets.Day(s.now())

	all, err := s.repo.ListByDate(ctx, day, TodayFilter{})
	if err != nil {
		return TodayResult{}, err
	}
	items, err := s.repo.ListByDate(ctx, day, f)
	if err != nil {
		return TodayResult{}, err
	}
	return TodayResult{Date: day, Items: items, Counts: CountByStatus(all)}, nil
}

// LocationSuggestions filtra las ubicaciones recientes por substring; vacío = todas.
func (s *Service) LocationSuggestions(q string) []string {
	return listfilter.Apply(RecentLocations(), func(loc string) bool {
		return listfilter.MatchText(q, loc)
	})
}

// MunicipalityOf toma el último tramo de la dirección ("..., Municipality A").
func MunicipalityOf(address string) string {
	parts := strings.Split(address, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}
