// Package dashboard arma la pantalla de inicio a partir de los demás módulos.
package dashboard

import (
	"context"

	"vax-tracker/internal/domain/admin"
	"vax-tracker/internal/domain/navigation"
	"vax-tracker/internal/domain/pets"
	"vax-tracker/internal/domain/vaccinations"
)

const recentActivity = 3

type PetLister interface {
	List(ctx context.Context) ([]pets.Pet, error)
}

type TodayLog interface {
	Today(ctx context.Context, f vaccinations.TodayFilter) (vaccinations.TodayResult, error)
}

type CaseCounter interface {
	Count(ctx context.Context) (int, error)
}

type ActivityFeed interface {
	Recent(ctx context.Context, n int) ([]admin.LogEntry, error)
}

type Stats struct {
	VaccinatedPets  int
	VaccinatedToday int
	RabiesCases     int
	RegisteredPets  int
}

type Overview struct {
	Stats        Stats
	QuickActions []navigation.QuickAction
	Recent       []admin.LogEntry
}

type Service struct {
	pets  PetLister
	today TodayLog
	cases CaseCounter
	feed  ActivityFeed
}

func NewService(p PetLister, t TodayLog, c CaseCounter, f ActivityFeed) *Service {
	return &Service{pets: p, today: t, cases: c, feed: f}
}

// Overview: una mascota cuenta como vacunada si tiene al menos una aplicación;
// "hoy" cuenta sólo los registros completados.
func (s *Service) Overview(ctx context.Context, role navigation.Role) (Overview, error) {
	all, err := s.pets.List(ctx)
	if err != nil {
		return Overview{}, err
	}
	today, err := s.today.Today(ctx, vaccinations.TodayFilter{})
	if err != nil {
		return Overview{}, err
	}
	cases, err := s.cases.Count(ctx)
	if err != nil {
		return Overview{}, err
	}
	recent, err := s.feed.Recent(ctx, recentActivity)
	if err != nil {
		return Overview{}, err
	}

	st := Stats{
		VaccinatedToday: today.Counts.Completed,
		RabiesCases:     cases,
		RegisteredPets:  len(all),
	}
	for _, p := range all {
		if len(p.History) > 0 {
			st.VaccinatedPets++
		}
	}
	return Overview{
		Stats:        st,
		QuickActions: navigation.QuickActions(role),
		Recent:       recent,
	}, nil
}
