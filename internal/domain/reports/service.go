package reports

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"vax-tracker/internal/domain/listfilter"
	"vax-tracker/internal/domain/pets"
	"vax-tracker/internal/domain/vaccinations"
)

var ErrInvalidInput = errors.New("invalid input")

// maxMonths acota el desglose mensual (10 años).
const maxMonths = 120

// PetSource es todo lo que el reporte necesita: mascotas con su historial.
type PetSource interface {
	List(ctx context.Context) ([]pets.Pet, error)
}

type Service struct {
	pets PetSource
	now  func() time.Time
}

func NewService(src PetSource, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{pets: src, now: now}
}

// ParseSpecies acepta dog/dogs/cat/cats/all; "" equivale a all.
func ParseSpecies(s string) (pets.Species, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", listfilter.All:
		return "", true
	case "dog", "dogs":
		return pets.SpeciesDog, true
	case "cat", "cats":
		return pets.SpeciesCat, true
	}
	return "", false
}

// event es una aplicación del historial con los datos del dueño ya resueltos.
type event struct {
	pets.VaccinationEvent
	species      pets.Species
	municipality string
}

func (s *Service) Generate(ctx context.Context, f Filter) (Report, error) {
	species, ok := ParseSpecies(f.Species)
	if !ok {
		return Report{}, fmt.Errorf("%w: species must be dog, cat or all", ErrInvalidInput)
	}
	now := pets.Day(s.now())
	from, to := f.From, f.To
	if from.IsZero() {
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	if to.IsZero() {
		to = time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	from, to = pets.Day(from), pets.Day(to)
	if to.Before(from) {
		return Report{}, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}
	if months := (to.Year()-from.Year())*12 + int(to.Month()-from.Month()) + 1; months > maxMonths {
		return Report{}, fmt.Errorf("%w: date range spans %d months, max %d", ErrInvalidInput, months, maxMonths)
	}

	all, err := s.pets.List(ctx)
	if err != nil {
		return Report{}, err
	}

	selected := listfilter.Apply(all,
		func(p pets.Pet) bool { return species == "" || p.Species == species },
		func(p pets.Pet) bool {
			return listfilter.MatchCategory(f.Municipality, vaccinations.MunicipalityOf(p.Owner.Address))
		},
	)

	var events []event
	for _, p := range selected {
		muni := vaccinations.MunicipalityOf(p.Owner.Address)
		for _, e := range p.History {
			if !listfilter.MatchCategory(f.Veterinarian, e.Veterinarian) {
				continue
			}
			events = append(events, event{VaccinationEvent: e, species: p.Species, municipality: muni})
		}
	}
	inRange := listfilter.Apply(events, func(e event) bool {
		d := pets.Day(e.Date)
		return !d.Before(from) && !d.After(to)
	})

	rep := Report{From: from, To: to}
	rep.Summary = summarize(selected, events, inRange, now)
	rep.Monthly = monthly(inRange, from, to)
	rep.ByLocation = shares(inRange, func(e event) string { return e.Location })
	rep.BySpecies = shares(inRange, func(e event) string {
		if e.species == pets.SpeciesCat {
			return "Cats"
		}
		return "Dogs"
	})
	rep.Veterinarians = performance(inRange)
	rep.NeedingVaccination = overdue(selected, now)
	return rep, nil
}

func summarize(selected []pets.Pet, events, inRange []event, now time.Time) Summary {
	sum := Summary{
		TotalVaccinations: len(inRange),
		TotalPets:         len(selected),
		ThisMonth: listfilter.Count(events, func(e event) bool {
			return e.Date.Year() == now.Year() && e.Date.Month() == now.Month()
		}),
	}
	if len(selected) > 0 {
		upToDate := listfilter.Count(selected, func(p pets.Pet) bool {
			return pets.StatusAt(p, now) == pets.StatusUpToDate
		})
		sum.CoverageRate = round1(float64(upToDate) / float64(len(selected)) * 100)
	}
	munis := make(map[string]struct{})
	vets := make(map[string]struct{})
	for _, e := range inRange {
		munis[e.municipality] = struct{}{}
		vets[e.Veterinarian] = struct{}{}
	}
	sum.ActiveMunicipalities = len(munis)
	sum.ActiveVeterinarians = len(vets)
	return sum
}

func monthly(inRange []event, from, to time.Time) []MonthCount {
	counts := make(map[string]int)
	for _, e := range inRange {
		counts[e.Date.Format("2006-01")]++
	}
	var out []MonthCount
	last := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	for m := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC); !m.After(last); m = m.AddDate(0, 1, 0) {
		key := m.Format("2006-01")
		out = append(out, MonthCount{Month: key, Label: m.Format("Jan"), Vaccinations: counts[key]})
	}
	return out
}

// shares agrupa por key, ordena por valor desc y nombre asc.
func shares(inRange []event, key func(event) string) []Share {
	counts := make(map[string]int)
	for _, e := range inRange {
		counts[key(e)]++
	}
	out := make([]Share, 0, len(counts))
	for name, n := range counts {
		out = append(out, Share{
			Name:       name,
			Value:      n,
			Percentage: round1(float64(n) / float64(len(inRange)) * 100),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value == out[j].Value {
			return out[i].Name < out[j].Name
		}
		return out[i].Value > out[j].Value
	})
	return out
}

func performance(inRange []event) []VetPerformance {
	type acc struct {
		n     int
		munis map[string]struct{}
	}
	byVet := make(map[string]*acc)
	for _, e := range inRange {
		a, ok := byVet[e.Veterinarian]
		if !ok {
			a = &acc{munis: make(map[string]struct{})}
			byVet[e.Veterinarian] = a
		}
		a.n++
		a.munis[e.municipality] = struct{}{}
	}
	out := make([]VetPerformance, 0, len(byVet))
	for name, a := range byVet {
		out = append(out, VetPerformance{Name: name, Vaccinations: a.n, Municipalities: len(a.munis)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Vaccinations == out[j].Vaccinations {
			return out[i].Name < out[j].Name
		}
		return out[i].Vaccinations > out[j].Vaccinations
	})
	return out
}

func overdue(selected []pets.Pet, now time.Time) []OverduePet {
	out := make([]OverduePet, 0)
	for _, p := range selected {
		if pets.StatusAt(p, now) != pets.StatusOverdue {
			continue
		}
		op := OverduePet{
			ID:          p.ID,
			Name:        p.Name,
			Owner:       p.Owner.Name,
			Location:    p.Owner.Address,
			DaysOverdue: pets.DaysOverdue(p, now),
		}
		if last, ok := p.LastVaccination(); ok {
			d := last.Date
			op.LastVaccination = &d
		}
		out = append(out, op)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysOverdue > out[j].DaysOverdue })
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
