package pets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"vax-tracker/internal/domain/listfilter"
	"vax-tracker/internal/platform/ids"
	"vax-tracker/internal/ports/activity"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
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
		newID:    func() string { return ids.Numeric("PET") },
	}
}

// Today es la fecha de referencia con la que se derivan los estados.
func (s *Service) Today() time.Time {
	return Day(s.now())
}

type RegisterInput struct {
	OwnerName     string
	Address       string
	ContactNumber string
	OwnerEmail    string

	PetName       string
	PetType       string // Dog | Cat
	Breed         string
	Gender        string // Male | Female
	Age           string
	ColorMarkings string
	Microchip     string
}

// Registration es el resultado del alta: la mascota y el payload del QR.
type Registration struct {
	Pet       Pet
	QRPayload string
}

func (s *Service) Register(ctx context.Context, actor string, in RegisterInput) (Registration, error) {
	required := []struct{ name, value string }{
		{"owner name", in.OwnerName},
		{"address", in.Address},
		{"contact number", in.ContactNumber},
		{"pet name", in.PetName},
		{"pet type", in.PetType},
		{"breed", in.Breed},
		{"gender", in.Gender},
		{"age", in.Age},
		{"color/markings", in.ColorMarkings},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return Registration{}, fmt.Errorf("%w: %s required", ErrInvalidInput, f.name)
		}
	}
	species, ok := ParseSpecies(in.PetType)
	if !ok {
		return Registration{}, fmt.Errorf("%w: pet type must be Dog or Cat", ErrInvalidInput)
	}
	gender, ok := ParseGender(in.Gender)
	if !ok {
		return Registration{}, fmt.Errorf("%w: gender must be Male or Female", ErrInvalidInput)
	}

	id, err := s.freeID(ctx)
	if err != nil {
		return Registration{}, err
	}

	p := Pet{
		ID:      id,
		Name:    strings.TrimSpace(in.PetName),
		Species: species,
		Breed:   strings.TrimSpace(in.Breed),
		Age:     strings.TrimSpace(in.Age),
		Gender:  gender,
		Color:   strings.TrimSpace(in.ColorMarkings),
		Owner: Owner{
			Name:    strings.TrimSpace(in.OwnerName),
			Address: strings.TrimSpace(in.Address),
			Contact: strings.TrimSpace(in.ContactNumber),
			Email:   strings.TrimSpace(in.OwnerEmail),
		},
		RegistrationDate: s.Today(),
		Microchip:        strings.TrimSpace(in.Microchip),
		History:          []VaccinationEvent{},
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Registration{}, err
	}

	qr, err := QRPayload(p)
	if err != nil {
		return Registration{}, err
	}

	_ = s.recorder.Record(ctx, activity.Entry{
		Action:   activity.ActionPetRegistration,
		User:     actor,
		Details:  fmt.Sprintf("Registered new pet: %s (%s)", p.Name, p.ID),
		Severity: activity.SeverityInfo,
	})
	return Registration{Pet: p, QRPayload: qr}, nil
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
	return "", errors.New("could not allocate pet id")
}

type qrPayload struct {
	PetID string `json:"petId"`
	Name  string `json:"name"`
	Owner string `json:"owner"`
	Type  string `json:"type"`
	Breed string `json:"breed"`
}

// QRPayload es el JSON que se codifica en el QR de la mascota.
func QRPayload(p Pet) (string, error) {
	b, err := json.Marshal(qrPayload{
		PetID: p.ID,
		Name:  p.Name,
		Owner: p.Owner.Name,
		Type:  p.Species.Label(),
		Breed: p.Breed,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Profile es la mascota con los campos derivados a la fecha de referencia.
type Profile struct {
	Pet
	Status           VaccinationStatus
	LastVaccinatedAt *time.Time
	NextDue          *time.Time
}

func (s *Service) profile(p Pet, today time.Time) Profile {
	out := Profile{Pet: p, Status: StatusAt(p, today)}
	if last, ok := p.LastVaccination(); ok {
		d := Day(last.Date)
		out.LastVaccinatedAt = &d
		next := last.NextDue
		if next.IsZero() {
			next = NextDueFor(last.Vaccine, last.Date)
		}
		next = Day(next)
		out.NextDue = &next
	}
	return out
}

type ListFilter struct {
	Query    string // nombre, dueño o id
	Species  string // all | dog | cat
	Status   string // all | up-to-date | overdue | due-soon
	Location string // all | municipality-a | ...
}

type ListResult struct {
	Items []Profile
	Total int
}

// List aplica los filtros de la lista de mascotas ("Showing N of M").
func (s *Service) List(ctx context.Context, f ListFilter) (ListResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return ListResult{}, err
	}
	today := s.Today()

	profiles := make([]Profile, 0, len(all))
	for _, p := range all {
		profiles = append(profiles, s.profile(p, today))
	}

	items := listfilter.Apply(profiles,
		func(p Profile) bool { return listfilter.MatchText(f.Query, p.Name, p.Owner.Name, p.ID) },
		func(p Profile) bool { return listfilter.MatchCategory(f.Species, string(p.Species)) },
		func(p Profile) bool { return listfilter.MatchCategory(f.Status, string(p.Status)) },
		func(p Profile) bool { return listfilter.MatchContains(f.Location, p.Owner.Address) },
	)
	return ListResult{Items: items, Total: len(all)}, nil
}

// All devuelve todas las mascotas sin filtrar (reportes, dashboard).
func (s *Service) All(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, ErrNotFound
		}
		return Pet{}, err
	}
	return p, nil
}

// Get devuelve el perfil con estado, última vacuna y próximo refuerzo.
func (s *Service) Get(ctx context.Context, id string) (Profile, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return s.profile(p, s.Today()), nil
}

// AppendVaccination antepone el evento al historial y devuelve la mascota actualizada.
// La fecha no puede ser futura ni anterior a la última vacuna: History[0] es siempre la más reciente.
func (s *Service) AppendVaccination(ctx context.Context, petID string, e VaccinationEvent) (Pet, error) {
	current, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if strings.TrimSpace(e.ID) == "" {
		e.ID = uuid.NewString()
	}
	if e.Date.IsZero() {
		e.Date = s.Today()
	}
	e.Date = Day(e.Date)
	if e.Date.After(s.Today()) {
		return Pet{}, fmt.Errorf("%w: vaccination date is in the future", ErrInvalidInput)
	}
	if len(current.History) > 0 && e.Date.Before(Day(current.History[0].Date)) {
		return Pet{}, fmt.Errorf("%w: vaccination date is before the last recorded vaccination (%s)",
			ErrInvalidInput, current.History[0].Date.Format("2006-01-02"))
	}
	if e.NextDue.IsZero() {
		e.NextDue = NextDueFor(e.Vaccine, e.Date)
	}
	if err := s.repo.PrependVaccination(ctx, petID, e); err != nil {
		return Pet{}, err
	}
	return s.GetByID(ctx, petID)
}
