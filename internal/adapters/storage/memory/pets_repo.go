package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"vax-tracker/internal/domain/pets"
)

type petRepo struct {
	mu    sync.RWMutex
	byID  map[string]pets.Pet
	order []string
}

// NewPetRepo arranca vacío; NewSeededPetRepo carga las mascotas demo.
func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

func NewSeededPetRepo() pets.Repository {
	r := &petRepo{byID: make(map[string]pets.Pet)}
	for _, p := range SeedPets() {
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = clonePet(p)
	r.order = append(r.order, p.ID)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return clonePet(p), nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clonePet(r.byID[id]))
	}
	return out, nil
}

func (r *petRepo) PrependVaccination(ctx context.Context, petID string, e pets.VaccinationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[petID]
	if !ok {
		return pets.ErrNotFound
	}
	history := make([]pets.VaccinationEvent, 0, len(p.History)+1)
	history = append(history, e)
	history = append(history, p.History...)
	p.History = history
	r.byID[petID] = p
	return nil
}

// clonePet evita que quien llama comparta los slices guardados.
func clonePet(p pets.Pet) pets.Pet {
	p.History = append([]pets.VaccinationEvent(nil), p.History...)
	p.HealthNotes = append([]pets.HealthNote(nil), p.HealthNotes...)
	return p
}
