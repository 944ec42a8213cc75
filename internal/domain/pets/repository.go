package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	// List devuelve todas las mascotas en orden de alta.
	List(ctx context.Context) ([]Pet, error)
	// PrependVaccination agrega el evento al inicio del historial; el servicio garantiza que es el más reciente.
	PrependVaccination(ctx context.Context, petID string, e VaccinationEvent) error
}
