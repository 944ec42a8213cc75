package rabiescases

import "context"

type Repository interface {
	Create(ctx context.Context, r Report) error
	GetByID(ctx context.Context, id string) (Report, error)
	// List devuelve los reportes del más nuevo al más viejo.
	List(ctx context.Context) ([]Report, error)
}
