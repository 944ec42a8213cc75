package calendar

import "context"

type Repository interface {
	Create(ctx context.Context, e Event) error
	// List devuelve los eventos ordenados por fecha y hora de inicio.
	List(ctx context.Context) ([]Event, error)
}
