package vaccinations

import (
	"context"
	"time"
)

type Repository interface {
	Append(ctx context.Context, rec DailyRecord) error
	// ListByDate devuelve los registros del día en orden de hora, aplicando el filtro.
	ListByDate(ctx context.Context, day time.Time, filter TodayFilter) ([]DailyRecord, error)
}

// TodayFilter: vacío o "all" no restringe.
type TodayFilter struct {
	Query        string // nombre de mascota, dueño o ID
	Municipality string // substring
	Veterinarian string // igualdad
	Location     string // substring
}
