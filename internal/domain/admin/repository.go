package admin

import "context"

type Repository interface {
	CreateUser(ctx context.Context, u User) error
	ListUsers(ctx context.Context) ([]User, error)

	CreateVaccine(ctx context.Context, v Vaccine) error
	ListVaccines(ctx context.Context) ([]Vaccine, error)

	AppendLog(ctx context.Context, e LogEntry) error
	// ListLogs devuelve el log del más nuevo al más viejo.
	ListLogs(ctx context.Context) ([]LogEntry, error)
}
