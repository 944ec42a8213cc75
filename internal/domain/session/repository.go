package session

import "context"

type Repository interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, token string) error
}
