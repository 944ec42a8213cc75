package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"vax-tracker/internal/domain/session"
)

var (
	ErrNotFound = errors.New("not found")
)

type sessionRepo struct {
	mu      sync.RWMutex
	byToken map[string]session.Session
}

func NewSessionRepo() session.Repository {
	return &sessionRepo{
		byToken: make(map[string]session.Session),
	}
}

func (r *sessionRepo) Create(ctx context.Context, s session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.Token) == "" {
		return errors.New("session token required")
	}
	if _, exists := r.byToken[s.Token]; exists {
		return errors.New("session already exists")
	}
	r.byToken[s.Token] = s
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, token string) (session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byToken[token]
	if !ok {
		return session.Session{}, ErrNotFound
	}
	return s, nil
}

func (r *sessionRepo) Update(ctx context.Context, s session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byToken[s.Token]; !exists {
		return ErrNotFound
	}
	r.byToken[s.Token] = s
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byToken[token]; !exists {
		return ErrNotFound
	}
	delete(r.byToken, token)
	return nil
}
