package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"vax-tracker/internal/domain/navigation"
	"vax-tracker/internal/ports/activity"
	"vax-tracker/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("session not found")
)

type Service struct {
	repo       Repository
	recorder   activity.Recorder
	loginDelay time.Duration
	now        func() time.Time
	newToken   func() string
}

type Options struct {
	Recorder   activity.Recorder
	LoginDelay time.Duration
	Now        func() time.Time
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
		repo:       repo,
		recorder:   rec,
		loginDelay: opts.LoginDelay,
		now:        now,
		newToken:   uuid.NewString,
	}
}

// Login resuelve credenciales y abre sesión con el view-state inicial.
// La espera artificial respeta la cancelación del ctx.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	if err := s.wait(ctx); err != nil {
		return Session{}, err
	}

	id, err := Resolve(email, password)
	if err != nil {
		return Session{}, err
	}

	now := s.now()
	sess := Session{
		Token:       s.newToken(),
		Email:       id.Email,
		Role:        id.Role,
		DisplayName: id.DisplayName,
		View:        navigation.Initial(),
		CreatedAt:   now,
		LastSeenAt:  now,
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return Session{}, err
	}

	_ = s.recorder.Record(ctx, activity.Entry{
		Action:   activity.ActionUserLogin,
		User:     id.DisplayName,
		Details:  id.Role.Label() + " user logged in successfully",
		Severity: activity.SeverityInfo,
	})
	return sess, nil
}

// Logout destruye la sesión y devuelve el view-state reseteado.
func (s *Service) Logout(ctx context.Context, token string) (navigation.State, error) {
	sess, err := s.Get(ctx, token)
	if err != nil {
		return navigation.State{}, err
	}
	if err := s.repo.Delete(ctx, sess.Token); err != nil {
		return navigation.State{}, ErrNotFound
	}

	_ = s.recorder.Record(ctx, activity.Entry{
		Action:   activity.ActionUserLogout,
		User:     sess.DisplayName,
		Details:  "User logged out",
		Severity: activity.SeverityInfo,
	})
	return navigation.Reset(), nil
}

func (s *Service) Get(ctx context.Context, token string) (Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Session{}, ErrInvalidInput
	}
	sess, err := s.repo.Get(ctx, token)
	if err != nil {
		return Session{}, ErrNotFound
	}
	return sess, nil
}

// Navigate aplica el controlador de navegación sobre el view-state guardado.
func (s *Service) Navigate(ctx context.Context, token string, page navigation.Page, entityID string) (navigation.State, error) {
	sess, err := s.Get(ctx, token)
	if err != nil {
		return navigation.State{}, err
	}

	sess.View = navigation.Navigate(sess.View, sess.Role, page, entityID)
	sess.LastSeenAt = s.now()

	// un logout concurrente pudo borrar la sesión entre Get y Update
	if err := s.repo.Update(ctx, sess); err != nil {
		return navigation.State{}, ErrNotFound
	}
	return sess.View, nil
}

// Verify implementa auth.AuthVerifier para el middleware AuthContext.
func (s *Service) Verify(ctx context.Context, token string) (auth.Claims, error) {
	sess, err := s.Get(ctx, token)
	if err != nil {
		return auth.Claims{}, err
	}
	return auth.Claims{
		UserID:      sess.Email,
		Email:       sess.Email,
		Role:        string(sess.Role),
		DisplayName: sess.DisplayName,
		Token:       sess.Token,
	}, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.loginDelay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.loginDelay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
