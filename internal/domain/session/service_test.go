package session_test

import (
	"context"
	"testing"
	"time"

	"vax-tracker/internal/adapters/storage/memory"
	"vax-tracker/internal/domain/navigation"
	"vax-tracker/internal/domain/session"
	"vax-tracker/internal/ports/activity"
	"vax-tracker/internal/ports/activity/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, rec activity.Recorder) *session.Service {
	t.Helper()
	return session.NewService(memory.NewSessionRepo(), session.Options{Recorder: rec})
}

func TestLogin_AllDemoAccounts(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, nil)

	cases := []struct {
		email, password string
		role            navigation.Role
		name            string
	}{
		{"admin@vaxtracker.com", "admin123", navigation.RoleAdmin, "System Administrator"},
		{"vet@vaxtracker.com", "vet123", navigation.RoleVeterinarian, "Dr. Maria Cruz"},
		{"user@vaxtracker.com", "user123", navigation.RoleUser, "Jose Santos"},
	}
	for _, tc := range cases {
		sess, err := svc.Login(ctx, tc.email, tc.password)
		require.NoError(t, err, tc.email)
		require.Equal(t, tc.role, sess.Role)
		require.Equal(t, tc.name, sess.DisplayName)
		require.NotEmpty(t, sess.Token)
		require.Equal(t, navigation.Initial(), sess.View)
	}
}

func TestLogin_RejectsEverythingElse(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, nil)

	bad := [][2]string{
		{"admin@vaxtracker.com", "vet123"},
		{"vet@vaxtracker.com", "admin123"},
		{"user@vaxtracker.com", ""},
		{"someone@vaxtracker.com", "user123"},
		{"", ""},
		{"ADMIN@vaxtracker.com", "admin123"},
	}
	for _, pair := range bad {
		_, err := svc.Login(ctx, pair[0], pair[1])
		require.ErrorIs(t, err, session.ErrInvalidCredentials, "%v", pair)
	}
}

func TestLogin_RecordsActivity(t *testing.T) {
	ctx := context.Background()
	rec := &mocks.Recorder{}
	rec.On("Record", ctx, mock.MatchedBy(func(e activity.Entry) bool {
		return e.Action == activity.ActionUserLogin && e.User == "Dr. Maria Cruz"
	})).Return(nil).Once()

	svc := newService(t, rec)
	_, err := svc.Login(ctx, "vet@vaxtracker.com", "vet123")
	require.NoError(t, err)
	rec.AssertExpectations(t)
}

func TestLogin_DelayHonorsCancellation(t *testing.T) {
	svc := session.NewService(memory.NewSessionRepo(), session.Options{LoginDelay: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, "admin@vaxtracker.com", "admin123")
	require.ErrorIs(t, err, context.Canceled)
}

func TestNavigate_And_Logout(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, nil)

	sess, err := svc.Login(ctx, "user@vaxtracker.com", "user123")
	require.NoError(t, err)

	view, err := svc.Navigate(ctx, sess.Token, navigation.PagePetProfile, "PET123456")
	require.NoError(t, err)
	require.Equal(t, navigation.State{CurrentPage: navigation.PagePetProfile, SelectedEntityID: "PET123456"}, view)

	view, err = svc.Navigate(ctx, sess.Token, navigation.PageAdmin, "")
	require.NoError(t, err)
	require.Equal(t, navigation.PageDashboard, view.CurrentPage)
	require.Equal(t, "PET123456", view.SelectedEntityID)

	claims, err := svc.Verify(ctx, sess.Token)
	require.NoError(t, err)
	require.Equal(t, "user", claims.Role)

	view, err = svc.Logout(ctx, sess.Token)
	require.NoError(t, err)
	require.Equal(t, navigation.Reset(), view)

	_, err = svc.Verify(ctx, sess.Token)
	require.ErrorIs(t, err, session.ErrNotFound)
	_, err = svc.Logout(ctx, sess.Token)
	require.ErrorIs(t, err, session.ErrNotFound)
}

// logoutOnUpdate borra la sesión justo antes de actualizarla.
type logoutOnUpdate struct {
	session.Repository
}

func (r logoutOnUpdate) Update(ctx context.Context, s session.Session) error {
	_ = r.Repository.Delete(ctx, s.Token)
	return r.Repository.Update(ctx, s)
}

func TestNavigate_SessionGoneBeforeUpdate(t *testing.T) {
	ctx := context.Background()
	svc := session.NewService(logoutOnUpdate{memory.NewSessionRepo()}, session.Options{})

	sess, err := svc.Login(ctx, "vet@vaxtracker.com", "vet123")
	require.NoError(t, err)

	_, err = svc.Navigate(ctx, sess.Token, navigation.PagePetList, "")
	require.ErrorIs(t, err, session.ErrNotFound)
}
