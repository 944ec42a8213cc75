package admin_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"vax-tracker/internal/adapters/storage/memory"
	"vax-tracker/internal/domain/admin"
	"vax-tracker/internal/ports/activity"

	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2025, 8, 5, 15, 0, 0, 0, time.UTC)

func newService(t *testing.T) *admin.Service {
	t.Helper()
	return admin.NewService(memory.NewSeededAdminRepo(), memory.NewSeededPetRepo(), func() time.Time { return refNow })
}

func actions(items []admin.LogEntry) []string {
	out := make([]string, 0, len(items))
	for _, e := range items {
		out = append(out, e.Action)
	}
	return out
}

func TestLogs_NewestFirstAndSeverityFilter(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	all, err := svc.Logs(ctx, "all")
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.Equal(t, "LOG-0001", all[0].ID)
	require.Equal(t, "LOG-0005", all[4].ID)

	warn, err := svc.Logs(ctx, "warning")
	require.NoError(t, err)
	require.Equal(t, []string{"Vaccine Expiry Alert"}, actions(warn))

	errs, err := svc.Logs(ctx, "error")
	require.NoError(t, err)
	require.Empty(t, errs)
	require.NotNil(t, errs)
}

func TestRecord_ActsAsActivityRecorder(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	var rec activity.Recorder = svc
	require.NoError(t, rec.Record(ctx, activity.Entry{
		Action:  activity.ActionUserLogin,
		User:    "Dr. Maria Cruz",
		Details: "Veterinarian user logged in successfully",
	}))
	require.ErrorIs(t, rec.Record(ctx, activity.Entry{}), admin.ErrInvalidInput)

	recent, err := svc.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	require.Equal(t, activity.ActionUserLogin, recent[0].Action)
	require.Equal(t, activity.SeverityInfo, recent[0].Severity)
	require.Equal(t, refNow, recent[0].Timestamp)
}

func TestAddUser(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.AddUser(ctx, "System Administrator", admin.AddUserInput{
		Name:         "Lito Reyes",
		Email:        "Lito.Reyes@example.com",
		Role:         "Vaccinator",
		Municipality: "Municipality B",
	})
	require.NoError(t, err)
	require.Equal(t, "lito.reyes@example.com", u.Email)
	require.Equal(t, admin.UserRoleVaccinator, u.Role)
	require.Equal(t, admin.UserActive, u.Status)

	_, err = svc.AddUser(ctx, "System Administrator", admin.AddUserInput{
		Name: "Dup", Email: "MARIA.CRUZ@example.com", Role: "viewer", Municipality: "All",
	})
	require.ErrorIs(t, err, admin.ErrDuplicateEmail)

	_, err = svc.AddUser(ctx, "System Administrator", admin.AddUserInput{
		Name: "Bad", Email: "bad@example.com", Role: "owner", Municipality: "All",
	})
	require.ErrorIs(t, err, admin.ErrInvalidInput)

	_, err = svc.AddUser(ctx, "System Administrator", admin.AddUserInput{Name: "NoMail", Role: "viewer", Municipality: "All"})
	require.ErrorIs(t, err, admin.ErrInvalidInput)

	logs, err := svc.Logs(ctx, "success")
	require.NoError(t, err)
	require.Equal(t, activity.ActionUserCreated, logs[0].Action)
}

func TestAddUser_ConcurrentSameEmail(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.AddUser(ctx, "System Administrator", admin.AddUserInput{
				Name: "Nena Diaz", Email: "nena.diaz@example.com", Role: "viewer", Municipality: "All",
			})
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		require.True(t, errors.Is(err, admin.ErrDuplicateEmail), "got %v", err)
	}
	require.Equal(t, 1, created)
}

func TestVaccines_DerivedStockStatus(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	items, err := svc.Vaccines(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, admin.StockIn, items[0].Status)
	require.Equal(t, admin.StockIn, items[1].Status)
	require.Equal(t, admin.StockLow, items[2].Status)

	v, err := svc.AddVaccine(ctx, "System Administrator", admin.AddVaccineInput{
		Name:         "Rabies Vaccine",
		Type:         "Injectable",
		Manufacturer: "VetPharma Inc.",
		Quantity:     500,
		BatchNo:      "RV2024-001",
		ExpiryDate:   time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, admin.StockExpired, v.Status)

	_, err = svc.AddVaccine(ctx, "System Administrator", admin.AddVaccineInput{
		Name: "X", Type: "spray", Manufacturer: "Y", BatchNo: "Z", ExpiryDate: refNow,
	})
	require.ErrorIs(t, err, admin.ErrInvalidInput)

	_, err = svc.AddVaccine(ctx, "System Administrator", admin.AddVaccineInput{
		Name: "X", Type: "oral", Manufacturer: "Y", BatchNo: "Z", Quantity: -1, ExpiryDate: refNow,
	})
	require.ErrorIs(t, err, admin.ErrInvalidInput)
}

func TestStats(t *testing.T) {
	svc := newService(t)

	st, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, st.TotalUsers)
	require.Equal(t, 2, st.ActiveUsers)
	require.Equal(t, 5, st.TotalPets)
	require.Equal(t, 7, st.TotalVaccinations)
	require.NotNil(t, st.LastBackup)
	require.Equal(t, "2025-08-05 08:45:12", st.LastBackup.Format("2006-01-02 15:04:05"))
}
