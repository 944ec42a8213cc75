package dashboard_test

import (
	"context"
	"testing"
	"time"

	"vax-tracker/internal/adapters/storage/memory"
	"vax-tracker/internal/domain/admin"
	"vax-tracker/internal/domain/dashboard"
	"vax-tracker/internal/domain/navigation"
	"vax-tracker/internal/domain/pets"
	"vax-tracker/internal/domain/rabiescases"
	"vax-tracker/internal/domain/vaccinations"

	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2025, 8, 5, 15, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*dashboard.Service, *rabiescases.Service) {
	t.Helper()
	now := func() time.Time { return refNow }
	petRepo := memory.NewSeededPetRepo()
	adminSvc := admin.NewService(memory.NewSeededAdminRepo(), petRepo, now)
	petsSvc := pets.NewService(petRepo, pets.Options{Recorder: adminSvc, Now: now})
	vaxSvc := vaccinations.NewService(memory.NewSeededVaccinationLogRepo(refNow), petsSvc, vaccinations.Options{Recorder: adminSvc, Now: now})
	casesSvc := rabiescases.NewService(memory.NewRabiesCaseRepo(), rabiescases.Options{Recorder: adminSvc, Now: now})
	return dashboard.NewService(petRepo, vaxSvc, casesSvc, adminSvc), casesSvc
}

func TestOverview_SeedStats(t *testing.T) {
	svc, _ := newService(t)

	ov, err := svc.Overview(context.Background(), navigation.RoleVeterinarian)
	require.NoError(t, err)
	require.Equal(t, dashboard.Stats{
		VaccinatedPets:  5,
		VaccinatedToday: 4,
		RabiesCases:     0,
		RegisteredPets:  5,
	}, ov.Stats)
	require.Len(t, ov.QuickActions, 6)

	require.Len(t, ov.Recent, 3)
	require.Equal(t, "LOG-0001", ov.Recent[0].ID)
}

func TestOverview_AdminQuickActionAndNewActivity(t *testing.T) {
	svc, cases := newService(t)
	ctx := context.Background()

	_, err := cases.Submit(ctx, "Jose Santos", rabiescases.SubmitInput{
		ReporterName:     "Jose Santos",
		AnimalSpecies:    "bat",
		LocationIncident: "Barangay 3",
	})
	require.NoError(t, err)

	ov, err := svc.Overview(ctx, navigation.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, 1, ov.Stats.RabiesCases)
	require.Len(t, ov.QuickActions, 7)
	require.Equal(t, navigation.PageAdmin, ov.QuickActions[6].ID)
	require.Equal(t, "Rabies Case Report", ov.Recent[0].Action)
}
