package vaccinations_test

import (
	"context"
	"testing"
	"time"

	"vax-tracker/internal/adapters/storage/memory"
	"vax-tracker/internal/domain/pets"
	"vax-tracker/internal/domain/vaccinations"
	"vax-tracker/internal/ports/activity"
	"vax-tracker/internal/ports/activity/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2025, 8, 5, 15, 20, 0, 0, time.UTC)

type fixture struct {
	pets *pets.Service
	svc  *vaccinations.Service
}

func newFixture(t *testing.T, rec activity.Recorder) fixture {
	t.Helper()
	now := func() time.Time { return refNow }
	petsSvc := pets.NewService(memory.NewSeededPetRepo(), pets.Options{Now: now})
	svc := vaccinations.NewService(
		memory.NewSeededVaccinationLogRepo(refNow),
		petsSvc,
		vaccinations.Options{Recorder: rec, Now: now},
	)
	return fixture{pets: petsSvc, svc: svc}
}

func validInput() vaccinations.RecordInput {
	return vaccinations.RecordInput{
		PetID:        "PET789012",
		VaccineType:  "Rabies Vaccine",
		BatchNo:      "RV2025-003",
		Location:     "Municipal Animal Shelter",
		Veterinarian: "Dr. Jose Santos",
	}
}

func TestRecord_RequiresAllFormFields(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	blank := []func(*vaccinations.RecordInput){
		func(in *vaccinations.RecordInput) { in.VaccineType = "" },
		func(in *vaccinations.RecordInput) { in.BatchNo = "  " },
		func(in *vaccinations.RecordInput) { in.Location = "" },
		func(in *vaccinations.RecordInput) { in.Veterinarian = "" },
	}
	for _, mutate := range blank {
		in := validInput()
		mutate(&in)
		_, err := f.svc.Record(ctx, "Dr. Jose Santos", in)
		require.ErrorIs(t, err, vaccinations.ErrInvalidInput)
	}

	in := validInput()
	in.VaccineType = "Distemper"
	_, err := f.svc.Record(ctx, "Dr. Jose Santos", in)
	require.ErrorIs(t, err, vaccinations.ErrInvalidInput)

	in = validInput()
	in.PetID = "PET000000"
	_, err = f.svc.Record(ctx, "Dr. Jose Santos", in)
	require.ErrorIs(t, err, vaccinations.ErrPetNotFound)
}

func TestRecord_PrependsHistoryAndLogsToday(t *testing.T) {
	ctx := context.Background()
	rec := &mocks.Recorder{}
	rec.On("Record", ctx, mock.MatchedBy(func(e activity.Entry) bool {
		return e.Action == activity.ActionVaccinationRecord && e.Details == "Recorded vaccination for Luna (PET789012)"
	})).Return(nil).Once()

	f := newFixture(t, rec)

	res, err := f.svc.Record(ctx, "Dr. Jose Santos", validInput())
	require.NoError(t, err)
	require.Len(t, res.Pet.History, 2)
	require.Equal(t, "RV2025-003", res.Pet.History[0].BatchNo)
	require.Equal(t, "Municipality A", res.Record.Municipality)
	require.Equal(t, "03:20 PM", res.Record.Time)
	require.Equal(t, vaccinations.StatusCompleted, res.Record.Status)

	prof, err := f.pets.Get(ctx, "PET789012")
	require.NoError(t, err)
	require.Equal(t, pets.StatusUpToDate, prof.Status)

	today, err := f.svc.Today(ctx, vaccinations.TodayFilter{Location: "shelter"})
	require.NoError(t, err)
	require.Len(t, today.Items, 1)
	require.Equal(t, "PET789012", today.Items[0].PetID)
	require.Equal(t, 7, today.Counts.Total)
	require.Equal(t, 5, today.Counts.Completed)

	rec.AssertExpectations(t)
}

func TestRecord_BackdatedDoesNotShowToday(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	past := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	in := validInput()
	in.Date = &past
	_, err := f.svc.Record(ctx, "Dr. Jose Santos", in)
	require.NoError(t, err)

	today, err := f.svc.Today(ctx, vaccinations.TodayFilter{})
	require.NoError(t, err)
	require.Len(t, today.Items, 6)

	in.NextDue = &past
	_, err = f.svc.Record(ctx, "Dr. Jose Santos", in)
	require.ErrorIs(t, err, vaccinations.ErrInvalidInput)
}

func TestRecord_KeepsHistoryNewestFirst(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	// Buddy: última vacuna 2025-02-15
	before := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	in := validInput()
	in.PetID = "PET123456"
	in.Date = &before
	_, err := f.svc.Record(ctx, "Dr. Jose Santos", in)
	require.ErrorIs(t, err, vaccinations.ErrInvalidInput)

	tomorrow := time.Date(2025, 8, 6, 0, 0, 0, 0, time.UTC)
	in.Date = &tomorrow
	_, err = f.svc.Record(ctx, "Dr. Jose Santos", in)
	require.ErrorIs(t, err, vaccinations.ErrInvalidInput)

	prof, err := f.pets.Get(ctx, "PET123456")
	require.NoError(t, err)
	require.Equal(t, pets.StatusUpToDate, prof.Status)
	require.Len(t, prof.History, 3)
	require.Equal(t, "2025-02-15", prof.History[0].Date.Format("2006-01-02"))

	sameDay := time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)
	in.Date = &sameDay
	res, err := f.svc.Record(ctx, "Dr. Jose Santos", in)
	require.NoError(t, err)
	require.Len(t, res.Pet.History, 4)
	for i := 1; i < len(res.Pet.History); i++ {
		require.False(t, res.Pet.History[i].Date.After(res.Pet.History[i-1].Date), "history out of order at %d", i)
	}

	today, err := f.svc.Today(ctx, vaccinations.TodayFilter{})
	require.NoError(t, err)
	require.Len(t, today.Items, 6)
}

func TestToday_FiltersAndCounts(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	res, err := f.svc.Today(ctx, vaccinations.TodayFilter{})
	require.NoError(t, err)
	require.Len(t, res.Items, 6)
	require.Equal(t, vaccinations.StatusCounts{Total: 6, Completed: 4, InProgress: 1, Scheduled: 1}, res.Counts)

	res, err = f.svc.Today(ctx, vaccinations.TodayFilter{Municipality: "municipality-b"})
	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	require.Equal(t, 6, res.Counts.Total)

	res, err = f.svc.Today(ctx, vaccinations.TodayFilter{Veterinarian: "Dr. Maria Cruz"})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)

	res, err = f.svc.Today(ctx, vaccinations.TodayFilter{Query: "rocky", Location: "mobile clinic"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	require.Equal(t, vaccinations.StatusScheduled, res.Items[0].Status)

	res, err = f.svc.Today(ctx, vaccinations.TodayFilter{Query: "nobody", Municipality: "all", Veterinarian: "all", Location: "all"})
	require.NoError(t, err)
	require.Empty(t, res.Items)
}

func TestLocationSuggestions(t *testing.T) {
	f := newFixture(t, nil)

	require.Len(t, f.svc.LocationSuggestions(""), 8)
	require.Equal(t, []string{"Barangay Health Center 1", "Barangay Health Center 2", "Community Health Center"},
		f.svc.LocationSuggestions("health"))
	require.Empty(t, f.svc.LocationSuggestions("zzz"))
}

func TestMunicipalityOf(t *testing.T) {
	require.Equal(t, "Municipality A", vaccinations.MunicipalityOf("123 Main Street, Barangay 1, Municipality A"))
	require.Equal(t, "Somewhere", vaccinations.MunicipalityOf("Somewhere"))
}
