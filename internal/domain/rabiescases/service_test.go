package rabiescases_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"vax-tracker/internal/adapters/storage/memory"
	"vax-tracker/internal/domain/rabiescases"
	"vax-tracker/internal/ports/activity"
	"vax-tracker/internal/ports/activity/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2025, 8, 5, 10, 0, 0, 0, time.UTC)

func newService(rec activity.Recorder) *rabiescases.Service {
	return rabiescases.NewService(memory.NewRabiesCaseRepo(), rabiescases.Options{
		Recorder: rec,
		Now:      func() time.Time { return refNow },
	})
}

func validInput() rabiescases.SubmitInput {
	return rabiescases.SubmitInput{
		ReporterName:     "Jose Santos",
		AnimalSpecies:    "stray-dog",
		LocationIncident: "Barangay 2 market",
		Symptoms:         []string{"Excessive drooling", "aggressive behavior", "Excessive drooling"},
		ActionTaken:      "Animal quarantined",
	}
}

func TestSubmit_Valid(t *testing.T) {
	ctx := context.Background()
	rec := &mocks.Recorder{}
	rec.On("Record", ctx, mock.MatchedBy(func(e activity.Entry) bool {
		return e.Action == activity.ActionRabiesCaseReport && e.Severity == activity.SeverityWarning
	})).Return(nil).Once()

	svc := newService(rec)
	rep, err := svc.Submit(ctx, "Jose Santos", validInput())
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^RBR[0-9]{6}$`), rep.ID)
	require.Equal(t, []string{"Excessive drooling", "Aggressive behavior"}, rep.Symptoms)
	require.Equal(t, rabiescases.SpeciesStrayDog, rep.AnimalSpecies)
	require.Equal(t, "2025-08-05", rep.ReportDate.Format("2006-01-02"))
	require.False(t, rep.BiteVictim.HasVictim)

	got, err := svc.Get(ctx, rep.ID)
	require.NoError(t, err)
	require.Equal(t, rep.ID, got.ID)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	rec.AssertExpectations(t)
}

func TestSubmit_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newService(nil)

	cases := map[string]func(*rabiescases.SubmitInput){
		"reporter":        func(in *rabiescases.SubmitInput) { in.ReporterName = "" },
		"location":        func(in *rabiescases.SubmitInput) { in.LocationIncident = " " },
		"species":         func(in *rabiescases.SubmitInput) { in.AnimalSpecies = "monkey" },
		"symptom":         func(in *rabiescases.SubmitInput) { in.Symptoms = []string{"Sneezing"} },
		"action":          func(in *rabiescases.SubmitInput) { in.ActionTaken = "Ignored" },
		"victim-nameless": func(in *rabiescases.SubmitInput) { in.BiteVictim = rabiescases.BiteVictim{HasVictim: true} },
	}
	for name, mutate := range cases {
		in := validInput()
		mutate(&in)
		_, err := svc.Submit(ctx, "Jose Santos", in)
		require.ErrorIs(t, err, rabiescases.ErrInvalidInput, name)
	}

	in := validInput()
	in.BiteVictim = rabiescases.BiteVictim{HasVictim: true, Name: " Ana Lim ", Age: "12", MedicalAttention: true}
	rep, err := svc.Submit(ctx, "Jose Santos", in)
	require.NoError(t, err)
	require.Equal(t, "Ana Lim", rep.BiteVictim.Name)

	// sin víctima se descartan los datos del subformulario
	in = validInput()
	in.BiteVictim = rabiescases.BiteVictim{Name: "ignored"}
	rep, err = svc.Submit(ctx, "Jose Santos", in)
	require.NoError(t, err)
	require.Equal(t, rabiescases.BiteVictim{}, rep.BiteVictim)

	_, err = svc.Get(ctx, "RBR000000x")
	require.ErrorIs(t, err, rabiescases.ErrNotFound)
}
