package memory

import (
	"context"
	"testing"
	"time"

	"medicare-companion/internal/domain/medications"
	"medicare-companion/internal/domain/medlogs"
	"medicare-companion/internal/domain/profiles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := medlogs.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestLogRepo_DuplicateKey(t *testing.T) {
	ctx := context.Background()
	repo := NewLogRepo()

	e := medlogs.LogEntry{ID: "a", MedicationID: "m1", PatientID: "p1", Date: date("2024-01-15"), Taken: true}
	require.NoError(t, repo.Create(ctx, e))

	e.ID = "b"
	assert.ErrorIs(t, repo.Create(ctx, e), medlogs.ErrDuplicate)

	e.ID = "c"
	e.Date = date("2024-01-16")
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.FindByKey(ctx, "m1", "p1", time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestLogRepo_ListFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewLogRepo()

	for _, e := range []medlogs.LogEntry{
		{ID: "1", MedicationID: "m1", PatientID: "p1", Date: date("2024-01-10")},
		{ID: "2", MedicationID: "m1", PatientID: "p1", Date: date("2024-01-12")},
		{ID: "3", MedicationID: "m2", PatientID: "p1", Date: date("2024-01-11")},
		{ID: "4", MedicationID: "m3", PatientID: "p2", Date: date("2024-01-11")},
	} {
		require.NoError(t, repo.Create(ctx, e))
	}

	all, err := repo.List(ctx, medlogs.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "2", all[0].ID, "newest date first")

	from, to := date("2024-01-11"), date("2024-01-11")
	got, err := repo.List(ctx, medlogs.ListFilter{PatientID: "p1", From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got, err = repo.List(ctx, medlogs.ListFilter{MedicationIDs: []string{"m1", "m3"}})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestMedicationRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMedicationRepo()

	m := medications.Medication{
		ID:          "m1",
		PatientID:   "p1",
		CaretakerID: "c1",
		Name:        "Losartán",
		Days:        []medications.Weekday{medications.Mon},
	}
	require.NoError(t, repo.Create(ctx, m))

	// El repo guarda copias: mutar el original no lo afecta.
	m.Days[0] = medications.Sun
	got, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, []medications.Weekday{medications.Mon}, got.Days)

	got.Name = "Losartán 50"
	require.NoError(t, repo.Update(ctx, got))

	byPatient, err := repo.ListByPatient(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, byPatient, 1)
	assert.Equal(t, "Losartán 50", byPatient[0].Name)

	byCare, err := repo.ListByCaretaker(ctx, "c2")
	require.NoError(t, err)
	assert.Empty(t, byCare)

	require.NoError(t, repo.Delete(ctx, "m1"))
	_, err = repo.GetByID(ctx, "m1")
	assert.ErrorIs(t, err, medications.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "m1"), medications.ErrNotFound)
}

func TestProfileRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepo()

	require.NoError(t, repo.Create(ctx, profiles.Profile{ID: "p2", Name: "Zoe", Role: profiles.RolePatient}))
	require.NoError(t, repo.Create(ctx, profiles.Profile{ID: "p1", Name: "Ana", Role: profiles.RolePatient}))
	require.NoError(t, repo.Create(ctx, profiles.Profile{ID: "c1", Name: "Bea", Role: profiles.RoleCaretaker}))

	assert.ErrorIs(t, repo.Create(ctx, profiles.Profile{ID: "p1", Name: "x"}), profiles.ErrConflict)

	patients, err := repo.ListByRole(ctx, profiles.RolePatient)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "Ana", patients[0].Name)

	_, err = repo.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, profiles.ErrNotFound)
}

func TestMedicationAndLogRepos_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	meds, logs := NewMedicationAndLogRepos()

	for _, id := range []string{"m1", "m2"} {
		require.NoError(t, meds.Create(ctx, medications.Medication{ID: id, PatientID: "p1", CaretakerID: "c1"}))
		require.NoError(t, logs.Create(ctx, medlogs.LogEntry{ID: "l-" + id, MedicationID: id, PatientID: "p1", Date: date("2024-01-15"), Taken: true}))
	}

	require.NoError(t, meds.Delete(ctx, "m1"))

	got, err := logs.List(ctx, medlogs.ListFilter{PatientID: "p1"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m2", got[0].MedicationID)
}
