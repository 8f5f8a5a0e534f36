package medications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID map[string]Medication
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Medication{}}
}

func (r *testRepo) Create(ctx context.Context, m Medication) error {
	r.byID[m.ID] = m
	return nil
}

func (r *testRepo) Update(ctx context.Context, m Medication) error {
	if _, ok := r.byID[m.ID]; !ok {
		return ErrNotFound
	}
	r.byID[m.ID] = m
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Medication, error) {
	m, ok := r.byID[id]
	if !ok {
		return Medication{}, ErrNotFound
	}
	return m, nil
}

func (r *testRepo) ListByCaretaker(ctx context.Context, caretakerID string) ([]Medication, error) {
	out := make([]Medication, 0)
	for _, m := range r.byID {
		if m.CaretakerID == caretakerID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *testRepo) ListByPatient(ctx context.Context, patientID string) ([]Medication, error) {
	out := make([]Medication, 0)
	for _, m := range r.byID {
		if m.PatientID == patientID {
			out = append(out, m)
		}
	}
	return out, nil
}

func newTestService(now time.Time) *Service {
	svc := NewService(newTestRepo())
	svc.now = func() time.Time { return now }
	return svc
}

func TestService_Create_NormalizesDays(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	m, err := svc.Create(ctx, "care-1", CreateInput{
		PatientID: "pat-1",
		Name:      "  Enalapril ",
		Dosage:    "10mg",
		Days:      []string{"Fri", "Mon", "Fri", " "},
		TimeSlot:  "After Breakfast",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "Enalapril", m.Name)
	assert.Equal(t, []Weekday{Mon, Fri}, m.Days)
	assert.Equal(t, SlotAfterBreakfast, m.TimeSlot)
	assert.Equal(t, now, m.CreatedAt)
	assert.Equal(t, "care-1", m.CaretakerID)
}

func TestService_Create_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(time.Now())

	cases := []CreateInput{
		{PatientID: "", Name: "a", Dosage: "b"},
		{PatientID: "p", Name: " ", Dosage: "b"},
		{PatientID: "p", Name: "a", Dosage: "b", Days: []string{"Lunes"}},
		{PatientID: "p", Name: "a", Dosage: "b", TimeSlot: "Midnight"},
	}
	for _, in := range cases {
		_, err := svc.Create(ctx, "care-1", in)
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", in)
	}

	_, err := svc.Create(ctx, "", CreateInput{PatientID: "p", Name: "a", Dosage: "b"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_OnlyOwner(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(created)

	m, err := svc.Create(ctx, "care-1", CreateInput{
		PatientID: "pat-1", Name: "Ibuprofeno", Dosage: "400mg", Days: []string{"Mon"},
	})
	require.NoError(t, err)

	name := "Paracetamol"
	_, err = svc.Update(ctx, m.ID, "care-2", UpdateInput{Name: &name})
	assert.ErrorIs(t, err, ErrForbidden)

	later := created.Add(time.Hour)
	svc.now = func() time.Time { return later }

	days := []string{}
	slot := "High Tea"
	got, err := svc.Update(ctx, m.ID, "care-1", UpdateInput{Name: &name, Days: &days, TimeSlot: &slot})
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol", got.Name)
	assert.Equal(t, "400mg", got.Dosage)
	assert.Empty(t, got.Days, "empty days means daily")
	assert.Equal(t, SlotHighTea, got.TimeSlot)
	assert.Equal(t, later, got.UpdatedAt)
	assert.Equal(t, created, got.CreatedAt)

	empty := " "
	_, err = svc.Update(ctx, m.ID, "care-1", UpdateInput{Dosage: &empty})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(time.Now())

	m, err := svc.Create(ctx, "care-1", CreateInput{PatientID: "pat-1", Name: "a", Dosage: "b"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, m.ID, "pat-1"), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, m.ID, "care-1"))

	_, err = svc.GetByID(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "missing", "care-1"), ErrNotFound)
}

func TestService_Lists(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(time.Now())

	for _, p := range []string{"pat-1", "pat-1", "pat-2"} {
		_, err := svc.Create(ctx, "care-1", CreateInput{PatientID: p, Name: "a", Dosage: "b"})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, "care-2", CreateInput{PatientID: "pat-1", Name: "a", Dosage: "b"})
	require.NoError(t, err)

	byCare, err := svc.ListByCaretaker(ctx, "care-1")
	require.NoError(t, err)
	assert.Len(t, byCare, 3)

	byPatient, err := svc.ListByPatient(ctx, "pat-1")
	require.NoError(t, err)
	assert.Len(t, byPatient, 3)

	_, err = svc.ListByPatient(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
