package adherence

import (
	"context"
	"testing"
	"time"

	mem "medicare-companion/internal/adapters/storage/memory"
	"medicare-companion/internal/domain/medications"
	"medicare-companion/internal/domain/medlogs"
	"medicare-companion/internal/domain/profiles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc     *Service
	logRepo medlogs.Repository
	m1      medications.Medication // c1 -> p1, After Breakfast
	m2      medications.Medication // c1 -> p2
	m3      medications.Medication // c2 -> p1
}

// Hoy es sábado 2024-02-10 a las 10:00 UTC.
func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	profilesSvc := profiles.NewService(mem.NewProfileRepo())
	for id, role := range map[string]string{"c1": "caretaker", "c2": "caretaker", "p1": "patient", "p2": "patient"} {
		_, err := profilesSvc.Create(ctx, id, profiles.CreateInput{Name: id, Role: role})
		require.NoError(t, err)
	}

	medsSvc := medications.NewService(mem.NewMedicationRepo())
	create := func(caretaker, patient, slot string) medications.Medication {
		m, err := medsSvc.Create(ctx, caretaker, medications.CreateInput{
			PatientID: patient, Name: "med", Dosage: "1", TimeSlot: slot,
		})
		require.NoError(t, err)
		return m
	}

	f := fixture{logRepo: mem.NewLogRepo()}
	f.m1 = create("c1", "p1", "After Breakfast")
	f.m2 = create("c1", "p2", "")
	f.m3 = create("c2", "p1", "")

	seed := []struct {
		med   medications.Medication
		date  string
		taken bool
	}{
		{f.m1, "2024-02-10", true},
		{f.m1, "2024-02-09", true},
		{f.m1, "2024-02-08", false},
		{f.m2, "2024-02-10", false},
		{f.m3, "2024-02-10", true},
	}
	for i, s := range seed {
		require.NoError(t, f.logRepo.Create(ctx, medlogs.LogEntry{
			ID:           string(rune('a' + i)),
			MedicationID: s.med.ID,
			PatientID:    s.med.PatientID,
			Date:         day(s.date),
			Taken:        s.taken,
			RecordedBy:   s.med.PatientID,
		}))
	}

	f.svc = NewService(medsSvc, medlogs.NewService(f.logRepo, time.UTC), profilesSvc, time.UTC)
	f.svc.now = func() time.Time { return time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC) }
	return f
}

func TestService_Summary_Scopes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("patient sees own logs from every caretaker", func(t *testing.T) {
		sum, err := f.svc.Summary(ctx, "p1", "")
		require.NoError(t, err)
		assert.Equal(t, 75, sum.Stats.Rate)
		assert.Equal(t, 1, sum.Stats.MissedCount)
		assert.Equal(t, 2, sum.Stats.Streak)
		assert.Equal(t, day("2024-01-11"), sum.WindowStart)
		assert.Equal(t, day("2024-02-10"), sum.WindowEnd)
		assert.Equal(t, 2, sum.Monthly.Taken)
		assert.Equal(t, 1, sum.Monthly.Missed)
	})

	t.Run("caretaker filtered by patient", func(t *testing.T) {
		sum, err := f.svc.Summary(ctx, "c1", "p1")
		require.NoError(t, err)
		assert.Equal(t, 67, sum.Stats.Rate)
		assert.Equal(t, 2, sum.Stats.Streak)
	})

	t.Run("caretaker across patients", func(t *testing.T) {
		sum, err := f.svc.Summary(ctx, "c1", "")
		require.NoError(t, err)
		assert.Equal(t, 50, sum.Stats.Rate)
		assert.Equal(t, 2, sum.Stats.MissedCount)
		assert.Equal(t, 0, sum.Stats.Streak)
	})

	t.Run("caretaker without meds for patient", func(t *testing.T) {
		sum, err := f.svc.Summary(ctx, "c2", "p2")
		require.NoError(t, err)
		assert.Equal(t, Stats{}, sum.Stats)
	})

	t.Run("patient cannot look at another patient", func(t *testing.T) {
		_, err := f.svc.Summary(ctx, "p1", "p2")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("no profile", func(t *testing.T) {
		_, err := f.svc.Summary(ctx, "ghost", "")
		assert.ErrorIs(t, err, profiles.ErrNotFound)
	})
}

func TestService_Calendar(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	selected := day("2024-02-09")
	cal, err := f.svc.Calendar(ctx, "p1", "", YearMonth{Year: 2024, Month: 1}, &selected)
	require.NoError(t, err)

	assert.Equal(t, YearMonth{Year: 2024, Month: 0}, cal.Previous)
	assert.Equal(t, YearMonth{Year: 2024, Month: 2}, cal.Next)
	require.Len(t, cal.Cells, 33)
	assert.Equal(t, CalendarCell{}, cal.Cells[0])

	cell := func(dayOfMonth int) CalendarCell { return cal.Cells[3+dayOfMonth] }

	assert.Equal(t, medlogs.StatusMissed, cell(8).Status)
	assert.True(t, cell(9).IsSelected)
	assert.Equal(t, medlogs.StatusTaken, cell(9).Status)
	assert.True(t, cell(10).IsToday)
	assert.Equal(t, medlogs.StatusTaken, cell(10).Status)
	assert.Equal(t, medlogs.StatusNotLogged, cell(11).Status)
	assert.True(t, cell(11).Scheduled)
	assert.Equal(t, day("2024-02-29"), cell(29).Date)

	_, err = f.svc.Calendar(ctx, "p1", "", YearMonth{Year: 2024, Month: 12}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Equal(t, YearMonth{Year: 2024, Month: 1}, f.svc.CurrentMonth())
}

func TestService_Day(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	view, err := f.svc.Day(ctx, "c1", "p1", day("2024-02-10"))
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	it := view.Items[0]
	assert.Equal(t, f.m1.ID, it.Medication.ID)
	assert.True(t, it.Scheduled)
	assert.True(t, it.WithinWindow)
	assert.Equal(t, "08:00–10:00", it.WindowLabel)
	assert.Equal(t, medlogs.StatusTaken, it.Status)
	assert.Equal(t, medlogs.StatusTaken, view.Status)

	view, err = f.svc.Day(ctx, "p1", "", day("2024-02-08"))
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	for _, it := range view.Items {
		assert.False(t, it.WithinWindow, "only today can be inside a window")
		switch it.Medication.ID {
		case f.m1.ID:
			assert.Equal(t, medlogs.StatusMissed, it.Status)
		case f.m3.ID:
			assert.Equal(t, medlogs.StatusNotLogged, it.Status)
		}
	}
	assert.Equal(t, medlogs.StatusMissed, view.Status)

	_, err = f.svc.Day(ctx, "p1", "", time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Logs(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	items, err := f.svc.Logs(ctx, "c1", "", nil, nil)
	require.NoError(t, err)
	assert.Len(t, items, 4)

	from := day("2024-02-10")
	items, err = f.svc.Logs(ctx, "p1", "", &from, nil)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = f.svc.Logs(ctx, "c2", "p2", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, items)

	to := day("2024-02-01")
	_, err = f.svc.Logs(ctx, "p1", "", &from, &to)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
