package profiles

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID map[string]Profile
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Profile{}}
}

func (r *testRepo) Create(ctx context.Context, p Profile) error {
	if _, ok := r.byID[p.ID]; ok {
		return ErrConflict
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Profile, error) {
	p, ok := r.byID[id]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByRole(ctx context.Context, role Role) ([]Profile, error) {
	out := make([]Profile, 0)
	for _, p := range r.byID {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewService(newTestRepo())
	svc.now = func() time.Time { return now }

	p, err := svc.Create(ctx, "u1", CreateInput{Name: " Ana ", Role: "Caretaker"})
	require.NoError(t, err)
	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, RoleCaretaker, p.Role)
	assert.Equal(t, now, p.CreatedAt)

	_, err = svc.Create(ctx, "u1", CreateInput{Name: "Ana", Role: "patient"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Create(ctx, "u2", CreateInput{Name: "Beto", Role: "doctor"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, "u2", CreateInput{Name: "", Role: "patient"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_RequireAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestRepo())

	_, err := svc.Create(ctx, "c1", CreateInput{Name: "Ana", Role: "caretaker"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "p1", CreateInput{Name: "Beto", Role: "patient"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "p2", CreateInput{Name: "Caro", Role: "patient"})
	require.NoError(t, err)

	_, err = svc.Require(ctx, "c1", RoleCaretaker)
	assert.NoError(t, err)
	_, err = svc.Require(ctx, "p1", RoleCaretaker)
	assert.ErrorIs(t, err, ErrWrongRole)
	_, err = svc.Require(ctx, "ghost", RolePatient)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetByID(ctx, " ")
	assert.ErrorIs(t, err, ErrNotFound)

	patients, err := svc.ListPatients(ctx)
	require.NoError(t, err)
	assert.Len(t, patients, 2)
}
