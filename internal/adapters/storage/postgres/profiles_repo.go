package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"medicare-companion/internal/domain/profiles"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

func (r *ProfilesRepo) Create(ctx context.Context, p profiles.Profile) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profiles (id, name, role, created_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO NOTHING
	`, p.ID, p.Name, string(p.Role), p.CreatedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return profiles.ErrConflict
	}
	return nil
}

func (r *ProfilesRepo) GetByID(ctx context.Context, id string) (profiles.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return profiles.Profile{}, profiles.ErrNotFound
	}

	var p profiles.Profile
	var role string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, role, created_at FROM user_profiles WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &role, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profiles.Profile{}, profiles.ErrNotFound
		}
		return profiles.Profile{}, err
	}
	p.Role = profiles.Role(role)
	return p, nil
}

func (r *ProfilesRepo) ListByRole(ctx context.Context, role profiles.Role) ([]profiles.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, role, created_at
		FROM user_profiles
		WHERE role = $1
		ORDER BY name ASC
	`, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profiles.Profile, 0)
	for rows.Next() {
		var p profiles.Profile
		var roleStr string
		if err := rows.Scan(&p.ID, &p.Name, &roleStr, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Role = profiles.Role(roleStr)
		out = append(out, p)
	}
	return out, rows.Err()
}
