package profiles

import "context"

type Repository interface {
	Create(ctx context.Context, p Profile) error
	GetByID(ctx context.Context, id string) (Profile, error)
	ListByRole(ctx context.Context, role Role) ([]Profile, error)
}
