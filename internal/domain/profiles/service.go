package profiles

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("profile not found")
	ErrConflict     = errors.New("profile already exists")
	ErrWrongRole    = errors.New("wrong role")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name string
	Role string
}

// Create completa el alta: el ID lo pone el proveedor de identidad.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Profile, error) {
	userID = strings.TrimSpace(userID)
	name := strings.TrimSpace(in.Name)
	role, ok := ParseRole(in.Role)
	if userID == "" || name == "" || !ok {
		return Profile{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByID(ctx, userID); err == nil {
		return Profile{}, ErrConflict
	} else if !errors.Is(err, ErrNotFound) {
		return Profile{}, err
	}

	p := Profile{
		ID:        userID,
		Name:      name,
		Role:      role,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Profile{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context) ([]Profile, error) {
	return s.repo.ListByRole(ctx, RolePatient)
}

// Require devuelve el perfil solo si tiene el rol pedido.
func (s *Service) Require(ctx context.Context, id string, role Role) (Profile, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	if p.Role != role {
		return Profile{}, ErrWrongRole
	}
	return p, nil
}

func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RolePatient:
		return RolePatient, true
	case RoleCaretaker:
		return RoleCaretaker, true
	default:
		return "", false
	}
}
