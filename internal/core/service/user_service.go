package service

import (
	"context"
	"time"

	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/ports"
)

// UserService implements account management over the users collection.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.Email == "" {
		return nil, domain.ErrMissingEmail
	}
	if user.Role != "" && !domain.KnownRole(user.Role) {
		return nil, domain.ErrInvalidRole
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	return s.repo.Create(ctx, user)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// RoleByEmail re-reads the persisted role so role changes take effect on
// the next request without re-login. An unknown user yields ErrUserNotFound,
// which the authorizer treats as a denial, never a pass.
func (s *UserService) RoleByEmail(ctx context.Context, email string) (string, error) {
	return s.repo.RoleByEmail(ctx, email)
}

func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) error {
	if in.Role != "" && !domain.KnownRole(in.Role) {
		return domain.ErrInvalidRole
	}
	return s.repo.UpdateByID(ctx, id, in.Name, in.Email, in.Phone, in.Role)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *UserService) SaveProfile(ctx context.Context, email string, profile domain.Profile) error {
	if email == "" {
		return domain.ErrMissingEmail
	}
	if profile.Role != "" && !domain.KnownRole(profile.Role) {
		return domain.ErrInvalidRole
	}
	return s.repo.UpsertProfile(ctx, email, profile)
}

func (s *UserService) RecordLogin(ctx context.Context, email, date string) error {
	if email == "" {
		return domain.ErrMissingEmail
	}
	return s.repo.AppendLoginActivity(ctx, email, date)
}
