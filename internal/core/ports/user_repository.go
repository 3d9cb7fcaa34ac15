package ports

import (
	"context"

	"github.com/synchome/apartment-system/internal/core/domain"
)

// UserRepository defines persistence for user records in the users collection.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	RoleByEmail(ctx context.Context, email string) (string, error)
	UpdateByID(ctx context.Context, id string, name, email, phone, role string) error
	DeleteByID(ctx context.Context, id string) error
	UpsertProfile(ctx context.Context, email string, profile domain.Profile) error
	AppendLoginActivity(ctx context.Context, email, date string) error
}
