package ports

import (
	"context"

	"github.com/synchome/apartment-system/internal/core/domain"
)

// UpdateUserInput carries the admin-editable account fields.
type UpdateUserInput struct {
	Name  string
	Email string
	Phone string
	Role  string
}

// UserService covers account management and the per-request role lookup
// used by the role authorizer.
type UserService interface {
	Register(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	RoleByEmail(ctx context.Context, email string) (string, error)
	Update(ctx context.Context, id string, in UpdateUserInput) error
	Delete(ctx context.Context, id string) error
	SaveProfile(ctx context.Context, email string, profile domain.Profile) error
	RecordLogin(ctx context.Context, email, date string) error
}
