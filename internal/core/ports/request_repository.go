package ports

import (
	"context"

	"github.com/synchome/apartment-system/internal/core/domain"
)

// RequestRepository defines persistence for resident service requests.
type RequestRepository interface {
	Create(ctx context.Context, request *domain.Request) (*domain.Request, error)
	FindAll(ctx context.Context) ([]domain.Request, error)
	FindByEmail(ctx context.Context, email string) (*domain.Request, error)
	SetStatus(ctx context.Context, id, status string) error
}
