package ports

import (
	"context"

	"github.com/synchome/apartment-system/internal/core/domain"
)

// RequestService covers submission and employee review of service requests.
type RequestService interface {
	Submit(ctx context.Context, request *domain.Request) (*domain.Request, error)
	ListAll(ctx context.Context) ([]domain.Request, error)
	GetByEmail(ctx context.Context, email string) (*domain.Request, error)
	SetStatus(ctx context.Context, id, status string) error
}
