package ports

import (
	"context"

	"github.com/synchome/apartment-system/internal/core/domain"
)

// NotificationRepository defines persistence for resident notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	FindAll(ctx context.Context) ([]domain.Notification, error)
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	DeleteByID(ctx context.Context, id string) error
}
