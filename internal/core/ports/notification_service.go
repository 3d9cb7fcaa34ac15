package ports

import (
	"context"

	"github.com/synchome/apartment-system/internal/core/domain"
)

// NotificationService covers publishing and reading building announcements.
// Removed notifications are archived to the trash collection before deletion.
type NotificationService interface {
	Publish(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListAll(ctx context.Context) ([]domain.Notification, error)
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	Remove(ctx context.Context, id string) error
}
