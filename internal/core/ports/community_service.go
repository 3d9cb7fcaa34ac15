package ports

import (
	"context"

	"github.com/synchome/apartment-system/internal/core/domain"
)

// CommunityService covers the shared-facility surface: events and washing
// machine bookings.
type CommunityService interface {
	ListEvents(ctx context.Context) ([]domain.CommunityEvent, error)
	BookWashing(ctx context.Context, b *domain.WashingBooking) (*domain.WashingBooking, error)
	ListWashingByEmail(ctx context.Context, email string) ([]domain.WashingBooking, error)
	ArchiveToTrash(ctx context.Context, payload map[string]any) error
}
