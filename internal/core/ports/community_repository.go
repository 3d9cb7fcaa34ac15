package ports

import (
	"context"

	"github.com/synchome/apartment-system/internal/core/domain"
)

// CommunityRepository defines persistence for community events and shared
// washing-machine bookings.
type CommunityRepository interface {
	FindAllEvents(ctx context.Context) ([]domain.CommunityEvent, error)
	CreateBooking(ctx context.Context, b *domain.WashingBooking) (*domain.WashingBooking, error)
	FindBookingsByEmail(ctx context.Context, email string) ([]domain.WashingBooking, error)
}

// TrashRepository archives deleted documents. Payloads are opaque.
type TrashRepository interface {
	Archive(ctx context.Context, payload map[string]any) error
}
