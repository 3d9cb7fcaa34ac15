package service

import (
	"context"
	"time"

	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/ports"
)

// CommunityService implements the shared-facility surface.
type CommunityService struct {
	repo  ports.CommunityRepository
	trash ports.TrashRepository
}

func NewCommunityService(repo ports.CommunityRepository, trash ports.TrashRepository) *CommunityService {
	return &CommunityService{repo: repo, trash: trash}
}

func (s *CommunityService) ListEvents(ctx context.Context) ([]domain.CommunityEvent, error) {
	return s.repo.FindAllEvents(ctx)
}

func (s *CommunityService) BookWashing(ctx context.Context, b *domain.WashingBooking) (*domain.WashingBooking, error) {
	if b.Email == "" {
		return nil, domain.ErrMissingEmail
	}
	b.CreatedAt = time.Now().UTC()
	return s.repo.CreateBooking(ctx, b)
}

func (s *CommunityService) ListWashingByEmail(ctx context.Context, email string) ([]domain.WashingBooking, error) {
	if email == "" {
		return nil, domain.ErrMissingEmail
	}
	return s.repo.FindBookingsByEmail(ctx, email)
}

func (s *CommunityService) ArchiveToTrash(ctx context.Context, payload map[string]any) error {
	return s.trash.Archive(ctx, payload)
}
