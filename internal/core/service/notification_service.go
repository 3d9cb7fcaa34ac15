package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/ports"
)

// NotificationService implements publishing and removal of announcements.
// Removed notifications are archived to the trash collection first so an
// administrator can recover an accidental delete.
type NotificationService struct {
	repo  ports.NotificationRepository
	trash ports.TrashRepository
	log   zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, trash ports.TrashRepository, log zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, trash: trash, log: log}
}

func (s *NotificationService) Publish(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	n.CreatedAt = time.Now().UTC()
	return s.repo.Create(ctx, n)
}

func (s *NotificationService) ListAll(ctx context.Context) ([]domain.Notification, error) {
	return s.repo.FindAll(ctx)
}

func (s *NotificationService) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *NotificationService) Remove(ctx context.Context, id string) error {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	// Archive before delete. Archival failure is non-fatal.
	payload := map[string]any{
		"collection":  "notifications",
		"document_id": n.ID,
		"title":       n.Title,
		"message":     n.Message,
		"audience":    n.Audience,
		"created_at":  n.CreatedAt,
	}
	if err := s.trash.Archive(ctx, payload); err != nil {
		s.log.Warn().Err(err).Str("id", id).Msg("failed to archive notification to trash")
	}

	return s.repo.DeleteByID(ctx, id)
}
