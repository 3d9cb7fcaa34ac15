package service

import (
	"context"
	"time"

	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/ports"
)

// RequestService implements submission and review of service requests.
type RequestService struct {
	repo ports.RequestRepository
}

func NewRequestService(repo ports.RequestRepository) *RequestService {
	return &RequestService{repo: repo}
}

func (s *RequestService) Submit(ctx context.Context, request *domain.Request) (*domain.Request, error) {
	if request.Email == "" {
		return nil, domain.ErrMissingEmail
	}
	if request.Status == "" {
		request.Status = "pending"
	}
	request.CreatedAt = time.Now().UTC()
	return s.repo.Create(ctx, request)
}

func (s *RequestService) ListAll(ctx context.Context) ([]domain.Request, error) {
	return s.repo.FindAll(ctx)
}

func (s *RequestService) GetByEmail(ctx context.Context, email string) (*domain.Request, error) {
	if email == "" {
		return nil, domain.ErrMissingEmail
	}
	return s.repo.FindByEmail(ctx, email)
}

func (s *RequestService) SetStatus(ctx context.Context, id, status string) error {
	return s.repo.SetStatus(ctx, id, status)
}
