package ports

import (
	"context"

	"github.com/synchome/apartment-system/internal/core/domain"
)

// ReportRepository defines persistence for maintenance reports.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) (*domain.Report, error)
	FindAll(ctx context.Context) ([]domain.Report, error)
	FindByID(ctx context.Context, id string) (*domain.Report, error)
	FindByEmail(ctx context.Context, email string) ([]domain.Report, error)
	MarkSolved(ctx context.Context, id string) error
}
