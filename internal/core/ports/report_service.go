package ports

import (
	"context"

	"github.com/synchome/apartment-system/internal/core/domain"
)

// ReportService covers the resident and employee sides of maintenance
// reporting.
type ReportService interface {
	Submit(ctx context.Context, report *domain.Report) (*domain.Report, error)
	ListAll(ctx context.Context) ([]domain.Report, error)
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Report, error)
	Resolve(ctx context.Context, id string) error
}
