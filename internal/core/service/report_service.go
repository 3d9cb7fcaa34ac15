package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/synchome/apartment-system/internal/api/metrics"
	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/ports"
)

// Deduper abstracts the duplicate-report store (Redis).
type Deduper interface {
	IsDuplicate(ctx context.Context, email, topic string) (bool, error)
	Mark(ctx context.Context, email, topic string) error
}

type reportService struct {
	repo  ports.ReportRepository
	dedup Deduper
	log   zerolog.Logger
}

// NewReportService returns a ReportService implementation.
func NewReportService(repo ports.ReportRepository, dedup Deduper, log zerolog.Logger) ports.ReportService {
	return &reportService{repo: repo, dedup: dedup, log: log}
}

// Submit validates, deduplicates, and persists a maintenance report.
func (s *reportService) Submit(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	if report.Email == "" {
		return nil, domain.ErrMissingEmail
	}

	// Duplicate check — the same resident re-submitting the same topic
	// within the dedup window is rejected, not silently stored twice.
	isDup, err := s.dedup.IsDuplicate(ctx, report.Email, report.Topic)
	if err != nil {
		s.log.Warn().Err(err).Str("email", report.Email).Msg("dedup check failed, accepting anyway")
	} else if isDup {
		metrics.ReportsDedupTotal.WithLabelValues("hit").Inc()
		return nil, domain.ErrDuplicateReport
	}
	metrics.ReportsDedupTotal.WithLabelValues("miss").Inc()

	report.Status = domain.ReportPending
	report.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, report)
	if err != nil {
		return nil, err
	}

	if markErr := s.dedup.Mark(ctx, report.Email, report.Topic); markErr != nil {
		s.log.Warn().Err(markErr).Str("email", report.Email).Msg("failed to set dedup key")
	}

	metrics.ReportsSubmittedTotal.Inc()
	s.log.Info().
		Str("email", report.Email).
		Str("topic", report.Topic).
		Msg("report submitted")

	return created, nil
}

func (s *reportService) ListAll(ctx context.Context) ([]domain.Report, error) {
	return s.repo.FindAll(ctx)
}

func (s *reportService) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *reportService) ListByEmail(ctx context.Context, email string) ([]domain.Report, error) {
	if email == "" {
		return nil, domain.ErrMissingEmail
	}
	return s.repo.FindByEmail(ctx, email)
}

func (s *reportService) Resolve(ctx context.Context, id string) error {
	return s.repo.MarkSolved(ctx, id)
}
