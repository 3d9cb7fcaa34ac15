package service

import (
	"context"

	"github.com/synchome/apartment-system/internal/api/metrics"
	"github.com/synchome/apartment-system/internal/core/domain"
	"github.com/synchome/apartment-system/internal/core/ports"
)

// switchable names the apartment components whose status may be toggled by
// name. Anything else is rejected rather than interpolated into an update
// document.
var switchable = map[string]struct{}{
	"router": {},
	"ac":     {},
	"cctv":   {},
}

var energyDurations = [3]string{"week", "month", "year"}
var weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ApartmentService implements apartment reads and device control.
type ApartmentService struct {
	repo ports.ApartmentRepository
}

func NewApartmentService(repo ports.ApartmentRepository) *ApartmentService {
	return &ApartmentService{repo: repo}
}

func (s *ApartmentService) ListAll(ctx context.Context) ([]domain.Apartment, error) {
	return s.repo.FindAll(ctx)
}

func (s *ApartmentService) GetByEmail(ctx context.Context, email string) (*domain.Apartment, error) {
	if email == "" {
		return nil, domain.ErrMissingEmail
	}
	return s.repo.FindByEmail(ctx, email)
}

func (s *ApartmentService) AddDevice(ctx context.Context, id string, device domain.Device) error {
	return s.repo.AddDevice(ctx, id, device)
}

func (s *ApartmentService) RemoveDevice(ctx context.Context, id string, index int) error {
	if index < 0 {
		return domain.ErrDeviceNotFound
	}
	return s.repo.RemoveDevice(ctx, id, index)
}

func (s *ApartmentService) SwitchDevice(ctx context.Context, id string, index int, on bool) error {
	if index < 0 {
		return domain.ErrDeviceNotFound
	}
	if err := s.repo.SetDeviceStatus(ctx, id, index, on); err != nil {
		return err
	}
	metrics.DeviceSwitchesTotal.WithLabelValues(switchState(on)).Inc()
	return nil
}

func (s *ApartmentService) SwitchComponent(ctx context.Context, id, component string, on bool) error {
	if _, ok := switchable[component]; !ok {
		return domain.ErrDeviceNotFound
	}
	if err := s.repo.SetComponentStatus(ctx, id, component, on); err != nil {
		return err
	}
	metrics.DeviceSwitchesTotal.WithLabelValues(switchState(on)).Inc()
	return nil
}

func (s *ApartmentService) SetMembers(ctx context.Context, id string, members []domain.Member) error {
	return s.repo.SetMembers(ctx, id, members)
}

func (s *ApartmentService) ConfigureWifi(ctx context.Context, id string, setup domain.WifiSetup) error {
	return s.repo.UpsertWifi(ctx, id, setup)
}

func (s *ApartmentService) ConfigureAC(ctx context.Context, id string, ac domain.AC) error {
	return s.repo.UpsertAC(ctx, id, ac)
}

func (s *ApartmentService) ConfigureCCTV(ctx context.Context, id string, cctv domain.CCTV) error {
	return s.repo.UpsertCCTV(ctx, id, cctv)
}

func (s *ApartmentService) SetACTemp(ctx context.Context, id string, temp int) error {
	return s.repo.SetACTemp(ctx, id, temp)
}

func (s *ApartmentService) SetACMode(ctx context.Context, id, mode string) error {
	return s.repo.SetACMode(ctx, id, mode)
}

// SetEnergyTotals replaces the aggregated energy_usage rows with one row per
// duration (week, month, year), in that order.
func (s *ApartmentService) SetEnergyTotals(ctx context.Context, id string, in ports.EnergyTotalsInput) error {
	rows := make([]domain.EnergyUsage, len(energyDurations))
	for i, d := range energyDurations {
		rows[i] = domain.EnergyUsage{
			Duration:    d,
			Electricity: in.Electricity[i],
			Water:       in.Water[i],
			Gas:         in.Gas[i],
		}
	}
	return s.repo.SetEnergyTotals(ctx, id, rows)
}

// SetWeeklyUsage replaces the per-weekday usageData rows, Monday first.
func (s *ApartmentService) SetWeeklyUsage(ctx context.Context, id string, in ports.WeeklyUsageInput) error {
	rows := make([]domain.DailyUsage, len(weekdays))
	for i, d := range weekdays {
		rows[i] = domain.DailyUsage{
			Day:         d,
			Electricity: in.Electricity[i],
			Water:       in.Water[i],
			Gas:         in.Gas[i],
		}
	}
	return s.repo.SetWeeklyUsage(ctx, id, rows)
}

func switchState(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
