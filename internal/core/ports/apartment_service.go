package ports

import (
	"context"

	"github.com/synchome/apartment-system/internal/core/domain"
)

// EnergyTotalsInput carries the aggregated utility readings for the
// week, month and year rows, in that order.
type EnergyTotalsInput struct {
	Electricity [3]float64
	Water       [3]float64
	Gas         [3]float64
}

// WeeklyUsageInput carries one utility reading per weekday, Monday first.
type WeeklyUsageInput struct {
	Electricity [7]float64
	Water       [7]float64
	Gas         [7]float64
}

// ApartmentService exposes apartment reads and device/utility control.
type ApartmentService interface {
	ListAll(ctx context.Context) ([]domain.Apartment, error)
	GetByEmail(ctx context.Context, email string) (*domain.Apartment, error)

	AddDevice(ctx context.Context, id string, device domain.Device) error
	RemoveDevice(ctx context.Context, id string, index int) error
	SwitchDevice(ctx context.Context, id string, index int, on bool) error
	SwitchComponent(ctx context.Context, id, component string, on bool) error

	SetMembers(ctx context.Context, id string, members []domain.Member) error
	ConfigureWifi(ctx context.Context, id string, setup domain.WifiSetup) error
	ConfigureAC(ctx context.Context, id string, ac domain.AC) error
	ConfigureCCTV(ctx context.Context, id string, cctv domain.CCTV) error
	SetACTemp(ctx context.Context, id string, temp int) error
	SetACMode(ctx context.Context, id, mode string) error

	SetEnergyTotals(ctx context.Context, id string, in EnergyTotalsInput) error
	SetWeeklyUsage(ctx context.Context, id string, in WeeklyUsageInput) error
}
