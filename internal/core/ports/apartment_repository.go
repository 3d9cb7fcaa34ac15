package ports

import (
	"context"

	"github.com/synchome/apartment-system/internal/core/domain"
)

// ApartmentRepository defines persistence for apartment documents. Device
// mutations address the devices array by index, mirroring how the documents
// are laid out in the apartments collection.
type ApartmentRepository interface {
	FindAll(ctx context.Context) ([]domain.Apartment, error)
	FindByEmail(ctx context.Context, email string) (*domain.Apartment, error)

	AddDevice(ctx context.Context, id string, device domain.Device) error
	RemoveDevice(ctx context.Context, id string, index int) error
	SetDeviceStatus(ctx context.Context, id string, index int, on bool) error
	SetComponentStatus(ctx context.Context, id, component string, on bool) error

	SetMembers(ctx context.Context, id string, members []domain.Member) error
	UpsertWifi(ctx context.Context, id string, setup domain.WifiSetup) error
	UpsertAC(ctx context.Context, id string, ac domain.AC) error
	UpsertCCTV(ctx context.Context, id string, cctv domain.CCTV) error
	SetACTemp(ctx context.Context, id string, temp int) error
	SetACMode(ctx context.Context, id, mode string) error

	SetEnergyTotals(ctx context.Context, id string, rows []domain.EnergyUsage) error
	SetWeeklyUsage(ctx context.Context, id string, rows []domain.DailyUsage) error
}
