package service

import (
	"context"

	"smartir_service/internal/models"
	"smartir_service/internal/repository"
)

// CatalogService reads the stored device catalog.
type CatalogService struct {
	deviceRepo repository.DeviceRepo
}

func NewCatalogService(deviceRepo repository.DeviceRepo) *CatalogService {
	return &CatalogService{deviceRepo: deviceRepo}
}

var _ Catalog = (*CatalogService)(nil)

func (s *CatalogService) ListDevices(ctx context.Context, category string) ([]models.StoredDevice, error) {
	return s.deviceRepo.List(ctx, category)
}

// GetDevice returns (nil, nil) for unknown IDs; the HTTP layer turns that
// into a 404.
func (s *CatalogService) GetDevice(ctx context.Context, id string) (*models.StoredDevice, error) {
	return s.deviceRepo.Get(ctx, id)
}

// BuildIndex flattens the catalog into a manufacturer/model manifest, the
// cross-device index consumed by downstream tooling.
func (s *CatalogService) BuildIndex(ctx context.Context) ([]models.IndexEntry, error) {
	devices, err := s.deviceRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	index := make([]models.IndexEntry, 0, len(devices))
	for _, d := range devices {
		index = append(index, models.IndexEntry{
			Manufacturer: d.Descriptor.Manufacturer,
			Models:       d.Descriptor.SupportedModels,
			Category:     d.Category,
			DeviceID:     d.ID,
			Commands:     d.CommandCount,
		})
	}
	return index, nil
}
