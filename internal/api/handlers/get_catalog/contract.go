package get_catalog

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// CatalogService справочники салона
type CatalogService interface {
	ListMasters(ctx context.Context) ([]*domain.Master, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
	ListExtraServices(ctx context.Context) ([]*domain.ExtraService, error)
	ListAgeGroups(ctx context.Context) ([]*domain.AgeGroup, error)
	ListBreeds(ctx context.Context, species *domain.Species) ([]*domain.Breed, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
