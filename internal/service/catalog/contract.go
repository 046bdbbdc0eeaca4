package catalog

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// Repository справочники салона (только чтение).
// Методы Get* возвращают ошибку, оборачивающую domain.ErrNotFound, если запись отсутствует.
type Repository interface {
	GetMaster(ctx context.Context, id int64) (*domain.Master, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetTariff(ctx context.Context, serviceID int64, size domain.PetSize) (*domain.ServiceTariff, error)
	GetAgeGroup(ctx context.Context, id int64) (*domain.AgeGroup, error)
	GetBreed(ctx context.Context, id int64) (*domain.Breed, error)
	// ListExtraServicesByIDs возвращает найденные доп. услуги, отсутствующие id пропускаются
	ListExtraServicesByIDs(ctx context.Context, ids []int64) ([]*domain.ExtraService, error)

	ListMasters(ctx context.Context, activeOnly bool) ([]*domain.Master, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
	ListExtraServices(ctx context.Context) ([]*domain.ExtraService, error)
	ListAgeGroups(ctx context.Context) ([]*domain.AgeGroup, error)
	ListBreeds(ctx context.Context, species *domain.Species) ([]*domain.Breed, error)
}
