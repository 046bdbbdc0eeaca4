package clients

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// Repository хранилище клиентов и питомцев.
// Методы Find*/Get* возвращают ошибку, оборачивающую domain.ErrNotFound, если запись отсутствует.
type Repository interface {
	GetClient(ctx context.Context, id int64) (*domain.Client, error)
	FindClientByPhone(ctx context.Context, phone string) (*domain.Client, error)
	FindClientByFullName(ctx context.Context, fullName string) (*domain.Client, error)
	SearchClientsByName(ctx context.Context, namePart string) ([]*domain.Client, error)
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)

	GetPet(ctx context.Context, id int64) (*domain.Pet, error)
	FindPet(ctx context.Context, clientID int64, name string, species domain.Species) (*domain.Pet, error)
	ListPets(ctx context.Context, clientID int64) ([]*domain.Pet, error)
	CreatePet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
}

// SizeResolver определяет размер нового питомца по запросу и породе
type SizeResolver interface {
	ResolvePetSize(ctx context.Context, requested *domain.PetSize, breedID *int64, species domain.Species) (domain.PetSize, error)
	ResolveAgeGroup(ctx context.Context, ageGroupID int64) (*domain.AgeGroup, error)
}
