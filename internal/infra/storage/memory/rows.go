package memory

import "github.com/m04kA/SMC-GroomingService/internal/domain"

type (
	masterRow       = domain.Master
	serviceRow      = domain.Service
	tariffRow       = domain.ServiceTariff
	extraServiceRow = domain.ExtraService
	ageGroupRow     = domain.AgeGroup
	breedRow        = domain.Breed
	clientRow       = domain.Client
	petRow          = domain.Pet
	orderRow        = domain.Order
)

func copyOf[T any](row *T) *T {
	c := *row
	return &c
}

func copyOrder(row *orderRow) *domain.Order {
	c := *row
	c.ExtraServiceIDs = append([]int64(nil), row.ExtraServiceIDs...)
	return &c
}
