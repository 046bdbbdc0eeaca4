package create_order

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// Request входные данные для создания заказа
type Request struct {
	Phone           *string
	FullName        string
	Pet             PetRequest
	MasterID        int64
	ServiceID       int64
	Date            time.Time
	StartTime       types.TimeString
	ExtraServiceIDs []int64
	Price           *int64 // ручная цена, 0 и nil означают расчет по тарифу
	Comment         *string
}

// PetRequest данные питомца
type PetRequest struct {
	Name       string
	Species    domain.Species
	BreedID    *int64
	AgeGroupID int64
	Size       *domain.PetSize
}
