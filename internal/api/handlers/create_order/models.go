package create_order

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	createOrder "github.com/m04kA/SMC-GroomingService/internal/usecase/create_order"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

var (
	errInvalidDate = fmt.Errorf("invalid date, expected %s", domain.DateFormat)
	errInvalidTime = fmt.Errorf("invalid startTime, expected %s", domain.TimeFormat)
	errInvalidPet  = errors.New("invalid pet")
)

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	Phone           *string    `json:"phone,omitempty"`
	FullName        string     `json:"fullName"`
	Pet             PetRequest `json:"pet"`
	MasterID        int64      `json:"masterId"`
	ServiceID       int64      `json:"serviceId"`
	Date            string     `json:"date"`      // "2025-10-15"
	StartTime       string     `json:"startTime"` // "10:00"
	ExtraServiceIDs []int64    `json:"extraServiceIds,omitempty"`
	Price           *int64     `json:"price,omitempty"`
	Comment         *string    `json:"comment,omitempty"`
}

// PetRequest питомец в заявке
type PetRequest struct {
	Name       string  `json:"name"`
	Species    string  `json:"species"` // dog | cat
	BreedID    *int64  `json:"breedId,omitempty"`
	AgeGroupID int64   `json:"ageGroupId"`
	Size       *string `json:"size,omitempty"` // decorative | medium | large | extra_large
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateOrderRequest) ToUseCaseRequest() (*createOrder.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	species, err := domain.ParseSpecies(r.Pet.Species)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidPet, err)
	}

	var size *domain.PetSize
	if r.Pet.Size != nil && *r.Pet.Size != "" {
		parsed, err := domain.ParsePetSize(*r.Pet.Size)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidPet, err)
		}
		size = &parsed
	}

	return &createOrder.Request{
		Phone:    r.Phone,
		FullName: r.FullName,
		Pet: createOrder.PetRequest{
			Name:       r.Pet.Name,
			Species:    species,
			BreedID:    r.Pet.BreedID,
			AgeGroupID: r.Pet.AgeGroupID,
			Size:       size,
		},
		MasterID:        r.MasterID,
		ServiceID:       r.ServiceID,
		Date:            date,
		StartTime:       startTime,
		ExtraServiceIDs: r.ExtraServiceIDs,
		Price:           r.Price,
		Comment:         r.Comment,
	}, nil
}
