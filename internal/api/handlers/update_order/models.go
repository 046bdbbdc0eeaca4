package update_order

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	updateOrder "github.com/m04kA/SMC-GroomingService/internal/usecase/update_order"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

var (
	errInvalidDate = fmt.Errorf("invalid date, expected %s", domain.DateFormat)
	errInvalidTime = fmt.Errorf("invalid startTime, expected %s", domain.TimeFormat)
	errInvalidSize = errors.New("invalid pet size")
)

// UpdateOrderRequest HTTP request model
type UpdateOrderRequest struct {
	MasterID        int64   `json:"masterId"`
	ServiceID       int64   `json:"serviceId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	PetSize         *string `json:"petSize,omitempty"`
	ExtraServiceIDs []int64 `json:"extraServiceIds,omitempty"`
	Price           *int64  `json:"price,omitempty"`
	Comment         *string `json:"comment,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateOrderRequest) ToUseCaseRequest() (*updateOrder.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	var size *domain.PetSize
	if r.PetSize != nil && *r.PetSize != "" {
		parsed, err := domain.ParsePetSize(*r.PetSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidSize, err)
		}
		size = &parsed
	}

	return &updateOrder.Request{
		MasterID:        r.MasterID,
		ServiceID:       r.ServiceID,
		Date:            date,
		StartTime:       startTime,
		PetSize:         size,
		ExtraServiceIDs: r.ExtraServiceIDs,
		Price:           r.Price,
		Comment:         r.Comment,
	}, nil
}
