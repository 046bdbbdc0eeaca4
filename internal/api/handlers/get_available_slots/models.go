package get_available_slots

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-GroomingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	MasterID        int64           `json:"masterId"`
	ServiceID       int64           `json:"serviceId"`
	PetSize         string          `json:"petSize"`
	DurationMinutes int             `json:"durationMinutes"`
	BasePrice       int64           `json:"basePrice"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot свободное окно
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		MasterID:        resp.MasterID,
		ServiceID:       resp.ServiceID,
		PetSize:         string(resp.PetSize),
		DurationMinutes: resp.DurationMinutes,
		BasePrice:       resp.BasePrice,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(masterID int64, serviceIDStr, petSizeStr, dateStr string) (*getAvailableSlots.Request, error) {
	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidServiceID, err)
	}

	size, err := domain.ParsePetSize(petSizeStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidSize, err)
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	return &getAvailableSlots.Request{
		MasterID:  masterID,
		ServiceID: serviceID,
		PetSize:   size,
		Date:      date,
	}, nil
}
