package memory

import "github.com/m04kA/SMC-GroomingService/internal/domain"

var (
	ErrOrderNotFound        = domain.NewError("memory: order not found", domain.ErrNotFound)
	ErrClientNotFound       = domain.NewError("memory: client not found", domain.ErrNotFound)
	ErrPetNotFound          = domain.NewError("memory: pet not found", domain.ErrNotFound)
	ErrMasterNotFound       = domain.NewError("memory: master not found", domain.ErrNotFound)
	ErrServiceNotFound      = domain.NewError("memory: service not found", domain.ErrNotFound)
	ErrTariffNotFound       = domain.NewError("memory: tariff not found", domain.ErrNotFound)
	ErrAgeGroupNotFound     = domain.NewError("memory: age group not found", domain.ErrNotFound)
	ErrBreedNotFound        = domain.NewError("memory: breed not found", domain.ErrNotFound)
	ErrExtraServiceNotFound = domain.NewError("memory: extra service not found", domain.ErrNotFound)

	// ErrSlotOccupied аналог exclusion constraint orders_no_overlap
	ErrSlotOccupied = domain.NewError("memory: slot occupied", domain.ErrConflict)
)
