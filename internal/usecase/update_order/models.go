package update_order

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// Request новые параметры заказа. Клиент и питомец заказа не меняются.
type Request struct {
	MasterID        int64
	ServiceID       int64
	Date            time.Time
	StartTime       types.TimeString
	PetSize         *domain.PetSize // размер для выбора тарифа, по умолчанию размер питомца
	ExtraServiceIDs []int64
	Price           *int64
	Comment         *string
}
