package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// Request свободные окна одного мастера на дату под услугу и размер питомца
type Request struct {
	MasterID  int64
	ServiceID int64
	PetSize   domain.PetSize
	Date      time.Time // только дата
}

// Response сетка свободных окон
type Response struct {
	Date            time.Time
	MasterID        int64
	ServiceID       int64
	PetSize         domain.PetSize
	DurationMinutes int
	BasePrice       int64 // цена тарифа без возрастного коэффициента и доп. услуг
	Slots           []Slot
}

// Slot окно, в которое можно записать без пересечений
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}
