package get_available_slots

import (
	"context"

	freeSlots "github.com/m04kA/SMC-GroomingService/internal/usecase/get_available_slots"
)

// FreeSlotsFinder свободные времена начала у выбранного мастера
type FreeSlotsFinder interface {
	Execute(ctx context.Context, req *freeSlots.Request) (*freeSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
