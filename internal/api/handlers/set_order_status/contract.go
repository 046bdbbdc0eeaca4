package set_order_status

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

type SetOrderStatusUseCase interface {
	Execute(ctx context.Context, orderID int64, status string) (*domain.OrderView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
