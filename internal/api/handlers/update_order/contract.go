package update_order

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	updateOrder "github.com/m04kA/SMC-GroomingService/internal/usecase/update_order"
)

type UpdateOrderUseCase interface {
	Execute(ctx context.Context, orderID int64, req *updateOrder.Request) (*domain.OrderView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
