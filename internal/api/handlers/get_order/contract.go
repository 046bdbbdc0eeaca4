package get_order

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// OrderReader чтение представления заказа
type OrderReader interface {
	GetViewByID(ctx context.Context, id int64) (*domain.OrderView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
