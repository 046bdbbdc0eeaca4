package get_schedule

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// OrderRepository интерфейс чтения расписания
type OrderRepository interface {
	ListViews(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.OrderView, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
