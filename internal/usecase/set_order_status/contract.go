package set_order_status

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error)
	GetViewByID(ctx context.Context, id int64) (*domain.OrderView, error)
}

// Planner интерфейс блокировки слота и проверки занятости
type Planner interface {
	LockSlots(ctx context.Context, keys ...ordering.SlotKey) error
	EnsureOrderAvailable(ctx context.Context, order *domain.Order) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// OperationRecorder учет исходов операций
type OperationRecorder interface {
	RecordOrderOperation(operation, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
