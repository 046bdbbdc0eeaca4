package update_order

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetViewByID(ctx context.Context, id int64) (*domain.OrderView, error)
}

// PetReader интерфейс чтения питомца заказа
type PetReader interface {
	GetPet(ctx context.Context, id int64) (*domain.Pet, error)
}

// Planner интерфейс общих шагов оформления заказа
type Planner interface {
	LockSlots(ctx context.Context, keys ...ordering.SlotKey) error
	ResolveSlot(ctx context.Context, req ordering.SlotRequest) (*ordering.Slot, error)
	EnsureAvailable(ctx context.Context, slot *ordering.Slot, excludeOrderID *int64) error
	CalculatePrice(ctx context.Context, req ordering.PriceRequest) (*ordering.Price, error)
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
