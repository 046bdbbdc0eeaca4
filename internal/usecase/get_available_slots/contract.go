package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// CatalogResolver справочники, нужные для расчета сетки
type CatalogResolver interface {
	ResolveMaster(ctx context.Context, id int64) (*domain.Master, error)
	ResolveService(ctx context.Context, id int64) (*domain.Service, error)
	ResolveTariff(ctx context.Context, serviceID int64, size domain.PetSize) (*domain.ServiceTariff, error)
}

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	ListActiveByMasterAndDate(ctx context.Context, masterID int64, date time.Time) ([]*domain.Order, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
