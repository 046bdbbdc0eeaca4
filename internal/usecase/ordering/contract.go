package ordering

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/service/pricing"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// CatalogResolver интерфейс справочников
type CatalogResolver interface {
	ResolveMaster(ctx context.Context, id int64) (*domain.Master, error)
	ResolveService(ctx context.Context, id int64) (*domain.Service, error)
	ResolveTariff(ctx context.Context, serviceID int64, size domain.PetSize) (*domain.ServiceTariff, error)
	AgeFactor(ctx context.Context, ageGroupID int64) (int, error)
	ResolveExtras(ctx context.Context, ids []int64) ([]*domain.ExtraService, error)
}

// AvailabilityChecker интерфейс проверки занятости мастера
type AvailabilityChecker interface {
	FindConflict(
		ctx context.Context,
		masterID int64,
		date time.Time,
		start, end types.TimeString,
		excludeOrderID *int64,
	) (*domain.Order, error)
}

// PriceCalculator интерфейс расчета цены
type PriceCalculator interface {
	Calculate(
		tariff *domain.ServiceTariff,
		ageFactorPercent int,
		extras []*domain.ExtraService,
		manualPrice *int64,
	) (pricing.Quote, error)
}

// SlotLocker блокировка слота (мастер, дата) до конца транзакции
type SlotLocker interface {
	LockSlot(ctx context.Context, masterID int64, date time.Time) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// OperationRecorder учет исходов операций с заказами (pkg/metrics)
type OperationRecorder interface {
	RecordOrderOperation(operation, outcome string)
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// FixedTimeProvider всегда возвращает одно и то же время
type FixedTimeProvider struct {
	At time.Time
}

// Now возвращает зафиксированное время
func (p *FixedTimeProvider) Now() time.Time {
	return p.At
}

// NopRecorder ничего не записывает (метрики выключены)
type NopRecorder struct{}

func (NopRecorder) RecordOrderOperation(string, string) {}
