package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering"
)

// UseCase use case для получения свободных окон мастера
type UseCase struct {
	catalog      CatalogResolver
	orderRepo    OrderRepository
	stepMinutes  int
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// stepMinutes шаг сетки, location часовой пояс салона.
func NewUseCase(
	catalog CatalogResolver,
	orderRepo OrderRepository,
	stepMinutes int,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		catalog:      catalog,
		orderRepo:    orderRepo,
		stepMinutes:  stepMinutes,
		location:     location,
		timeProvider: &ordering.RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения свободных окон
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: master=%d, service=%d, size=%s, date=%s",
		req.MasterID, req.ServiceID, req.PetSize, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Мастер должен существовать и работать
	master, err := uc.catalog.ResolveMaster(ctx, req.MasterID)
	if err != nil {
		return nil, uc.fail("resolve master", err)
	}

	// 3. Услуга и тариф под размер питомца задают длительность
	if _, err := uc.catalog.ResolveService(ctx, req.ServiceID); err != nil {
		return nil, uc.fail("resolve service", err)
	}

	tariff, err := uc.catalog.ResolveTariff(ctx, req.ServiceID, req.PetSize)
	if err != nil {
		return nil, uc.fail("resolve tariff", err)
	}

	date := domain.TruncateDate(req.Date)
	resp := &Response{
		Date:            date,
		MasterID:        master.ID,
		ServiceID:       req.ServiceID,
		PetSize:         req.PetSize,
		DurationMinutes: tariff.DurationMinutes,
		BasePrice:       tariff.Price,
		Slots:           []Slot{},
	}

	// 4. Прошедший день - пустая сетка
	now := uc.timeProvider.Now().In(uc.location)
	if isDayPast(date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", date.Format(domain.DateFormat))
		return resp, nil
	}

	// 5. Генерируем сетку рабочего дня
	starts, err := generateStartTimes(uc.stepMinutes, tariff.DurationMinutes)
	if err != nil {
		return nil, uc.fail("generate start times", err)
	}

	// 6. Активные заказы мастера на дату
	orders, err := uc.orderRepo.ListActiveByMasterAndDate(ctx, master.ID, date)
	if err != nil {
		return nil, uc.fail("list orders", err)
	}

	// 7. Отсекаем прошедшие и занятые окна
	resp.Slots, err = filterFree(starts, tariff.DurationMinutes, date, now, uc.location, orders)
	if err != nil {
		return nil, uc.fail("filter slots", err)
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots free for master=%d, date=%s",
		len(resp.Slots), len(starts), master.ID, date.Format(domain.DateFormat))

	return resp, nil
}

func (uc *UseCase) fail(step string, err error) error {
	if ordering.IsBusinessError(err) {
		uc.logger.Warn("GetAvailableSlots: %s: %v", step, err)
		return err
	}
	uc.logger.Error("GetAvailableSlots: %s: %v", step, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, step, err)
}
