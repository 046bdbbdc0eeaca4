package get_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// UseCase use case для получения расписания
type UseCase struct {
	orderRepo OrderRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(orderRepo OrderRepository, logger Logger) *UseCase {
	return &UseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Execute возвращает заказы в любом статусе с датой в [DateFrom, DateTo],
// отсортированные по дате, времени начала и id
func (uc *UseCase) Execute(ctx context.Context, req *Request) ([]*domain.OrderView, error) {
	if req == nil || req.DateFrom.IsZero() || req.DateTo.IsZero() {
		uc.logger.Warn("GetSchedule: dateFrom and dateTo are required")
		return nil, fmt.Errorf("%w: dateFrom and dateTo are required", ErrInvalidInput)
	}
	if req.MasterID != nil && *req.MasterID <= 0 {
		uc.logger.Warn("GetSchedule: invalid master id=%d", *req.MasterID)
		return nil, fmt.Errorf("%w: masterId must be positive", ErrInvalidInput)
	}

	from := domain.TruncateDate(req.DateFrom)
	to := domain.TruncateDate(req.DateTo)
	if from.After(to) {
		uc.logger.Warn("GetSchedule: dateFrom=%s is after dateTo=%s",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange,
			from.Format(domain.DateFormat), to.Format(domain.DateFormat))
	}

	views, err := uc.orderRepo.ListViews(ctx, domain.ScheduleFilter{
		DateFrom: from,
		DateTo:   to,
		MasterID: req.MasterID,
	})
	if err != nil {
		uc.logger.Error("GetSchedule: failed to list orders: %v", err)
		return nil, fmt.Errorf("%w: list orders: %v", ErrInternal, err)
	}

	if views == nil {
		views = []*domain.OrderView{}
	}
	return views, nil
}
