package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

var (
	// ErrInvalidInterval возвращается, когда начало интервала не раньше конца
	ErrInvalidInterval = domain.NewError("availability: start time must be before end time", domain.ErrValidation)

	// ErrLoadOrders возвращается при ошибке чтения заказов
	ErrLoadOrders = errors.New("availability: failed to load orders")
)

// Checker проверяет занятость мастера
type Checker struct {
	orders OrderRepository
}

// NewChecker создает новый экземпляр проверки занятости
func NewChecker(orders OrderRepository) *Checker {
	return &Checker{orders: orders}
}

// HasConflict проверяет, пересекается ли [start, end) с неотмененными заказами мастера на дату.
// Заказ excludeOrderID (если задан) не учитывается.
func (c *Checker) HasConflict(
	ctx context.Context,
	masterID int64,
	date time.Time,
	start, end types.TimeString,
	excludeOrderID *int64,
) (bool, error) {
	conflict, err := c.FindConflict(ctx, masterID, date, start, end, excludeOrderID)
	if err != nil {
		return false, err
	}
	return conflict != nil, nil
}

// FindConflict как HasConflict, но возвращает первый пересекающийся заказ или nil
func (c *Checker) FindConflict(
	ctx context.Context,
	masterID int64,
	date time.Time,
	start, end types.TimeString,
	excludeOrderID *int64,
) (*domain.Order, error) {
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval, start, end)
	}

	orders, err := c.orders.ListActiveByMasterAndDate(ctx, masterID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadOrders, err)
	}

	return FirstOverlap(orders, start, end, excludeOrderID), nil
}

// FirstOverlap возвращает первый неотмененный заказ, пересекающийся с [start, end)
func FirstOverlap(orders []*domain.Order, start, end types.TimeString, excludeOrderID *int64) *domain.Order {
	for _, order := range orders {
		if !order.IsActive() {
			continue
		}
		if excludeOrderID != nil && order.ID == *excludeOrderID {
			continue
		}
		if order.Overlaps(start, end) {
			return order
		}
	}
	return nil
}
