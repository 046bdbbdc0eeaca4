package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// OrderRepository источник заказов мастера на дату
type OrderRepository interface {
	// ListActiveByMasterAndDate возвращает неотмененные заказы мастера на дату
	ListActiveByMasterAndDate(ctx context.Context, masterID int64, date time.Time) ([]*domain.Order, error)
}
