package order

import (
	"errors"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

var (
	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = domain.NewError("order.repository: order not found", domain.ErrNotFound)

	// ErrSlotOccupied возвращается при нарушении exclusion constraint orders_no_overlap
	// или конфликте сериализации
	ErrSlotOccupied = domain.NewError("order.repository: time slot occupied", domain.ErrConflict)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("order.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("order.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("order.repository: failed to scan row")
)
