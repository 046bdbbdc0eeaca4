package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

// OrderStatus статус заказа
type OrderStatus string

const (
	OrderStatusPlanned   OrderStatus = "planned"
	OrderStatusDone      OrderStatus = "done"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus разбирает значение статуса, пришедшее извне.
// Допустимы только значения в нижнем регистре без пробелов.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

// IsValid проверяет, что статус входит в закрытый набор
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPlanned, OrderStatusDone, OrderStatusCancelled:
		return true
	}
	return false
}

// OccupiesSlot возвращает true, если заказ в этом статусе занимает время мастера
func (s OrderStatus) OccupiesSlot() bool {
	return s != OrderStatusCancelled
}

// CanTransitionTo проверяет допустимость перехода s -> target.
// Запрещен только переход done -> cancelled, переход в тот же статус допустим.
func (s OrderStatus) CanTransitionTo(target OrderStatus) error {
	if !target.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, string(target))
	}
	if s == OrderStatusDone && target == OrderStatusCancelled {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}
	return nil
}

// Order заказ на грумминг
type Order struct {
	ID        int64
	ClientID  int64
	PetID     int64
	MasterID  int64
	ServiceID int64
	Price     int64

	Date      time.Time // только дата, время 00:00 UTC
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    OrderStatus
	Comment   *string

	ExtraServiceIDs []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если заказ занимает слот мастера
func (o *Order) IsActive() bool {
	return o.Status.OccupiesSlot()
}

// Overlaps проверяет пересечение полуинтервалов [StartTime, EndTime) и [start, end).
// Касание границ пересечением не считается.
func (o *Order) Overlaps(start, end types.TimeString) bool {
	return o.StartTime.IsBefore(end) && start.IsBefore(o.EndTime)
}

// Signature ключ для поиска повторной отправки того же заказа
func (o *Order) Signature() OrderSignature {
	return OrderSignature{
		ClientID:  o.ClientID,
		PetID:     o.PetID,
		MasterID:  o.MasterID,
		ServiceID: o.ServiceID,
		Date:      o.Date,
		StartTime: o.StartTime,
		EndTime:   o.EndTime,
	}
}

// OrderSignature набор полей, совпадение которых означает повторную отправку заказа
type OrderSignature struct {
	ClientID  int64
	PetID     int64
	MasterID  int64
	ServiceID int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// OrderView денормализованное представление заказа для расписания
type OrderView struct {
	ID        int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Price     int64
	Status    OrderStatus

	ClientID    int64
	ClientName  string
	PetID       int64
	PetName     string
	ServiceID   int64
	ServiceName string
	MasterID    int64
	MasterName  string

	Comment         *string
	ExtraServiceIDs []int64
}

// ScheduleFilter фильтр выборки расписания
type ScheduleFilter struct {
	DateFrom time.Time // включительно
	DateTo   time.Time // включительно
	MasterID *int64    // если nil - все мастера
}

// TruncateDate отбрасывает время суток, оставляя календарную дату в UTC
func TruncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizeComment обрезает пробелы, пустой комментарий превращает в nil
func NormalizeComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*comment)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Equal сравнивает сигнатуры, даты сравниваются как календарные дни
func (s OrderSignature) Equal(other OrderSignature) bool {
	return s.ClientID == other.ClientID &&
		s.PetID == other.PetID &&
		s.MasterID == other.MasterID &&
		s.ServiceID == other.ServiceID &&
		TruncateDate(s.Date).Equal(TruncateDate(other.Date)) &&
		s.StartTime == other.StartTime &&
		s.EndTime == other.EndTime
}
