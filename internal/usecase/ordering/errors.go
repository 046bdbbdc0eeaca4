package ordering

import (
	"errors"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

var (
	// ErrInvalidTime некорректное время начала
	ErrInvalidTime = domain.NewError("ordering: invalid start time, expected HH:MM", domain.ErrValidation)

	// ErrInvalidInterval время начала не раньше времени окончания
	ErrInvalidInterval = domain.NewError("ordering: start time must be before end time", domain.ErrValidation)

	// ErrOutsideBusinessHours заказ выходит за рамки рабочего дня
	ErrOutsideBusinessHours = domain.NewError("ordering: order is outside business hours 09:00-20:00", domain.ErrValidation)

	// ErrInPast дата и время начала уже прошли
	ErrInPast = domain.NewError("ordering: order start is in the past", domain.ErrValidation)

	// ErrSlotOccupied интервал пересекается с неотмененным заказом мастера
	ErrSlotOccupied = domain.NewError("ordering: time slot occupied", domain.ErrConflict)

	// ErrSerialization ошибка сериализации транзакции (txmanager.ErrSerialization)
	ErrSerialization = errors.New("ordering: serialization failure")
)
