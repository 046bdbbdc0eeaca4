package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/service/catalog"
	"github.com/m04kA/SMC-GroomingService/internal/service/clients"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering"
)

// StatusForError код ответа по категории ошибки.
// Ошибка сразу двух категорий (мастер не найден) считается ошибкой валидации.
func StatusForError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage текст ответа для конкретной ошибки
type ErrorMessage struct {
	Err     error
	Message string
}

// OrderErrorMessages тексты ошибок оформления заказа, общие для всех ручек заказов
var OrderErrorMessages = []ErrorMessage{
	{ordering.ErrSlotOccupied, "выбранное время у мастера занято"},
	{ordering.ErrOutsideBusinessHours, "заказ выходит за рамки рабочего дня 09:00-20:00"},
	{ordering.ErrInPast, "нельзя записать на прошедшее время"},
	{ordering.ErrInvalidInterval, "время начала должно быть раньше времени окончания"},
	{ordering.ErrInvalidTime, "некорректный формат времени, ожидается HH:MM"},
	{catalog.ErrMasterNotFound, "мастер не найден"},
	{catalog.ErrMasterInactive, "мастер не работает"},
	{catalog.ErrServiceNotFound, "услуга не найдена"},
	{catalog.ErrTariffNotFound, "нет тарифа для этой услуги и размера питомца"},
	{catalog.ErrAgeGroupNotFound, "возрастная группа не найдена"},
	{catalog.ErrBreedNotFound, "порода не найдена"},
	{catalog.ErrBreedSpeciesMismatch, "порода не соответствует виду животного"},
	{catalog.ErrPetSizeRequired, "для этой породы нужно указать размер питомца"},
	{clients.ErrInvalidIdentity, "не указано ФИО клиента"},
	{clients.ErrInvalidPet, "некорректные данные питомца"},
	{domain.ErrUnknownStatus, "неизвестный статус заказа"},
	{domain.ErrUnknownPetSize, "неизвестный размер питомца"},
	{domain.ErrUnknownSpecies, "неизвестный вид животного"},
	{domain.ErrInvalidTransition, "выполненный заказ нельзя отменить"},
}

// MessageFor текст первой совпавшей ошибки из списков, иначе fallback
func MessageFor(err error, fallback string, lists ...[]ErrorMessage) string {
	for _, list := range lists {
		for _, m := range list {
			if errors.Is(err, m.Err) {
				return m.Message
			}
		}
	}
	return fallback
}
