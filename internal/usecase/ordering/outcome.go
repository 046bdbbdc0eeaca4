package ordering

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/txmanager"
)

// Исходы операций для метрики order_operations_total
const (
	OutcomeSuccess           = "success"
	OutcomeValidation        = "validation"
	OutcomeNotFound          = "not_found"
	OutcomeConflict          = "conflict"
	OutcomeDuplicate         = "duplicate"
	OutcomeInvalidTransition = "invalid_transition"
	OutcomeError             = "error"
)

// Outcome метка исхода операции по категории ошибки.
// Ошибка сразу двух видов (мастер не найден) считается ошибкой валидации.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrDuplicate):
		return OutcomeDuplicate
	case errors.Is(err, domain.ErrConflict):
		return OutcomeConflict
	case errors.Is(err, domain.ErrInvalidTransition):
		return OutcomeInvalidTransition
	case errors.Is(err, domain.ErrValidation):
		return OutcomeValidation
	case errors.Is(err, domain.ErrNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}

// IsBusinessError true для ошибок, которые нужно вернуть вызывающему как есть
func IsBusinessError(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrDuplicate) ||
		errors.Is(err, domain.ErrInvalidTransition)
}

// TxConflict превращает конфликт сериализации в ErrSlotOccupied: две транзакции боролись за один слот
func TxConflict(err error) error {
	if err == nil || errors.Is(err, domain.ErrConflict) {
		return err
	}
	if txmanager.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %w: %v", ErrSlotOccupied, ErrSerialization, err)
	}
	return err
}
