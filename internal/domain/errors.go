package domain

import "errors"

// Категории ошибок ядра. Ошибки слоев ниже оборачивают одну или несколько из них,
// транспорт сопоставляет категорию с кодом ответа через errors.Is.
var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("time slot occupied")
	ErrDuplicate         = errors.New("duplicate order")
	ErrInvalidTransition = errors.New("invalid status transition")
)

var (
	// ErrUnknownStatus неизвестное значение статуса заказа
	ErrUnknownStatus = NewError("unknown status", ErrValidation)

	// ErrUnknownPetSize неизвестная категория размера питомца
	ErrUnknownPetSize = NewError("unknown pet size", ErrValidation)

	// ErrUnknownSpecies неизвестный вид животного
	ErrUnknownSpecies = NewError("unknown species", ErrValidation)
)

// kindError ошибка с собственным текстом, принадлежащая одной или нескольким категориям
type kindError struct {
	msg   string
	kinds []error
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() []error {
	return e.kinds
}

// NewError создает ошибку с текстом msg, для которой errors.Is возвращает true
// по каждой из переданных категорий
func NewError(msg string, kinds ...error) error {
	return &kindError{msg: msg, kinds: kinds}
}
