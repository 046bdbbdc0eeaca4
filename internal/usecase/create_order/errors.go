package create_order

import (
	"errors"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError("create_order: invalid input data", domain.ErrValidation)

	// ErrDuplicateOrder возвращается при повторной отправке того же заказа
	ErrDuplicateOrder = domain.NewError("create_order: order already exists", domain.ErrDuplicate)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_order: internal error")
)
