package get_schedule

import (
	"errors"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError("get_schedule: invalid input data", domain.ErrValidation)

	// ErrInvalidDateRange dateFrom позже dateTo
	ErrInvalidDateRange = domain.NewError("get_schedule: dateFrom is after dateTo", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_schedule: internal error")
)
