package clients

import (
	"errors"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

var (
	// ErrClientNotFound клиент не найден
	ErrClientNotFound = domain.NewError("clients: client not found", domain.ErrNotFound)

	// ErrPetNotFound питомец не найден
	ErrPetNotFound = domain.NewError("clients: pet not found", domain.ErrNotFound)

	// ErrInvalidIdentity не указано имя клиента
	ErrInvalidIdentity = domain.NewError("clients: full name is required", domain.ErrValidation)

	// ErrInvalidPet некорректные данные питомца
	ErrInvalidPet = domain.NewError("clients: invalid pet data", domain.ErrValidation)

	// ErrInvalidQuery пустой поисковый запрос
	ErrInvalidQuery = domain.NewError("clients: search query is empty", domain.ErrValidation)

	// ErrRepository ошибка хранилища клиентов
	ErrRepository = errors.New("clients: repository error")
)
