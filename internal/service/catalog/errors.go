package catalog

import (
	"errors"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

var (
	// ErrMasterNotFound мастер не существует
	ErrMasterNotFound = domain.NewError("catalog: master not found", domain.ErrNotFound, domain.ErrValidation)

	// ErrMasterInactive мастер деактивирован
	ErrMasterInactive = domain.NewError("catalog: master is not active", domain.ErrValidation)

	// ErrServiceNotFound услуга не существует
	ErrServiceNotFound = domain.NewError("catalog: service not found", domain.ErrNotFound, domain.ErrValidation)

	// ErrTariffNotFound нет тарифа для пары (услуга, размер)
	ErrTariffNotFound = domain.NewError("catalog: no tariff for this service/size combination", domain.ErrValidation)

	// ErrAgeGroupNotFound возрастная группа не существует
	ErrAgeGroupNotFound = domain.NewError("catalog: age group not found", domain.ErrNotFound, domain.ErrValidation)

	// ErrBreedNotFound порода не существует
	ErrBreedNotFound = domain.NewError("catalog: breed not found", domain.ErrNotFound, domain.ErrValidation)

	// ErrBreedSpeciesMismatch порода не относится к указанному виду
	ErrBreedSpeciesMismatch = domain.NewError("catalog: breed does not belong to species", domain.ErrValidation)

	// ErrPetSizeRequired размер не указан, а у породы нет размера по умолчанию
	ErrPetSizeRequired = domain.NewError("catalog: pet size is required for this breed", domain.ErrValidation)

	// ErrRepository ошибка чтения справочников
	ErrRepository = errors.New("catalog: repository error")
)
