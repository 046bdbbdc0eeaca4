package catalog

import (
	"errors"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

var (
	ErrMasterNotFound   = domain.NewError("catalog.repository: master not found", domain.ErrNotFound)
	ErrServiceNotFound  = domain.NewError("catalog.repository: service not found", domain.ErrNotFound)
	ErrTariffNotFound   = domain.NewError("catalog.repository: tariff not found", domain.ErrNotFound)
	ErrAgeGroupNotFound = domain.NewError("catalog.repository: age group not found", domain.ErrNotFound)
	ErrBreedNotFound    = domain.NewError("catalog.repository: breed not found", domain.ErrNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
