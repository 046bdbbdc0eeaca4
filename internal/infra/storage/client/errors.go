package client

import (
	"errors"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = domain.NewError("client.repository: client not found", domain.ErrNotFound)

	// ErrPetNotFound возвращается, когда питомец не найден
	ErrPetNotFound = domain.NewError("client.repository: pet not found", domain.ErrNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("client.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("client.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("client.repository: failed to scan row")
)
