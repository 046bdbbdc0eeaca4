package search_clients

import (
	"context"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// ClientDirectory поиск клиентов
type ClientDirectory interface {
	SearchByPhone(ctx context.Context, phone string) (*domain.ClientWithPets, error)
	SearchByName(ctx context.Context, namePart string) ([]*domain.ClientWithPets, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
