package pricing

import "github.com/m04kA/SMC-GroomingService/internal/domain"

var (
	// ErrNegativePrice возвращается, когда ручная цена отрицательна
	ErrNegativePrice = domain.NewError("pricing: manual price must not be negative", domain.ErrValidation)

	// ErrInvalidAgeFactor возвращается при неположительном возрастном коэффициенте
	ErrInvalidAgeFactor = domain.NewError("pricing: age factor must be positive", domain.ErrValidation)

	// ErrTariffRequired возвращается, когда тариф не передан
	ErrTariffRequired = domain.NewError("pricing: tariff is required", domain.ErrValidation)
)
