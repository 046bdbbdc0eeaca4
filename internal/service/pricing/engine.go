package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// Quote разбивка цены заказа
type Quote struct {
	Base        int64 // цена тарифа
	AgeFactor   int   // возрастной коэффициент, %
	AfterAge    int64 // floor(Base * AgeFactor / 100)
	ExtrasTotal int64 // сумма доп. услуг
	Computed    int64 // AfterAge + ExtrasTotal
	Final       int64 // итоговая цена
	Overridden  bool  // итоговая цена задана вручную
}

// Engine расчет цены заказа
type Engine struct{}

// NewEngine создает новый калькулятор цены
func NewEngine() *Engine {
	return &Engine{}
}

// Calculate считает цену: тариф с возрастным коэффициентом (с отбрасыванием дробной части)
// плюс доп. услуги. Ненулевая ручная цена заменяет итог целиком.
// Повторяющиеся доп. услуги учитываются один раз.
func (e *Engine) Calculate(
	tariff *domain.ServiceTariff,
	ageFactorPercent int,
	extras []*domain.ExtraService,
	manualPrice *int64,
) (Quote, error) {
	if tariff == nil {
		return Quote{}, ErrTariffRequired
	}
	if ageFactorPercent <= 0 {
		return Quote{}, fmt.Errorf("%w: got %d", ErrInvalidAgeFactor, ageFactorPercent)
	}
	if manualPrice != nil && *manualPrice < 0 {
		return Quote{}, fmt.Errorf("%w: got %d", ErrNegativePrice, *manualPrice)
	}

	q := Quote{
		Base:      tariff.Price,
		AgeFactor: ageFactorPercent,
		AfterAge:  tariff.Price * int64(ageFactorPercent) / 100,
	}

	seen := make(map[int64]struct{}, len(extras))
	for _, extra := range extras {
		if extra == nil {
			continue
		}
		if _, ok := seen[extra.ID]; ok {
			continue
		}
		seen[extra.ID] = struct{}{}
		q.ExtrasTotal += extra.Price
	}

	q.Computed = q.AfterAge + q.ExtrasTotal
	q.Final = q.Computed

	if manualPrice != nil && *manualPrice != 0 {
		q.Final = *manualPrice
		q.Overridden = true
	}

	return q, nil
}

// ComputePrice возвращает только итоговую цену
func (e *Engine) ComputePrice(
	tariff *domain.ServiceTariff,
	ageFactorPercent int,
	extras []*domain.ExtraService,
	manualPrice *int64,
) (int64, error) {
	q, err := e.Calculate(tariff, ageFactorPercent, extras, manualPrice)
	if err != nil {
		return 0, err
	}
	return q.Final, nil
}
