package ordering

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/service/pricing"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

var (
	businessDayStart = types.MustTimeString(domain.BusinessDayStart)
	businessDayEnd   = types.MustTimeString(domain.BusinessDayEnd)
)

// SlotRequest что и когда нужно забронировать
type SlotRequest struct {
	MasterID  int64
	ServiceID int64
	PetSize   domain.PetSize
	Date      time.Time
	StartTime types.TimeString
}

// Slot проверенный слот: мастер активен, тариф найден, время в пределах рабочего дня
type Slot struct {
	Master    *domain.Master
	Service   *domain.Service
	Tariff    *domain.ServiceTariff
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// PriceRequest исходные данные для расчета цены
type PriceRequest struct {
	Tariff          *domain.ServiceTariff
	AgeGroupID      int64
	ExtraServiceIDs []int64
	ManualPrice     *int64
}

// Price рассчитанная цена вместе с найденными доп. услугами
type Price struct {
	Quote  pricing.Quote
	Extras []*domain.ExtraService
}

// ExtraIDs id найденных доп. услуг, которые нужно связать с заказом
func (p *Price) ExtraIDs() []int64 {
	ids := make([]int64, 0, len(p.Extras))
	for _, extra := range p.Extras {
		ids = append(ids, extra.ID)
	}
	return ids
}

// SlotKey ключ блокировки слота
type SlotKey struct {
	MasterID int64
	Date     time.Time
}

// Planner общие шаги создания и изменения заказа
type Planner struct {
	catalog      CatalogResolver
	checker      AvailabilityChecker
	pricing      PriceCalculator
	locker       SlotLocker
	timeProvider TimeProvider
	location     *time.Location
}

// NewPlanner создает планировщик. location - часовой пояс салона, в нем сравнивается "сейчас".
func NewPlanner(
	catalog CatalogResolver,
	checker AvailabilityChecker,
	pricing PriceCalculator,
	locker SlotLocker,
	location *time.Location,
) *Planner {
	if location == nil {
		location = time.UTC
	}
	return &Planner{
		catalog:      catalog,
		checker:      checker,
		pricing:      pricing,
		locker:       locker,
		timeProvider: &RealTimeProvider{},
		location:     location,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (p *Planner) WithTimeProvider(tp TimeProvider) *Planner {
	p.timeProvider = tp
	return p
}

// LockSlots блокирует слоты в стабильном порядке (мастер, дата), повторы пропускаются
func (p *Planner) LockSlots(ctx context.Context, keys ...SlotKey) error {
	unique := make([]SlotKey, 0, len(keys))
	for _, key := range keys {
		key.Date = domain.TruncateDate(key.Date)
		duplicate := false
		for _, u := range unique {
			if u.MasterID == key.MasterID && u.Date.Equal(key.Date) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, key)
		}
	}

	sort.Slice(unique, func(i, j int) bool {
		if unique[i].MasterID != unique[j].MasterID {
			return unique[i].MasterID < unique[j].MasterID
		}
		return unique[i].Date.Before(unique[j].Date)
	})

	for _, key := range unique {
		if err := p.locker.LockSlot(ctx, key.MasterID, key.Date); err != nil {
			return fmt.Errorf("lock slot master=%d date=%s: %w", key.MasterID, key.Date.Format(domain.DateFormat), err)
		}
	}
	return nil
}

// ResolveSlot находит мастера и тариф, вычисляет время окончания и проверяет окно записи
func (p *Planner) ResolveSlot(ctx context.Context, req SlotRequest) (*Slot, error) {
	master, err := p.catalog.ResolveMaster(ctx, req.MasterID)
	if err != nil {
		return nil, err
	}

	service, err := p.catalog.ResolveService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	tariff, err := p.catalog.ResolveTariff(ctx, req.ServiceID, req.PetSize)
	if err != nil {
		return nil, err
	}

	endTime, err := EndTime(req.StartTime, tariff.DurationMinutes)
	if err != nil {
		return nil, err
	}

	if err := p.ValidateWindow(req.Date, req.StartTime, endTime); err != nil {
		return nil, err
	}

	return &Slot{
		Master:    master,
		Service:   service,
		Tariff:    tariff,
		Date:      domain.TruncateDate(req.Date),
		StartTime: req.StartTime,
		EndTime:   endTime,
	}, nil
}

// ValidateWindow проверяет интервал: start < end, в пределах [09:00, 20:00], начало не в прошлом
func (p *Planner) ValidateWindow(date time.Time, start, end types.TimeString) error {
	if err := CheckBusinessHours(start, end); err != nil {
		return err
	}

	startAt, err := start.At(date, p.location)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	now := p.timeProvider.Now().In(p.location)
	if startAt.Before(now) {
		return fmt.Errorf("%w: %s %s is before %s", ErrInPast,
			date.Format(domain.DateFormat), start, now.Format(time.RFC3339))
	}

	return nil
}

// EnsureAvailable возвращает ErrSlotOccupied, если слот пересекается с другим неотмененным заказом
func (p *Planner) EnsureAvailable(ctx context.Context, slot *Slot, excludeOrderID *int64) error {
	conflict, err := p.checker.FindConflict(ctx, slot.Master.ID, slot.Date, slot.StartTime, slot.EndTime, excludeOrderID)
	if err != nil {
		return err
	}
	if conflict != nil {
		return fmt.Errorf("%w: master=%d date=%s [%s, %s) overlaps order id=%d [%s, %s)",
			ErrSlotOccupied, slot.Master.ID, slot.Date.Format(domain.DateFormat), slot.StartTime, slot.EndTime,
			conflict.ID, conflict.StartTime, conflict.EndTime)
	}
	return nil
}

// EnsureOrderAvailable проверка занятости для уже сохраненного заказа (возврат из cancelled)
func (p *Planner) EnsureOrderAvailable(ctx context.Context, order *domain.Order) error {
	conflict, err := p.checker.FindConflict(ctx, order.MasterID, order.Date, order.StartTime, order.EndTime, &order.ID)
	if err != nil {
		return err
	}
	if conflict != nil {
		return fmt.Errorf("%w: order id=%d overlaps order id=%d [%s, %s)",
			ErrSlotOccupied, order.ID, conflict.ID, conflict.StartTime, conflict.EndTime)
	}
	return nil
}

// CalculatePrice считает цену с возрастным коэффициентом питомца и найденными доп. услугами
func (p *Planner) CalculatePrice(ctx context.Context, req PriceRequest) (*Price, error) {
	factor, err := p.catalog.AgeFactor(ctx, req.AgeGroupID)
	if err != nil {
		return nil, err
	}

	extras, err := p.catalog.ResolveExtras(ctx, req.ExtraServiceIDs)
	if err != nil {
		return nil, err
	}

	quote, err := p.pricing.Calculate(req.Tariff, factor, extras, req.ManualPrice)
	if err != nil {
		return nil, err
	}

	return &Price{Quote: quote, Extras: extras}, nil
}

// EndTime время окончания услуги. Выход за пределы суток - ошибка рабочего окна.
func EndTime(start types.TimeString, durationMinutes int) (types.TimeString, error) {
	if err := start.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	if durationMinutes <= 0 {
		return "", fmt.Errorf("%w: duration %d min", ErrInvalidInterval, durationMinutes)
	}

	end, err := start.AddMinutes(durationMinutes)
	if errors.Is(err, types.ErrTimeOverflow) {
		return "", fmt.Errorf("%w: %s + %d min", ErrOutsideBusinessHours, start, durationMinutes)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	return end, nil
}

// CheckBusinessHours проверяет start < end и попадание в рабочий день
func CheckBusinessHours(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval, start, end)
	}
	if start.IsBefore(businessDayStart) || end.IsAfter(businessDayEnd) {
		return fmt.Errorf("%w: [%s, %s)", ErrOutsideBusinessHours, start, end)
	}
	return nil
}
