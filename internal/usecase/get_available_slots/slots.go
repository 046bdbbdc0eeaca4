package get_available_slots

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/service/availability"
	"github.com/m04kA/SMC-GroomingService/pkg/types"
)

var (
	dayOpen  = types.MustTimeString(domain.BusinessDayStart)
	dayClose = types.MustTimeString(domain.BusinessDayEnd)
)

// generateStartTimes генерирует начала окон с шагом stepMinutes от открытия салона.
// Окно попадает в сетку, только если услуга длительностью durationMinutes заканчивается не позже закрытия.
func generateStartTimes(stepMinutes, durationMinutes int) ([]types.TimeString, error) {
	starts := make([]types.TimeString, 0)

	for current := dayOpen; current.IsBefore(dayClose); {
		end, err := current.AddMinutes(durationMinutes)
		if errors.Is(err, types.ErrTimeOverflow) {
			break
		}
		if err != nil {
			return nil, err
		}
		if end.IsAfter(dayClose) {
			break
		}

		starts = append(starts, current)

		current, err = current.AddMinutes(stepMinutes)
		if err != nil {
			return nil, err
		}
	}

	return starts, nil
}

// filterFree оставляет окна, которые начинаются не раньше now и не пересекаются
// с активными заказами мастера. Касание границ пересечением не считается.
func filterFree(
	starts []types.TimeString,
	durationMinutes int,
	date time.Time,
	now time.Time,
	location *time.Location,
	orders []*domain.Order,
) ([]Slot, error) {
	result := make([]Slot, 0, len(starts))

	for _, start := range starts {
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}

		startAt, err := start.At(date, location)
		if err != nil {
			return nil, err
		}
		if startAt.Before(now) {
			continue
		}

		if availability.FirstOverlap(orders, start, end, nil) != nil {
			continue
		}

		result = append(result, Slot{StartTime: start, EndTime: end})
	}

	return result, nil
}

// isDayPast проверяет, что календарный день date уже закончился в часовом поясе now
func isDayPast(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return domain.TruncateDate(date).Before(today)
}
