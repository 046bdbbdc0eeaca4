package update_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering"
)

const operationName = "update"

// UseCase use case для изменения заказа
type UseCase struct {
	orderRepo OrderRepository
	pets      PetReader
	planner   Planner
	txManager TransactionManager
	metrics   OperationRecorder
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	pets PetReader,
	planner Planner,
	txManager TransactionManager,
	metrics OperationRecorder,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = ordering.NopRecorder{}
	}
	return &UseCase{
		orderRepo: orderRepo,
		pets:      pets,
		planner:   planner,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute перезаписывает мастера, услугу, дату, время, цену, комментарий и доп. услуги заказа.
// Статус, клиент и питомец не меняются. Проверки дублей нет.
func (uc *UseCase) Execute(ctx context.Context, orderID int64, req *Request) (result *domain.OrderView, err error) {
	defer func() {
		uc.metrics.RecordOrderOperation(operationName, ordering.Outcome(err))
	}()

	// 1. Валидация входных данных
	if err := validateRequest(orderID, req); err != nil {
		uc.logger.Warn("UpdateOrder: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("UpdateOrder: order=%d, master=%d, service=%d, date=%s, time=%s",
		orderID, req.MasterID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем заказ
		order, err := uc.orderRepo.GetByID(txCtx, orderID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return uc.fail("get order", fmt.Errorf("%w: id=%d", ErrOrderNotFound, orderID))
			}
			return uc.fail("get order", err)
		}

		// 3. Блокируем старый и новый слоты в стабильном порядке
		if err := uc.planner.LockSlots(txCtx,
			ordering.SlotKey{MasterID: order.MasterID, Date: order.Date},
			ordering.SlotKey{MasterID: req.MasterID, Date: req.Date},
		); err != nil {
			return uc.fail("lock slots", err)
		}

		// 4. Размер для тарифа: из запроса, иначе сохраненный размер питомца
		pet, err := uc.pets.GetPet(txCtx, order.PetID)
		if err != nil {
			return uc.fail("get pet", err)
		}
		size := pet.Size
		if req.PetSize != nil {
			size = *req.PetSize
		}

		// 5. Мастер, тариф, время окончания и окно записи
		slot, err := uc.planner.ResolveSlot(txCtx, ordering.SlotRequest{
			MasterID:  req.MasterID,
			ServiceID: req.ServiceID,
			PetSize:   size,
			Date:      req.Date,
			StartTime: req.StartTime,
		})
		if err != nil {
			return uc.fail("resolve slot", err)
		}

		// 6. Отмененный заказ интервал не занимает, проверка будет при возврате из cancelled
		if order.IsActive() {
			if err := uc.planner.EnsureAvailable(txCtx, slot, &order.ID); err != nil {
				return uc.fail("check availability", err)
			}
		}

		// 7. Пересчитываем цену
		price, err := uc.planner.CalculatePrice(txCtx, ordering.PriceRequest{
			Tariff:          slot.Tariff,
			AgeGroupID:      pet.AgeGroupID,
			ExtraServiceIDs: req.ExtraServiceIDs,
			ManualPrice:     req.Price,
		})
		if err != nil {
			return uc.fail("calculate price", err)
		}

		// 8. Перезаписываем заказ вместе со связями доп. услуг
		order.MasterID = slot.Master.ID
		order.ServiceID = slot.Service.ID
		order.Date = slot.Date
		order.StartTime = slot.StartTime
		order.EndTime = slot.EndTime
		order.Price = price.Quote.Final
		order.Comment = domain.NormalizeComment(req.Comment)
		order.ExtraServiceIDs = price.ExtraIDs()

		if _, err := uc.orderRepo.Update(txCtx, order); err != nil {
			return uc.fail("update order", err)
		}

		result, err = uc.orderRepo.GetViewByID(txCtx, order.ID)
		if err != nil {
			return uc.fail("get order view", err)
		}
		return nil
	})
	if err != nil {
		return nil, uc.finish(err)
	}

	uc.logger.Info("UpdateOrder: order id=%d now %s %s-%s, master=%d, price=%d",
		result.ID, result.Date.Format(domain.DateFormat), result.StartTime, result.EndTime, result.MasterID, result.Price)
	return result, nil
}

func (uc *UseCase) fail(step string, err error) error {
	err = ordering.TxConflict(err)
	if ordering.IsBusinessError(err) {
		uc.logger.Warn("UpdateOrder: %s: %v", step, err)
		return err
	}
	uc.logger.Error("UpdateOrder: %s: %v", step, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, step, err)
}

func (uc *UseCase) finish(err error) error {
	if errors.Is(err, ErrInternal) || ordering.IsBusinessError(err) {
		return err
	}
	err = ordering.TxConflict(err)
	if ordering.IsBusinessError(err) {
		uc.logger.Warn("UpdateOrder: transaction: %v", err)
		return err
	}
	uc.logger.Error("UpdateOrder: transaction: %v", err)
	return fmt.Errorf("%w: transaction: %v", ErrInternal, err)
}
