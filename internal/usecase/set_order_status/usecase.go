package set_order_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering"
)

const operationName = "set_status"

// UseCase use case для смены статуса заказа
type UseCase struct {
	orderRepo OrderRepository
	planner   Planner
	txManager TransactionManager
	metrics   OperationRecorder
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
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
		planner:   planner,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute переводит заказ в новый статус.
// Повторная установка того же статуса ничего не меняет, done -> cancelled запрещен.
// При выходе из cancelled интервал снова занимает слот мастера и проверяется на пересечения.
func (uc *UseCase) Execute(ctx context.Context, orderID int64, status string) (result *domain.OrderView, err error) {
	defer func() {
		uc.metrics.RecordOrderOperation(operationName, ordering.Outcome(err))
	}()

	uc.logger.Info("SetOrderStatus: order=%d, status=%q", orderID, status)

	// 1. Валидация входных данных
	if orderID <= 0 {
		uc.logger.Warn("SetOrderStatus: invalid order id=%d", orderID)
		return nil, fmt.Errorf("%w: orderId must be positive", ErrInvalidInput)
	}
	target, err := domain.ParseOrderStatus(status)
	if err != nil {
		uc.logger.Warn("SetOrderStatus: %v", err)
		return nil, err
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем заказ
		order, err := uc.orderRepo.GetByID(txCtx, orderID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return uc.fail("get order", fmt.Errorf("%w: id=%d", ErrOrderNotFound, orderID))
			}
			return uc.fail("get order", err)
		}

		// 3. Проверяем допустимость перехода
		if err := order.Status.CanTransitionTo(target); err != nil {
			return uc.fail("check transition", fmt.Errorf("%w: order id=%d", err, order.ID))
		}

		// 4. Тот же статус - ничего не делаем
		if order.Status == target {
			uc.logger.Info("SetOrderStatus: order id=%d already %s", order.ID, target)
			result, err = uc.orderRepo.GetViewByID(txCtx, order.ID)
			if err != nil {
				return uc.fail("get order view", err)
			}
			return nil
		}

		// 5. Заказ снова занимает слот - проверяем, что его никто не занял
		if !order.Status.OccupiesSlot() && target.OccupiesSlot() {
			if err := uc.planner.LockSlots(txCtx, ordering.SlotKey{MasterID: order.MasterID, Date: order.Date}); err != nil {
				return uc.fail("lock slot", err)
			}
			if err := uc.planner.EnsureOrderAvailable(txCtx, order); err != nil {
				return uc.fail("check availability", err)
			}
		}

		// 6. Сохраняем статус
		if _, err := uc.orderRepo.UpdateStatus(txCtx, order.ID, target); err != nil {
			return uc.fail("update status", err)
		}

		result, err = uc.orderRepo.GetViewByID(txCtx, order.ID)
		if err != nil {
			return uc.fail("get order view", err)
		}

		uc.logger.Info("SetOrderStatus: order id=%d %s -> %s", order.ID, order.Status, target)
		return nil
	})
	if err != nil {
		return nil, uc.finish(err)
	}

	return result, nil
}

func (uc *UseCase) fail(step string, err error) error {
	err = ordering.TxConflict(err)
	if ordering.IsBusinessError(err) {
		uc.logger.Warn("SetOrderStatus: %s: %v", step, err)
		return err
	}
	uc.logger.Error("SetOrderStatus: %s: %v", step, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, step, err)
}

func (uc *UseCase) finish(err error) error {
	if errors.Is(err, ErrInternal) || ordering.IsBusinessError(err) {
		return err
	}
	err = ordering.TxConflict(err)
	if ordering.IsBusinessError(err) {
		uc.logger.Warn("SetOrderStatus: transaction: %v", err)
		return err
	}
	uc.logger.Error("SetOrderStatus: transaction: %v", err)
	return fmt.Errorf("%w: transaction: %v", ErrInternal, err)
}
