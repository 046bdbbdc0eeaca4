package create_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/internal/service/clients"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering"
)

const operationName = "create"

// UseCase use case для создания заказа
type UseCase struct {
	orderRepo OrderRepository
	clients   ClientDirectory
	planner   Planner
	txManager TransactionManager
	metrics   OperationRecorder
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	clients ClientDirectory,
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
		clients:   clients,
		planner:   planner,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute выполняет use case создания заказа.
// Клиент, питомец, заказ и его доп. услуги сохраняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (result *domain.OrderView, err error) {
	defer func() {
		uc.metrics.RecordOrderOperation(operationName, ordering.Outcome(err))
	}()

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateOrder: client=%q, pet=%q, master=%d, service=%d, date=%s, time=%s",
		req.FullName, req.Pet.Name, req.MasterID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Блокируем слот мастера на дату до конца транзакции
		if err := uc.planner.LockSlots(txCtx, ordering.SlotKey{MasterID: req.MasterID, Date: req.Date}); err != nil {
			return uc.fail("lock slot", err)
		}

		// 3. Находим или создаем клиента
		client, created, err := uc.clients.ResolveOrCreateClient(txCtx, clients.Identity{
			Phone:    req.Phone,
			FullName: req.FullName,
		})
		if err != nil {
			return uc.fail("resolve client", err)
		}
		if created {
			uc.logger.Info("CreateOrder: created client id=%d", client.ID)
		}

		// 4. Находим или создаем питомца
		pet, created, err := uc.clients.ResolveOrCreatePet(txCtx, client.ID, clients.PetDescriptor{
			Name:       req.Pet.Name,
			Species:    req.Pet.Species,
			BreedID:    req.Pet.BreedID,
			AgeGroupID: req.Pet.AgeGroupID,
			Size:       req.Pet.Size,
		})
		if err != nil {
			return uc.fail("resolve pet", err)
		}
		if created {
			uc.logger.Info("CreateOrder: created pet id=%d, size=%s", pet.ID, pet.Size)
		}

		// 5. Мастер, тариф по размеру питомца, время окончания и окно записи
		slot, err := uc.planner.ResolveSlot(txCtx, ordering.SlotRequest{
			MasterID:  req.MasterID,
			ServiceID: req.ServiceID,
			PetSize:   pet.Size,
			Date:      req.Date,
			StartTime: req.StartTime,
		})
		if err != nil {
			return uc.fail("resolve slot", err)
		}

		// 6. Повторная отправка проверяется раньше пересечения, иначе заказ конфликтовал бы сам с собой
		duplicate, err := uc.orderRepo.FindDuplicate(txCtx, domain.OrderSignature{
			ClientID:  client.ID,
			PetID:     pet.ID,
			MasterID:  slot.Master.ID,
			ServiceID: slot.Service.ID,
			Date:      slot.Date,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
		switch {
		case err == nil:
			return uc.fail("check duplicate", fmt.Errorf("%w: existing order id=%d", ErrDuplicateOrder, duplicate.ID))
		case !errors.Is(err, domain.ErrNotFound):
			return uc.fail("check duplicate", err)
		}

		// 7. Проверяем занятость мастера
		if err := uc.planner.EnsureAvailable(txCtx, slot, nil); err != nil {
			return uc.fail("check availability", err)
		}

		// 8. Считаем цену
		price, err := uc.planner.CalculatePrice(txCtx, ordering.PriceRequest{
			Tariff:          slot.Tariff,
			AgeGroupID:      pet.AgeGroupID,
			ExtraServiceIDs: req.ExtraServiceIDs,
			ManualPrice:     req.Price,
		})
		if err != nil {
			return uc.fail("calculate price", err)
		}
		uc.logger.Info("CreateOrder: price base=%d, factor=%d%%, afterAge=%d, extras=%d, final=%d, overridden=%t",
			price.Quote.Base, price.Quote.AgeFactor, price.Quote.AfterAge, price.Quote.ExtrasTotal,
			price.Quote.Final, price.Quote.Overridden)

		// 9. Сохраняем заказ
		order, err := uc.orderRepo.Create(txCtx, &domain.Order{
			ClientID:        client.ID,
			PetID:           pet.ID,
			MasterID:        slot.Master.ID,
			ServiceID:       slot.Service.ID,
			Price:           price.Quote.Final,
			Date:            slot.Date,
			StartTime:       slot.StartTime,
			EndTime:         slot.EndTime,
			Status:          domain.OrderStatusPlanned,
			Comment:         domain.NormalizeComment(req.Comment),
			ExtraServiceIDs: price.ExtraIDs(),
		})
		if err != nil {
			return uc.fail("create order", err)
		}

		// 10. Читаем денормализованное представление
		result, err = uc.orderRepo.GetViewByID(txCtx, order.ID)
		if err != nil {
			return uc.fail("get order view", err)
		}
		return nil
	})
	if err != nil {
		return nil, uc.finish(err)
	}

	uc.logger.Info("CreateOrder: created order id=%d, %s %s-%s, price=%d",
		result.ID, result.Date.Format(domain.DateFormat), result.StartTime, result.EndTime, result.Price)
	return result, nil
}

// fail логирует ошибку шага. Бизнес-ошибки возвращаются как есть, остальные оборачиваются в ErrInternal.
func (uc *UseCase) fail(step string, err error) error {
	err = ordering.TxConflict(err)
	if ordering.IsBusinessError(err) {
		uc.logger.Warn("CreateOrder: %s: %v", step, err)
		return err
	}
	uc.logger.Error("CreateOrder: %s: %v", step, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, step, err)
}

// finish обрабатывает ошибку транзакции (конфликт сериализации при commit)
func (uc *UseCase) finish(err error) error {
	if errors.Is(err, ErrInternal) || ordering.IsBusinessError(err) {
		return err
	}
	err = ordering.TxConflict(err)
	if ordering.IsBusinessError(err) {
		uc.logger.Warn("CreateOrder: transaction: %v", err)
		return err
	}
	uc.logger.Error("CreateOrder: transaction: %v", err)
	return fmt.Errorf("%w: transaction: %v", ErrInternal, err)
}
