package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
	"github.com/m04kA/SMC-GroomingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroomingService/pkg/psqlbuilder"
)

const (
	codeExclusionViolation   = "23P01"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

var orderColumns = []string{
	"id",
	"client_id",
	"pet_id",
	"master_id",
	"service_id",
	"price",
	"date",
	"start_time",
	"end_time",
	"status",
	"comment",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заказами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockSlot берет advisory-блокировку слота (мастер, дата) до конца транзакции.
// Вне транзакции блокировка бессмысленна и не берется.
func (r *Repository) LockSlot(ctx context.Context, masterID int64, date time.Time) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column(psqlbuilder.Expr("pg_advisory_xact_lock(hashtext(?))", slotKey(masterID, date))).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockSlot - build query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return mapWriteError("LockSlot - execute", err)
	}
	return nil
}

// Create создает заказ и его связи с доп. услугами.
// Должен вызываться в транзакции, чтобы заказ и связи записались атомарно.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	status := order.Status
	if status == "" {
		status = domain.OrderStatusPlanned
	}

	query, args, err := psqlbuilder.Insert("orders").
		Columns(
			"client_id",
			"pet_id",
			"master_id",
			"service_id",
			"price",
			"date",
			"start_time",
			"end_time",
			"status",
			"comment",
		).
		Values(
			order.ClientID,
			order.PetID,
			order.MasterID,
			order.ServiceID,
			order.Price,
			order.Date.Format(domain.DateFormat),
			order.StartTime,
			order.EndTime,
			status,
			order.Comment,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *order
	created.Status = status
	created.Date = domain.TruncateDate(order.Date)

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, mapWriteError("Create - execute insert", err)
	}
	created.CreatedAt = createdAt.Time
	created.UpdatedAt = updatedAt.Time

	if err := r.insertExtraServices(ctx, executor, created.ID, order.ExtraServiceIDs); err != nil {
		return nil, err
	}
	created.ExtraServiceIDs = append([]int64(nil), order.ExtraServiceIDs...)

	return &created, nil
}

// GetByID получает заказ по ID вместе с id доп. услуг.
// В транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	order, err := scanOrder(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan order: %w", ErrScanRow, err)
	}

	extras, err := r.listExtraServiceIDs(ctx, executor, []int64{order.ID})
	if err != nil {
		return nil, err
	}
	order.ExtraServiceIDs = extras[order.ID]

	return order, nil
}

// Update перезаписывает мастера, услугу, дату, время, цену и комментарий заказа,
// связи с доп. услугами заменяются целиком
func (r *Repository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("master_id", order.MasterID).
		Set("service_id", order.ServiceID).
		Set("price", order.Price).
		Set("date", order.Date.Format(domain.DateFormat)).
		Set("start_time", order.StartTime).
		Set("end_time", order.EndTime).
		Set("comment", order.Comment).
		Set("updated_at", psqlbuilder.Expr("NOW()")).
		Where(squirrel.Eq{"id": order.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapWriteError("Update - execute update", err)
	}
	if err := checkAffected(res, "Update"); err != nil {
		return nil, err
	}

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("order_extra_services").
		Where(squirrel.Eq{"order_id": order.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build delete extras query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: Update - delete extras: %w", ErrExecQuery, err)
	}

	if err := r.insertExtraServices(ctx, executor, order.ID, order.ExtraServiceIDs); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, order.ID)
}

// UpdateStatus меняет статус заказа
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("status", status).
		Set("updated_at", psqlbuilder.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapWriteError("UpdateStatus - execute update", err)
	}
	if err := checkAffected(res, "UpdateStatus"); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// FindDuplicate ищет неотмененный заказ с той же сигнатурой
func (r *Repository) FindDuplicate(ctx context.Context, sig domain.OrderSignature) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{
			"client_id":  sig.ClientID,
			"pet_id":     sig.PetID,
			"master_id":  sig.MasterID,
			"service_id": sig.ServiceID,
			"date":       sig.Date.Format(domain.DateFormat),
			"start_time": sig.StartTime,
			"end_time":   sig.EndTime,
		}).
		Where(squirrel.NotEq{"status": domain.OrderStatusCancelled}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindDuplicate - build select query: %v", ErrBuildQuery, err)
	}

	order, err := scanOrder(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindDuplicate - scan order: %w", ErrScanRow, err)
	}
	return order, nil
}

// ListActiveByMasterAndDate возвращает неотмененные заказы мастера на дату.
// Строки не блокируются: занять интервал в слоте мастера можно только под LockSlot.
func (r *Repository) ListActiveByMasterAndDate(ctx context.Context, masterID int64, date time.Time) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{
			"master_id": masterID,
			"date":      date.Format(domain.DateFormat),
		}).
		Where(squirrel.NotEq{"status": domain.OrderStatusCancelled}).
		OrderBy("start_time", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByMasterAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByMasterAndDate - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveByMasterAndDate - scan order: %w", ErrScanRow, err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByMasterAndDate - rows iteration: %w", ErrScanRow, err)
	}

	return orders, nil
}

// GetViewByID возвращает денормализованное представление заказа
func (r *Repository) GetViewByID(ctx context.Context, id int64) (*domain.OrderView, error) {
	views, err := r.listViews(ctx, squirrel.Eq{"o.id": id}, "GetViewByID")
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrOrderNotFound
	}
	return views[0], nil
}

// ListViews возвращает заказы любого статуса с датой в [DateFrom, DateTo],
// отсортированные по дате, времени начала и id
func (r *Repository) ListViews(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.OrderView, error) {
	where := squirrel.And{
		squirrel.GtOrEq{"o.date": filter.DateFrom.Format(domain.DateFormat)},
		squirrel.LtOrEq{"o.date": filter.DateTo.Format(domain.DateFormat)},
	}
	if filter.MasterID != nil {
		where = append(where, squirrel.Eq{"o.master_id": *filter.MasterID})
	}
	return r.listViews(ctx, where, "ListViews")
}

func (r *Repository) listViews(ctx context.Context, where squirrel.Sqlizer, op string) ([]*domain.OrderView, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := viewQuery(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	views := make([]*domain.OrderView, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var v domain.OrderView
		var date time.Time
		if err := rows.Scan(
			&v.ID,
			&date,
			&v.StartTime,
			&v.EndTime,
			&v.Price,
			&v.Status,
			&v.Comment,
			&v.ClientID,
			&v.ClientName,
			&v.PetID,
			&v.PetName,
			&v.ServiceID,
			&v.ServiceName,
			&v.MasterID,
			&v.MasterName,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan view: %w", ErrScanRow, op, err)
		}
		v.Date = domain.TruncateDate(date)
		views = append(views, &v)
		ids = append(ids, v.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %w", ErrScanRow, op, err)
	}
	rows.Close()

	if len(ids) == 0 {
		return views, nil
	}

	extras, err := r.listExtraServiceIDs(ctx, executor, ids)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		v.ExtraServiceIDs = extras[v.ID]
		if v.ExtraServiceIDs == nil {
			v.ExtraServiceIDs = []int64{}
		}
	}

	return views, nil
}

func viewQuery(where squirrel.Sqlizer) squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"o.id",
		"o.date",
		"o.start_time",
		"o.end_time",
		"o.price",
		"o.status",
		"o.comment",
		"c.id",
		"c.full_name",
		"p.id",
		"p.name",
		"s.id",
		"s.name",
		"m.id",
		"m.name",
	).
		From("orders o").
		Join("clients c ON c.id = o.client_id").
		Join("pets p ON p.id = o.pet_id").
		Join("services s ON s.id = o.service_id").
		Join("masters m ON m.id = o.master_id").
		Where(where).
		OrderBy("o.date", "o.start_time", "o.id")
}

func (r *Repository) insertExtraServices(ctx context.Context, executor DBExecutor, orderID int64, extraIDs []int64) error {
	if len(extraIDs) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("order_extra_services").
		Columns("order_id", "extra_service_id")
	for _, extraID := range extraIDs {
		builder = builder.Values(orderID, extraID)
	}

	query, args, err := builder.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertExtraServices - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return mapWriteError("insertExtraServices - execute insert", err)
	}
	return nil
}

func (r *Repository) listExtraServiceIDs(ctx context.Context, executor DBExecutor, orderIDs []int64) (map[int64][]int64, error) {
	query, args, err := psqlbuilder.Select("order_id", "extra_service_id").
		From("order_extra_services").
		Where(squirrel.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "extra_service_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: listExtraServiceIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listExtraServiceIDs - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[int64][]int64, len(orderIDs))
	for rows.Next() {
		var orderID, extraID int64
		if err := rows.Scan(&orderID, &extraID); err != nil {
			return nil, fmt.Errorf("%w: listExtraServiceIDs - scan: %w", ErrScanRow, err)
		}
		result[orderID] = append(result[orderID], extraID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listExtraServiceIDs - rows iteration: %w", ErrScanRow, err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var date time.Time
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&order.ID,
		&order.ClientID,
		&order.PetID,
		&order.MasterID,
		&order.ServiceID,
		&order.Price,
		&date,
		&order.StartTime,
		&order.EndTime,
		&order.Status,
		&order.Comment,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.Date = domain.TruncateDate(date)
	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time
	return &order, nil
}

func checkAffected(res sql.Result, op string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %w", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// mapWriteError превращает нарушение exclusion constraint, конфликт сериализации
// и взаимоблокировку в ErrSlotOccupied. Ошибка драйвера остается в цепочке.
func mapWriteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeExclusionViolation, codeSerializationFailure, codeDeadlockDetected:
			return fmt.Errorf("%w: %s: %w", ErrSlotOccupied, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %w", ErrExecQuery, op, err)
}

func slotKey(masterID int64, date time.Time) string {
	return fmt.Sprintf("orders:%d:%s", masterID, date.Format(domain.DateFormat))
}
