package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/domain"
)

// OrderRepository заказы в памяти
type OrderRepository struct {
	store *Store
}

// LockSlot блокировка слота мастера. Транзакции Store уже сериализованы, отдельная блокировка не нужна.
func (r *OrderRepository) LockSlot(_ context.Context, _ int64, _ time.Time) error {
	return nil
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var result *domain.Order
	err := r.store.write(ctx, func(d *state) error {
		row := copyOrder(order)
		row.Date = domain.TruncateDate(row.Date)
		if row.Status == "" {
			row.Status = domain.OrderStatusPlanned
		}
		if err := d.checkOverlap(row); err != nil {
			return err
		}

		now := time.Now().UTC()
		row.ID = d.nextID("orders")
		row.CreatedAt = now
		row.UpdatedAt = now
		d.orders[row.ID] = row
		result = copyOrder(row)
		return nil
	})
	return result, err
}

func (r *OrderRepository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	var result *domain.Order
	r.store.read(func(d *state) {
		if row, ok := d.orders[id]; ok {
			result = copyOrder(row)
		}
	})
	if result == nil {
		return nil, ErrOrderNotFound
	}
	return result, nil
}

// Update перезаписывает мастера, услугу, дату, время, цену, комментарий и доп. услуги заказа
func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var result *domain.Order
	err := r.store.write(ctx, func(d *state) error {
		row, ok := d.orders[order.ID]
		if !ok {
			return ErrOrderNotFound
		}

		updated := copyOrder(row)
		updated.MasterID = order.MasterID
		updated.ServiceID = order.ServiceID
		updated.Price = order.Price
		updated.Date = domain.TruncateDate(order.Date)
		updated.StartTime = order.StartTime
		updated.EndTime = order.EndTime
		updated.Comment = order.Comment
		updated.ExtraServiceIDs = append([]int64(nil), order.ExtraServiceIDs...)

		if err := d.checkOverlap(updated); err != nil {
			return err
		}

		updated.UpdatedAt = time.Now().UTC()
		d.orders[order.ID] = updated
		result = copyOrder(updated)
		return nil
	})
	return result, err
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	var result *domain.Order
	err := r.store.write(ctx, func(d *state) error {
		row, ok := d.orders[id]
		if !ok {
			return ErrOrderNotFound
		}

		updated := copyOrder(row)
		updated.Status = status
		if err := d.checkOverlap(updated); err != nil {
			return err
		}

		updated.UpdatedAt = time.Now().UTC()
		d.orders[id] = updated
		result = copyOrder(updated)
		return nil
	})
	return result, err
}

func (r *OrderRepository) FindDuplicate(_ context.Context, sig domain.OrderSignature) (*domain.Order, error) {
	var result *domain.Order
	r.store.read(func(d *state) {
		for _, row := range d.orders {
			if !row.IsActive() || !row.Signature().Equal(sig) {
				continue
			}
			if result == nil || row.ID < result.ID {
				result = copyOrder(row)
			}
		}
	})
	if result == nil {
		return nil, ErrOrderNotFound
	}
	return result, nil
}

func (r *OrderRepository) ListActiveByMasterAndDate(_ context.Context, masterID int64, date time.Time) ([]*domain.Order, error) {
	day := domain.TruncateDate(date)
	var result []*domain.Order
	r.store.read(func(d *state) {
		for _, row := range d.orders {
			if row.MasterID == masterID && row.Date.Equal(day) && row.IsActive() {
				result = append(result, copyOrder(row))
			}
		}
	})
	sortOrders(result)
	return result, nil
}

func (r *OrderRepository) GetViewByID(_ context.Context, id int64) (*domain.OrderView, error) {
	var result *domain.OrderView
	r.store.read(func(d *state) {
		if row, ok := d.orders[id]; ok {
			result = d.view(row)
		}
	})
	if result == nil {
		return nil, ErrOrderNotFound
	}
	return result, nil
}

// ListViews заказы любого статуса с датой в [DateFrom, DateTo], сортировка по дате, началу, id
func (r *OrderRepository) ListViews(_ context.Context, filter domain.ScheduleFilter) ([]*domain.OrderView, error) {
	from := domain.TruncateDate(filter.DateFrom)
	to := domain.TruncateDate(filter.DateTo)

	var result []*domain.OrderView
	r.store.read(func(d *state) {
		var rows []*domain.Order
		for _, row := range d.orders {
			if row.Date.Before(from) || row.Date.After(to) {
				continue
			}
			if filter.MasterID != nil && row.MasterID != *filter.MasterID {
				continue
			}
			rows = append(rows, row)
		}
		sortOrders(rows)

		result = make([]*domain.OrderView, 0, len(rows))
		for _, row := range rows {
			result = append(result, d.view(row))
		}
	})
	return result, nil
}

// CountOrders количество заказов (для тестов)
func (r *OrderRepository) CountOrders() int {
	var n int
	r.store.read(func(d *state) { n = len(d.orders) })
	return n
}

// checkOverlap аналог exclusion constraint: неотмененные интервалы мастера на дату не пересекаются
func (d *state) checkOverlap(order *orderRow) error {
	if !order.IsActive() {
		return nil
	}
	for _, row := range d.orders {
		if row.ID == order.ID || !row.IsActive() {
			continue
		}
		if row.MasterID == order.MasterID && row.Date.Equal(order.Date) && row.Overlaps(order.StartTime, order.EndTime) {
			return ErrSlotOccupied
		}
	}
	return nil
}

func (d *state) view(row *orderRow) *domain.OrderView {
	v := &domain.OrderView{
		ID:              row.ID,
		Date:            row.Date,
		StartTime:       row.StartTime,
		EndTime:         row.EndTime,
		Price:           row.Price,
		Status:          row.Status,
		ClientID:        row.ClientID,
		PetID:           row.PetID,
		ServiceID:       row.ServiceID,
		MasterID:        row.MasterID,
		Comment:         row.Comment,
		ExtraServiceIDs: append([]int64{}, row.ExtraServiceIDs...),
	}
	if c, ok := d.clients[row.ClientID]; ok {
		v.ClientName = c.FullName
	}
	if p, ok := d.pets[row.PetID]; ok {
		v.PetName = p.Name
	}
	if s, ok := d.services[row.ServiceID]; ok {
		v.ServiceName = s.Name
	}
	if m, ok := d.masters[row.MasterID]; ok {
		v.MasterName = m.Name
	}
	sort.Slice(v.ExtraServiceIDs, func(i, j int) bool { return v.ExtraServiceIDs[i] < v.ExtraServiceIDs[j] })
	return v
}

func sortOrders(orders []*domain.Order) {
	sort.Slice(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})
}
