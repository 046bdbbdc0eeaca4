package memory

import (
	"context"
	"sync"
)

// Store in-memory хранилище с теми же контрактами, что и PostgreSQL.
// Транзакции сериализуются мьютексом txMu, при ошибке состояние откатывается на снимок.
// Любая запись держит txMu: либо через транзакцию, либо сама (см. write).
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	data *state
}

type state struct {
	masters       map[int64]*masterRow
	services      map[int64]*serviceRow
	tariffs       map[int64]*tariffRow
	extraServices map[int64]*extraServiceRow
	ageGroups     map[int64]*ageGroupRow
	breeds        map[int64]*breedRow
	clients       map[int64]*clientRow
	pets          map[int64]*petRow
	orders        map[int64]*orderRow

	seq map[string]int64
}

type txKey struct{}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{data: newState()}
}

func newState() *state {
	return &state{
		masters:       make(map[int64]*masterRow),
		services:      make(map[int64]*serviceRow),
		tariffs:       make(map[int64]*tariffRow),
		extraServices: make(map[int64]*extraServiceRow),
		ageGroups:     make(map[int64]*ageGroupRow),
		breeds:        make(map[int64]*breedRow),
		clients:       make(map[int64]*clientRow),
		pets:          make(map[int64]*petRow),
		orders:        make(map[int64]*orderRow),
		seq:           make(map[string]int64),
	}
}

// Orders репозиторий заказов
func (s *Store) Orders() *OrderRepository {
	return &OrderRepository{store: s}
}

// Catalog репозиторий справочников
func (s *Store) Catalog() *CatalogRepository {
	return &CatalogRepository{store: s}
}

// Clients репозиторий клиентов и питомцев
func (s *Store) Clients() *ClientRepository {
	return &ClientRepository{store: s}
}

// Do выполняет fn атомарно
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.run(ctx, fn)
}

// DoSerializable выполняет fn атомарно. Все транзакции memory-хранилища сериализуемы.
func (s *Store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.run(ctx, fn)
}

// DoReadOnly выполняет fn под общей блокировкой транзакций
func (s *Store) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.run(ctx, fn)
}

func (s *Store) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	defer func() {
		if p := recover(); p != nil {
			s.restore(snapshot)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, struct{}{})); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

func (s *Store) restore(snapshot *state) {
	s.mu.Lock()
	s.data = snapshot
	s.mu.Unlock()
}

func (s *Store) read(fn func(d *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

// write применяет fn к данным. Запись вне транзакции выполняется под txMu,
// поэтому откат транзакции на снимок ее не затирает.
func (s *Store) write(ctx context.Context, fn func(d *state) error) error {
	if ctx.Value(txKey{}) == nil {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

func (d *state) nextID(table string) int64 {
	d.seq[table]++
	return d.seq[table]
}

func (d *state) clone() *state {
	c := newState()
	for k, v := range d.masters {
		row := *v
		c.masters[k] = &row
	}
	for k, v := range d.services {
		row := *v
		c.services[k] = &row
	}
	for k, v := range d.tariffs {
		row := *v
		c.tariffs[k] = &row
	}
	for k, v := range d.extraServices {
		row := *v
		c.extraServices[k] = &row
	}
	for k, v := range d.ageGroups {
		row := *v
		c.ageGroups[k] = &row
	}
	for k, v := range d.breeds {
		row := *v
		c.breeds[k] = &row
	}
	for k, v := range d.clients {
		row := *v
		c.clients[k] = &row
	}
	for k, v := range d.pets {
		row := *v
		c.pets[k] = &row
	}
	for k, v := range d.orders {
		row := *v
		row.ExtraServiceIDs = append([]int64(nil), v.ExtraServiceIDs...)
		c.orders[k] = &row
	}
	for k, v := range d.seq {
		c.seq[k] = v
	}
	return c
}
