// Package orderingtest собирает use cases заказов поверх memory-хранилища для тестов.
package orderingtest

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-GroomingService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-GroomingService/internal/service/availability"
	"github.com/m04kA/SMC-GroomingService/internal/service/catalog"
	"github.com/m04kA/SMC-GroomingService/internal/service/clients"
	"github.com/m04kA/SMC-GroomingService/internal/service/pricing"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering"
)

// Location часовой пояс салона в тестах
var Location = time.FixedZone("MSK", 3*60*60)

// Now "текущее" время в тестах
var Now = time.Date(2030, 5, 1, 12, 0, 0, 0, Location)

// Date рабочий день в будущем относительно Now
var Date = time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)

// Env зависимости use cases на memory-хранилище с засеянными справочниками
type Env struct {
	Store     *memory.Store
	Catalog   *catalog.Resolver
	Directory *clients.Directory
	Planner   *ordering.Planner
	Recorder  *Recorder
}

// NewEnv создает окружение с фиксированными часами
func NewEnv() *Env {
	store := memory.NewStore()
	store.SeedDefaults()

	resolver := catalog.NewResolver(store.Catalog())
	planner := ordering.NewPlanner(
		resolver,
		availability.NewChecker(store.Orders()),
		pricing.NewEngine(),
		store.Orders(),
		Location,
	).WithTimeProvider(&ordering.FixedTimeProvider{At: Now})

	return &Env{
		Store:     store,
		Catalog:   resolver,
		Directory: clients.NewDirectory(store.Clients(), resolver),
		Planner:   planner,
		Recorder:  &Recorder{},
	}
}

// Recorder запоминает исходы операций
type Recorder struct {
	mu       sync.Mutex
	outcomes map[string][]string
}

func (r *Recorder) RecordOrderOperation(operation, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.outcomes == nil {
		r.outcomes = make(map[string][]string)
	}
	r.outcomes[operation] = append(r.outcomes[operation], outcome)
}

// Outcomes исходы операции в порядке записи
func (r *Recorder) Outcomes(operation string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.outcomes[operation]...)
}
