package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-GroomingService/internal/config"
	"github.com/m04kA/SMC-GroomingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/client"
	"github.com/m04kA/SMC-GroomingService/internal/infra/storage/memory"
	orderRepo "github.com/m04kA/SMC-GroomingService/internal/infra/storage/order"
	"github.com/m04kA/SMC-GroomingService/internal/service/catalog"
	"github.com/m04kA/SMC-GroomingService/internal/service/clients"
	"github.com/m04kA/SMC-GroomingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
	"github.com/m04kA/SMC-GroomingService/pkg/txmanager"
)

// OrderStore методы хранилища заказов, нужные use cases, планировщику и проверке занятости
type OrderStore interface {
	LockSlot(ctx context.Context, masterID int64, date time.Time) error
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error)
	FindDuplicate(ctx context.Context, sig domain.OrderSignature) (*domain.Order, error)
	ListActiveByMasterAndDate(ctx context.Context, masterID int64, date time.Time) ([]*domain.Order, error)
	GetViewByID(ctx context.Context, id int64) (*domain.OrderView, error)
	ListViews(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.OrderView, error)
}

// TxManager менеджер транзакций (txmanager или memory.Store)
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Storage собранный слой хранения
type Storage struct {
	Orders    OrderStore
	Catalog   catalog.Repository
	Clients   clients.Repository
	TxManager TxManager

	// DB nil для memory-хранилища
	DB *sql.DB
}

// Close освобождает соединения
func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// openStorage собирает хранилище по cfg.Storage.Driver.
// recorder может быть nil, тогда метрики запросов не пишутся.
func openStorage(cfg *config.Config, recorder dbmetrics.Recorder, stopCh <-chan struct{}, log *logger.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		if cfg.Storage.SeedDefaults {
			store.SeedDefaults()
			log.Info("Memory storage seeded with default catalog")
		}
		log.Info("Using in-memory storage")
		return &Storage{
			Orders:    store.Orders(),
			Catalog:   store.Catalog(),
			Clients:   store.Clients(),
			TxManager: store,
		}, nil

	case config.StorageDriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		wrappedDB := dbmetrics.WrapWithDefault(db, recorder, stopCh)

		return &Storage{
			Orders:    orderRepo.NewRepository(wrappedDB),
			Catalog:   catalogRepo.NewRepository(wrappedDB),
			Clients:   clientRepo.NewRepository(wrappedDB),
			TxManager: txmanager.NewTransactionManager(wrappedDB),
			DB:        db,
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown storage driver %q", config.ErrInvalidConfig, cfg.Storage.Driver)
	}
}
