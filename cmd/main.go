package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	createOrderHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/create_order"
	getAvailableSlotsHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/get_available_slots"
	getCatalogHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/get_catalog"
	getOrderHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/get_order"
	getScheduleHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/get_schedule"
	healthHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/health"
	searchClientsHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/search_clients"
	setOrderStatusHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/set_order_status"
	updateOrderHandler "github.com/m04kA/SMC-GroomingService/internal/api/handlers/update_order"
	"github.com/m04kA/SMC-GroomingService/internal/api/middleware"
	"github.com/m04kA/SMC-GroomingService/internal/config"
	"github.com/m04kA/SMC-GroomingService/internal/service/availability"
	catalogService "github.com/m04kA/SMC-GroomingService/internal/service/catalog"
	clientsService "github.com/m04kA/SMC-GroomingService/internal/service/clients"
	"github.com/m04kA/SMC-GroomingService/internal/service/pricing"
	createOrderUC "github.com/m04kA/SMC-GroomingService/internal/usecase/create_order"
	getAvailableSlotsUC "github.com/m04kA/SMC-GroomingService/internal/usecase/get_available_slots"
	getScheduleUC "github.com/m04kA/SMC-GroomingService/internal/usecase/get_schedule"
	"github.com/m04kA/SMC-GroomingService/internal/usecase/ordering"
	setOrderStatusUC "github.com/m04kA/SMC-GroomingService/internal/usecase/set_order_status"
	updateOrderUC "github.com/m04kA/SMC-GroomingService/internal/usecase/update_order"
	"github.com/m04kA/SMC-GroomingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroomingService/pkg/logger"
	"github.com/m04kA/SMC-GroomingService/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-GroomingService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		dbRecorder       dbmetrics.Recorder
		opRecorder       ordering.OperationRecorder = ordering.NopRecorder{}
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbRecorder = metricsCollector
		opRecorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище: postgres или memory
	storage, err := openStorage(cfg, dbRecorder, stopMetricsCh, log)
	if err != nil {
		log.Fatal("Failed to initialize storage: %v", err)
	}
	defer storage.Close()

	// Инициализируем сервисы
	catalogSvc := catalogService.NewResolver(storage.Catalog)
	clientDirectory := clientsService.NewDirectory(storage.Clients, catalogSvc)
	checker := availability.NewChecker(storage.Orders)
	priceEngine := pricing.NewEngine()

	planner := ordering.NewPlanner(catalogSvc, checker, priceEngine, storage.Orders, cfg.Schedule.Location())
	log.Info("Business timezone: %s", cfg.Schedule.Timezone)

	// Инициализируем use cases
	createOrderUseCase := createOrderUC.NewUseCase(
		storage.Orders,
		clientDirectory,
		planner,
		storage.TxManager,
		opRecorder,
		log,
	)

	updateOrderUseCase := updateOrderUC.NewUseCase(
		storage.Orders,
		clientDirectory,
		planner,
		storage.TxManager,
		opRecorder,
		log,
	)

	setOrderStatusUseCase := setOrderStatusUC.NewUseCase(
		storage.Orders,
		planner,
		storage.TxManager,
		opRecorder,
		log,
	)

	getScheduleUseCase := getScheduleUC.NewUseCase(storage.Orders, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogSvc,
		storage.Orders,
		cfg.Schedule.SlotStepMinutes,
		cfg.Schedule.Location(),
		log,
	)

	// Инициализируем handlers
	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)
	updateOrder := updateOrderHandler.NewHandler(updateOrderUseCase, log)
	setOrderStatus := setOrderStatusHandler.NewHandler(setOrderStatusUseCase, log)
	getOrder := getOrderHandler.NewHandler(storage.Orders, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	searchClients := searchClientsHandler.NewHandler(clientDirectory, log)

	var pinger healthHandler.Pinger
	if storage.DB != nil {
		pinger = storage.DB
	}
	health := healthHandler.NewHandler(pinger, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	// Добавляем metrics middleware и endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (рабочее место администратора салона)
	// ============================================================

	var resolver middleware.CurrentUserResolver
	switch cfg.Auth.Mode {
	case config.AuthModeJWT:
		resolver = middleware.NewJWTResolver(cfg.Auth.JWTSecret)
	default:
		resolver = middleware.NewHeaderResolver()
	}
	log.Info("Auth mode: %s", cfg.Auth.Mode)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(resolver))

	// --- Заказы ---
	// Расписание за период (регистрируется раньше /orders/{orderId})
	protected.HandleFunc("/orders/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Создание заказа
	protected.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)

	// Заказ по ID
	protected.HandleFunc("/orders/{orderId:[0-9]+}", getOrder.Handle).Methods(http.MethodGet)

	// Изменение заказа
	protected.HandleFunc("/orders/{orderId:[0-9]+}", updateOrder.Handle).Methods(http.MethodPut)

	// Смена статуса
	protected.HandleFunc("/orders/{orderId:[0-9]+}/status", setOrderStatus.Handle).Methods(http.MethodPatch)

	// --- Справочники ---
	protected.HandleFunc("/masters", getCatalog.Masters).Methods(http.MethodGet)
	protected.HandleFunc("/masters/{masterId:[0-9]+}/free-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/services", getCatalog.Services).Methods(http.MethodGet)
	protected.HandleFunc("/extra-services", getCatalog.ExtraServices).Methods(http.MethodGet)
	protected.HandleFunc("/age-groups", getCatalog.AgeGroups).Methods(http.MethodGet)
	protected.HandleFunc("/breeds", getCatalog.Breeds).Methods(http.MethodGet)

	// --- Клиенты ---
	protected.HandleFunc("/clients/search/phone", searchClients.ByPhone).Methods(http.MethodGet)
	protected.HandleFunc("/clients/search/name", searchClients.ByName).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
