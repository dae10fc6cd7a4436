package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkConflictHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/check_conflict"
	createAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_availability"
	listUnitAppointmentsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_unit_appointments"
	listUnitCancellationsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_unit_cancellations"
	purgeCancellationHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/purge_cancellation"
	rescheduleAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/reschedule_appointment"
	transitionStatusHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/transition_status"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	historyRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/history"
	policyRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/policy"
	scheduleRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/schedule"
	catalogServiceClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/catalogservice"
	staffServiceClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/staffservice"
	appointmentsService "github.com/m04kA/SMC-SchedulingService/internal/service/appointments"
	auditService "github.com/m04kA/SMC-SchedulingService/internal/service/audit"
	availabilityService "github.com/m04kA/SMC-SchedulingService/internal/service/availability"
	conflictService "github.com/m04kA/SMC-SchedulingService/internal/service/conflict"
	createAppointmentUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
	deleteAppointmentUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/delete_appointment"
	getAvailabilityUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_availability"
	rescheduleAppointmentUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_appointment"
	transitionStatusUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/transition_status"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (StaffService=%s timeout=%ds, CatalogService=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout, cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		policyRepository      *policyRepo.Repository
		historyRepository     *historyRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		policyRepository = policyRepo.NewRepository(wrappedDB)
		historyRepository = historyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		policyRepository = policyRepo.NewRepository(db)
		historyRepository = historyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(scheduleRepository, log)
	conflictSvc := conflictService.NewService(appointmentRepository, staffClient, availabilitySvc, log)
	auditRecorder := auditService.NewRecorder(historyRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)

	timeProvider := &createAppointmentUC.RealTimeProvider{}

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		availabilitySvc,
		conflictSvc,
		staffClient,
		catalogClient,
		txMgr,
		timeProvider,
		log,
	)

	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		availabilitySvc,
		conflictSvc,
		staffClient,
		catalogClient,
		txMgr,
		log,
	)

	transitionStatusUseCase := transitionStatusUC.NewUseCase(
		appointmentRepository,
		policyRepository,
		auditRecorder,
		staffClient,
		txMgr,
		&transitionStatusUC.RealTimeProvider{},
		log,
	)

	deleteAppointmentUseCase := deleteAppointmentUC.NewUseCase(
		appointmentRepository,
		auditRecorder,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(availabilitySvc, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	transitionStatus := transitionStatusHandler.NewHandler(transitionStatusUseCase, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(deleteAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listUnitAppointments := listUnitAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	checkConflict := checkConflictHandler.NewHandler(conflictSvc, log)
	listUnitCancellations := listUnitCancellationsHandler.NewHandler(auditRecorder, log)
	purgeCancellation := purgeCancellationHandler.NewHandler(auditRecorder, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность юнита на дату
	api.HandleFunc("/units/{unitId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Предварительная проверка конфликтов слота (для UI)
	api.HandleFunc("/professionals/{professionalId}/conflicts",
		checkConflict.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на приём ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Перенос/редактирование записи
	protected.HandleFunc("/appointments/{appointmentId}", rescheduleAppointment.Handle).Methods(http.MethodPatch)

	// Переход статуса (подтверждение, завершение, отмена)
	protected.HandleFunc("/appointments/{appointmentId}/status", transitionStatus.Handle).Methods(http.MethodPatch)

	// Жёсткое удаление записи
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Управление юнитом ---
	// Список записей юнита с фильтрацией
	protected.HandleFunc("/units/{unitId}/appointments", listUnitAppointments.Handle).Methods(http.MethodGet)

	// --- История отмен ---
	// Выборка истории отмен юнита за период
	protected.HandleFunc("/units/{unitId}/cancellations", listUnitCancellations.Handle).Methods(http.MethodGet)

	// Удаление записи истории отмены (ретенция)
	protected.HandleFunc("/cancellations/{recordId}", purgeCancellation.Handle).Methods(http.MethodDelete)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
