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

	cancelAppointmentHandler "github.com/m04kA/FSM-SchedulingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/FSM-SchedulingService/internal/api/handlers/create_appointment"
	createAvailabilityHandler "github.com/m04kA/FSM-SchedulingService/internal/api/handlers/create_availability"
	createServiceHandler "github.com/m04kA/FSM-SchedulingService/internal/api/handlers/create_service"
	deleteAvailabilityHandler "github.com/m04kA/FSM-SchedulingService/internal/api/handlers/delete_availability"
	getAvailabilityHandler "github.com/m04kA/FSM-SchedulingService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/FSM-SchedulingService/internal/api/handlers/get_available_slots"
	getAppointmentHandler "github.com/m04kA/FSM-SchedulingService/internal/api/handlers/get_appointment"
	getServiceHandler "github.com/m04kA/FSM-SchedulingService/internal/api/handlers/get_service"
	listAppointmentsHandler "github.com/m04kA/FSM-SchedulingService/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/m04kA/FSM-SchedulingService/internal/api/handlers/list_services"
	listUpcomingHandler "github.com/m04kA/FSM-SchedulingService/internal/api/handlers/list_upcoming_appointments"
	replaceAvailabilityHandler "github.com/m04kA/FSM-SchedulingService/internal/api/handlers/replace_availability"
	updateStatusHandler "github.com/m04kA/FSM-SchedulingService/internal/api/handlers/update_appointment_status"
	updateServiceHandler "github.com/m04kA/FSM-SchedulingService/internal/api/handlers/update_service"
	validateDurationHandler "github.com/m04kA/FSM-SchedulingService/internal/api/handlers/validate_duration"
	"github.com/m04kA/FSM-SchedulingService/internal/api/middleware"
	"github.com/m04kA/FSM-SchedulingService/internal/config"
	appointmentRepo "github.com/m04kA/FSM-SchedulingService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/FSM-SchedulingService/internal/infra/storage/availability"
	serviceRepo "github.com/m04kA/FSM-SchedulingService/internal/infra/storage/service"
	profileServiceClient "github.com/m04kA/FSM-SchedulingService/internal/integrations/profileservice"
	appointmentsService "github.com/m04kA/FSM-SchedulingService/internal/service/appointments"
	availabilityService "github.com/m04kA/FSM-SchedulingService/internal/service/availability"
	catalogService "github.com/m04kA/FSM-SchedulingService/internal/service/catalog"
	createAppointmentUC "github.com/m04kA/FSM-SchedulingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/FSM-SchedulingService/internal/usecase/get_available_slots"
	validateDurationUC "github.com/m04kA/FSM-SchedulingService/internal/usecase/validate_duration"
	"github.com/m04kA/FSM-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/FSM-SchedulingService/pkg/logger"
	"github.com/m04kA/FSM-SchedulingService/pkg/metrics"
	"github.com/m04kA/FSM-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/FSM-SchedulingService/pkg/txmanager"
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

	log.Info("Starting FSM-SchedulingService...")
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

	// Инициализируем клиент ProfileService
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ProfileService=%s timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		serviceRepository      *serviceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		profileClient,
		txMgr,
		log,
	)
	catalogSvc := catalogService.NewService(serviceRepository, profileClient, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		serviceRepository,
		profileClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		serviceRepository,
		log,
	)

	validateDurationUseCase := validateDurationUC.NewUseCase(serviceRepository, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	validateDuration := validateDurationHandler.NewHandler(validateDurationUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listUpcoming := listUpcomingHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createAvailability := createAvailabilityHandler.NewHandler(availabilitySvc, log)
	replaceAvailability := replaceAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, getAvailableSlotsUseCase, log)
	deleteAvailability := deleteAvailabilityHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Каталог услуг
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}/services", listServices.Handle).Methods(http.MethodGet)

	// Доступные слоты и проверка длительности
	api.HandleFunc("/services/{serviceId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/validate-duration", validateDuration.Handle).Methods(http.MethodGet)

	// Расписание доступности профессионала
	api.HandleFunc("/professionals/{professionalId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/upcoming", listUpcoming.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Каталог услуг (для профессионалов) ---
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)

	// --- Расписание доступности (для профессионалов) ---
	protected.HandleFunc("/availability", createAvailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/availability", replaceAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/availability/{windowId}", deleteAvailability.Handle).Methods(http.MethodDelete)

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
