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

	calendarEventsHandler "github.com/jvz16/SalonBookingService/internal/api/handlers/calendar_events"
	createAppointmentHandler "github.com/jvz16/SalonBookingService/internal/api/handlers/create_appointment"
	createBlockedSlotHandler "github.com/jvz16/SalonBookingService/internal/api/handlers/create_blocked_slot"
	createServiceHandler "github.com/jvz16/SalonBookingService/internal/api/handlers/create_service"
	deleteAppointmentHandler "github.com/jvz16/SalonBookingService/internal/api/handlers/delete_appointment"
	deleteBlockedSlotHandler "github.com/jvz16/SalonBookingService/internal/api/handlers/delete_blocked_slot"
	deleteServiceHandler "github.com/jvz16/SalonBookingService/internal/api/handlers/delete_service"
	getAvailableTimesHandler "github.com/jvz16/SalonBookingService/internal/api/handlers/get_available_times"
	listAppointmentsHandler "github.com/jvz16/SalonBookingService/internal/api/handlers/list_appointments"
	listBlockedSlotsHandler "github.com/jvz16/SalonBookingService/internal/api/handlers/list_blocked_slots"
	listServicesHandler "github.com/jvz16/SalonBookingService/internal/api/handlers/list_services"
	updateBlockedSlotHandler "github.com/jvz16/SalonBookingService/internal/api/handlers/update_blocked_slot"
	updateServiceHandler "github.com/jvz16/SalonBookingService/internal/api/handlers/update_service"
	"github.com/jvz16/SalonBookingService/internal/api/middleware"
	"github.com/jvz16/SalonBookingService/internal/config"
	appointmentRepo "github.com/jvz16/SalonBookingService/internal/infra/storage/appointment"
	blockedSlotRepo "github.com/jvz16/SalonBookingService/internal/infra/storage/blockedslot"
	serviceRepo "github.com/jvz16/SalonBookingService/internal/infra/storage/service"
	whatsappClient "github.com/jvz16/SalonBookingService/internal/integrations/whatsapp"
	appointmentsService "github.com/jvz16/SalonBookingService/internal/service/appointments"
	blackoutsService "github.com/jvz16/SalonBookingService/internal/service/blackouts"
	calendarService "github.com/jvz16/SalonBookingService/internal/service/calendar"
	catalogService "github.com/jvz16/SalonBookingService/internal/service/catalog"
	createAppointmentUC "github.com/jvz16/SalonBookingService/internal/usecase/create_appointment"
	getAvailableTimesUC "github.com/jvz16/SalonBookingService/internal/usecase/get_available_times"
	"github.com/jvz16/SalonBookingService/pkg/dbmetrics"
	"github.com/jvz16/SalonBookingService/pkg/logger"
	"github.com/jvz16/SalonBookingService/pkg/metrics"
	"github.com/jvz16/SalonBookingService/pkg/simpletxmanager"
	"github.com/jvz16/SalonBookingService/pkg/txmanager"
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

	log.Info("Starting SalonBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Политика рабочих часов салона
	hours := cfg.Business.Hours()
	log.Info("Business hours: %02d:00-%02d:00, slot step %d min",
		hours.OpenHour, hours.CloseHour, hours.SlotStepMinutes)

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

	// Инициализируем WhatsApp-клиент
	notifier := whatsappClient.NewClient(whatsappClient.Config{
		Enabled:        cfg.WhatsApp.Enabled,
		BaseURL:        cfg.WhatsApp.BaseURL,
		From:           cfg.WhatsApp.From,
		OwnerNumber:    cfg.WhatsApp.OwnerNumber,
		SalonName:      cfg.WhatsApp.SalonName,
		DefaultCountry: cfg.WhatsApp.DefaultCountry,
		Timeout:        time.Duration(cfg.WhatsApp.Timeout) * time.Second,
	}, log)
	log.Info("WhatsApp client initialized (enabled=%t)", cfg.WhatsApp.Enabled)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		blockedSlotRepository *blockedSlotRepo.Repository
		serviceRepository     *serviceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		blockedSlotRepository = blockedSlotRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		blockedSlotRepository = blockedSlotRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	blackoutSvc := blackoutsService.NewService(blockedSlotRepository, log)
	calendarSvc := calendarService.NewService(appointmentRepository, blockedSlotRepository, hours, log)

	// Инициализируем use cases
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(
		appointmentRepository,
		blockedSlotRepository,
		serviceRepository,
		hours,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		blockedSlotRepository,
		serviceRepository,
		notifier,
		txMgr,
		hours,
		log,
	)

	// Инициализируем handlers
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listPublicServices := listServicesHandler.NewHandler(catalogSvc, log, true)
	listAllServices := listServicesHandler.NewHandler(catalogSvc, log, false)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	createBlockedSlot := createBlockedSlotHandler.NewHandler(blackoutSvc, log)
	listBlockedSlots := listBlockedSlotsHandler.NewHandler(blackoutSvc, log)
	updateBlockedSlot := updateBlockedSlotHandler.NewHandler(blackoutSvc, log)
	deleteBlockedSlot := deleteBlockedSlotHandler.NewHandler(blackoutSvc, log)
	calendarEvents := calendarEventsHandler.NewHandler(calendarSvc, log)

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
	// PUBLIC ROUTES (витрина записи, без аутентификации)
	// ============================================================

	// Свободное время на дату
	api.HandleFunc("/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)

	// Каталог активных услуг
	api.HandleFunc("/services", listPublicServices.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(cfg.Server.AdminToken))

	// --- Записи ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Каталог услуг ---
	admin.HandleFunc("/services", listAllServices.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Блокировки ---
	admin.HandleFunc("/blocked-slots", listBlockedSlots.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-slots", createBlockedSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-slots/{blockedSlotId}", updateBlockedSlot.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/blocked-slots/{blockedSlotId}", deleteBlockedSlot.Handle).Methods(http.MethodDelete)

	// --- Календарь ---
	admin.HandleFunc("/calendar/events", calendarEvents.Handle).Methods(http.MethodGet)

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
