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

	createAppointmentHandler "github.com/cortefacil/booking-service/internal/api/handlers/create_appointment"
	eventsHandler "github.com/cortefacil/booking-service/internal/api/handlers/events"
	getAnnouncementHandler "github.com/cortefacil/booking-service/internal/api/handlers/get_announcement"
	getAnnouncementHistoryHandler "github.com/cortefacil/booking-service/internal/api/handlers/get_announcement_history"
	getAvailableSlotsHandler "github.com/cortefacil/booking-service/internal/api/handlers/get_available_slots"
	getRevenueReportHandler "github.com/cortefacil/booking-service/internal/api/handlers/get_revenue_report"
	getServicesHandler "github.com/cortefacil/booking-service/internal/api/handlers/get_services"
	listAppointmentsHandler "github.com/cortefacil/booking-service/internal/api/handlers/list_appointments"
	saveAnnouncementHandler "github.com/cortefacil/booking-service/internal/api/handlers/save_announcement"
	updateAppointmentStatusHandler "github.com/cortefacil/booking-service/internal/api/handlers/update_appointment_status"
	"github.com/cortefacil/booking-service/internal/api/middleware"
	"github.com/cortefacil/booking-service/internal/config"
	"github.com/cortefacil/booking-service/internal/events"
	announcementRepo "github.com/cortefacil/booking-service/internal/infra/storage/announcement"
	appointmentRepo "github.com/cortefacil/booking-service/internal/infra/storage/appointment"
	announcementsService "github.com/cortefacil/booking-service/internal/service/announcements"
	appointmentsService "github.com/cortefacil/booking-service/internal/service/appointments"
	reportsService "github.com/cortefacil/booking-service/internal/service/reports"
	createAppointmentUC "github.com/cortefacil/booking-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/cortefacil/booking-service/internal/usecase/get_available_slots"
	"github.com/cortefacil/booking-service/pkg/dbmetrics"
	"github.com/cortefacil/booking-service/pkg/logger"
	"github.com/cortefacil/booking-service/pkg/metrics"
	"github.com/cortefacil/booking-service/pkg/simpletxmanager"
	"github.com/cortefacil/booking-service/pkg/txmanager"
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

	log.Info("Starting CorteFacil booking service...")
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

	// Шина событий изменения данных (для SSE потока)
	bus := events.NewBus()

	// Рабочие часы барбершопа
	hours := cfg.Business.Hours()
	log.Info("Business hours: %02d:00-%02d:00, slot interval %d min, closed on %s",
		hours.OpeningHour, hours.ClosingHour, hours.SlotIntervalMinutes, "Sunday")

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		announcementRepository *announcementRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		announcementRepository = announcementRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		announcementRepository = announcementRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, bus, log)
	announcementsSvc := announcementsService.NewService(announcementRepository, txMgr, bus, log)
	reportsSvc := reportsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		txMgr,
		bus,
		hours,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		hours,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getServices := getServicesHandler.NewHandler(log)
	getAnnouncement := getAnnouncementHandler.NewHandler(announcementsSvc, log)
	eventsStream := eventsHandler.NewHandler(bus, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getAnnouncementHistory := getAnnouncementHistoryHandler.NewHandler(announcementsSvc, log)
	saveAnnouncement := saveAnnouncementHandler.NewHandler(announcementsSvc, log)
	getRevenueReport := getRevenueReportHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Текущее состояние баннера объявлений
	api.HandleFunc("/announcement", getAnnouncement.Handle).Methods(http.MethodGet)

	// SSE поток событий изменения данных
	api.HandleFunc("/events", eventsStream.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	// Список записей (опционально за дату)
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Изменение статуса записи
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// История объявлений
	admin.HandleFunc("/announcements/history", getAnnouncementHistory.Handle).Methods(http.MethodGet)

	// Сохранение состояния баннера
	admin.HandleFunc("/announcement", saveAnnouncement.Handle).Methods(http.MethodPut)

	// Отчёт по выручке
	admin.HandleFunc("/reports/revenue", getRevenueReport.Handle).Methods(http.MethodGet)

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
