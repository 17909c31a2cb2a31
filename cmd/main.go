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

	cancelBookingHandler "github.com/weplay-team/WePlay-BookingService/internal/api/handlers/cancel_booking"
	cancelMatchHandler "github.com/weplay-team/WePlay-BookingService/internal/api/handlers/cancel_match"
	createBookingHandler "github.com/weplay-team/WePlay-BookingService/internal/api/handlers/create_booking"
	createMatchHandler "github.com/weplay-team/WePlay-BookingService/internal/api/handlers/create_match"
	getAvailableSlotsHandler "github.com/weplay-team/WePlay-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/weplay-team/WePlay-BookingService/internal/api/handlers/get_booking"
	getMatchHandler "github.com/weplay-team/WePlay-BookingService/internal/api/handlers/get_match"
	getRefundQuoteHandler "github.com/weplay-team/WePlay-BookingService/internal/api/handlers/get_refund_quote"
	getUserBookingsHandler "github.com/weplay-team/WePlay-BookingService/internal/api/handlers/get_user_bookings"
	joinMatchHandler "github.com/weplay-team/WePlay-BookingService/internal/api/handlers/join_match"
	leaveMatchHandler "github.com/weplay-team/WePlay-BookingService/internal/api/handlers/leave_match"
	updateMatchStatusHandler "github.com/weplay-team/WePlay-BookingService/internal/api/handlers/update_match_status"
	"github.com/weplay-team/WePlay-BookingService/internal/api/middleware"
	"github.com/weplay-team/WePlay-BookingService/internal/config"
	bookingRepo "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/booking"
	matchRepo "github.com/weplay-team/WePlay-BookingService/internal/infra/storage/match"
	facilityServiceClient "github.com/weplay-team/WePlay-BookingService/internal/integrations/facilityservice"
	paymentGatewayClient "github.com/weplay-team/WePlay-BookingService/internal/integrations/paymentgateway"
	bookingsService "github.com/weplay-team/WePlay-BookingService/internal/service/bookings"
	matchesService "github.com/weplay-team/WePlay-BookingService/internal/service/matches"
	cancelBookingUC "github.com/weplay-team/WePlay-BookingService/internal/usecase/cancel_booking"
	cancelMatchUC "github.com/weplay-team/WePlay-BookingService/internal/usecase/cancel_match"
	createBookingUC "github.com/weplay-team/WePlay-BookingService/internal/usecase/create_booking"
	createMatchUC "github.com/weplay-team/WePlay-BookingService/internal/usecase/create_match"
	getAvailableSlotsUC "github.com/weplay-team/WePlay-BookingService/internal/usecase/get_available_slots"
	getRefundQuoteUC "github.com/weplay-team/WePlay-BookingService/internal/usecase/get_refund_quote"
	joinMatchUC "github.com/weplay-team/WePlay-BookingService/internal/usecase/join_match"
	leaveMatchUC "github.com/weplay-team/WePlay-BookingService/internal/usecase/leave_match"
	transitionMatchUC "github.com/weplay-team/WePlay-BookingService/internal/usecase/transition_match"
	"github.com/weplay-team/WePlay-BookingService/pkg/dbmetrics"
	"github.com/weplay-team/WePlay-BookingService/pkg/logger"
	"github.com/weplay-team/WePlay-BookingService/pkg/metrics"
	"github.com/weplay-team/WePlay-BookingService/pkg/simpletxmanager"
	"github.com/weplay-team/WePlay-BookingService/pkg/txmanager"
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

	log.Info("Starting WePlay-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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
	facilityClient := facilityServiceClient.NewClient(
		cfg.FacilityService.URL,
		time.Duration(cfg.FacilityService.Timeout)*time.Second,
		log,
	)
	paymentClient := paymentGatewayClient.NewClient(
		cfg.PaymentGateway.URL,
		time.Duration(cfg.PaymentGateway.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (FacilityService=%s timeout=%ds, PaymentGateway=%s timeout=%ds)",
		cfg.FacilityService.URL, cfg.FacilityService.Timeout, cfg.PaymentGateway.URL, cfg.PaymentGateway.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		matchRepository   *matchRepo.Repository
	)

	// Интерфейс transaction manager, общий для usecases
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		matchRepository = matchRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		matchRepository = matchRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы чтения
	bookingSvc := bookingsService.NewService(bookingRepository, facilityClient, log)
	matchSvc := matchesService.NewService(matchRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, facilityClient, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, facilityClient, txMgr, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository, matchRepository, facilityClient, paymentClient, txMgr, log)
	getRefundQuoteUseCase := getRefundQuoteUC.NewUseCase(bookingRepository, log)
	createMatchUseCase := createMatchUC.NewUseCase(
		matchRepository, bookingRepository, facilityClient, txMgr, log)
	joinMatchUseCase := joinMatchUC.NewUseCase(
		matchRepository, bookingRepository, facilityClient, txMgr, log)
	leaveMatchUseCase := leaveMatchUC.NewUseCase(
		matchRepository, bookingRepository, paymentClient, txMgr, log)
	cancelMatchUseCase := cancelMatchUC.NewUseCase(
		matchRepository, bookingRepository, facilityClient, paymentClient, txMgr, log)
	transitionMatchUseCase := transitionMatchUC.NewUseCase(matchRepository, facilityClient, txMgr, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getRefundQuote := getRefundQuoteHandler.NewHandler(getRefundQuoteUseCase, log)
	createMatch := createMatchHandler.NewHandler(createMatchUseCase, log)
	getMatch := getMatchHandler.NewHandler(matchSvc, log)
	joinMatch := joinMatchHandler.NewHandler(joinMatchUseCase, log)
	leaveMatch := leaveMatchHandler.NewHandler(leaveMatchUseCase, log)
	updateMatchStatus := updateMatchStatusHandler.NewHandler(transitionMatchUseCase, log)
	cancelMatch := cancelMatchHandler.NewHandler(cancelMatchUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные часовые слоты корта на дату
	api.HandleFunc("/facilities/{facilityId}/courts/{courtId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Публичная карточка матча
	api.HandleFunc("/matches/{matchId}", getMatch.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/refund-quote", getRefundQuote.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Матчи ---
	protected.HandleFunc("/matches", createMatch.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/matches/{matchId}/join", joinMatch.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/matches/{matchId}/leave", leaveMatch.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/matches/{matchId}/status", updateMatchStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/matches/{matchId}/cancel", cancelMatch.Handle).Methods(http.MethodPatch)

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
