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

	cancelBookingHandler "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/api/handlers/check_availability"
	createBookingHandler "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/api/handlers/create_booking"
	getBookingHandler "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/api/handlers/get_booking"
	getQuoteHandler "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/api/handlers/get_quote"
	getRenterBookingsHandler "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/api/handlers/get_renter_bookings"
	getUnavailableTimesHandler "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/api/handlers/get_unavailable_times"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/api/middleware"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/config"
	bookingRepo "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/infra/storage/booking"
	vehicleServiceClient "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/integrations/vehicleservice"
	bookingsService "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/service/bookings"
	checkAvailabilityUC "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/usecase/check_availability"
	createBookingUC "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/usecase/create_booking"
	getQuoteUC "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/usecase/get_quote"
	getUnavailableTimesUC "github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/internal/usecase/get_unavailable_times"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/dbmetrics"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/logger"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/metrics"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/simpletxmanager"
	"github.com/Ha-Xuan-Hau/SU25-SE490-G78-RFT-sub001/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting RFT-BookingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	vehicleClient := vehicleServiceClient.NewClient(
		cfg.VehicleService.URL,
		time.Duration(cfg.VehicleService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (VehicleService=%s timeout=%ds)",
		cfg.VehicleService.URL, cfg.VehicleService.Timeout)

	var bookingRepository *bookingRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(bookingRepository, log)

	getUnavailableTimesUseCase := getUnavailableTimesUC.NewUseCase(bookingRepository, vehicleClient, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, vehicleClient, log)
	getQuoteUseCase := getQuoteUC.NewUseCase(vehicleClient, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, vehicleClient, txMgr, log)

	getUnavailableTimes := getUnavailableTimesHandler.NewHandler(getUnavailableTimesUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getRenterBookings := getRenterBookingsHandler.NewHandler(bookingSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: the booking calendar is visible before login.
	api.HandleFunc("/vehicles/{vehicleId}/unavailable-times",
		getUnavailableTimes.Handle).Methods(http.MethodGet)

	api.HandleFunc("/vehicles/{vehicleId}/check-availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	api.HandleFunc("/vehicles/{vehicleId}/quote",
		getQuote.Handle).Methods(http.MethodGet)

	// Protected routes require the X-User-ID header.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/users/{userId}/bookings", getRenterBookings.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
