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

	acceptJobHandler "github.com/urbanseva/booking-service/internal/api/handlers/accept_job"
	calculatePriceHandler "github.com/urbanseva/booking-service/internal/api/handlers/calculate_price"
	cancelJobHandler "github.com/urbanseva/booking-service/internal/api/handlers/cancel_job"
	createJobHandler "github.com/urbanseva/booking-service/internal/api/handlers/create_job"
	getAvailableDatesHandler "github.com/urbanseva/booking-service/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/urbanseva/booking-service/internal/api/handlers/get_available_slots"
	getJobHandler "github.com/urbanseva/booking-service/internal/api/handlers/get_job"
	getPricingRulesHandler "github.com/urbanseva/booking-service/internal/api/handlers/get_pricing_rules"
	getUserJobsHandler "github.com/urbanseva/booking-service/internal/api/handlers/get_user_jobs"
	updatePricingRulesHandler "github.com/urbanseva/booking-service/internal/api/handlers/update_pricing_rules"
	"github.com/urbanseva/booking-service/internal/api/middleware"
	"github.com/urbanseva/booking-service/internal/config"
	availabilityRepo "github.com/urbanseva/booking-service/internal/infra/storage/availability"
	jobRepo "github.com/urbanseva/booking-service/internal/infra/storage/job"
	rulesRepo "github.com/urbanseva/booking-service/internal/infra/storage/rules"
	catalogServiceClient "github.com/urbanseva/booking-service/internal/integrations/catalogservice"
	geoServiceClient "github.com/urbanseva/booking-service/internal/integrations/geoservice"
	jobsService "github.com/urbanseva/booking-service/internal/service/jobs"
	rulesService "github.com/urbanseva/booking-service/internal/service/rules"
	calculatePriceUC "github.com/urbanseva/booking-service/internal/usecase/calculate_price"
	createJobUC "github.com/urbanseva/booking-service/internal/usecase/create_job"
	getAvailableDatesUC "github.com/urbanseva/booking-service/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/urbanseva/booking-service/internal/usecase/get_available_slots"
	"github.com/urbanseva/booking-service/pkg/dbmetrics"
	"github.com/urbanseva/booking-service/pkg/logger"
	"github.com/urbanseva/booking-service/pkg/metrics"
	"github.com/urbanseva/booking-service/pkg/simpletxmanager"
	"github.com/urbanseva/booking-service/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (when enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure the connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Verify the connection
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize integration clients
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	geoClient := geoServiceClient.NewClient(
		cfg.GeoService.URL,
		time.Duration(cfg.GeoService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CatalogService=%s timeout=%ds, GeoService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout, cfg.GeoService.URL, cfg.GeoService.Timeout)

	// Initialize repositories (with or without metrics)
	var (
		jobRepository          *jobRepo.Repository
		rulesRepository        *rulesRepo.Repository
		availabilityRepository *availabilityRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		jobRepository = jobRepo.NewRepository(wrappedDB)
		rulesRepository = rulesRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		jobRepository = jobRepo.NewRepository(db)
		rulesRepository = rulesRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Initialize services
	jobsSvc := jobsService.NewService(jobRepository, log)
	rulesSvc := rulesService.NewService(rulesRepository, log)

	// Initialize use cases
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		availabilityRepository,
		rulesRepository,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		jobRepository,
		availabilityRepository,
		rulesRepository,
		log,
	)

	calculatePriceUseCase := calculatePriceUC.NewUseCase(
		catalogClient,
		geoClient,
		rulesRepository,
		log,
	)

	createJobUseCase := createJobUC.NewUseCase(
		jobRepository,
		availabilityRepository,
		rulesRepository,
		catalogClient,
		geoClient,
		txMgr,
		log,
	)

	// Initialize handlers
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	createJob := createJobHandler.NewHandler(createJobUseCase, log)
	getJob := getJobHandler.NewHandler(jobsSvc, log)
	cancelJob := cancelJobHandler.NewHandler(jobsSvc, log)
	acceptJob := acceptJobHandler.NewHandler(jobsSvc, log)
	getUserJobs := getUserJobsHandler.NewHandler(jobsSvc, log)
	getPricingRules := getPricingRulesHandler.NewHandler(rulesSvc, log)
	updatePricingRules := updatePricingRulesHandler.NewHandler(rulesSvc, log)

	// Configure the router
	r := mux.NewRouter()

	// Metrics middleware (when metrics are enabled)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (public, no authentication)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	// Bookable dates for a category
	api.HandleFunc("/availability/dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Hourly slot grid for a date
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Itemized price quote
	api.HandleFunc("/pricing/calculate", calculatePrice.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Jobs ---
	// Book a job
	protected.HandleFunc("/jobs", createJob.Handle).Methods(http.MethodPost)

	// Get a job by ID
	protected.HandleFunc("/jobs/{jobId}", getJob.Handle).Methods(http.MethodGet)

	// Cancel a job
	protected.HandleFunc("/jobs/{jobId}/cancel", cancelJob.Handle).Methods(http.MethodPatch)

	// Accept an open job (for workers)
	protected.HandleFunc("/jobs/{jobId}/accept", acceptJob.Handle).Methods(http.MethodPatch)

	// Job history of a user
	protected.HandleFunc("/users/{userId}/jobs", getUserJobs.Handle).Methods(http.MethodGet)

	// --- Pricing rules administration ---
	protected.HandleFunc("/pricing/rules", getPricingRules.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/pricing/rules", updatePricingRules.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/pricing/rules/{ruleId}", updatePricingRules.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/pricing/rules/{ruleId}", updatePricingRules.HandleDelete).Methods(http.MethodDelete)

	// Create the HTTP server
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

	// Wait for a termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Stop connection pool metrics collection
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
