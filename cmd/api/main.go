package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logging"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/notify"
	"github.com/BruksfildServices01/clinic-scheduler/internal/routes"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg)

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	stores, closeStore, err := openStores(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to open storage")
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector("clinic", reg)

	publisher, closePublisher := newPublisher(cfg, logger)
	defer closePublisher()

	dispatcher := notify.NewDispatcher(publisher, cfg.NotificationQueueSize, logger, collector)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:     cfg,
		Stores:     stores,
		Dispatcher: dispatcher,
		Clock:      timezone.NewSystemClock(cfg.Timezone),
		Metrics:    collector,
		Logger:     logger,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		logger.Info().Str("addr", cfg.Addr()).Str("storage", cfg.StorageDriver).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("notification queue not drained")
	}
}

func openStores(cfg *config.Config, logger *zerolog.Logger) (routes.Stores, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		store := infraRepo.NewMemoryStore()
		seedDemo(store, logger)
		return routes.Stores{
			Bookings:      store,
			Schedules:     store,
			Notifications: store,
		}, func() {}, nil
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return routes.Stores{}, nil, err
	}

	closeDB := func() {
		if err := dbpkg.Close(db); err != nil {
			logger.Warn().Err(err).Msg("closing database")
		}
	}

	return routes.Stores{
		Bookings:      infraRepo.NewBookingGormRepository(db),
		Schedules:     infraRepo.NewScheduleGormRepository(db),
		Notifications: infraRepo.NewNotificationGormRepository(db),
	}, closeDB, nil
}

func newPublisher(cfg *config.Config, logger *zerolog.Logger) (notify.Publisher, func()) {
	if cfg.RedisAddr == "" {
		logger.Info().Msg("REDIS_ADDR not set, notifications are delivered to the log")
		return notify.NewLogPublisher(logger), func() {}
	}

	client := notify.NewRedisClient(cfg)
	return notify.NewRedisPublisher(client, cfg.NotificationChannelPrefix), func() {
		if err := client.Close(); err != nil {
			logger.Warn().Err(err).Msg("closing redis client")
		}
	}
}

// seedDemo gives the memory store one doctor and one patient so the API can
// be exercised without the identity service's database.
func seedDemo(store *infraRepo.MemoryStore, logger *zerolog.Logger) {
	doctor := store.PutDoctor(
		models.User{Name: "Ana Souza", Email: "doctor@clinic.local", Role: "doctor", IsActive: true},
		models.Doctor{ConsultationFee: 150, Experience: 8, Info: "General practice"},
	)
	patient := store.PutPatient(
		models.User{Name: "Bruno Lima", Email: "patient@clinic.local", Role: "patient", IsActive: true},
		models.Patient{Info: "Demo patient"},
	)

	logger.Info().
		Uint("doctor_id", doctor.UserID).
		Uint("patient_id", patient.UserID).
		Msg("memory store seeded")
}
