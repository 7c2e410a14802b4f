package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/export"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/routes"
	"github.com/BruksfildServices01/clinic-scheduler/internal/seed"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

const horizonRefreshInterval = time.Hour

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log, err := logger.New(cfg.IsProduction())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc := timezone.Location(cfg.Timezone)
	clock := timezone.SystemClock(loc)

	// ======================================================
	// SEED
	// ======================================================
	dataset := seed.Default()
	if cfg.SeedFile != "" {
		if dataset, err = seed.LoadFile(cfg.SeedFile); err != nil {
			return err
		}
	}
	snap := dataset.Expand(clock(), cfg.SeedHorizonDays, cfg.AppointmentDuration())

	// ======================================================
	// STORE + AUDIT SINK
	// ======================================================
	var (
		store     routes.Store
		windows   seed.WindowWriter
		sink      audit.Sink
		auditLogs *audit.GormSink
	)

	if cfg.UsesDatabase() {
		db, err := dbpkg.NewDB(cfg, log)
		if err != nil {
			return err
		}
		if err := dbpkg.Seed(ctx, db, snap, log); err != nil {
			return err
		}
		gormStore := repository.NewAppointmentGormRepository(db)
		store, windows = gormStore, gormStore
		auditLogs = audit.NewGormSink(db)
		sink = auditLogs
		log.Info("using postgres store")
	} else {
		memStore := repository.NewMemoryStore(snap, clock)
		store, windows = memStore, memStore
		sink = audit.NewZapSink(log)
		log.Info("using in-memory store", zap.Int("horizon_days", cfg.SeedHorizonDays))
	}

	dispatcher := audit.NewDispatcher(sink, log)
	defer dispatcher.Close()

	// The seed covers SeedHorizonDays from boot; keep that window sliding.
	refresher := seed.NewHorizonRefresher(dataset, windows, clock, cfg.SeedHorizonDays, log)
	go refresher.Run(ctx, horizonRefreshInterval)

	// ======================================================
	// DOCTOR LOCK
	// ======================================================
	var locker lock.Locker = lock.NewKeyedMutex()
	if cfg.UsesRedis() {
		rdb, err := lock.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()

		locker = lock.NewRedisLocker(rdb, cfg.LockTTL(), log)
		log.Info("using redis doctor lock", zap.String("addr", cfg.RedisAddr))
	}

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	deps := routes.Deps{
		Store:  store,
		Locker: locker,
		Audit:  dispatcher,
		Settings: ucAppointment.Settings{
			Location: loc,
			Duration: cfg.AppointmentDuration(),
			Clock:    clock,
		},
		Log:                log,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	}
	if auditLogs != nil {
		deps.AuditLogs = auditLogs
	}
	if cfg.ExportEnabled() {
		deps.Uploader = export.NewS3Uploader(export.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		log.Info("report export enabled", zap.String("bucket", cfg.S3Bucket))
	}

	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("timezone", loc.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
