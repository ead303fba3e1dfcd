package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-dashboard/internal/audit"
	"github.com/BruksfildServices01/salon-dashboard/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-dashboard/internal/db"
	domain "github.com/BruksfildServices01/salon-dashboard/internal/domain/dashboard"
	"github.com/BruksfildServices01/salon-dashboard/internal/handlers"
	"github.com/BruksfildServices01/salon-dashboard/internal/infra/images"
	infraRepo "github.com/BruksfildServices01/salon-dashboard/internal/infra/repository"
	"github.com/BruksfildServices01/salon-dashboard/internal/infra/upstream"
	"github.com/BruksfildServices01/salon-dashboard/internal/logger"
	"github.com/BruksfildServices01/salon-dashboard/internal/metrics"
	"github.com/BruksfildServices01/salon-dashboard/internal/routes"
	"github.com/BruksfildServices01/salon-dashboard/internal/timezone"
	ucDashboard "github.com/BruksfildServices01/salon-dashboard/internal/usecase/dashboard"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	var db *gorm.DB
	if cfg.DBUrl != "" {
		var err error
		if db, err = dbpkg.NewDB(cfg); err != nil {
			log.WithError(err).Fatal("failed to open database")
		}
	}

	// ======================================================
	// INFRA
	// ======================================================
	source := newSource(cfg, db)

	var recorder audit.Recorder = audit.NewLogRecorder(log)
	if db != nil {
		recorder = audit.NewGormRecorder(db)
	}
	auditDispatcher := audit.NewDispatcher(recorder, log, 100)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := ucDashboard.Options{
		Clock:        domain.LocalClock{Location: timezone.Location(cfg.Timezone)},
		Images:       newImageResolver(cfg, log),
		DefaultImage: cfg.DefaultStepImage,
		Log:          log,
		Metrics:      metrics.New(reg),
		Audit:        auditDispatcher,
	}

	// ======================================================
	// USE CASES / HANDLERS
	// ======================================================
	dashboardHandler := handlers.NewDashboardHandler(
		ucDashboard.NewComputeDashboard(source, opts),
		ucDashboard.NewComputeMetricDetail(source, opts),
	)

	var auditLogsHandler *handlers.AuditLogsHandler
	if db != nil {
		auditLogsHandler = handlers.NewAuditLogsHandler(audit.NewStore(db))
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:    cfg,
		Log:       log,
		Gatherer:  reg,
		Dashboard: dashboardHandler,
		Me:        handlers.NewMeHandler(),
		AuditLogs: auditLogsHandler,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{"addr": cfg.Addr(), "source": cfg.Source}).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
	auditDispatcher.Close()
	log.Info("server stopped")
}

func newSource(cfg *config.Config, db *gorm.DB) domain.Source {
	if cfg.Source == config.SourceDB {
		return infraRepo.NewDashboardGormRepository(db)
	}

	client := upstream.NewClient(upstream.ClientConfig{
		BaseURL:       cfg.UpstreamBaseURL,
		Timeout:       cfg.UpstreamTimeout,
		RPS:           cfg.UpstreamRPS,
		Retries:       cfg.UpstreamRetries,
		SigningSecret: cfg.JWTSecret,
	}, nil)
	return upstream.NewSource(client)
}

func newImageResolver(cfg *config.Config, log logrus.FieldLogger) domain.ImageResolver {
	static := images.StaticResolver{BaseURL: cfg.ImageBaseURL}
	if cfg.S3Bucket == "" {
		return static
	}

	return images.NewS3Resolver(images.S3Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Endpoint:  cfg.S3Endpoint,
		TTL:       cfg.S3PresignTTL,
	}, static, log)
}
