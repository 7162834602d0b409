package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artifact-approval-service/internal/adapters/primary/http/handlers"
	"artifact-approval-service/internal/adapters/primary/http/middleware"
	"artifact-approval-service/internal/adapters/secondary/postgres"
	"artifact-approval-service/internal/config"
	"artifact-approval-service/internal/core/services"
	"artifact-approval-service/internal/metrics"
	"artifact-approval-service/internal/migration"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Apply schema migrations before accepting traffic. The two uniqueness
	// constraints created here are what the approval engine relies on.
	if err := migration.Run(cfg.Database.DSN()); err != nil {
		log.Fatalf("run migrations: %v", err)
	}
	log.Info("database schema up to date")

	// Create database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	// Secondary adapters (repositories)
	projectRepo := postgres.NewProjectRepository(pool)
	artifactRepo := postgres.NewArtifactRepository(pool)
	versionRepo := postgres.NewArtifactVersionRepository(pool)
	decisionRepo := postgres.NewApprovalDecisionRepository(pool)

	// Core services
	projectSvc := services.NewProjectService(projectRepo)
	artifactSvc := services.NewArtifactService(artifactRepo, projectRepo)
	versionSvc := services.NewArtifactVersionService(versionRepo, artifactRepo)
	approvalSvc := services.NewApprovalService(versionRepo, decisionRepo)

	collector := metrics.NewCollector("artifact_approval", prometheus.DefaultRegisterer)

	// Primary adapter (HTTP handlers)
	h := handlers.New(projectSvc, artifactSvc, versionSvc, approvalSvc, collector)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.Metrics(collector), gin.Recovery())

	api := router.Group("/api")
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
