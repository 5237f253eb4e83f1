package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/meeting-slots/internal/audit"
	"github.com/BruksfildServices01/meeting-slots/internal/cache"
	"github.com/BruksfildServices01/meeting-slots/internal/config"
	dbpkg "github.com/BruksfildServices01/meeting-slots/internal/db"
	"github.com/BruksfildServices01/meeting-slots/internal/domain/slot"
	"github.com/BruksfildServices01/meeting-slots/internal/logger"
	"github.com/BruksfildServices01/meeting-slots/internal/middleware"
	"github.com/BruksfildServices01/meeting-slots/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	policy, err := cfg.Policy()
	if err != nil {
		zl.Fatal("invalid scheduling policy", zap.Error(err))
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		zl.Fatal("database unavailable", zap.Error(err))
	}

	var slotCache cache.SlotCache = cache.Noop{}
	if cfg.CacheEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		cancel()
		if err != nil {
			zl.Warn("redis unavailable, slot cache disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			defer client.Close()
			slotCache = cache.NewRedisCache(client, cfg.CacheTTL)
		}
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), zl, cfg.AuditQueueSize)
	defer auditDispatcher.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(zl),
		middleware.CORSMiddleware(),
	)

	deps := routes.GormDeps(db)
	deps.Suggester = slot.NewSuggester(policy)
	deps.Cache = slotCache
	deps.Auditor = auditDispatcher
	deps.Log = zl

	routes.RegisterRoutes(r, routes.NewHandlers(deps), cfg.JWTSecret)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}
