package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kindoblue/jakarta10-tutoring/config"
	"github.com/kindoblue/jakarta10-tutoring/internal/api/handler"
	"github.com/kindoblue/jakarta10-tutoring/internal/api/router"
	"github.com/kindoblue/jakarta10-tutoring/internal/repository"
	"github.com/kindoblue/jakarta10-tutoring/internal/service"
	"github.com/kindoblue/jakarta10-tutoring/pkg/database"
	applogger "github.com/kindoblue/jakarta10-tutoring/pkg/logger"
	"github.com/kindoblue/jakarta10-tutoring/pkg/redis"
)

func main() {
	// 1. Load configuration.
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logging.
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting office layout service",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Connect to PostgreSQL.
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	logger.Info("database connected")

	// 3.1 Apply schema migrations.
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to obtain sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// 4. Connect to Redis. Optional: rate limiting degrades to
	// pass-through when Redis is unavailable.
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis connection failed, rate limiting disabled", zap.Error(err))
		rdb = nil
	}

	// 5. Dependency injection: Repository → Service → Handler.
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, logger)
	h := handler.NewHandler(svc)

	// 6. Build the router.
	engine := router.Setup(cfg, h, rdb, logger)

	// 7. Serve HTTP with graceful shutdown.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// 8. Wait for a termination signal, then shut down.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	closeDB, _ := db.DB()
	if closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
