package main

import (
	"context"
	"errors"
	"masterblog/internal/adapters/httpapi"
	"masterblog/internal/adapters/logsink"
	"masterblog/internal/adapters/memory"
	redisadapter "masterblog/internal/adapters/redis"
	"masterblog/internal/config"
	"masterblog/internal/core/post"
	postapp "masterblog/internal/core/post/service"
	activityPort "masterblog/internal/ports/activity"
	"masterblog/internal/workers"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg, envLoaded := config.Init() // بارگذاری تنظیمات از .env
	config.InitLogger(cfg.AppEnv)
	defer config.Logger.Sync() // flush buffer

	if !envLoaded {
		config.Logger.Info("No .env file found, using system environment variables")
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// اتصال به Redis (اختیاری)
	redisClient, err := config.InitRedis(ctx, cfg)
	if err != nil {
		config.Logger.Fatal("Error connecting to Redis:", zap.Error(err))
	}
	defer closeResources(config.Logger, redisClient)

	postRepo := memory.NewPostRepositoryMemory(post.Seed())                   // آداپتر خروجی
	activityQueue := memory.NewActivityQueueMemory(cfg.ActivityQueueSize)     // آداپتر خروجی
	publisher := newActivityPublisher(cfg, redisClient, config.Logger)        // آداپتر خروجی
	postSvc := postapp.NewPostService(postRepo, activityQueue, config.Logger) // یوزکیس/سرویس
	r := httpapi.SetupRoutes(postSvc, config.Logger)                          // تزریق یوزکیس به آداپتر ورودی
	// -------------------------------------------

	activityWorker := workers.NewActivityWorker(activityQueue, publisher, cfg.ActivityBatchSize, time.Second, config.Logger)

	workerDone := make(chan struct{})
	// اجرای worker در پس‌زمینه
	go func() {
		defer close(workerDone)
		activityWorker.Run(ctx)
	}()

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		config.Logger.Info("App is running...", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Fatal("Server failed to start:", zap.Error(err))
		}
	}()

	<-ctx.Done()
	config.Logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.Error("Error during server shutdown:", zap.Error(err))
	}
	<-workerDone
}

// بدون Redis رویدادها فقط لاگ می‌شوند
func newActivityPublisher(cfg *config.Config, client *redis.Client, logger *zap.Logger) activityPort.ActivityPublisher {
	if client == nil {
		return logsink.NewPublisher(logger)
	}
	return redisadapter.NewActivityRepositoryRedis(client, cfg.ActivityMaxLen, logger)
}

// closeResources بستن اتصال Redis بعد از اتمام کار سرور
func closeResources(logger *zap.Logger, client *redis.Client) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}
}
