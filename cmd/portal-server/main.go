// cmd/portal-server/main.go
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

	"club-portal/internal/admin"
	"club-portal/internal/common/auth"
	"club-portal/internal/common/config"
	"club-portal/internal/common/database"
	"club-portal/internal/common/logger"
	"club-portal/internal/common/observability"
	"club-portal/internal/join"
	"club-portal/internal/notify"
	"club-portal/internal/server"
	"club-portal/internal/storage"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting portal server...",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Session verification against the external auth service ---
	sessions := auth.NewSessionClient(
		cfg.Auth.BaseURL,
		cfg.Auth.AnonKey,
		config.GetDuration(cfg.Auth.HTTPTimeout),
		redis.Client,
		time.Duration(cfg.Auth.CacheTTL)*time.Second,
	)

	// --- Notification channels ---
	senders := []notify.Sender{
		notify.NewTelegramSender(
			cfg.Notifications.Telegram.BaseURL,
			cfg.Notifications.Telegram.BotToken,
			cfg.Notifications.Telegram.ChatID,
			log,
		),
	}
	emailSender, err := notify.NewEmailSender(
		cfg.Notifications.Email.Enabled,
		cfg.Notifications.AWS.Region,
		cfg.Notifications.Email.FromEmail,
		cfg.Notifications.Email.ToEmail,
		log,
	)
	if err != nil {
		zapLog.Fatal("failed to create email sender", zap.Error(err))
	}
	senders = append(senders, emailSender)
	notifier := notify.NewNotifier(log, senders...)

	// --- Domain wiring ---
	store := storage.NewPostgresStore(pg.DB, log)
	manager := admin.NewManager(store, log)
	joinService := join.NewService(store, notifier, log)

	mux := server.NewRouter(server.Deps{
		Store:    store,
		Notifier: notifier,
		Manager:  manager,
		Join:     joinService,
		Sessions: sessions,
		Obs:      obs,
		Logger:   log,

		StorageTimeout: config.GetDuration(cfg.Server.StorageTimeout),
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      mux,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", cfg.Server.ListenAddr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down HTTP server", zap.Error(err))
	}

	zapLog.Info("Portal server stopped gracefully")
}
