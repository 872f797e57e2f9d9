// Package main запускает HTTP-сервис алертов и уведомлений.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alerting-platform/internal/config"
	httpapi "alerting-platform/internal/http"
	"alerting-platform/internal/repository"
	"alerting-platform/internal/scheduler"
	"alerting-platform/internal/service"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Чтение конфигурации из ENV
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Подключение к БД
	db, err := repository.NewPostgres(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer db.Pool.Close()

	// 1. Инициализация репозиториев
	userRepo := repository.NewUserRepo(db)
	teamRepo := repository.NewTeamRepo(db)
	alertRepo := repository.NewAlertRepo(db)
	deliveryRepo := repository.NewDeliveryRepo(db)
	analyticsRepo := repository.NewAnalyticsRepo(db)

	// 2. Инициализация менеджера транзакций
	txManager := repository.NewTransactionManager(db)

	// 3. Инициализация сервисов
	userService := service.NewUserService(userRepo)
	teamService := service.NewTeamService(teamRepo)
	alertService := service.NewAlertService(alertRepo, deliveryRepo, userRepo, teamRepo, txManager)
	deliveryService := service.NewDeliveryService(deliveryRepo, alertRepo, userRepo)

	// 4. Планировщик напоминаний
	reminderScheduler := scheduler.New(alertService, cfg.ReminderPollInterval, logger)
	go reminderScheduler.Run(ctx)

	analyticsService := service.NewAnalyticsService(analyticsRepo, reminderScheduler.IsRunning)

	// 5. Инициализация HTTP-обработчика
	handler := httpapi.NewHandler(alertService, userService, teamService, deliveryService, analyticsService, logger)

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server",
			slog.String("addr", server.Addr),
			slog.String("env", cfg.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
