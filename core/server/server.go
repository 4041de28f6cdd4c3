package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mentorhub/core/cache"
	"mentorhub/core/config"
	"mentorhub/core/constants"
	"mentorhub/core/database"
	"mentorhub/core/logger"
	"mentorhub/core/middleware"
	"mentorhub/modules/appointment"
	"mentorhub/modules/auth"
	"mentorhub/modules/directory"
	directoryrepo "mentorhub/modules/directory/repository"
	"mentorhub/modules/monitoring"
	"mentorhub/modules/notification"
	"mentorhub/modules/notification/reminder"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run boots the whole service: config, logging, database and migrations,
// redis, the HTTP surface, the asynq worker and the reminder cron job.
// It blocks until the process receives SIGINT or SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Environment)
	logger.Info("Server:Run:Start", "environment", cfg.Environment)

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), time.Minute)
	defer cancelMigrate()
	if err := db.Migrate(migrateCtx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	redisCache := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisCache.Ping(context.Background()); err != nil {
		logger.Warn("Server:Run:RedisPingFailed", "error", err)
	}

	mw := middleware.NewMiddleware(redisCache)

	e := echo.New()
	e.HideBanner = true
	e.Use(mw.RequestID())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	asynqOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	asynqClient := asynq.NewClient(asynqOpt)
	defer asynqClient.Close()

	// Module wiring. Notification hands back the producer the appointment
	// module publishes through and the handler the worker consumes with.
	producer, handler := notification.Init(e, database.GetDB(), mw, asynqClient)
	auth.Init(e, database.GetDB(), redisCache, mw)
	directory.Init(e, database.GetDB(), mw)
	apptRepo := appointment.Init(e, database.GetDB(), mw, producer)
	monitoring.Init(e, database.GetDB(), mw)

	asynqServer := asynq.NewServer(asynqOpt, asynq.Config{Concurrency: 5})
	asynqMux := asynq.NewServeMux()
	asynqMux.HandleFunc(constants.TaskTypeAppointmentNotify, handler.HandleAppointmentNotify)

	go func() {
		if err := asynqServer.Run(asynqMux); err != nil {
			logger.Error("Server:Run:AsynqServer:Error:", err)
		}
	}()

	reminderJob := reminder.NewReminder(
		cfg.Scheduler.ReminderCron,
		apptRepo,
		directoryrepo.NewDirectoryRepository(database.GetDB()),
		producer,
	)
	if err := reminderJob.Start(); err != nil {
		return fmt.Errorf("start reminder job: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server:Run:Start:Error:", err)
		}
	}()
	logger.Info("Server:Run:Listening", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server:Run:ShuttingDown")

	reminderJob.Stop()
	asynqServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server:Run:Stopped")
	return nil
}
