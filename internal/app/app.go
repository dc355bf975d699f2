package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"wellness-service/internal/config"
	domainservice "wellness-service/internal/domain/service"
	cronpkg "wellness-service/internal/infrastructure/cron"
	"wellness-service/internal/infrastructure/kafka"
	infraredis "wellness-service/internal/infrastructure/redis"
	"wellness-service/internal/infrastructure/smtp"
	"wellness-service/internal/logger"
	"wellness-service/internal/service"
	"wellness-service/internal/transport/gateway"
	"wellness-service/internal/transport/grpc"
	"wellness-service/pkg/jwt"
)

// App represents the application
type App struct {
	config     *config.Config
	storage    *repositories
	handler    *grpc.Handler
	grpcServer *grpc.Server
	httpServer *gateway.Server
	dispatcher *cronpkg.ReminderDispatcher
	producer   *kafka.Producer
	consumer   *kafka.Consumer
	closers    []func() error
}

// New wires every component described by cfg
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{config: cfg}

	storage, err := openStorage(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}
	app.storage = storage

	if err := app.init(ctx); err != nil {
		app.close()
		return nil, err
	}
	return app, nil
}

func (a *App) init(ctx context.Context) error {
	cfg := a.config

	analyticsLoc, err := cfg.Analytics.Location()
	if err != nil {
		return err
	}
	schedulerLoc, err := cfg.Scheduler.Location()
	if err != nil {
		return err
	}

	var mailer domainservice.Mailer
	if cfg.SMTP.Enabled {
		client, err := smtp.NewClient(&cfg.SMTP, cfg.Notifications.TemplatesPath, schedulerLoc)
		if err != nil {
			return fmt.Errorf("failed to initialize SMTP client: %w", err)
		}
		mailer = client
		logger.Info("SMTP client initialized", "host", cfg.SMTP.Host)
	} else {
		logger.Info("SMTP is disabled, reminders are recorded without email")
	}

	notifications := service.NewNotificationService(a.storage.notifications, mailer, cfg.Notifications.Recipients)

	var publisher domainservice.ReminderPublisher
	if cfg.Kafka.Enabled {
		a.producer = kafka.NewProducer(&cfg.Kafka)
		a.consumer = kafka.NewConsumer(&cfg.Kafka, notifications)
		a.closers = append(a.closers, a.producer.Close, a.consumer.Close)
		publisher = a.producer
		logger.Info("Kafka pipeline initialized", "topic", cfg.Kafka.Topic, "brokers", cfg.Kafka.Brokers)
	} else {
		publisher = service.NewDirectPublisher(notifications)
	}

	var lock domainservice.FiringLock
	if cfg.Redis.Enabled {
		client, err := infraredis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		lock = infraredis.NewFiringLock(client)
		logger.Info("Connected to Redis", "addr", cfg.Redis.Addr)
	}

	repos := a.storage
	reminders := service.NewReminderService(repos.reminders, publisher, lock, schedulerLoc, cfg.Scheduler.LockTTL)

	a.handler = grpc.NewHandler(grpc.Services{
		Mood:          service.NewMoodService(repos.mood),
		Medications:   service.NewIntakeService(repos.medications),
		Supplements:   service.NewIntakeService(repos.supplements),
		Habits:        service.NewHabitService(repos.habits),
		Reminders:     reminders,
		Analytics:     service.NewAnalyticsService(repos.mood, repos.habits, repos.medications, repos.supplements, analyticsLoc),
		Export:        service.NewExportService(repos.mood, repos.medications, repos.supplements, repos.habits, repos.reminders),
		Notifications: notifications,
	})
	logger.Info("Services initialized")

	if cfg.Scheduler.Enabled {
		a.dispatcher = cronpkg.NewReminderDispatcher(reminders, cfg.Scheduler.Spec, schedulerLoc, 0)
		logger.Info("Reminder dispatcher initialized", "spec", cfg.Scheduler.Spec)
	} else {
		logger.Info("Reminder dispatcher is disabled in configuration")
	}

	a.grpcServer = grpc.NewServer(a.handler, &cfg.GRPC)

	if cfg.HTTP.Enabled {
		var tokens *jwt.TokenManager
		if cfg.Identity.Secret != "" {
			tokens = jwt.NewTokenManager(cfg.Identity.Secret, cfg.Identity.TokenTTL, cfg.Identity.Issuer)
		} else {
			logger.Warn("No identity secret configured, accepting X-User-ID and the default user", "default_user", cfg.Identity.DefaultUserID)
		}

		limiter := gateway.NewRateLimiter(cfg.HTTP.RateLimit, cfg.HTTP.RateWindow)
		router := gateway.NewRouter(
			gateway.NewHandler(a.handler, cfg.GRPC.Timeout),
			gateway.NewIdentity(tokens, cfg.Identity.DefaultUserID),
			limiter,
			&cfg.HTTP,
		)
		a.httpServer = gateway.NewServer(router, limiter, &cfg.HTTP)
	}

	return nil
}

// Run starts the application and blocks until SIGINT or SIGTERM
func (a *App) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.dispatcher != nil {
		if err := a.dispatcher.Start(); err != nil {
			return fmt.Errorf("failed to start reminder dispatcher: %w", err)
		}
	}

	if a.consumer != nil {
		go func() {
			if err := a.consumer.Start(ctx); err != nil {
				logger.Error("Kafka consumer stopped", "err", err)
			}
		}()
	}

	go func() {
		if err := a.grpcServer.Start(); err != nil {
			logger.Error("gRPC server error", "err", err)
			quit <- syscall.SIGTERM
		}
	}()

	if a.httpServer != nil {
		go func() {
			if err := a.httpServer.Start(); err != nil {
				logger.Error("HTTP server error", "err", err)
				quit <- syscall.SIGTERM
			}
		}()
	}

	logger.Info("Service started",
		"service", a.config.Service.Name,
		"environment", a.config.Service.Environment,
		"grpc_port", a.config.GRPC.Port,
		"http_enabled", a.config.HTTP.Enabled,
	)

	<-quit
	logger.Info("Shutting down server...")

	if a.httpServer != nil {
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), a.config.HTTP.ShutdownTimeout)
		if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP server shutdown error", "err", err)
		}
		cancelShutdown()
	}

	if a.dispatcher != nil {
		a.dispatcher.Stop()
	}

	a.grpcServer.Stop()
	cancel()
	a.close()

	logger.Info("Server shutdown complete")
	return nil
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Warn("Failed to close resource", "err", err)
		}
	}
	if a.storage != nil {
		a.storage.close()
	}
}
