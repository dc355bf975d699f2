package app

import (
	"context"
	"fmt"
	"wellness-service/internal/config"
	"wellness-service/internal/domain/repository"
	infradb "wellness-service/internal/infrastructure/db"
	"wellness-service/internal/infrastructure/postgres"
	"wellness-service/internal/infrastructure/sqlite"
	"wellness-service/internal/logger"
)

// repositories is the storage layer for one configured driver
type repositories struct {
	mood          repository.MoodRepository
	medications   repository.IntakeRepository
	supplements   repository.IntakeRepository
	habits        repository.HabitRepository
	reminders     repository.ReminderRepository
	notifications repository.NotificationRepository
	close         func()
}

func openStorage(ctx context.Context, cfg *config.DatabaseConfig) (*repositories, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := infradb.NewPostgresPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		if err := infradb.Bootstrap(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("Connected to PostgreSQL", "host", cfg.Host, "database", cfg.Database)

		return &repositories{
			mood:          postgres.NewMoodRepository(pool),
			medications:   postgres.NewMedicationRepository(pool),
			supplements:   postgres.NewSupplementRepository(pool),
			habits:        postgres.NewHabitRepository(pool),
			reminders:     postgres.NewReminderRepository(pool),
			notifications: postgres.NewNotificationRepository(pool),
			close:         pool.Close,
		}, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite store: %w", err)
		}
		logger.Info("Opened SQLite store", "path", store.Path())

		return &repositories{
			mood:          sqlite.NewMoodRepository(store),
			medications:   sqlite.NewMedicationRepository(store),
			supplements:   sqlite.NewSupplementRepository(store),
			habits:        sqlite.NewHabitRepository(store),
			reminders:     sqlite.NewReminderRepository(store),
			notifications: sqlite.NewNotificationRepository(store),
			close: func() {
				if err := store.Close(); err != nil {
					logger.Warn("Failed to close SQLite store", "err", err)
				}
			},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
