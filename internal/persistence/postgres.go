package persistence

import (
	"context"
	"fmt"
	"log/slog"

	persistenceconfig "github.com/KasumiMercury/primind-task-api/internal/config/persistence"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Postgres struct {
	db *gorm.DB
}

// OpenPostgres connects and migrates the given models.
func OpenPostgres(ctx context.Context, cfg *persistenceconfig.Config, models ...any) (*Postgres, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	p := &Postgres{db: db}

	if err := p.Ping(ctx); err != nil {
		_ = p.Close(ctx)

		return nil, err
	}

	if len(models) > 0 {
		if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
			_ = p.Close(ctx)

			return nil, fmt.Errorf("%w: migrate: %v", ErrConnect, err)
		}
	}

	slog.InfoContext(ctx, "connected to postgres", slog.Int("migrated_models", len(models)))

	return p, nil
}

func (p *Postgres) DB() *gorm.DB {
	return p.db
}

func (p *Postgres) Name() string {
	return "postgres"
}

func (p *Postgres) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPing, err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrPing, err)
	}

	return nil
}

func (p *Postgres) Close(_ context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
