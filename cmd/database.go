package cmd

import (
	"context"
	"fmt"

	"laundry/internal/adapters/out/postgres"

	"github.com/cenkalti/backoff/v4"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenDatabase connects with exponential backoff until DB_CONNECT_TIMEOUT
// runs out. The database container usually starts alongside the service.
func OpenDatabase(ctx context.Context, cfg Config, l *zap.Logger) (*gorm.DB, error) {
	dialector := gormpostgres.Open(cfg.PostgresDSN())
	if cfg.DBDriver == DriverSQLite {
		dialector = sqlite.Open(cfg.DBDSN)
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = cfg.DBConnectTimeout

	var db *gorm.DB
	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		var err error
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			l.Warn("database not reachable yet", zap.Int("attempt", attempt), zap.Error(err))
		}
		return err
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.DBDriver, err)
	}
	l.Info("database connected", zap.String("driver", cfg.DBDriver), zap.Int("attempts", attempt))

	// Goose owns the PostgreSQL schema. SQLite has no migration files.
	if cfg.DBDriver == DriverSQLite {
		if err := db.AutoMigrate(postgres.Models()...); err != nil {
			return nil, fmt.Errorf("auto-migrate sqlite: %w", err)
		}
	}
	return db, nil
}
