// Package testdb opens migrated databases for repository and workflow tests.
package testdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres"
	"laundry/internal/migrations"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite returns a file-backed SQLite database in t's temp dir with every
// table migrated.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "laundry.db") +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(postgres.Models()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Postgres is a throwaway PostgreSQL container migrated with goose.
type Postgres struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
}

// StartPostgres runs postgres:15-alpine. Callers terminate it with Stop.
func StartPostgres(ctx context.Context) (*Postgres, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = migrate(ctx, dsn); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Postgres{Container: container, DB: db}, nil
}

// migrate applies the shipped goose migrations.
func migrate(ctx context.Context, dsn string) error {
	sqlDB, err := migrations.Open(dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	runner, err := migrations.NewRunner(sqlDB, zap.NewNop())
	if err != nil {
		return err
	}
	return runner.Up(ctx)
}

// Truncate empties every table between tests.
func (p *Postgres) Truncate() error {
	return p.DB.Exec(`TRUNCATE TABLE orders, order_status_history, order_staff_assignments,
		branches, branch_holidays, staff, staff_current_orders,
		logistics_partners, logistics_partner_coverage, order_number_sequences`).Error
}

func (p *Postgres) Stop(ctx context.Context) error {
	return p.Container.Terminate(ctx)
}
