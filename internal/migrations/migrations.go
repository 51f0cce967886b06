// Package migrations carries the PostgreSQL schema as goose SQL migrations.
// SQLite setups keep using GORM auto-migration.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed postgres/*.sql
var Postgres embed.FS

// Open connects through lib/pq; goose works on database/sql.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Runner applies the embedded migrations.
type Runner struct {
	provider *goose.Provider
	logger   *zap.Logger
}

func NewRunner(db *sql.DB, l *zap.Logger) (*Runner, error) {
	fsys, err := fs.Sub(Postgres, "postgres")
	if err != nil {
		return nil, err
	}
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}
	return &Runner{provider: provider, logger: l}, nil
}

// Up migrates to the latest version.
func (r *Runner) Up(ctx context.Context) error {
	results, err := r.provider.Up(ctx)
	for _, res := range results {
		r.log(res)
	}
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down rolls back the latest migration.
func (r *Runner) Down(ctx context.Context) error {
	res, err := r.provider.Down(ctx)
	if res != nil {
		r.log(res)
	}
	if err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Status reports every known migration and whether it is applied.
func (r *Runner) Status(ctx context.Context) ([]*goose.MigrationStatus, error) {
	return r.provider.Status(ctx)
}

func (r *Runner) log(res *goose.MigrationResult) {
	if res.Error != nil {
		r.logger.Error("migration failed",
			zap.Int64("version", res.Source.Version),
			zap.String("direction", res.Direction),
			zap.Error(res.Error))
		return
	}
	r.logger.Info("migration applied",
		zap.Int64("version", res.Source.Version),
		zap.String("direction", res.Direction),
		zap.Duration("duration", res.Duration))
}
