package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"laundry/cmd"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API and run the scheduled jobs",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, l, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := cmd.OpenDatabase(ctx, cfg, l)
	if err != nil {
		return err
	}
	root := cmd.NewCompositionRoot(cfg, db, l)
	defer func() {
		if err := root.Close(); err != nil {
			l.Warn("shutdown finished with errors", zap.Error(err))
		}
	}()

	e, err := root.Router()
	if err != nil {
		return err
	}

	jobs := root.JobManager()
	if err := jobs.StartAll(); err != nil {
		return err
	}
	defer jobs.StopAll()

	serveErr := make(chan error, 1)
	go func() {
		l.Info("http server listening", zap.String("addr", cfg.Addr()))
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	l.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
