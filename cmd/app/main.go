package main

import (
	"laundry/cmd"
	"laundry/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "laundry",
	Short:         "Laundry order workflow service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file read before the environment")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("laundry: %v", err)
	}
}

// loadConfig is shared by every subcommand.
func loadConfig() (cmd.Config, *zap.Logger, error) {
	cfg, err := cmd.LoadConfig(envFile)
	if err != nil {
		return cmd.Config{}, nil, err
	}
	l := logger.New(cfg.LogMode, logger.Options{Dir: cfg.LogDir})
	return cfg, l, nil
}
