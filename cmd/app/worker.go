package main

import (
	"laundry/cmd"

	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume the status notification queue",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, l, err := loadConfig()
		if err != nil {
			return err
		}
		defer func() { _ = l.Sync() }()

		// Run blocks until SIGINT or SIGTERM.
		return cmd.NewNotificationWorker(cfg, l).Run()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
