package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(cleanupCommand)
}

var cleanupCommand = &cobra.Command{
	Use:   "cleanup",
	Short: "Evict entries past the retention policy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		n, err := eng.Cleanup(cmd.Context())
		if err != nil {
			return err
		}
		slog.Info("Retention pass finished", "deleted-items", n)
		return nil
	},
}
