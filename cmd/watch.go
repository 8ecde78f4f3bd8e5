package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	Command.AddCommand(watchCommand)
}

var watchCommand = &cobra.Command{
	Use:   "watch",
	Short: "Watch for clipboard changes",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		slog.Info("clipkeep watch starting", "version", Command.Version)

		eng, err := newEngine()
		if err != nil {
			return err
		}

		if !eng.Settings().AutoMonitor {
			slog.Warn("auto_monitor is disabled in settings, monitoring because watch was invoked explicitly")
		}

		// Retention runs once at startup, then on demand.
		if _, err := eng.Cleanup(cmd.Context()); err != nil {
			slog.Error("startup retention pass failed", "error", err)
		}

		eng.Start()
		<-cmd.Context().Done()
		eng.Stop()
		return nil
	},
}
