package cmd

import (
	"context"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/adrg/xdg"
	"github.com/carapace-sh/carapace"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	pfset := Command.PersistentFlags()
	pfset.StringP("data", "d", filepath.Join(xdg.DataHome, "clipkeep"),
		"set data directory")
	pfset.CountP("verbose", "v", "set log level")
	pfset.BoolP("quiet", "q", false, "suppress all the logs")

	viper.SetEnvPrefix("clipkeep")
	viper.AutomaticEnv()

	carapace.Gen(Command)
}

// Command is the root command for clipkeep
var Command = &cobra.Command{
	Use:   "clipkeep",
	Short: "A clipboard history manager",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		viper.BindPFlags(cmd.Flags())

		level := log.ErrorLevel - (log.Level(viper.GetInt("verbose") * 4))
		if viper.GetBool("quiet") {
			level = math.MaxInt
		}

		logger := log.NewWithOptions(os.Stderr, log.Options{
			TimeFormat: time.RFC822,
			Level:      level,
		})

		slog.SetDefault(slog.New(logger))

		return nil
	},
}

// Execute runs the cobra cli
func Execute(version string) {
	err := fang.Execute(
		context.Background(),
		Command,
		fang.WithNotifySignal(syscall.SIGINT, syscall.SIGTERM),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
	)
	if err != nil {
		os.Exit(1)
	}
}
