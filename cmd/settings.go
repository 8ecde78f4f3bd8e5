package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/clipkeep/clipkeep/internal/settings"
)

func init() {
	settingsCommand.AddCommand(settingsSetCommand)
	Command.AddCommand(settingsCommand)
}

var settingsCommand = &cobra.Command{
	Use:   "settings",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := settingsStore().Load()
		data, err := json.MarshalIndent(cfg, "", "    ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var settingsSetCommand = &cobra.Command{
	Use:   "set key value",
	Short: "Change one setting and persist it",
	Example: `
  clipkeep settings set retention_days 14
  clipkeep settings set skip_sensitive false
  `,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := settingsStore()
		cfg := st.Load()
		if err := apply(&cfg, args[0], args[1]); err != nil {
			return err
		}
		return st.Save(cfg)
	},
}

func apply(cfg *settings.Settings, key, value string) error {
	var err error
	switch key {
	case "min_text_length":
		cfg.MinTextLength, err = cast.ToIntE(value)
	case "max_image_size_mb":
		cfg.MaxImageSizeMB, err = cast.ToIntE(value)
	case "auto_monitor":
		cfg.AutoMonitor, err = cast.ToBoolE(value)
	case "organize_by_date":
		cfg.OrganizeByDate, err = cast.ToBoolE(value)
	case "show_notifications":
		cfg.ShowNotifications, err = cast.ToBoolE(value)
	case "skip_sensitive":
		cfg.SkipSensitive, err = cast.ToBoolE(value)
	case "retention_days":
		cfg.RetentionDays, err = cast.ToIntE(value)
	case "max_entries":
		cfg.MaxEntries, err = cast.ToIntE(value)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return err
}
