package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clipkeep/clipkeep/pkg/clipboard"
)

func init() {
	historyCommand.Flags().IntP("limit", "l", 50, "maximum number of entries to show")
	Command.AddCommand(historyCommand)
}

// collapse squashes a preview onto one line for terminal output.
func collapse(e clipboard.Entry) string {
	out := strings.Join(strings.Fields(e.Preview), " ")
	if len(out) > 100 {
		out = out[:100]
	}
	return out
}

var historyCommand = &cobra.Command{
	Use:   "history",
	Short: "List recent clipboard history",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		entries, err := eng.History(cmd.Context(), viper.GetInt("limit"))
		if err != nil {
			return err
		}

		for _, e := range entries {
			fmt.Printf("%d\t%s\t%s\t%s\t%s\n",
				e.ID,
				e.Time.Format("01/02 15:04"),
				e.Kind,
				humanize.Bytes(uint64(e.Size)),
				collapse(e),
			)
		}
		return nil
	},
}
