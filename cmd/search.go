package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	searchCommand.Flags().IntP("limit", "l", 50, "maximum number of matches")
	Command.AddCommand(searchCommand)
}

var searchCommand = &cobra.Command{
	Use:   "search query",
	Short: "Search clipboard history",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		entries, err := eng.Search(cmd.Context(), args[0], viper.GetInt("limit"))
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%d\t%s\n", e.ID, collapse(e))
		}
		return nil
	},
}
