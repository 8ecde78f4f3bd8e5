package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(saveCommand)
}

var saveCommand = &cobra.Command{
	Use:   "save",
	Short: "Save the current clipboard content once",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		if eng.ProcessOnce(cmd.Context()) {
			fmt.Println("Clipboard content saved")
		} else {
			fmt.Println("No new clipboard content found")
		}
		return nil
	},
}
