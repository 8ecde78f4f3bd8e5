package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(restoreCommand)
}

var restoreCommand = &cobra.Command{
	Use:   "restore id",
	Short: "Put a stored entry back onto the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		entry, err := eng.Get(cmd.Context(), uint(id))
		if err != nil {
			return err
		}
		return eng.Restore(cmd.Context(), entry.Path)
	},
}
