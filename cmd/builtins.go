package cmd

import (
	"fmt"

	"github.com/josephlewis42/minish/core"
	"github.com/spf13/cobra"
)

// builtinsCmd lists the commands the shell handles itself.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands of the shell.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		builtins := append(core.BuiltinNames(), "cd")

		for _, v := range builtins {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
