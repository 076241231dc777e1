package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephlewis42/noosh/core/shell"
)

// builtinsCmd lists the commands implemented inside the shell itself.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the shell's builtin commands.",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range shell.Builtins() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
