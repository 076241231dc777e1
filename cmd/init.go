package cmd

import (
	"log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/noosh/core/config"
)

// initCmd writes a default prompt color configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default noosh_config.txt next to the executable.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		path := cfgPath
		if path == "" {
			resolved, err := config.DefaultPath()
			if err != nil {
				return err
			}
			path = resolved
		}

		logger := log.New(cmd.ErrOrStderr(), "", 0)
		return config.Initialize(afero.NewOsFs(), path, logger)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
