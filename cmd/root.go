package cmd

import (
	"log"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/noosh/core/config"
	"github.com/josephlewis42/noosh/core/shell"
)

var (
	cfgPath     string
	plainPrompt bool
	commandLine string
)

// loadConfig reads the prompt color configuration, falling back to the
// documented defaults when the file is missing or unusable.
func loadConfig() *config.Configuration {
	path := cfgPath
	if path == "" {
		resolved, err := config.DefaultPath()
		if err != nil {
			log.Printf("config: %v", err)
			return config.Default()
		}
		path = resolved
	}

	configuration, err := config.Load(afero.NewOsFs(), path)
	if err != nil {
		log.Printf("config: %v", err)
	}
	return configuration
}

// rootCmd runs the interactive shell when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "noosh",
	Short: "A no-frills interactive shell",
	Long: `noosh reads commands from standard input and runs them, either as one of
its builtins (cd, pwd, help, exit) or as an external program that it waits
for before prompting again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		prompt := shell.PlainPrompt()
		if !plainPrompt {
			prompt = shell.NewColorPrompt(loadConfig())
		}

		sh, err := shell.NewShell(shell.Options{Prompt: prompt})
		if err != nil {
			return err
		}
		defer sh.Close()

		if cmd.Flags().Changed("command") {
			sh.RunCommand(commandLine)
			return nil
		}

		if code := sh.Run(); code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to noosh_config.txt (default: next to the executable)")
	rootCmd.Flags().BoolVar(&plainPrompt, "plain", false, "disable prompt colors")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single command line and exit")
}
