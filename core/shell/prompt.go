package shell

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/josephlewis42/noosh/core/config"
)

// NewColorPrompt renders `user@host:cwd$ ` with the configured SGR codes:
// user@host in the username color, the working directory in the cwd color.
// Username and hostname are resolved once per shell; the working directory
// is re-resolved on every prompt so cd shows up immediately. Color output
// still honors fatih/color's NO_COLOR and non-TTY handling.
func NewColorPrompt(cfg *config.Configuration) PromptFunc {
	userColor := color.New(color.Attribute(cfg.UsernameColor))
	cwdColor := color.New(color.Attribute(cfg.CwdColor))
	username := os.Getenv("USER")
	hostname, _ := os.Hostname()

	return func() string {
		// The prompt tolerates an unresolvable directory; only the pwd
		// builtin treats that as fatal.
		wd, _ := os.Getwd()
		return renderPrompt(username, hostname, wd, userColor, cwdColor)
	}
}

// PlainPrompt renders the same prompt without any styling.
func PlainPrompt() PromptFunc {
	username := os.Getenv("USER")
	hostname, _ := os.Hostname()

	return func() string {
		wd, _ := os.Getwd()
		return fmt.Sprintf("%s@%s:%s$ ", username, hostname, wd)
	}
}

func renderPrompt(username, hostname, wd string, userColor, cwdColor *color.Color) string {
	return fmt.Sprintf("%s:%s$ ",
		userColor.Sprintf("%s@%s", username, hostname),
		cwdColor.Sprint(wd))
}
