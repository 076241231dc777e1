package config

import (
	"fmt"
	"log"

	"github.com/spf13/afero"
)

// Initialize writes a default configuration file at path unless one already
// exists, so init is safe to re-run.
func Initialize(fsys afero.Fs, path string, logger *log.Logger) error {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return err
	}
	if exists {
		logger.Printf("%s already exists, leaving it alone", path)
		return nil
	}

	contents := fmt.Sprintf("username_color=%d\ncwd_color=%d\n",
		DefaultUsernameColor, DefaultCwdColor)
	if err := afero.WriteFile(fsys, path, []byte(contents), 0644); err != nil {
		return err
	}

	logger.Printf("wrote %s", path)
	return nil
}
