package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Load reads the configuration file at path. A missing file is not an
// error: the shell runs with defaults. Any returned error comes with the
// default configuration so callers can always use the result.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	fd, err := fsys.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), err
	}
	defer fd.Close()

	out, err := Parse(fd)
	if err != nil {
		return Default(), err
	}
	if err := out.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %v", path, err)
	}
	return out, nil
}

// DefaultPath returns the config file location next to the running
// executable, where the shell has historically looked for it.
func DefaultPath() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exePath), ConfigurationName), nil
}
