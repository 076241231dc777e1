package config

import (
	"bufio"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ConfigurationName is the file the shell looks for next to its own
// executable.
const ConfigurationName = "noosh_config.txt"

// Default SGR style codes used when the configuration file is absent or a
// key is missing.
const (
	DefaultUsernameColor = 32 // green
	DefaultCwdColor      = 35 // magenta
)

// Configuration holds the prompt styling read from noosh_config.txt. The
// values are raw SGR codes applied to the user@host and working directory
// segments of the prompt.
type Configuration struct {
	UsernameColor int `json:"username_color" validate:"gte=0,lte=255"`
	CwdColor      int `json:"cwd_color" validate:"gte=0,lte=255"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the documented fallback configuration.
func Default() *Configuration {
	return &Configuration{
		UsernameColor: DefaultUsernameColor,
		CwdColor:      DefaultCwdColor,
	}
}

// Parse reads a key=value configuration. Unknown keys, lines without a
// separator, and non-integer values are skipped so a sloppy config file
// still produces a usable prompt.
func Parse(r io.Reader) (*Configuration, error) {
	out := Default()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := cut(scanner.Text(), "=")
		if !ok {
			continue
		}

		code, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			continue
		}

		switch strings.TrimSpace(key) {
		case "username_color":
			out.UsernameColor = code
		case "cwd_color":
			out.CwdColor = code
		}
	}
	if err := scanner.Err(); err != nil {
		return Default(), err
	}

	return out, nil
}

// cut is strings.Cut, kept local while the module supports Go < 1.18.
func cut(s, sep string) (before, after string, found bool) {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}
