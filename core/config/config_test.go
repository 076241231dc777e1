package config

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 32, cfg.UsernameColor)
	assert.Equal(t, 35, cfg.CwdColor)
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Configuration
	}{
		{
			name: "empty",
			text: "",
			want: Configuration{UsernameColor: 32, CwdColor: 35},
		},
		{
			name: "both keys",
			text: "username_color=34\ncwd_color=36\n",
			want: Configuration{UsernameColor: 34, CwdColor: 36},
		},
		{
			name: "one key missing",
			text: "cwd_color=31\n",
			want: Configuration{UsernameColor: 32, CwdColor: 31},
		},
		{
			name: "unknown keys ignored",
			text: "prompt_color=33\nusername_color=33\n",
			want: Configuration{UsernameColor: 33, CwdColor: 35},
		},
		{
			name: "malformed lines skipped",
			text: "username_color\ncwd_color=magenta\nusername_color=31\n",
			want: Configuration{UsernameColor: 31, CwdColor: 35},
		},
		{
			name: "surrounding whitespace",
			text: "username_color = 90\n",
			want: Configuration{UsernameColor: 90, CwdColor: 35},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tc.text))
			require.NoError(t, err)
			assert.Equal(t, &tc.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := Load(afero.NewMemMapFs(), "/etc/noosh_config.txt")
		assert.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("reads values", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "/opt/noosh_config.txt",
			[]byte("username_color=94\ncwd_color=93\n"), 0644))

		cfg, err := Load(fsys, "/opt/noosh_config.txt")
		assert.NoError(t, err)
		assert.Equal(t, 94, cfg.UsernameColor)
		assert.Equal(t, 93, cfg.CwdColor)
	})

	t.Run("out of range values fall back", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "/opt/noosh_config.txt",
			[]byte("username_color=9999\n"), 0644))

		cfg, err := Load(fsys, "/opt/noosh_config.txt")
		assert.Error(t, err)
		assert.Equal(t, Default(), cfg)
	})
}
