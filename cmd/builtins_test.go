package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsCommand(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"builtins"})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "cd\npwd\nhelp\nexit\n", out.String())
}
