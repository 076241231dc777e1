package shell

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func requireOnPath(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not on PATH", name)
	}
}

func TestLaunchUnknownProgram(t *testing.T) {
	sh, _, stderr := newTestShell(t, "")

	assert.Equal(t, Continue, sh.launch([]string{"nonexistent_prog_xyz"}))
	assert.Contains(t, stderr.String(), "noosh:")
	assert.Contains(t, stderr.String(), "nonexistent_prog_xyz")
}

func TestLaunchPassesArgv(t *testing.T) {
	requireOnPath(t, "echo")

	sh, stdout, stderr := newTestShell(t, "")

	assert.Equal(t, Continue, sh.launch([]string{"echo", "hello", "world"}))
	assert.Equal(t, "hello world\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestLaunchAbsorbsChildFailure(t *testing.T) {
	requireOnPath(t, "false")

	sh, _, stderr := newTestShell(t, "")

	assert.Equal(t, Continue, sh.launch([]string{"false"}),
		"a non-zero child exit never terminates the shell")
	assert.Empty(t, stderr.String(), "child failures are absorbed silently")
}
