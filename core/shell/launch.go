package shell

import (
	"errors"
	"fmt"
	"os/exec"
)

// launch runs an external program named by tokens[0], resolving it against
// PATH and passing tokens[1:] as its arguments. The child inherits the
// shell's environment and streams. The call blocks until the child exits or
// dies on a signal; a stopped child keeps the shell waiting rather than
// returning early.
//
// An external program can never terminate the shell: its exit status is
// absorbed and the outcome is always Continue.
func (s *Shell) launch(tokens []string) Outcome {
	cmd := exec.Command(tokens[0], tokens[1:]...)
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr
	// Env and Dir are left zero so the child inherits the shell's
	// environment and working directory verbatim.

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The program couldn't be resolved or started at all.
			fmt.Fprintf(s.stderr, "noosh: %v\n", err)
		}
	}

	return Continue
}
