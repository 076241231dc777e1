package shell

import (
	"fmt"
	"os"
)

// BuiltinFunc runs a builtin command. args[0] is the builtin's own name;
// arguments beyond what a builtin consumes are ignored.
type BuiltinFunc func(s *Shell, args []string) Outcome

// builtinEntry pairs a command name with its handler. The table is ordered
// and resolution is first match wins, so a duplicate name can never shadow
// an earlier entry.
type builtinEntry struct {
	name string
	fn   BuiltinFunc
}

// builtinTable is the closed set of commands implemented inside the shell
// process. help prints the names in table order. The table is assigned in
// init so builtinHelp may walk it without creating an initialization cycle.
var builtinTable []builtinEntry

func init() {
	builtinTable = []builtinEntry{
		{"cd", builtinCd},
		{"pwd", builtinPwd},
		{"help", builtinHelp},
		{"exit", builtinExit},
	}
}

// Builtins returns the registered builtin names in registration order.
func Builtins() []string {
	names := make([]string, 0, len(builtinTable))
	for _, entry := range builtinTable {
		names = append(names, entry.name)
	}
	return names
}

// resolveBuiltin finds the handler for name by exact, case-sensitive match.
func resolveBuiltin(name string) (BuiltinFunc, bool) {
	for _, entry := range builtinTable {
		if entry.name == name {
			return entry.fn, true
		}
	}
	return nil, false
}

// builtinCd changes the process working directory, which is inherited by
// every subsequently launched program and read back by pwd.
func builtinCd(s *Shell, args []string) Outcome {
	if len(args) < 2 {
		fmt.Fprintf(s.stderr, "noosh: expected argument to %q\n", args[0])
		return Continue
	}
	if err := os.Chdir(args[1]); err != nil {
		fmt.Fprintf(s.stderr, "noosh: %v\n", err)
	}
	return Continue
}

// builtinPwd prints the absolute working directory. Failing to resolve it
// means the host state is unusable, so the whole shell aborts rather than
// limping along.
func builtinPwd(s *Shell, args []string) Outcome {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(s.stderr, "noosh: %v\n", err)
		s.exit(1)
		return Terminate // not reached when exit aborts the process
	}
	fmt.Fprintln(s.stdout, wd)
	return Continue
}

// builtinHelp prints the usage banner and every registered builtin.
func builtinHelp(s *Shell, args []string) Outcome {
	fmt.Fprintln(s.stdout, "noosh")
	fmt.Fprintln(s.stdout, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(s.stdout, "The following are built in:")
	for _, name := range Builtins() {
		fmt.Fprintf(s.stdout, "  %s\n", name)
	}
	fmt.Fprintln(s.stdout, "Use the man command for information on other programs.")
	return Continue
}

// builtinExit terminates the dispatch loop. It is the only builtin that
// does.
func builtinExit(s *Shell, args []string) Outcome {
	return Terminate
}
