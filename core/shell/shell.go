// Package shell implements the noosh command interpreter: a prompt, a
// whitespace tokenizer, a closed set of builtins and a launcher for
// external programs.
package shell

import (
	"io"
	"log"
	"os"
)

// Outcome tells the dispatch loop whether to keep running after a command.
type Outcome int

const (
	// Continue keeps the loop reading commands.
	Continue Outcome = iota
	// Terminate stops the loop cleanly.
	Terminate
)

// PromptFunc renders the prompt shown before each read. Prompt rendering is
// injected so the colored and plain shells share one dispatch loop.
type PromptFunc func() string

// Options configure a Shell. Zero values fall back to the process standard
// streams and an empty prompt.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Prompt PromptFunc
}

// Shell reads commands from its input and runs them until a builtin
// terminates it or the input stream closes.
type Shell struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	prompt PromptFunc
	reader lineReader

	// exit handles process-fatal conditions; overridden in tests.
	exit func(code int)
}

// NewShell builds a shell over the given streams. Callers must Close it to
// release the line reader.
func NewShell(opts Options) (*Shell, error) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Prompt == nil {
		opts.Prompt = func() string { return "" }
	}

	reader, err := newLineReader(opts.Stdin, opts.Stdout, opts.Stderr)
	if err != nil {
		return nil, err
	}

	return &Shell{
		stdin:  opts.Stdin,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
		prompt: opts.Prompt,
		reader: reader,
		exit:   os.Exit,
	}, nil
}

// Run executes the read-tokenize-dispatch cycle until a builtin terminates
// the shell or input ends. A closed input stream behaves like exit, so the
// return value is always status 0; the fatal paths never return at all.
func (s *Shell) Run() int {
	for {
		line, err := s.reader.ReadLine(s.prompt())
		switch {
		case err == io.EOF:
			return 0

		case err != nil:
			log.Printf("error reading input: %v", err)
			continue
		}

		if s.Dispatch(SplitLine(line)) == Terminate {
			return 0
		}
	}
}

// RunCommand tokenizes and dispatches a single command line, the backing
// for `noosh -c`.
func (s *Shell) RunCommand(line string) Outcome {
	return s.Dispatch(SplitLine(line))
}

// Dispatch routes one tokenized command to a builtin or the launcher. An
// empty token sequence is a no-op.
func (s *Shell) Dispatch(tokens []string) Outcome {
	if len(tokens) == 0 {
		return Continue
	}

	if builtin, ok := resolveBuiltin(tokens[0]); ok {
		return builtin(s, tokens)
	}

	return s.launch(tokens)
}

// Close releases the line reader.
func (s *Shell) Close() error {
	return s.reader.Close()
}
