package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/mattn/go-isatty"
)

// lineReader yields one line of input per call, newline excluded. It
// reports io.EOF only for genuine end of stream, never for an empty line,
// so the dispatch loop can treat a closed stream as an implicit exit.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	io.Closer
}

// newLineReader picks line editing when stdin is a terminal and a plain
// buffered reader otherwise, so piped input behaves deterministically.
func newLineReader(stdin io.Reader, stdout, stderr io.Writer) (lineReader, error) {
	if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return newReadlineReader(stdin, stdout, stderr)
	}
	return &plainReader{in: bufio.NewReader(stdin), out: stdout}, nil
}

// readlineReader serves interactive sessions.
type readlineReader struct {
	rl *readline.Instance
}

func newReadlineReader(stdin io.Reader, stdout, stderr io.Writer) (*readlineReader, error) {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(stdin),
		Stdout: stdout,
		Stderr: stderr,
		FuncIsTerminal: func() bool {
			return true
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &readlineReader{rl: rl}, nil
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt {
		// Interrupt abandons the current line.
		return "", nil
	}
	return line, err
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

// plainReader reads raw lines without any terminal handling. The prompt is
// still written so a user watching a non-PTY session sees where input is
// expected.
type plainReader struct {
	in  *bufio.Reader
	out io.Writer
}

func (r *plainReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(r.out, prompt)
	}

	line, err := r.in.ReadString('\n')
	if err == io.EOF && line != "" {
		// A final unterminated line still counts as one line; the next
		// call reports the closed stream.
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}

func (r *plainReader) Close() error {
	return nil
}
