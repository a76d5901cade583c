package chat

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Console is the line-oriented surface a Session talks through.
type Console interface {
	io.Writer
	// ReadLine returns the next line without its terminator, or io.EOF once
	// the input is exhausted.
	ReadLine() (string, error)
}

type scannerConsole struct {
	io.Writer
	scanner *bufio.Scanner
	prompt  string
}

// NewScannerConsole reads lines from r and writes to w, printing prompt before
// every read.
func NewScannerConsole(r io.Reader, w io.Writer, prompt string) Console {
	return &scannerConsole{Writer: w, scanner: bufio.NewScanner(r), prompt: prompt}
}

func (c *scannerConsole) ReadLine() (string, error) {
	if _, err := io.WriteString(c.Writer, c.prompt); err != nil {
		return "", err
	}
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

// OpenConsole returns a line-editing terminal console when in is a terminal
// and a plain scanner console otherwise. The returned func restores the
// terminal state and must be called when the session is over.
func OpenConsole(in, out *os.File, prompt string) (Console, func(), error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return NewScannerConsole(in, out, prompt), func() {}, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up terminal: %w", err)
	}
	restore := func() {
		_ = term.Restore(fd, state)
	}

	rw := struct {
		io.Reader
		io.Writer
	}{in, out}
	return term.NewTerminal(rw, prompt), restore, nil
}

// Width returns the column count of f, or 0 when f is not a terminal.
func Width(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}
