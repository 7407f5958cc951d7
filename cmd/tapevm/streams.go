package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tebeka/atexit"
	"golang.org/x/term"
)

// setupOutput buffers stdout unless a person is watching it. The machine
// flushes before every input and at halt; atexit covers failed runs.
func setupOutput() io.Writer {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return os.Stdout
	}
	w := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		_ = w.Flush()
	})
	return w
}

func setupInput(raw bool) (io.Reader, error) {
	fd := int(os.Stdin.Fd())
	if !raw || !term.IsTerminal(fd) {
		return os.Stdin, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw input: %w", err)
	}
	atexit.Register(func() {
		_ = term.Restore(fd, state)
	})
	return os.Stdin, nil
}
