// Package termui holds terminal plumbing: I/O streams with TTY detection and
// the interactive profile picker.
package termui

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

// IOStreams abstracts standard I/O so commands can run against buffers in tests.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	isTerminalFunc func(fd int) bool
	stdinFd        int
	stdoutFd       int
	noColor        bool
}

// NewIOStreams creates IOStreams connected to os.Stdin/Stdout/Stderr.
func NewIOStreams() *IOStreams {
	return &IOStreams{
		In:             os.Stdin,
		Out:            os.Stdout,
		ErrOut:         os.Stderr,
		isTerminalFunc: term.IsTerminal,
		stdinFd:        int(os.Stdin.Fd()),
		stdoutFd:       int(os.Stdout.Fd()),
	}
}

// IsInteractive returns true if both stdin and stdout are terminals.
// The picker needs to read keys and redraw, so a pipe on either side disables it.
func (s *IOStreams) IsInteractive() bool {
	if s.isTerminalFunc == nil {
		return false
	}
	return s.isTerminalFunc(s.stdinFd) && s.isTerminalFunc(s.stdoutFd)
}

// ColorEnabled reports whether styled output should be used.
func (s *IOStreams) ColorEnabled() bool {
	if s.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return s.isTerminalFunc != nil && s.isTerminalFunc(s.stdoutFd)
}

// TestIOStreams creates IOStreams backed by buffers that report a TTY.
// Color stays off so output can be compared as plain text.
func TestIOStreams() (*IOStreams, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &IOStreams{
		In:             in,
		Out:            out,
		ErrOut:         errOut,
		isTerminalFunc: func(int) bool { return true },
		noColor:        true,
	}, in, out, errOut
}

// TestIOStreamsNonInteractive is TestIOStreams for pipes and CI.
func TestIOStreamsNonInteractive() (*IOStreams, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	s, in, out, errOut := TestIOStreams()
	s.isTerminalFunc = func(int) bool { return false }
	return s, in, out, errOut
}
