// Package apperr defines the error kinds reported by ccswitch commands.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind sentinels, matched with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrParse           = errors.New("parse error")
	ErrProfileNotFound = errors.New("profile not found")
	ErrIO              = errors.New("io error")
	ErrAlreadyExists   = errors.New("already exists")
)

// Error is a classified failure. Kind is one of the sentinels above.
type Error struct {
	Kind error
	Msg  string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// NotFound reports a required file that does not exist.
func NotFound(what, path string) error {
	return &Error{
		Kind: ErrNotFound,
		Msg:  fmt.Sprintf("%s not found: %s", what, path),
		Path: path,
	}
}

// Parse reports malformed JSON at path.
func Parse(path string, err error) error {
	return &Error{
		Kind: ErrParse,
		Msg:  fmt.Sprintf("failed to parse %s", path),
		Path: path,
		Err:  err,
	}
}

// ProfileNotFound reports an unknown profile name together with the valid ones.
func ProfileNotFound(name string, available []string) error {
	msg := fmt.Sprintf("profile '%s' not found", name)
	if len(available) > 0 {
		msg += fmt.Sprintf(" (available: %s)", strings.Join(available, ", "))
	} else {
		msg += " (no profiles configured)"
	}
	return &Error{Kind: ErrProfileNotFound, Msg: msg}
}

// IO reports a failed filesystem operation such as creating a directory or writing a file.
func IO(op, path string, err error) error {
	return &Error{
		Kind: ErrIO,
		Msg:  fmt.Sprintf("failed to %s %s", op, path),
		Path: path,
		Err:  err,
	}
}

// AlreadyExists reports a file that would be overwritten without --force.
func AlreadyExists(path string) error {
	return &Error{
		Kind: ErrAlreadyExists,
		Msg:  fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", path),
		Path: path,
	}
}
