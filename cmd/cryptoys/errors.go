package main

import (
	"errors"
	"fmt"

	"github.com/wiggin77/cryptoys"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	stdinName  = "<stdin>"
	stdoutName = "<stdout>"
)

// UsageError reports a malformed invocation: a missing or unparsable key,
// or conflicting directives. It is always detected before any I/O.
type UsageError struct {
	Msg string
	Err error
}

func (e *UsageError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *UsageError) Unwrap() error { return e.Err }

// ConflictingDirectiveError is the UsageError returned when both --encrypt
// and --decrypt are given.
type ConflictingDirectiveError struct {
	Encrypt string
	Decrypt string
}

func (e *ConflictingDirectiveError) Error() string {
	return fmt.Sprintf("two opposite flags: --encrypt %q and --decrypt %q", e.Encrypt, e.Decrypt)
}

// As lets errors.As match a ConflictingDirectiveError as a *UsageError.
func (e *ConflictingDirectiveError) As(target any) bool {
	if u, ok := target.(**UsageError); ok {
		*u = &UsageError{Msg: e.Error()}
		return true
	}
	return false
}

// InputUnavailableError reports an input file or stream that could not be read.
type InputUnavailableError struct {
	Path string
	Err  error
}

func (e *InputUnavailableError) Error() string {
	return fmt.Sprintf("cannot read input %s: %v", e.Path, e.Err)
}

func (e *InputUnavailableError) Unwrap() error { return e.Err }

// CipherOperationError reports a rejection by the cipher itself, such as
// non-coprime affine coefficients or a pad shorter than the text.
type CipherOperationError struct {
	Kind      cryptoys.Kind
	Direction cryptoys.Direction
	Err       error
}

func (e *CipherOperationError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Kind, e.Direction, e.Err)
}

func (e *CipherOperationError) Unwrap() error { return e.Err }

// OutputUnavailableError reports an output file or stream that could not be written.
type OutputUnavailableError struct {
	Path string
	Err  error
}

func (e *OutputUnavailableError) Error() string {
	return fmt.Sprintf("cannot write output %s: %v", e.Path, e.Err)
}

func (e *OutputUnavailableError) Unwrap() error { return e.Err }

// exitCode maps an error returned by the dispatcher to a process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return exitUsage
	}
	return exitError
}
