package main

import (
	"io"
	"log/slog"

	"github.com/wiggin77/cryptoys"
)

// dispatcher carries the streams and settings a Command runs against.
type dispatcher struct {
	stdin      io.Reader
	stdout     io.Writer
	logger     *slog.Logger
	outputPath string

	// set once a cipher subcommand starts; errors before that are usage errors
	invoked bool
}

// run validates `c`, keys its cipher, resolves its input, applies the cipher
// once and delivers the result. Nothing is read before the command and its
// key are known to be usable.
func (d *dispatcher) run(c Command) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dir := c.Direction()
	logger := d.logger.With("cipher", c.Kind.String(), "direction", dir.String())

	cipher, err := cryptoys.New(c.Kind, c.Key)
	if err != nil {
		return &CipherOperationError{Kind: c.Kind, Direction: dir, Err: err}
	}

	text, err := readInput(logger, c.Source(), d.stdin)
	if err != nil {
		return err
	}

	apply := cipher.Encrypt
	if dir == cryptoys.Decrypt {
		apply = cipher.Decrypt
	}
	result, err := apply(text)
	if err != nil {
		return &CipherOperationError{Kind: c.Kind, Direction: dir, Err: err}
	}

	if c.Interactive() {
		return writeStdout(d.stdout, result)
	}
	return writeOutputFile(logger, d.outputPath, result)
}
