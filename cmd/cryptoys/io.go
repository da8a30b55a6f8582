package main

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// outputFile is where file mode results go, relative to the working directory.
const outputFile = "output.txt"

// readInput returns the whole content of `path`, or drains `stdin` when path
// is empty.
func readInput(logger *slog.Logger, path string, stdin io.Reader) (string, error) {
	if path == "" {
		return readStdin(logger, stdin)
	}

	path = expandTilde(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &InputUnavailableError{Path: path, Err: err}
	}
	logger.Debug("read input file", "path", path, "bytes", len(data))
	return string(data), nil
}

// readStdin reads `r` to EOF line by line. Every line, including a final
// unterminated one, ends up terminated by a single '\n'.
func readStdin(logger *slog.Logger, r io.Reader) (string, error) {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.Debug("reading standard input until EOF")
	}

	br := bufio.NewReader(r)
	var sb strings.Builder
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", &InputUnavailableError{Path: stdinName, Err: err}
		}
	}
	logger.Debug("read standard input", "bytes", sb.Len())
	return sb.String(), nil
}

// writeOutputFile truncates `path` and writes `content` to it. A partially
// written file is removed.
func writeOutputFile(logger *slog.Logger, path string, content string) error {
	w, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return &OutputUnavailableError{Path: path, Err: err}
	}

	if _, err := io.WriteString(w, content); err != nil {
		if closeErr := w.Close(); closeErr != nil {
			logger.Warn("error closing output file during cleanup", "path", path, "err", closeErr)
		}
		if removeErr := os.Remove(path); removeErr != nil {
			logger.Warn("error removing output file during cleanup", "path", path, "err", removeErr)
		}
		return &OutputUnavailableError{Path: path, Err: err}
	}

	if err := w.Close(); err != nil {
		return &OutputUnavailableError{Path: path, Err: err}
	}
	logger.Debug("wrote output file", "path", path, "bytes", len(content))
	return nil
}

// writeStdout writes `content` to `w` terminated by exactly one newline.
func writeStdout(w io.Writer, content string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if _, err := io.WriteString(w, content); err != nil {
		return &OutputUnavailableError{Path: stdoutName, Err: err}
	}
	return nil
}

// expands a path beginning with "~/" to include user's home dir.
func expandTilde(file string) string {
	if !strings.HasPrefix(file, "~/") {
		return file
	}

	usr, err := user.Current()
	if err != nil {
		return file
	}
	return filepath.Join(usr.HomeDir, file[2:])
}
