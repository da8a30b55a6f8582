package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"golang.org/x/term"
)

// logLevelEnv overrides the default log level (debug, info, warn, error).
const logLevelEnv = "CRYPTOYS_LOG_LEVEL"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command line `args` and returns the process exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	level := &slog.LevelVar{}
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if v := os.Getenv(logLevelEnv); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			logger.Warn("ignoring invalid log level", "env", logLevelEnv, "value", v)
		}
	}

	d := &dispatcher{
		stdin:      stdin,
		stdout:     stdout,
		logger:     logger,
		outputPath: outputFile,
	}

	root := newRootCmd(d, level)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	if err == nil {
		return exitOK
	}

	// anything cobra rejects before a cipher runs is a malformed invocation
	if !d.invoked {
		if _, ok := err.(*UsageError); !ok {
			err = &UsageError{Err: err}
		}
	}

	printError(stderr, err)
	code := exitCode(err)
	if code == exitUsage && cmd != nil {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return code
}

func printError(w io.Writer, a ...any) {
	au := aurora.NewAurora(isTerminal(w))
	fmt.Fprint(w, au.Red("error -- "))
	fmt.Fprintln(w, a...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
