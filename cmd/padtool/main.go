// Command padtool pads a string to a fixed width and writes it to stdout with
// no trailing newline.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	pad "github.com/charlieparkes/go-pad"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status. Nothing is
// written to stdout unless the arguments resolve successfully.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	resolver := &pad.Resolver{
		Stdin:       stdin,
		Logger:      logger,
		Level:       level,
		Interactive: isTerminal(stdin),
	}

	cfg, err := resolver.Resolve(args)
	if errors.Is(err, pad.ErrHelp) {
		pad.PrintHelp(stdout)
		return pad.ExitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: error: %v\n", pad.Name, err)
		return pad.ExitCode(err)
	}
	defer cfg.Content.Release()

	n, err := pad.Write(stdout, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "%s: error: writing output: %v\n", pad.Name, err)
		return pad.ExitFailure
	}
	logger.Debug("output written", "bytes", n)
	return pad.ExitOK
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
