// Package main is the entry point for the markgutter demo editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/markgutter/internal/app"
	"github.com/dshills/markgutter/internal/logging"
	"github.com/dshills/markgutter/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, code, done := parseFlags(os.Stderr, os.Args[1:])
	if done {
		return code
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(opts, term)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer application.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			application.Stop()
		}
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags returns the options, or an exit code and done=true when the
// program should stop without running.
func parseFlags(out io.Writer, args []string) (opts app.Options, code int, done bool) {
	fs := flag.NewFlagSet("markgutter", flag.ContinueOnError)
	fs.SetOutput(out)
	var showVersion bool

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.Wrap, "wrap", false, "Start with soft wrapping on")
	fs.StringVar(&opts.Snapshot, "snapshot", "", "Where Ctrl-E writes the gutter PNG (default <file>.gutter.png)")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(out, "markgutter - a text view with a bookmark gutter\n\n")
		fmt.Fprintf(out, "Usage: markgutter [options] [file]\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nKeys:\n")
		fmt.Fprintf(out, "  Ctrl-B  toggle bookmark     Ctrl-N  next bookmark\n")
		fmt.Fprintf(out, "  Ctrl-W  toggle wrapping     Ctrl-S  save\n")
		fmt.Fprintf(out, "  Ctrl-E  export gutter PNG\n")
		fmt.Fprintf(out, "  Ctrl-Q  quit                click the gutter to toggle a bookmark\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return opts, 0, true
		}
		return opts, 2, true
	}

	if showVersion {
		fmt.Printf("markgutter %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return opts, 0, true
	}

	if opts.LogLevel != "" && !logging.ValidLevel(opts.LogLevel) {
		fmt.Fprintf(out, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		return opts, 2, true
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.File = fs.Arg(0)
	default:
		fmt.Fprintf(out, "Error: only one file can be opened\n")
		return opts, 2, true
	}
	return opts, 0, false
}
