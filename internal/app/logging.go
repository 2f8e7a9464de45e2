package app

import (
	"io"
	"os"

	"github.com/dshills/markgutter/internal/config"
	"github.com/dshills/markgutter/internal/logging"
)

// openLog creates the application logger. The terminal belongs to the
// editor, so without a log file output is discarded.
func openLog(cfg config.LogConfig, levelOverride string) (*logging.Logger, io.Closer, error) {
	level := cfg.Level
	if levelOverride != "" {
		level = levelOverride
	}

	var out io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, &FileError{Op: "open log", Path: cfg.File, Err: err}
		}
		out, closer = f, f
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(level),
		Output: out,
		Prefix: "markgutter",
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
