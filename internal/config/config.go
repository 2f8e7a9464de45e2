// Package config loads markgutter settings from TOML or YAML files.
//
// Files only need the settings they change; everything else keeps the
// value from Default. A Watcher reloads the file when it is written.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/dshills/markgutter/internal/logging"
	"github.com/dshills/markgutter/internal/renderer/core"
	"github.com/pelletier/go-toml/v2"
	"github.com/rivo/uniseg"
	"gopkg.in/yaml.v3"
)

// Config is the complete markgutter configuration.
type Config struct {
	Gutter GutterConfig `toml:"gutter" yaml:"gutter"`
	View   ViewConfig   `toml:"view" yaml:"view"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Plugin PluginConfig `toml:"plugin" yaml:"plugin"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Gutter: GutterConfig{
			Width:         2,
			Bookmarking:   true,
			BookmarkGlyph: "●",
			BookmarkColor: "#e5c07b",
			Background:    "default",
		},
		View: ViewConfig{
			WrapAtWord:   true,
			TabWidth:     4,
			ScrollMargin: 2,
		},
		Log: LogConfig{
			Level: "info",
		},
		Plugin: PluginConfig{
			TimeoutMS: 100,
		},
	}
}

// DefaultPath returns the per-user config file location. The file need
// not exist.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "markgutter", "config.toml"), nil
}

// Load reads and validates the file at path. The format is chosen by
// extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg, err := Parse(path, data)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data on top of Default. path only selects the format and
// labels errors. Unknown keys are errors.
func Parse(path string, data []byte) (Config, error) {
	cfg := Default()
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = parseTOML(path, data, &cfg)
	case ".yaml", ".yml":
		err = parseYAML(path, data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseTOML(path string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(cfg)
	if err == nil {
		return nil
	}

	perr := &ParseError{Path: path, Message: err.Error(), Err: err}
	var derr *toml.DecodeError
	var serr *toml.StrictMissingError
	switch {
	case errors.As(err, &derr):
		perr.Line, perr.Column = derr.Position()
	case errors.As(err, &serr) && len(serr.Errors) > 0:
		perr.Line, perr.Column = serr.Errors[0].Position()
		perr.Message = "unknown setting " + strings.Join(serr.Errors[0].Key(), ".")
	}
	return perr
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

func parseYAML(path string, data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	perr := &ParseError{Path: path, Message: strings.TrimPrefix(err.Error(), "yaml: "), Err: err}
	var terr *yaml.TypeError
	if errors.As(err, &terr) && len(terr.Errors) > 0 {
		perr.Message = terr.Errors[0]
	}
	if m := yamlLine.FindStringSubmatch(perr.Message); m != nil {
		perr.Line, _ = strconv.Atoi(m[1])
	}
	return perr
}

// Validate checks every setting and returns all problems joined.
func (c Config) Validate() error {
	var errs []error
	bad := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	if c.Gutter.Width < 0 {
		bad("gutter.width", "must not be negative", c.Gutter.Width)
	}
	if n := uniseg.GraphemeClusterCount(c.Gutter.BookmarkGlyph); n != 1 {
		bad("gutter.bookmark_glyph", "must be a single character", c.Gutter.BookmarkGlyph)
	}
	if _, err := core.ColorFromHex(c.Gutter.BookmarkColor); err != nil {
		bad("gutter.bookmark_color", err.Error(), c.Gutter.BookmarkColor)
	}
	if _, err := core.ColorFromHex(c.Gutter.Background); err != nil {
		bad("gutter.background", err.Error(), c.Gutter.Background)
	}

	if c.View.TabWidth < 1 || c.View.TabWidth > 16 {
		bad("view.tab_width", "must be between 1 and 16", c.View.TabWidth)
	}
	if c.View.ScrollMargin < 0 {
		bad("view.scroll_margin", "must not be negative", c.View.ScrollMargin)
	}
	in := c.View.Insets
	if in.Top < 0 || in.Left < 0 || in.Bottom < 0 || in.Right < 0 {
		bad("view.insets", "must not be negative", in)
	}

	if !logging.ValidLevel(c.Log.Level) {
		bad("log.level", "must be debug, info, warn or error", c.Log.Level)
	}

	if c.Plugin.TimeoutMS < 0 {
		bad("plugin.timeout_ms", "must not be negative", c.Plugin.TimeoutMS)
	}
	return errors.Join(errs...)
}
