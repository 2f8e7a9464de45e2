package config

import (
	"github.com/dshills/markgutter/internal/renderer/core"
)

// GutterConfig holds icon gutter settings.
type GutterConfig struct {
	// Width is the minimum gutter width in cells.
	Width int `toml:"width" yaml:"width"`

	// Bookmarking enables toggling bookmarks by clicking the gutter.
	Bookmarking bool `toml:"bookmarking" yaml:"bookmarking"`

	// BookmarkGlyph is the single grapheme drawn for a bookmark.
	BookmarkGlyph string `toml:"bookmark_glyph" yaml:"bookmark_glyph"`

	// BookmarkColor is the glyph colour as "#rrggbb" or "default".
	BookmarkColor string `toml:"bookmark_color" yaml:"bookmark_color"`

	// Background is the gutter background as "#rrggbb" or "default".
	Background string `toml:"background" yaml:"background"`
}

// BookmarkColorValue returns the parsed bookmark colour.
func (g GutterConfig) BookmarkColorValue() core.Color {
	c, _ := core.ColorFromHex(g.BookmarkColor)
	return c
}

// BackgroundValue returns the parsed background colour.
func (g GutterConfig) BackgroundValue() core.Color {
	c, _ := core.ColorFromHex(g.Background)
	return c
}

// InsetsConfig is the empty border around the text, in cells.
type InsetsConfig struct {
	Top    int `toml:"top" yaml:"top"`
	Left   int `toml:"left" yaml:"left"`
	Bottom int `toml:"bottom" yaml:"bottom"`
	Right  int `toml:"right" yaml:"right"`
}

// Insets converts to the renderer type.
func (i InsetsConfig) Insets() core.Insets {
	return core.Insets{Top: i.Top, Left: i.Left, Bottom: i.Bottom, Right: i.Right}
}

// ViewConfig holds text view settings.
type ViewConfig struct {
	// LineWrap soft-wraps long lines at the view width.
	LineWrap bool `toml:"line_wrap" yaml:"line_wrap"`

	// WrapAtWord breaks wrapped lines after whitespace where possible.
	WrapAtWord bool `toml:"wrap_at_word" yaml:"wrap_at_word"`

	// TabWidth is the number of cells between tab stops.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`

	// ScrollMargin is the number of lines kept visible around the cursor.
	ScrollMargin int `toml:"scroll_margin" yaml:"scroll_margin"`

	Insets InsetsConfig `toml:"insets" yaml:"insets"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`

	// File receives log output. Empty discards it, since the terminal is
	// owned by the editor.
	File string `toml:"file" yaml:"file"`
}

// PluginConfig holds scripting settings.
type PluginConfig struct {
	// BookmarkScript is a Lua file that can veto bookmark changes.
	BookmarkScript string `toml:"bookmark_script" yaml:"bookmark_script"`

	// TimeoutMS bounds each script call.
	TimeoutMS int `toml:"timeout_ms" yaml:"timeout_ms"`
}
