package gutter

import (
	"github.com/dshills/markgutter/internal/logging"
	"github.com/dshills/markgutter/internal/renderer/core"
)

// Config holds gutter configuration.
type Config struct {
	// Width is the preferred width in host units. It grows to fit the
	// bookmark icon if that is wider.
	Width int

	// Background fills the gutter before icons are painted.
	Background core.Color

	// BookmarkingEnabled is the initial state of the bookmark toggle.
	BookmarkingEnabled bool
}

// DefaultConfig returns the default gutter configuration.
func DefaultConfig() Config {
	return Config{
		Width:      16,
		Background: core.ColorDefault,
	}
}

// Option configures a Gutter.
type Option func(*Gutter)

// WithLogger sets the logger. The gutter logs under component "gutter".
func WithLogger(l *logging.Logger) Option {
	return func(g *Gutter) {
		if l != nil {
			g.logger = l.WithComponent("gutter")
		}
	}
}

// WithBookmarkListener sets the bookmark veto listener.
func WithBookmarkListener(l BookmarkListener) Option {
	return func(g *Gutter) {
		g.listener = l
	}
}

// WithBookmarkIcon sets the initial bookmark icon.
func WithBookmarkIcon(icon Icon) Option {
	return func(g *Gutter) {
		g.bookmarkIcon = icon
	}
}

// Gutter is a row of icons anchored to document lines.
type Gutter struct {
	config Config
	host   Host
	logger *logging.Logger

	// Sorted by resolved offset, ties in insertion order.
	icons []*TrackedIcon

	bookmarkIcon       Icon
	bookmarkingEnabled bool
	listener           BookmarkListener

	// Line count seen at the last DocumentChanged, to skip repaints for
	// edits that keep the line structure.
	lineCount int
}

// New creates a gutter attached to host. host may be nil and set later
// with SetHost.
func New(host Host, config Config, opts ...Option) *Gutter {
	g := &Gutter{
		config:             config,
		logger:             logging.NullLogger,
		bookmarkingEnabled: config.BookmarkingEnabled,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.attach(host)
	return g
}

// Config returns the current configuration.
func (g *Gutter) Config() Config {
	return g.config
}

// SetConfig replaces the configuration. The bookmarking flag goes through
// SetBookmarkingEnabled, so disabling it removes bookmarks.
func (g *Gutter) SetConfig(config Config) {
	g.config = config
	g.SetBookmarkingEnabled(config.BookmarkingEnabled)
	g.repaint()
}

// Host returns the host the gutter is attached to.
func (g *Gutter) Host() Host {
	return g.host
}

// SetHost moves the gutter to a new host. All tracked icons are dropped
// since their positions belong to the old document.
func (g *Gutter) SetHost(host Host) {
	g.clearIcons()
	g.attach(host)
	g.repaint()
}

func (g *Gutter) attach(host Host) {
	g.host = host
	g.lineCount = 0
	if host != nil {
		g.lineCount = host.LineCount()
	}
}

// DocumentChanged must be called by the host after every edit. The
// gutter repaints when the number of lines changed.
func (g *Gutter) DocumentChanged() {
	if g.host == nil {
		return
	}
	if n := g.host.LineCount(); n != g.lineCount {
		g.lineCount = n
		g.repaint()
	}
}

// LineHeightsChanged must be called when line heights or wrapping change.
func (g *Gutter) LineHeightsChanged() {
	g.repaint()
}

// PreferredSize returns the size the gutter would like to occupy.
func (g *Gutter) PreferredSize() core.Dimension {
	w := g.config.Width
	if g.bookmarkIcon != nil && g.bookmarkIcon.Width() > w {
		w = g.bookmarkIcon.Width()
	}
	h := 100
	if g.host != nil {
		h = g.host.Height()
	}
	return core.Dimension{W: w, H: h}
}

func (g *Gutter) repaint() {
	if g.host != nil {
		g.host.Repaint()
	}
}
