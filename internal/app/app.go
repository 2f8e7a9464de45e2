// Package app wires the buffer, text view, icon gutter and terminal into
// a small editor, and runs its event loop.
package app

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/dshills/markgutter/internal/config"
	"github.com/dshills/markgutter/internal/engine/buffer"
	"github.com/dshills/markgutter/internal/input/mouse"
	"github.com/dshills/markgutter/internal/logging"
	"github.com/dshills/markgutter/internal/plugin/lua"
	"github.com/dshills/markgutter/internal/renderer/backend"
	"github.com/dshills/markgutter/internal/renderer/gutter"
	"github.com/dshills/markgutter/internal/renderer/icon"
	"github.com/dshills/markgutter/internal/renderer/textview"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty uses the per-user file
	// if it exists, and the defaults otherwise.
	ConfigPath string

	// LogLevel overrides the configured log level.
	LogLevel string

	// Wrap starts with soft wrapping on.
	Wrap bool

	// File is the file to edit. It need not exist yet.
	File string

	// Snapshot is where Ctrl-E writes the gutter PNG. Empty uses the
	// file name with a ".gutter.png" suffix.
	Snapshot string
}

// Application owns every component. All fields are touched only by the
// goroutine running the event loop.
type Application struct {
	opts       Options
	cfg        config.Config
	configPath string

	logger    *logging.Logger
	logCloser io.Closer

	backend  backend.Backend
	buf      *buffer.Buffer
	view     *textview.View
	gutter   *gutter.Gutter
	bookmark *icon.Glyph
	hook     *lua.BookmarkHook
	watcher  *config.Watcher

	mouse   *mouse.Dispatcher
	pointer pointerTracker
	text    *textArea

	width, height int
	gutterWidth   int

	cursor   int
	message  string
	modified bool
	dirty    bool

	running atomic.Bool
}

// quitRequest asks the event loop to exit.
type quitRequest struct{}

// New loads configuration and the file, and builds the component graph.
// The backend is initialized by Run.
func New(opts Options, b backend.Backend) (*Application, error) {
	a := &Application{opts: opts, backend: b}

	if err := a.loadConfig(); err != nil {
		return nil, err
	}

	logger, closer, err := openLog(a.cfg.Log, opts.LogLevel)
	if err != nil {
		return nil, &InitError{Component: "logging", Err: err}
	}
	a.logger, a.logCloser = logger, closer

	a.buf, err = loadBuffer(opts.File)
	if err != nil {
		_ = a.logCloser.Close()
		return nil, err
	}

	a.view = textview.New(a.buf, viewConfig(a.cfg.View), 0, 0)
	a.view.OnRepaint(func() { a.dirty = true })

	a.bookmark = icon.NewGlyph(glyphRune(a.cfg.Gutter), glyphStyle(a.cfg.Gutter))
	a.gutter = gutter.New(a.view, gutterConfig(a.cfg.Gutter),
		gutter.WithLogger(a.logger),
		gutter.WithBookmarkIcon(a.bookmark),
	)
	a.view.OnDocumentChange(a.gutter.DocumentChanged)
	a.view.OnDocumentChange(func() { a.modified = true })

	a.loadHook(a.cfg.Plugin)

	a.text = &textArea{app: a}
	a.mouse = mouse.NewDispatcher(mouse.DefaultConfig())
	a.mouse.Register(mouse.Region{}, a.gutter, a.gutterPoint)
	a.mouse.Register(mouse.Region{}, a.text, a.textPoint)

	a.logger.Info("opened %s (%d lines)", displayName(opts.File), a.buf.LineCount())
	return a, nil
}

func (a *Application) loadConfig() error {
	a.cfg = config.Default()
	path := a.opts.ConfigPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			if _, err := os.Stat(p); err == nil {
				path = p
			}
		}
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return &InitError{Component: "config", Err: err}
		}
		a.cfg = cfg
		a.configPath = path
	}
	if a.opts.Wrap {
		a.cfg.View.LineWrap = true
	}
	return nil
}

func loadBuffer(path string) (*buffer.Buffer, error) {
	if path == "" {
		return buffer.NewBuffer(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return buffer.NewBuffer(), nil
	}
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	text := string(data)
	return buffer.NewBufferFromString(text, buffer.WithLineEnding(buffer.DetectLineEnding(text))), nil
}

// Gutter returns the icon gutter.
func (a *Application) Gutter() *gutter.Gutter { return a.gutter }

// View returns the text view.
func (a *Application) View() *textview.View { return a.view }

// Cursor returns the cursor offset.
func (a *Application) Cursor() int { return a.cursor }

// Message returns the status line message.
func (a *Application) Message() string { return a.message }

// Run initializes the backend and processes events until quit.
func (a *Application) Run() error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := a.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer a.backend.Shutdown()

	if a.configPath != "" {
		w, err := config.NewWatcher(a.configPath, func(cfg config.Config) {
			a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: cfg})
		}, config.WithWatcherLogger(a.logger))
		if err != nil {
			a.logger.Warn("config reload disabled: %v", err)
		} else {
			a.watcher = w
		}
	}

	a.resize(a.backend.Size())
	a.render()

	for {
		err := a.handleEvent(a.backend.PollEvent())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		if a.dirty {
			a.render()
		}
	}
}

// Stop asks a running event loop to exit. It is safe to call from any
// goroutine.
func (a *Application) Stop() {
	a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: quitRequest{}})
}

// Close releases everything New and Run acquired.
func (a *Application) Close() {
	if a.watcher != nil {
		_ = a.watcher.Close()
		a.watcher = nil
	}
	if a.hook != nil {
		a.hook.Close()
		a.hook = nil
	}
	a.gutter.RemoveAllTrackingIcons()
	a.view.Close()
	_ = a.logCloser.Close()
}

func (a *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return a.handleKey(ev)
	case backend.EventMouse:
		a.handleMouse(ev)
	case backend.EventResize:
		a.resize(ev.Width, ev.Height)
	case backend.EventInterrupt:
		switch data := ev.Data.(type) {
		case quitRequest:
			return ErrQuit
		case config.Config:
			a.applyConfig(data)
		}
	}
	return nil
}

// resize lays out the screen: gutter on the left, text to its right and
// a status line at the bottom.
func (a *Application) resize(width, height int) {
	a.width, a.height = width, height
	a.layout()
}

func (a *Application) layout() {
	a.gutterWidth = min(a.gutter.PreferredSize().W, a.width)
	textHeight := a.textHeight()
	a.view.Resize(a.width-a.gutterWidth, textHeight)
	a.mouse.SetRegion(a.gutter, mouse.Region{X: 0, Y: 0, W: a.gutterWidth, H: textHeight})
	a.mouse.SetRegion(a.text, mouse.Region{X: a.gutterWidth, Y: 0, W: a.width - a.gutterWidth, H: textHeight})
	a.gutter.LineHeightsChanged()
	a.view.RevealOffset(a.cursor)
	a.dirty = true
}

func (a *Application) textHeight() int {
	return max(a.height-1, 0)
}

// scriptPath resolves a plugin script relative to the config file.
func (a *Application) scriptPath(p string) string {
	if p == "" || filepath.IsAbs(p) || a.configPath == "" {
		return p
	}
	return filepath.Join(filepath.Dir(a.configPath), p)
}

func displayName(path string) string {
	if path == "" {
		return "[scratch]"
	}
	return filepath.Base(path)
}
