package app

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/dshills/markgutter/internal/renderer/backend"
	"github.com/dshills/markgutter/internal/renderer/core"
	"github.com/dshills/markgutter/internal/renderer/gutter"
	"github.com/dshills/markgutter/internal/renderer/icon"
	"github.com/dshills/markgutter/internal/renderer/textview"
)

// snapshotLineHeight is the pixel height of one line in a gutter snapshot.
const snapshotLineHeight = 16

// Snapshot renders the gutter for the whole document as a PNG, one
// snapshotLineHeight row per line, with bookmarks drawn as dots.
func (a *Application) Snapshot(w io.Writer) error {
	lh := snapshotLineHeight
	vc := viewConfig(a.cfg.View)
	vc.LineHeight = lh
	vc.LineWrap = false
	vc.Insets = core.Insets{}
	vc.ScrollMargin = 0

	height := a.view.LineCount() * lh
	view := textview.New(a.buf, vc, lh, height)
	defer view.Close()

	dot := icon.NewDot(lh*3/4, a.cfg.Gutter.BookmarkColorValue())
	gc := gutterConfig(a.cfg.Gutter)
	gc.Width = lh
	gc.BookmarkingEnabled = true
	g := gutter.New(view, gc, gutter.WithLogger(a.logger), gutter.WithBookmarkIcon(dot))
	defer g.RemoveAllTrackingIcons()

	for _, m := range a.gutter.Bookmarks() {
		if _, err := g.AddTrackingIcon(m.Offset(), dot); err != nil {
			return fmt.Errorf("snapshot bookmark at %d: %w", m.Offset(), err)
		}
	}

	surface := backend.NewRasterSurface(g.PreferredSize().W, height, image.Point{})
	g.Paint(surface)
	return png.Encode(w, surface.Image())
}

func (a *Application) snapshotPath() string {
	switch {
	case a.opts.Snapshot != "":
		return a.opts.Snapshot
	case a.opts.File != "":
		return a.opts.File + ".gutter.png"
	default:
		return "gutter.png"
	}
}

// writeSnapshot saves the gutter snapshot and reports it on the status line.
func (a *Application) writeSnapshot() {
	path := a.snapshotPath()
	if err := a.saveSnapshot(path); err != nil {
		a.logger.Error("%v", err)
		a.message = err.Error()
		return
	}
	a.message = "gutter written to " + path
}

func (a *Application) saveSnapshot(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &FileError{Op: "snapshot", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = &FileError{Op: "snapshot", Path: path, Err: cerr}
		}
	}()
	if err := a.Snapshot(f); err != nil {
		return &FileError{Op: "snapshot", Path: path, Err: err}
	}
	return nil
}
