package app

import (
	"time"

	"github.com/dshills/markgutter/internal/config"
	"github.com/dshills/markgutter/internal/logging"
	"github.com/dshills/markgutter/internal/plugin/lua"
	"github.com/dshills/markgutter/internal/renderer/core"
	"github.com/dshills/markgutter/internal/renderer/gutter"
	"github.com/dshills/markgutter/internal/renderer/textview"
)

func viewConfig(c config.ViewConfig) textview.Config {
	return textview.Config{
		LineHeight:   1,
		Insets:       c.Insets.Insets(),
		LineWrap:     c.LineWrap,
		WrapAtWord:   c.WrapAtWord,
		TabWidth:     c.TabWidth,
		ScrollMargin: c.ScrollMargin,
	}
}

func gutterConfig(c config.GutterConfig) gutter.Config {
	return gutter.Config{
		Width:              c.Width,
		Background:         c.BackgroundValue(),
		BookmarkingEnabled: c.Bookmarking,
	}
}

func glyphRune(c config.GutterConfig) rune {
	for _, r := range c.BookmarkGlyph {
		return r
	}
	return '*'
}

func glyphStyle(c config.GutterConfig) core.Style {
	return core.NewStyle(c.BookmarkColorValue()).Bold()
}

// applyConfig switches to a reloaded configuration. The bookmark glyph is
// changed in place so existing bookmarks survive.
func (a *Application) applyConfig(cfg config.Config) {
	old := a.cfg
	a.cfg = cfg

	if a.opts.LogLevel == "" {
		a.logger.SetLevel(logging.ParseLevel(cfg.Log.Level))
	}

	a.bookmark.Rune = glyphRune(cfg.Gutter)
	a.bookmark.Style = glyphStyle(cfg.Gutter)
	a.gutter.SetConfig(gutterConfig(cfg.Gutter))

	vc := viewConfig(cfg.View)
	if old.View.LineWrap == cfg.View.LineWrap {
		vc.LineWrap = a.view.LineWrap()
	}
	a.view.SetConfig(vc)

	if cfg.Plugin != old.Plugin {
		a.loadHook(cfg.Plugin)
	}

	a.layout()
	a.message = "configuration reloaded"
	a.logger.Info("configuration applied")
}

// loadHook replaces the bookmark script. A script that fails to load
// leaves bookmarks unrestricted.
func (a *Application) loadHook(p config.PluginConfig) {
	if a.hook != nil {
		a.hook.Close()
		a.hook = nil
	}
	a.gutter.SetBookmarkListener(nil)

	path := a.scriptPath(p.BookmarkScript)
	if path == "" {
		return
	}

	hook := lua.NewBookmarkHook(
		lua.WithLogger(a.logger),
		lua.WithLineText(a.lineText),
		lua.WithTimeout(time.Duration(p.TimeoutMS)*time.Millisecond),
	)
	if err := hook.LoadFile(path); err != nil {
		hook.Close()
		a.logger.Warn("bookmark script %s not loaded: %v", path, err)
		a.message = "bookmark script failed to load"
		return
	}
	a.hook = hook
	a.gutter.SetBookmarkListener(hook)
	a.logger.Info("bookmark script %s loaded", path)
}

func (a *Application) lineText(line int) (string, error) {
	if line < 0 {
		return "", textview.ErrInvalidLine
	}
	return a.buf.LineText(uint32(line))
}
