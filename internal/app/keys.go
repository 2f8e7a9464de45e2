package app

import (
	"fmt"
	"os"

	"github.com/dshills/markgutter/internal/renderer/backend"
)

func (a *Application) handleKey(ev backend.Event) error {
	a.message = ""
	switch ev.Key {
	case backend.KeyCtrlQ:
		return ErrQuit
	case backend.KeyCtrlB:
		a.toggleBookmark()
	case backend.KeyCtrlN:
		a.nextBookmark()
	case backend.KeyCtrlW:
		a.toggleWrap()
	case backend.KeyCtrlS:
		a.save()
	case backend.KeyCtrlE:
		a.writeSnapshot()

	case backend.KeyUp:
		a.moveLines(-1)
	case backend.KeyDown:
		a.moveLines(1)
	case backend.KeyLeft:
		a.cursor = a.prevOffset()
	case backend.KeyRight:
		a.cursor = a.nextOffset()
	case backend.KeyHome:
		a.lineHome()
	case backend.KeyEnd:
		a.lineEnd()
	case backend.KeyPageUp:
		a.moveLines(-max(a.textHeight()-1, 1))
	case backend.KeyPageDown:
		a.moveLines(max(a.textHeight()-1, 1))

	case backend.KeyEnter:
		a.insert("\n")
	case backend.KeyTab:
		a.insert("\t")
	case backend.KeyBackspace:
		a.deleteRange(a.prevOffset(), a.cursor)
	case backend.KeyDelete:
		a.deleteRange(a.cursor, a.nextOffset())
	case backend.KeyRune:
		if ev.Mod.Has(backend.ModAlt) {
			return nil
		}
		a.insert(string(ev.Rune))
	default:
		return nil
	}

	a.view.RevealOffset(a.cursor)
	a.dirty = true
	return nil
}

// toggleBookmark toggles the bookmark on the cursor line and reports what
// happened on the status line.
func (a *Application) toggleBookmark() {
	if !a.gutter.BookmarkingEnabled() {
		a.message = "bookmarking is off"
		return
	}
	line, _, _ := a.cursorLine()
	before := len(a.gutter.Bookmarks())
	added, err := a.gutter.ToggleBookmark(line)
	if err != nil {
		a.logger.Warn("toggle bookmark on line %d: %v", line, err)
		a.message = "bookmark failed"
		return
	}
	after := len(a.gutter.Bookmarks())
	switch {
	case after > before:
		a.message = fmt.Sprintf("bookmark added on line %d", line+1)
	case after < before:
		a.message = fmt.Sprintf("bookmark removed from line %d", line+1)
	case added:
		a.message = "bookmark vetoed"
	default:
		a.message = "removal vetoed"
	}
}

// nextBookmark moves the cursor to the first bookmark below the cursor
// line, wrapping to the top.
func (a *Application) nextBookmark() {
	marks := a.gutter.Bookmarks()
	if len(marks) == 0 {
		a.message = "no bookmarks"
		return
	}
	cur, _, _ := a.cursorLine()
	target := -1
	first := -1
	for _, m := range marks {
		line, err := a.view.LineOfOffset(m.Offset())
		if err != nil {
			continue
		}
		if first < 0 {
			first = line
		}
		if line > cur {
			target = line
			break
		}
	}
	if target < 0 {
		target = first
	}
	if target < 0 {
		return
	}
	start, err := a.view.LineStartOffset(target)
	if err != nil {
		return
	}
	a.cursor = start
	a.message = fmt.Sprintf("bookmark on line %d", target+1)
}

func (a *Application) toggleWrap() {
	a.view.SetLineWrap(!a.view.LineWrap())
	a.gutter.LineHeightsChanged()
	if a.view.LineWrap() {
		a.message = "wrap on"
	} else {
		a.message = "wrap off"
	}
}

func (a *Application) save() {
	if a.opts.File == "" {
		a.message = "no file name"
		return
	}
	if err := os.WriteFile(a.opts.File, []byte(a.buf.Text()), 0o644); err != nil {
		ferr := &FileError{Op: "save", Path: a.opts.File, Err: err}
		a.logger.Error("%v", ferr)
		a.message = ferr.Error()
		return
	}
	a.modified = false
	a.message = "saved " + displayName(a.opts.File)
}
