package app

import (
	"github.com/rivo/uniseg"
)

// Cursor movement works on grapheme clusters within a line and treats a
// line break as a single step.

// cursorLine returns the cursor's line, the line start and the line text.
func (a *Application) cursorLine() (line, start int, text string) {
	line, err := a.view.LineOfOffset(a.cursor)
	if err != nil {
		return 0, 0, ""
	}
	start, _ = a.view.LineStartOffset(line)
	text, _ = a.lineText(line)
	return line, start, text
}

// boundaries returns the byte offsets of grapheme cluster starts in text,
// plus len(text).
func boundaries(text string) []int {
	out := []int{0}
	state := -1
	off := 0
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		off += len(cluster)
		out = append(out, off)
	}
	return out
}

// snap returns the last grapheme boundary at or before col.
func snap(text string, col int) int {
	b := boundaries(text)
	best := 0
	for _, off := range b {
		if off > col {
			break
		}
		best = off
	}
	return best
}

// prevOffset returns the offset one step left of the cursor.
func (a *Application) prevOffset() int {
	line, start, text := a.cursorLine()
	col := a.cursor - start
	if col > 0 {
		return start + snap(text, col-1)
	}
	if line == 0 {
		return a.cursor
	}
	prevStart, _ := a.view.LineStartOffset(line - 1)
	prevText, _ := a.lineText(line - 1)
	return prevStart + len(prevText)
}

// nextOffset returns the offset one step right of the cursor.
func (a *Application) nextOffset() int {
	line, start, text := a.cursorLine()
	col := a.cursor - start
	if col < len(text) {
		for _, off := range boundaries(text) {
			if off > col {
				return start + off
			}
		}
	}
	if line+1 >= a.view.LineCount() {
		return a.cursor
	}
	next, _ := a.view.LineStartOffset(line + 1)
	return next
}

// moveLines moves the cursor n lines keeping its byte column where the
// target line allows.
func (a *Application) moveLines(n int) {
	line, start, _ := a.cursorLine()
	col := a.cursor - start
	target := min(max(line+n, 0), a.view.LineCount()-1)
	tstart, err := a.view.LineStartOffset(target)
	if err != nil {
		return
	}
	ttext, _ := a.lineText(target)
	a.cursor = tstart + snap(ttext, min(col, len(ttext)))
}

func (a *Application) lineHome() {
	_, start, _ := a.cursorLine()
	a.cursor = start
}

func (a *Application) lineEnd() {
	_, start, text := a.cursorLine()
	a.cursor = start + len(text)
}

func (a *Application) insert(s string) {
	end, err := a.buf.Insert(int64(a.cursor), s)
	if err != nil {
		a.logger.Warn("insert at %d: %v", a.cursor, err)
		return
	}
	a.cursor = int(end)
}

func (a *Application) deleteRange(start, end int) {
	if start >= end {
		return
	}
	if err := a.buf.Delete(int64(start), int64(end)); err != nil {
		a.logger.Warn("delete %d-%d: %v", start, end, err)
		return
	}
	a.cursor = start
}
