// Package layout splits buffer lines into visual rows for soft wrapping.
package layout

import (
	"github.com/rivo/uniseg"
)

// Row is one visual row of a wrapped line.
type Row struct {
	Start int // Byte offset of the first grapheme in the line
	End   int // Byte offset one past the last grapheme
	Width int // Width in cells after tab expansion
}

// Engine computes visual rows for buffer lines.
type Engine struct {
	tabWidth   int
	wrapWidth  int  // 0 = no wrap
	wrapAtWord bool // Try to wrap at word boundaries
}

// NewEngine creates a layout engine with the given tab width.
func NewEngine(tabWidth int) *Engine {
	if tabWidth < 1 {
		tabWidth = 4
	}
	return &Engine{
		tabWidth:   tabWidth,
		wrapAtWord: true,
	}
}

// TabWidth returns the current tab width.
func (e *Engine) TabWidth() int {
	return e.tabWidth
}

// SetTabWidth sets the tab width.
func (e *Engine) SetTabWidth(width int) {
	if width < 1 {
		width = 1
	}
	e.tabWidth = width
}

// WrapWidth returns the current wrap width (0 = no wrap).
func (e *Engine) WrapWidth() int {
	return e.wrapWidth
}

// SetWrap configures soft wrapping.
// width of 0 disables wrapping.
func (e *Engine) SetWrap(width int, atWord bool) {
	if width < 0 {
		width = 0
	}
	e.wrapWidth = width
	e.wrapAtWord = atWord
}

// Rows splits line into visual rows. A line always has at least one row,
// even when it is empty.
func (e *Engine) Rows(line string) []Row {
	var rows []Row

	rowStart, col := 0, 0
	lastBreak, lastBreakCol := -1, 0
	offset := 0
	state := -1
	rest := line

	for len(rest) > 0 {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" {
			width = e.tabWidth - col%e.tabWidth
		}

		for e.wrapWidth > 0 && col > 0 && col+width > e.wrapWidth {
			breakAt, breakCol := offset, col
			if e.wrapAtWord && lastBreak > rowStart {
				breakAt, breakCol = lastBreak, lastBreakCol
			}
			rows = append(rows, Row{Start: rowStart, End: breakAt, Width: breakCol})
			rowStart = breakAt
			col -= breakCol
			lastBreak = -1
			if cluster == "\t" {
				width = e.tabWidth - col%e.tabWidth
			}
		}

		col += width
		offset += len(cluster)
		if cluster == " " || cluster == "\t" {
			lastBreak, lastBreakCol = offset, col
		}
	}

	return append(rows, Row{Start: rowStart, End: len(line), Width: col})
}

// RowCount returns the number of visual rows line occupies.
func (e *Engine) RowCount(line string) int {
	if e.wrapWidth == 0 {
		return 1
	}
	return len(e.Rows(line))
}

// RowOfColumn returns the visual row holding byte offset col of line.
func (e *Engine) RowOfColumn(line string, col int) int {
	rows := e.Rows(line)
	for i, r := range rows {
		if col < r.End {
			return i
		}
	}
	return len(rows) - 1
}

// OffsetAtColumn returns the byte offset in line of the grapheme covering
// cell col of row. Columns past the end of the row map to row.End.
func (e *Engine) OffsetAtColumn(line string, row Row, col int) int {
	if col <= 0 {
		return row.Start
	}
	x := 0
	offset := row.Start
	state := -1
	rest := line[row.Start:row.End]
	for len(rest) > 0 {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" {
			width = e.tabWidth - x%e.tabWidth
		}
		if col < x+width {
			return offset
		}
		x += width
		offset += len(cluster)
	}
	return row.End
}

// ColumnOfOffset returns the cell column of byte offset off within row.
func (e *Engine) ColumnOfOffset(line string, row Row, off int) int {
	x := 0
	state := -1
	rest := line[row.Start:row.End]
	pos := row.Start
	for len(rest) > 0 && pos < off {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" {
			width = e.tabWidth - x%e.tabWidth
		}
		x += width
		pos += len(cluster)
	}
	return x
}
