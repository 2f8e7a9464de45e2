package layout

import (
	"testing"
)

func TestNewEngine(t *testing.T) {
	e := NewEngine(0)
	if e.TabWidth() != 4 {
		t.Errorf("expected default tab width 4, got %d", e.TabWidth())
	}
	e.SetTabWidth(0)
	if e.TabWidth() != 1 {
		t.Errorf("expected minimum tab width 1, got %d", e.TabWidth())
	}
	e.SetWrap(-5, false)
	if e.WrapWidth() != 0 {
		t.Errorf("expected wrap disabled, got %d", e.WrapWidth())
	}
}

func TestRowsNoWrap(t *testing.T) {
	e := NewEngine(4)
	rows := e.Rows("a long line that never wraps")
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if e.RowCount("") != 1 {
		t.Error("empty line should occupy one row")
	}
}

func TestRowsWrapAtWord(t *testing.T) {
	e := NewEngine(4)
	e.SetWrap(10, true)

	line := "hello world again"
	rows := e.Rows(line)
	want := []string{"hello ", "world ", "again"}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d: %+v", len(want), len(rows), rows)
	}
	for i, r := range rows {
		if got := line[r.Start:r.End]; got != want[i] {
			t.Errorf("row %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestRowsWrapHard(t *testing.T) {
	e := NewEngine(4)
	e.SetWrap(4, false)

	rows := e.Rows("abcdefghij")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Width != 4 || rows[2].Width != 2 {
		t.Errorf("unexpected widths %+v", rows)
	}
}

func TestRowsWideAndTabs(t *testing.T) {
	e := NewEngine(4)
	e.SetWrap(4, false)

	// Each CJK rune is two cells wide.
	if got := e.RowCount("世界世"); got != 2 {
		t.Errorf("expected 2 rows for wide runes, got %d", got)
	}
	// A tab at column 0 fills a whole row.
	if got := e.RowCount("\tx"); got != 2 {
		t.Errorf("expected 2 rows for tab, got %d", got)
	}
}

func TestRowOfColumn(t *testing.T) {
	e := NewEngine(4)
	e.SetWrap(10, true)
	line := "hello world again"
	if got := e.RowOfColumn(line, 0); got != 0 {
		t.Errorf("column 0 on row %d", got)
	}
	if got := e.RowOfColumn(line, 7); got != 1 {
		t.Errorf("column 7 on row %d", got)
	}
	if got := e.RowOfColumn(line, len(line)); got != 2 {
		t.Errorf("end of line on row %d", got)
	}
}

func TestExpandedWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"abc", 3},
		{"\t", 4},
		{"a\tb", 5},
		{"世", 2},
	}
	for _, tt := range tests {
		if got := ExpandedWidth(tt.in, 4); got != tt.want {
			t.Errorf("ExpandedWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := string(ExpandTabs("a\tb", 4)); got != "a   b" {
		t.Errorf("ExpandTabs = %q", got)
	}
}

func TestOffsetAtColumn(t *testing.T) {
	e := NewEngine(4)
	e.SetWrap(10, true)
	line := "hello world again"
	rows := e.Rows(line)

	tests := []struct {
		row, col, want int
	}{
		{0, 0, 0},
		{0, 4, 4},
		{1, 2, 8},
		{1, 50, 12},
		{2, 4, 16},
	}
	for _, tt := range tests {
		if got := e.OffsetAtColumn(line, rows[tt.row], tt.col); got != tt.want {
			t.Errorf("OffsetAtColumn(row %d, col %d) = %d, want %d", tt.row, tt.col, got, tt.want)
		}
	}

	tabbed := "\tx"
	row := NewEngine(4).Rows(tabbed)[0]
	if got := e.OffsetAtColumn(tabbed, row, 2); got != 0 {
		t.Errorf("column inside tab = %d, want 0", got)
	}
	if got := e.ColumnOfOffset(tabbed, row, 1); got != 4 {
		t.Errorf("ColumnOfOffset after tab = %d, want 4", got)
	}
}
