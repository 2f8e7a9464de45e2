package layout

import "testing"

func TestRowCache(t *testing.T) {
	e := NewEngine(4)
	e.SetWrap(5, false)
	c := NewRowCache(e, 0)

	if got := c.RowCount(0, "abcdefghij"); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}
	c.RowCount(0, "abcdefghij")
	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("hits=%d misses=%d", hits, misses)
	}

	// Changed content on the same line is recomputed.
	if got := c.RowCount(0, "abc"); got != 1 {
		t.Errorf("expected 1 row after edit, got %d", got)
	}

	e.SetWrap(2, false)
	c.InvalidateAll()
	if c.Size() != 0 {
		t.Fatal("expected empty cache")
	}
	if got := c.RowCount(0, "abc"); got != 2 {
		t.Errorf("expected 2 rows after rewrap, got %d", got)
	}
}

func TestRowCacheBounded(t *testing.T) {
	c := NewRowCache(NewEngine(4), 2)
	c.RowCount(0, "a")
	c.RowCount(1, "b")
	c.RowCount(2, "c")
	if c.Size() > 2 {
		t.Errorf("cache exceeded max size: %d", c.Size())
	}
}
