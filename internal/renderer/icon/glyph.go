package icon

import (
	"github.com/dshills/markgutter/internal/renderer/core"
	"github.com/dshills/markgutter/internal/renderer/gutter"
)

// Glyph is a one-cell icon drawn with a character.
type Glyph struct {
	Rune  rune
	Style core.Style
}

// NewGlyph creates a glyph icon.
func NewGlyph(r rune, style core.Style) *Glyph {
	return &Glyph{Rune: r, Style: style}
}

// Width implements gutter.Icon.
func (g *Glyph) Width() int { return core.RuneWidth(g.Rune) }

// Height implements gutter.Icon.
func (g *Glyph) Height() int { return 1 }

// Paint implements gutter.Icon. Surfaces without cells get a filled box
// in the foreground colour.
func (g *Glyph) Paint(s gutter.Surface, x, y int) {
	if cs, ok := s.(CellSetter); ok {
		cs.SetCell(x, y, core.Cell{Rune: g.Rune, Width: g.Width(), Style: g.Style})
		return
	}
	s.Fill(core.NewRect(x, y, g.Width(), g.Height()), g.Style.Foreground)
}
