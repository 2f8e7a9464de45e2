package icon

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/markgutter/internal/renderer/core"
)

type fillSurface struct {
	rects  []core.Rect
	colors []core.Color
}

func (s *fillSurface) Fill(r core.Rect, c core.Color) {
	s.rects = append(s.rects, r)
	s.colors = append(s.colors, c)
}

type cellSurface struct {
	fillSurface
	cells map[core.Point]core.Cell
}

func (s *cellSurface) SetCell(x, y int, c core.Cell) {
	if s.cells == nil {
		s.cells = make(map[core.Point]core.Cell)
	}
	s.cells[core.Point{X: x, Y: y}] = c
}

type canvasSurface struct {
	fillSurface
	img    *image.RGBA
	origin image.Point
}

func (s *canvasSurface) Canvas() draw.Image  { return s.img }
func (s *canvasSurface) Origin() image.Point { return s.origin }

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func TestGlyphOnCells(t *testing.T) {
	style := core.NewStyle(core.ColorRed)
	g := NewGlyph('●', style)
	s := &cellSurface{}

	g.Paint(s, 0, 4)

	require.Contains(t, s.cells, core.Point{X: 0, Y: 4})
	cell := s.cells[core.Point{X: 0, Y: 4}]
	assert.Equal(t, '●', cell.Rune)
	assert.True(t, cell.Style.Equals(style))
	assert.Empty(t, s.rects)
	assert.Equal(t, 1, g.Height())
}

func TestGlyphFallsBackToFill(t *testing.T) {
	g := NewGlyph('B', core.NewStyle(core.ColorBlue))
	s := &fillSurface{}
	g.Paint(s, 2, 3)
	require.Len(t, s.rects, 1)
	assert.Equal(t, core.NewRect(2, 3, 1, 1), s.rects[0])
	assert.Equal(t, core.ColorBlue, s.colors[0])
}

func TestImageCopiesAtOrigin(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	ic := NewImage(solid(4, 4, red))
	s := &canvasSurface{img: image.NewRGBA(image.Rect(0, 0, 16, 40)), origin: image.Point{Y: 100}}

	// Document y 110 is canvas row 10.
	ic.Paint(s, 0, 110)

	assert.Equal(t, red, s.img.RGBAAt(0, 10))
	assert.Equal(t, red, s.img.RGBAAt(3, 13))
	assert.Equal(t, color.RGBA{}, s.img.RGBAAt(4, 10))
	assert.Equal(t, color.RGBA{}, s.img.RGBAAt(0, 9))
}

func TestImageScales(t *testing.T) {
	green := color.RGBA{G: 255, A: 255}
	ic := NewScaledImage(solid(2, 2, green), 8, 8)
	assert.Equal(t, 8, ic.Width())

	s := &canvasSurface{img: image.NewRGBA(image.Rect(0, 0, 16, 16))}
	ic.Paint(s, 0, 0)
	assert.Equal(t, green, s.img.RGBAAt(4, 4))
	assert.Equal(t, color.RGBA{}, s.img.RGBAAt(9, 9))
}

func TestImageWithoutCanvas(t *testing.T) {
	ic := NewImage(solid(3, 3, color.RGBA{R: 10, G: 20, B: 30, A: 255}))
	s := &fillSurface{}
	ic.Paint(s, 1, 2)
	require.Len(t, s.rects, 1)
	assert.Equal(t, core.NewRect(1, 2, 3, 3), s.rects[0])
	assert.Equal(t, core.ColorFromRGB(10, 20, 30), s.colors[0])
}

func TestNewDot(t *testing.T) {
	dot := NewDot(12, core.ColorFromRGB(200, 30, 30))
	assert.Equal(t, 12, dot.Width())
	assert.Equal(t, 12, dot.Height())

	img, ok := dot.Source().(*image.RGBA)
	require.True(t, ok)
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A, "corner is outside the disc")
	assert.Equal(t, uint8(255), img.RGBAAt(6, 6).A, "centre is opaque")

	// The upper left is lighter than the lower right.
	ul := img.RGBAAt(4, 4)
	lr := img.RGBAAt(8, 8)
	assert.Greater(t, int(ul.G), int(lr.G))

	assert.Equal(t, 1, NewDot(0, core.ColorRed).Width())
}
