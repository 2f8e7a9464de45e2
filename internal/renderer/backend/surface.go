package backend

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/dshills/markgutter/internal/renderer/core"
)

// CellSurface draws document-space content onto a region of a Backend.
// Document point (x, y) lands on screen cell (x + Region.X, y - Top +
// Region.Y). Anything outside Region is clipped.
type CellSurface struct {
	Backend Backend
	Region  core.Rect
	// Top is the document y shown on the first row of Region.
	Top int
}

// NewCellSurface creates a surface over region of b.
func NewCellSurface(b Backend, region core.Rect, top int) *CellSurface {
	return &CellSurface{Backend: b, Region: region, Top: top}
}

func (s *CellSurface) toScreen(r core.Rect) core.Rect {
	return r.Translate(s.Region.X, s.Region.Y-s.Top).Intersect(s.Region)
}

// Fill paints r with background colour c.
func (s *CellSurface) Fill(r core.Rect, c core.Color) {
	sr := s.toScreen(r)
	if sr.IsEmpty() {
		return
	}
	s.Backend.Fill(sr, core.Cell{Rune: ' ', Width: 1, Style: core.DefaultStyle().WithBackground(c)})
}

// SetCell places cell at document point (x, y). A default background on
// the cell keeps the background already on screen.
func (s *CellSurface) SetCell(x, y int, cell core.Cell) {
	p := core.Point{X: x + s.Region.X, Y: y - s.Top + s.Region.Y}
	if !s.Region.Contains(p) {
		return
	}
	if cell.Style.Background.IsDefault() {
		cell.Style.Background = s.Backend.GetCell(p.X, p.Y).Style.Background
	}
	s.Backend.SetCell(p.X, p.Y, cell)
}

// RasterSurface draws document-space content onto an RGBA image. The
// image's (0, 0) shows document point Origin.
type RasterSurface struct {
	img    *image.RGBA
	origin image.Point
}

// NewRasterSurface creates a w x h surface whose top-left shows the
// document point origin.
func NewRasterSurface(w, h int, origin image.Point) *RasterSurface {
	return &RasterSurface{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		origin: origin,
	}
}

// Fill paints r with c. The default colour clears to transparent.
func (s *RasterSurface) Fill(r core.Rect, c core.Color) {
	dst := image.Rect(r.X-s.origin.X, r.Y-s.origin.Y, r.Right()-s.origin.X, r.Bottom()-s.origin.Y)
	xdraw.Draw(s.img, dst, &image.Uniform{C: c.RGBA()}, image.Point{}, xdraw.Src)
}

// Canvas returns the image drawn on.
func (s *RasterSurface) Canvas() xdraw.Image { return s.img }

// Origin returns the document point at the image's (0, 0).
func (s *RasterSurface) Origin() image.Point { return s.origin }

// Image returns the rendered image.
func (s *RasterSurface) Image() *image.RGBA { return s.img }

// At returns the colour at document point (x, y).
func (s *RasterSurface) At(x, y int) color.RGBA {
	return s.img.RGBAAt(x-s.origin.X, y-s.origin.Y)
}
