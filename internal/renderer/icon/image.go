package icon

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/dshills/markgutter/internal/renderer/core"
	"github.com/dshills/markgutter/internal/renderer/gutter"
)

// Image is a raster icon. It is scaled to its width and height when
// those differ from the source bounds.
type Image struct {
	src  image.Image
	w, h int
}

// NewImage creates an icon from src at its natural size.
func NewImage(src image.Image) *Image {
	b := src.Bounds()
	return &Image{src: src, w: b.Dx(), h: b.Dy()}
}

// NewScaledImage creates an icon from src drawn at w x h.
func NewScaledImage(src image.Image, w, h int) *Image {
	return &Image{src: src, w: w, h: h}
}

// Width implements gutter.Icon.
func (i *Image) Width() int { return i.w }

// Height implements gutter.Icon.
func (i *Image) Height() int { return i.h }

// Source returns the source image.
func (i *Image) Source() image.Image { return i.src }

// Paint implements gutter.Icon. On surfaces without a canvas the icon is
// drawn as a box filled with its centre colour.
func (i *Image) Paint(s gutter.Surface, x, y int) {
	c, ok := s.(Canvas)
	if !ok {
		s.Fill(core.NewRect(x, y, i.w, i.h), i.centre())
		return
	}
	o := c.Origin()
	dst := image.Rect(x-o.X, y-o.Y, x-o.X+i.w, y-o.Y+i.h)
	sb := i.src.Bounds()
	if sb.Dx() == i.w && sb.Dy() == i.h {
		xdraw.Copy(c.Canvas(), dst.Min, i.src, sb, xdraw.Over, nil)
		return
	}
	xdraw.ApproxBiLinear.Scale(c.Canvas(), dst, i.src, sb, xdraw.Over, nil)
}

func (i *Image) centre() core.Color {
	b := i.src.Bounds()
	cf, ok := colorful.MakeColor(i.src.At(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2))
	if !ok {
		return core.ColorDefault
	}
	r, g, bl := cf.Clamped().RGB255()
	return core.ColorFromRGB(r, g, bl)
}

// NewDot renders a shaded disc of the given diameter, lighter towards
// the upper left.
func NewDot(diameter int, c core.Color) *Image {
	if diameter < 1 {
		diameter = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, diameter, diameter))
	base, _ := colorful.MakeColor(c.RGBA())
	highlight := colorful.Color{R: 1, G: 1, B: 1}

	r := float64(diameter) / 2
	for py := 0; py < diameter; py++ {
		for px := 0; px < diameter; px++ {
			dx := float64(px) + 0.5 - r
			dy := float64(py) + 0.5 - r
			d := math.Hypot(dx, dy)
			if d > r {
				continue
			}
			// Distance from the highlight point, 0 at the top-left third.
			hd := math.Hypot(dx+r/3, dy+r/3) / (r * 1.5)
			shade := base.BlendLab(highlight, 0.5*math.Max(0, 1-hd)).Clamped()
			cr, cg, cb := shade.RGB255()
			alpha := uint8(255)
			if edge := r - d; edge < 1 {
				alpha = uint8(255 * edge)
			}
			img.SetRGBA(px, py, premultiply(color.NRGBA{R: cr, G: cg, B: cb, A: alpha}))
		}
	}
	return NewImage(img)
}

func premultiply(c color.NRGBA) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
