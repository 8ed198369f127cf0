package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// Stop is one color stop of a gradient; Offset runs from 0 to 1.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// radial builds a two-circle radial gradient, like a canvas
// createRadialGradient from (x0, y0, r0) to (x1, y1, r1).
func radial(x0, y0, r0, x1, y1, r1 float64, stops []Stop) gg.Gradient {
	g := gg.NewRadialGradient(x0, y0, r0, x1, y1, r1)
	for _, s := range stops {
		g.AddColorStop(s.Offset, s.Color)
	}
	return g
}

// Vignette darkens the surface edges with VignetteStops, from 30% to 70% of
// the width around the center.
func Vignette(w, h int) *image.RGBA {
	dc := gg.NewContext(w, h)
	cx, cy := float64(w)/2, float64(h)/2
	dc.SetFillStyle(radial(cx, cy, float64(w)*0.3, cx, cy, float64(w)*0.7, VignetteStops))
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
	return dc.Image().(*image.RGBA)
}

// BallSprite is a shaded ball of radius r centered in a square image. The
// inner circle of the gradient sits up and to the left of the center.
func BallSprite(r float64) *image.RGBA {
	size := int(2*r) + 2
	c := float64(size) / 2

	dc := gg.NewContext(size, size)
	dc.SetFillStyle(radial(c-5, c-5, r/2, c, c, r, BallStops))
	dc.DrawCircle(c, c, r)
	dc.Fill()
	return dc.Image().(*image.RGBA)
}

// Glow draws a halo of c fading from full strength at radius r to nothing
// at r+blur, into an image sized to hold it.
func Glow(r, blur float64, c color.NRGBA) *image.RGBA {
	size := int(math.Ceil(2*(r+blur))) + 2
	center := float64(size) / 2
	faded := c
	faded.A = 0

	dc := gg.NewContext(size, size)
	dc.SetFillStyle(radial(center, center, r, center, center, r+blur, []Stop{{0, c}, {1, faded}}))
	dc.DrawCircle(center, center, r+blur)
	dc.Fill()
	return dc.Image().(*image.RGBA)
}

// GradientRect returns the two triangles of a w x h rectangle at (x, y)
// shaded from top to bottom. Draw them with a white source image.
func GradientRect(x, y, w, h float32, top, bottom color.NRGBA) ([]ebiten.Vertex, []uint16) {
	vertex := func(vx, vy float32, c color.NRGBA) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: vx, DstY: vy,
			SrcX: 1, SrcY: 1,
			ColorR: float32(c.R) / 0xff,
			ColorG: float32(c.G) / 0xff,
			ColorB: float32(c.B) / 0xff,
			ColorA: float32(c.A) / 0xff,
		}
	}
	vs := []ebiten.Vertex{
		vertex(x, y, top),
		vertex(x+w, y, top),
		vertex(x, y+h, bottom),
		vertex(x+w, y+h, bottom),
	}
	return vs, []uint16{0, 1, 2, 1, 2, 3}
}

// Segment is one dash of a dashed line, as offsets along the line.
type Segment struct {
	From, To float64
}

// Dashes splits a line of the given length into on/off dashes starting with
// an "on" dash at 0.
func Dashes(length, on, off float64) []Segment {
	if on <= 0 || on+off <= 0 {
		return []Segment{{From: 0, To: length}}
	}
	var segments []Segment
	for pos := 0.0; pos < length; pos += on + off {
		segments = append(segments, Segment{From: pos, To: math.Min(pos+on, length)})
	}
	return segments
}
