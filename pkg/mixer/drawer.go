package mixer

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"pixoo/pkg/canvas"
)

// NewFrameBuilder binds drawing operations to one canvas. Every call mutates
// the canvas in place and returns the same builder, so calls chain.
func NewFrameBuilder(dst *canvas.Canvas) *FrameBuilder {
	return &FrameBuilder{dst: dst}
}

type FrameBuilder struct {
	dst *canvas.Canvas
}

func (f *FrameBuilder) Canvas() *canvas.Canvas {
	return f.dst
}

// Draw puts src at its native size in the middle of the canvas.
func (f *FrameBuilder) Draw(src image.Image, opts ...Option) *FrameBuilder {
	return f.DrawFit(src, Center, opts...)
}

func (f *FrameBuilder) DrawFit(src image.Image, fit FitMode, opts ...Option) *FrameBuilder {
	size := src.Bounds().Size()
	p := ResolveFit(fit, f.dst.Bounds().Size(), size)
	return f.DrawSized(src, p.X, p.Y, p.Width, p.Height, opts...)
}

func (f *FrameBuilder) DrawSized(src image.Image, x, y, width, height int, opts ...Option) *FrameBuilder {
	size := src.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return f
	}
	sx, sy := scaleFactors(Placement{X: x, Y: y, Width: width, Height: height}, size)
	return f.DrawScaled(src, x, y, sx, sy, opts...)
}

// DrawScaled is the bottom of the drawing pipeline. Pixels landing outside the
// canvas are dropped; nothing here can fail.
func (f *FrameBuilder) DrawScaled(src image.Image, x, y int, sx, sy float64, opts ...Option) *FrameBuilder {
	sr := src.Bounds()
	if sr.Empty() || sx <= 0 || sy <= 0 {
		return f
	}

	p := newPaint(opts)
	s2d := placement(x, y, sx, sy, p.rotation, sr)
	d2s, ok := invert(s2d)
	if !ok {
		return f
	}

	b := f.dst.Bounds()
	layer := image.NewRGBA(b)
	p.interp.Transform(layer, s2d, src, sr, draw.Src, nil)

	minX, minY := float64(sr.Min.X), float64(sr.Min.Y)
	maxX, maxY := float64(sr.Max.X), float64(sr.Max.Y)

	for dy := b.Min.Y; dy < b.Max.Y; dy++ {
		for dx := b.Min.X; dx < b.Max.X; dx++ {
			u, v := apply(d2s, float64(dx)+0.5, float64(dy)+0.5)
			if u < minX || u >= maxX || v < minY || v >= maxY {
				continue
			}

			i := layer.PixOffset(dx, dy)
			var s px
			for c := 0; c < 4; c++ {
				s[c] = float64(layer.Pix[i+c]) / 0xFF * p.opacity
			}

			j := f.dst.PixOffset(dx, dy)
			out := p.blend.apply(s, premultiplied(f.dst.Pix[j:j+4]))
			storeStraight(f.dst.Pix[j:j+4], out)
		}
	}

	return f
}

func premultiplied(pix []uint8) px {
	a := float64(pix[3]) / 0xFF
	return px{
		float64(pix[0]) / 0xFF * a,
		float64(pix[1]) / 0xFF * a,
		float64(pix[2]) / 0xFF * a,
		a,
	}
}

func storeStraight(pix []uint8, c px) {
	a := clamp01(c[3])
	if a == 0 {
		pix[0], pix[1], pix[2], pix[3] = 0, 0, 0, 0
		return
	}
	for i := 0; i < 3; i++ {
		pix[i] = to8(clamp01(c[i] / a))
	}
	pix[3] = to8(a)
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func to8(v float64) uint8 {
	return uint8(math.Round(v * 0xFF))
}
