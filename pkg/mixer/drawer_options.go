package mixer

import (
	"golang.org/x/image/draw"
)

type Option func(p *paint)

// WithRotation rotates the source clockwise by degrees around the middle of
// its placed rectangle.
func WithRotation(degrees float64) Option {
	return func(p *paint) {
		p.rotation = degrees
	}
}

// WithOpacity multiplies the source alpha, 1 keeps it unchanged.
func WithOpacity(opacity float64) Option {
	return func(p *paint) {
		p.opacity = opacity
	}
}

func WithBlend(mode BlendMode) Option {
	return func(p *paint) {
		p.blend = mode
	}
}

// WithInterpolator replaces the Catmull-Rom resampler used for scaling and
// rotating sources.
func WithInterpolator(i draw.Interpolator) Option {
	return func(p *paint) {
		p.interp = i
	}
}

type paint struct {
	rotation float64
	opacity  float64
	blend    BlendMode
	interp   draw.Interpolator
}

func newPaint(opts []Option) *paint {
	p := &paint{
		opacity: 1,
		blend:   SourceOver,
		interp:  draw.CatmullRom,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.opacity < 0 {
		p.opacity = 0
	} else if p.opacity > 1 {
		p.opacity = 1
	}

	return p
}
