package animation

import (
	"image"

	"pixoo/pkg/mixer"
)

// DrawFrames draws sources[i] centered onto frame start+i.
func (b *Builder) DrawFrames(sources []image.Image, start int, opts ...mixer.Option) *Builder {
	return b.DrawFramesFit(sources, start, mixer.Center, opts...)
}

func (b *Builder) DrawFramesFit(sources []image.Image, start int, fit mixer.FitMode, opts ...mixer.Option) *Builder {
	for i, src := range sources {
		b.BuildFrame(start+i).DrawFit(src, fit, opts...)
	}
	return b
}

func (b *Builder) DrawFramesSized(sources []image.Image, start, x, y, width, height int, opts ...mixer.Option) *Builder {
	for i, src := range sources {
		b.BuildFrame(start+i).DrawSized(src, x, y, width, height, opts...)
	}
	return b
}

func (b *Builder) DrawFramesScaled(sources []image.Image, start, x, y int, sx, sy float64, opts ...mixer.Option) *Builder {
	for i, src := range sources {
		b.BuildFrame(start+i).DrawScaled(src, x, y, sx, sy, opts...)
	}
	return b
}
