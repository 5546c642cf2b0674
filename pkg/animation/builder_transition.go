package animation

import (
	"image"

	"pixoo/pkg/canvas"
	"pixoo/pkg/mixer"
)

// DrawTransition reveals src over frames frames starting at start, using
// effect to decide the order in which parts appear. Each frame begins as a
// copy of the frame before start; the last one shows src completely.
func (b *Builder) DrawTransition(src image.Image, start, frames int, fit mixer.FitMode, effect mixer.Effect, opts ...mixer.Option) *Builder {
	if frames < 1 {
		return b
	}
	if start < 0 {
		start = 0
	}

	target, _ := canvas.New(b.size)
	mixer.NewFrameBuilder(target).DrawFit(src, fit, opts...)
	writes := effect.Process(target.NRGBA)

	base := b.Frame(start - 1)
	b.Extend(start + frames)

	for i := 0; i < frames; i++ {
		frame := b.frames[start+i]
		if base != nil {
			copy(frame.Pix, base.Pix)
		}
		n := ((i+1)*len(writes) + frames - 1) / frames
		mixer.NewFrameBuilder(frame).Apply(writes[:n])
	}

	return b
}
