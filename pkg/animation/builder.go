package animation

import (
	"time"

	"github.com/pkg/errors"

	"pixoo/pkg/bitmap"
	"pixoo/pkg/canvas"
	"pixoo/pkg/mixer"
)

// New validates size and returns a builder without any frames.
func New(size int, speed time.Duration, opts ...Option) (*Builder, error) {
	if !canvas.Supported(size) {
		return nil, errors.Wrapf(canvas.ErrUnsupportedSize, "animation size %d", size)
	}

	b := &Builder{
		size:  size,
		speed: speed,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Builder owns an ordered list of same-sized canvases. It is not safe for
// concurrent use.
type Builder struct {
	size   int
	speed  time.Duration
	frames []*canvas.Canvas
	// options
	onExtend func(from, to int)
}

func (b *Builder) Size() int {
	return b.size
}

func (b *Builder) Speed() time.Duration {
	return b.speed
}

func (b *Builder) FrameCount() int {
	return len(b.frames)
}

// Frame returns the canvas at index, or nil when it does not exist yet.
func (b *Builder) Frame(index int) *canvas.Canvas {
	if index < 0 || index >= len(b.frames) {
		return nil
	}
	return b.frames[index]
}

// Extend appends blank frames until the builder holds count of them and
// reports how many were added.
func (b *Builder) Extend(count int) int {
	from := len(b.frames)
	for len(b.frames) < count {
		c, _ := canvas.New(b.size)
		b.frames = append(b.frames, c)
	}

	if added := len(b.frames) - from; added > 0 {
		if b.onExtend != nil {
			b.onExtend(from, len(b.frames))
		}
		return added
	}
	return 0
}

// BuildFrame returns a frame builder for index, creating it and every blank
// frame before it when needed. Negative indexes are treated as 0.
func (b *Builder) BuildFrame(index int) *mixer.FrameBuilder {
	if index < 0 {
		index = 0
	}
	b.Extend(index + 1)
	return mixer.NewFrameBuilder(b.frames[index])
}

// Export snapshots every frame into the device pixel format. The builder is
// left untouched and can keep drawing.
func (b *Builder) Export() *Animation {
	a := &Animation{
		Size:       b.size,
		FrameCount: len(b.frames),
		Speed:      b.speed,
		Frames:     make(map[int][]byte, len(b.frames)),
	}

	for i, frame := range b.frames {
		a.Frames[i] = bitmap.Encode(frame.NRGBA)
	}

	return a
}
