package source

import (
	"time"

	"github.com/pkg/errors"

	"pixoo/pkg/animation"
	"pixoo/pkg/mixer"
)

// Render draws every frame of seq onto a size x size animation. A zero speed
// takes the GIF delay, falling back to 100ms.
func Render(seq *Sequence, size int, fit mixer.FitMode, speed time.Duration, opts ...mixer.Option) (*animation.Animation, error) {
	if len(seq.Frames) == 0 {
		return nil, errors.New("source has no frames")
	}

	if speed <= 0 {
		speed = seq.Delay
	}
	if speed <= 0 {
		speed = 100 * time.Millisecond
	}

	b, err := animation.New(size, speed)
	if err != nil {
		return nil, err
	}

	return b.DrawFramesFit(seq.Frames, 0, fit, opts...).Export(), nil
}

// Reveal builds an animation that uncovers the first frame of seq over
// frames frames using effect. The last frame holds the complete image.
func Reveal(seq *Sequence, size int, fit mixer.FitMode, speed time.Duration, effect mixer.Effect, frames int, opts ...mixer.Option) (*animation.Animation, error) {
	if len(seq.Frames) == 0 {
		return nil, errors.New("source has no frames")
	}
	if frames < 1 {
		return nil, errors.Errorf("reveal needs at least one frame, got %d", frames)
	}
	if speed <= 0 {
		speed = 100 * time.Millisecond
	}

	b, err := animation.New(size, speed)
	if err != nil {
		return nil, err
	}

	return b.DrawTransition(seq.Frames[0], 0, frames, fit, effect, opts...).Export(), nil
}
