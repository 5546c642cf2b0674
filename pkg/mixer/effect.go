package mixer

import (
	"image"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Write is one piece of an image and where it goes on the canvas.
type Write struct {
	At  image.Point
	Img image.Image
}

type Image interface {
	image.Image
	SubImage(image.Rectangle) image.Image
}

// Effect cuts an image into ordered writes. Applying every write reproduces
// the image; applying a prefix shows the effect in progress.
type Effect interface {
	Name() string
	Process(img Image) []Write
}

var effects = map[string]func() Effect{
	"block":  func() Effect { return EffectBlock(4, false) },
	"random": func() Effect { return EffectBlock(4, true) },
	"wipe":   func() Effect { return EffectWipe(1) },
}

func EffectNames() []string {
	names := lo.Keys(effects)
	sort.Strings(names)
	return names
}

func ParseEffect(name string) (Effect, error) {
	if fn, ok := effects[strings.ToLower(name)]; ok {
		return fn(), nil
	}
	return nil, errors.Errorf("unknown effect %q, expect one of %s", name, strings.Join(EffectNames(), ", "))
}

// Apply draws writes in order at their native size.
func (f *FrameBuilder) Apply(writes []Write, opts ...Option) *FrameBuilder {
	for _, w := range writes {
		f.DrawScaled(w.Img, w.At.X, w.At.Y, 1, 1, opts...)
	}
	return f
}
