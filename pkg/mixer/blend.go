package mixer

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// BlendMode decides how a source pixel combines with the canvas pixel under it.
type BlendMode int

const (
	SourceOver BlendMode = iota
	Clear
	Source
	Destination
	DestinationOver
	SourceIn
	DestinationIn
	SourceOut
	DestinationOut
	SourceAtop
	DestinationAtop
	Xor
	Plus
	Multiply
	Screen
	Darken
	Lighten
	Difference
)

var blendNames = []string{
	"source-over", "clear", "source", "destination", "destination-over",
	"source-in", "destination-in", "source-out", "destination-out",
	"source-atop", "destination-atop", "xor", "plus",
	"multiply", "screen", "darken", "lighten", "difference",
}

func (m BlendMode) String() string {
	if m < 0 || int(m) >= len(blendNames) {
		return "unknown"
	}
	return blendNames[m]
}

func ParseBlendMode(s string) (BlendMode, error) {
	s = strings.ToLower(s)
	for i, name := range blendNames {
		if name == s {
			return BlendMode(i), nil
		}
	}
	return SourceOver, errors.Errorf("unknown blend mode %q", s)
}

// px is a premultiplied pixel with channels in [0, 1].
type px [4]float64

func (m BlendMode) apply(s, d px) px {
	sa, da := s[3], d[3]
	var o px

	switch m {
	case Clear:
		return o
	case Source:
		return s
	case Destination:
		return d
	case Multiply, Screen, Darken, Lighten, Difference:
		for i := 0; i < 3; i++ {
			o[i] = m.separable(s[i], d[i], sa, da)
		}
		o[3] = sa + da - sa*da
		return o
	}

	for i := 0; i < 4; i++ {
		o[i] = m.porterDuff(s[i], d[i], sa, da)
	}
	return o
}

func (m BlendMode) porterDuff(s, d, sa, da float64) float64 {
	switch m {
	case DestinationOver:
		return d + s*(1-da)
	case SourceIn:
		return s * da
	case DestinationIn:
		return d * sa
	case SourceOut:
		return s * (1 - da)
	case DestinationOut:
		return d * (1 - sa)
	case SourceAtop:
		return s*da + d*(1-sa)
	case DestinationAtop:
		return d*sa + s*(1-da)
	case Xor:
		return s*(1-da) + d*(1-sa)
	case Plus:
		return math.Min(1, s+d)
	default:
		return s + d*(1-sa)
	}
}

func (m BlendMode) separable(s, d, sa, da float64) float64 {
	switch m {
	case Multiply:
		return s*d + s*(1-da) + d*(1-sa)
	case Screen:
		return s + d - s*d
	case Darken:
		return s + d - math.Max(s*da, d*sa)
	case Lighten:
		return s + d - math.Min(s*da, d*sa)
	default:
		return s + d - 2*math.Min(s*da, d*sa)
	}
}
