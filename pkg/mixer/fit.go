package mixer

import (
	"image"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// FitMode derives a placement from the source size when the caller gives no
// explicit coordinates.
type FitMode int

const (
	// Center draws the source at its native size, centered on the canvas.
	Center FitMode = iota
	// Stretch covers the whole canvas, ignoring the source aspect ratio.
	Stretch
	// FitX keeps the aspect ratio and matches the canvas width.
	FitX
	// FitY keeps the aspect ratio and matches the canvas height.
	FitY
)

var fitNames = []string{"center", "stretch", "fitx", "fity"}

func (m FitMode) String() string {
	if m < 0 || int(m) >= len(fitNames) {
		return "unknown"
	}
	return fitNames[m]
}

func ParseFitMode(s string) (FitMode, error) {
	s = strings.ToLower(s)
	for i, name := range fitNames {
		if name == s {
			return FitMode(i), nil
		}
	}
	return Center, errors.Errorf("unknown fit mode %q", s)
}

// Placement is the destination rectangle of a draw call. It may reach outside
// the canvas; whatever falls outside is clipped when compositing.
type Placement struct {
	X, Y          int
	Width, Height int
}

// ResolveFit computes where a source of size src lands on a canvas of size dst.
func ResolveFit(mode FitMode, dst, src image.Point) Placement {
	p := Placement{Width: src.X, Height: src.Y}
	if src.X <= 0 || src.Y <= 0 {
		return p
	}
	ratio := float64(src.X) / float64(src.Y)

	switch mode {
	case Center:
		p.X = (dst.X - p.Width) / 2
		p.Y = (dst.Y - p.Height) / 2
	case Stretch:
		p.Width = dst.X
		p.Height = dst.Y
	case FitX:
		p.Width = dst.X
		p.Height = int(math.Round(float64(p.Width) / ratio))
		p.Y = (dst.Y - p.Height) / 2
	case FitY:
		p.Height = dst.Y
		p.Width = int(math.Round(float64(p.Height) * ratio))
		p.X = (dst.X - p.Width) / 2
	}

	return p
}

// scaleFactors turns a requested size into per-axis scale factors.
func scaleFactors(p Placement, src image.Point) (float64, float64) {
	sx, sy := 1.0, 1.0
	if p.Width != src.X {
		sx = float64(p.Width) / float64(src.X)
	}
	if p.Height != src.Y {
		sy = float64(p.Height) / float64(src.Y)
	}
	return sx, sy
}
