package mixer

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFit(t *testing.T) {
	canvas := image.Pt(16, 16)

	cases := []struct {
		mode FitMode
		src  image.Point
		want Placement
	}{
		{Stretch, image.Pt(3, 7), Placement{0, 0, 16, 16}},
		{Stretch, image.Pt(3, 2), Placement{0, 0, 16, 16}},
		{Stretch, image.Pt(40, 40), Placement{0, 0, 16, 16}},

		{Center, image.Pt(16, 16), Placement{0, 0, 16, 16}},
		{Center, image.Pt(3, 7), Placement{6, 4, 3, 7}},
		{Center, image.Pt(21, 21), Placement{-2, -2, 21, 21}},

		{FitX, image.Pt(3, 2), Placement{0, 2, 16, 11}},
		{FitX, image.Pt(3, 7), Placement{0, -10, 16, 37}},
		{FitY, image.Pt(3, 2), Placement{-4, 0, 24, 16}},
		{FitY, image.Pt(3, 7), Placement{4, 0, 7, 16}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s %dx%d", c.mode, c.src.X, c.src.Y), func(t *testing.T) {
			assert.Equal(t, c.want, ResolveFit(c.mode, canvas, c.src))
		})
	}
}

func TestResolveFitEmptySource(t *testing.T) {
	assert.Equal(t, Placement{Width: 0, Height: 5}, ResolveFit(Stretch, image.Pt(16, 16), image.Pt(0, 5)))
}
