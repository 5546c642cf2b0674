package canvas

import (
	"image"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Sizes lists the square canvas sizes the devices can render.
var Sizes = []int{16, 32, 64}

var ErrUnsupportedSize = errors.New("canvas size not supported, only 16, 32 and 64 are allowed")

func Supported(size int) bool {
	return lo.Contains(Sizes, size)
}

// New returns a fully transparent square canvas.
func New(size int) (*Canvas, error) {
	if !Supported(size) {
		return nil, errors.Wrapf(ErrUnsupportedSize, "size %d", size)
	}

	return &Canvas{NRGBA: image.NewNRGBA(image.Rect(0, 0, size, size))}, nil
}

// Canvas is one frame of an animation. Pixels are row-major RGBA quads with
// straight (non-premultiplied) alpha, so len(Pix) == size*size*4.
type Canvas struct {
	*image.NRGBA
}

func (c *Canvas) Width() int {
	return c.Rect.Dx()
}

func (c *Canvas) Height() int {
	return c.Rect.Dy()
}

func (c *Canvas) Pixels() []byte {
	return c.Pix
}

// Transparent reports whether every pixel has zero alpha.
func (c *Canvas) Transparent() bool {
	for i := 3; i < len(c.Pix); i += 4 {
		if c.Pix[i] != 0 {
			return false
		}
	}
	return true
}

func (c *Canvas) Clone() *Canvas {
	dup := image.NewNRGBA(c.Rect)
	copy(dup.Pix, c.Pix)
	return &Canvas{NRGBA: dup}
}
