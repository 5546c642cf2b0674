package bitmap

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPremultiplyMatchesRounding(t *testing.T) {
	for c := 0; c < 256; c++ {
		for a := 0; a < 256; a++ {
			want := uint8(math.Round(float64(c) * float64(a) / 255))
			if got := Premultiply(uint8(c), uint8(a)); got != want {
				t.Fatalf("Premultiply(%d, %d) = %d, want %d", c, a, got, want)
			}
		}
	}
}

func TestEncodeNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	img.SetNRGBA(0, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 0})

	bs := Encode(img)

	assert.Equal(t, []byte{
		255, 0, 0, 100, 50, 25,
		0, 0, 0, 0, 0, 0,
	}, bs)
}

func TestEncodeGenericImageMatchesFastPath(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 128, B: 0, A: 64})

	rgba := image.NewRGBA(img.Bounds())
	for x := 0; x < 3; x++ {
		rgba.Set(x, 0, img.At(x, 0))
	}

	assert.Equal(t, Encode(img)[:3], Encode(rgba)[:3])
	assert.Len(t, Encode(rgba), 9)
}

func TestRGB888At(t *testing.T) {
	d := NewRGB888(image.Rect(0, 0, 2, 1))
	d.Set(1, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	d.Set(5, 5, color.NRGBA{R: 1, A: 255})

	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 255}, d.At(1, 0))
	assert.Equal(t, color.RGBA{}, d.At(2, 0))
	assert.Equal(t, []byte{0, 0, 0, 1, 2, 3}, d.Pixels())
}
