package bitmap

import (
	"image"
	"image/color"
)

// BytesPerPixel of the device frame format.
const BytesPerPixel = 3

func NewRGB888(r image.Rectangle) *RGB888 {
	return &RGB888{
		pixels: make([]byte, BytesPerPixel*r.Dx()*r.Dy()),
		stride: BytesPerPixel * r.Dx(),
		bounds: r,
	}
}

// RGB888 is the frame buffer layout the device expects: row-major RR GG BB
// triplets with alpha already multiplied into every channel. It implements
// draw.Image; reading a pixel back always yields an opaque color.
type RGB888 struct {
	pixels []byte
	stride int
	bounds image.Rectangle
}

func (d *RGB888) Bounds() image.Rectangle {
	return d.bounds
}

func (d *RGB888) ColorModel() color.Model {
	return color.RGBAModel
}

func (d *RGB888) Pixels() []byte {
	return d.pixels
}

func (d *RGB888) offset(x, y int) int {
	return (y-d.bounds.Min.Y)*d.stride + (x-d.bounds.Min.X)*BytesPerPixel
}

func (d *RGB888) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(d.bounds) {
		return color.RGBA{}
	}
	i := d.offset(x, y)
	return color.RGBA{R: d.pixels[i], G: d.pixels[i+1], B: d.pixels[i+2], A: 0xFF}
}

// Set stores c with its alpha pre-applied. Out of bounds writes are dropped.
func (d *RGB888) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(d.bounds) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	d.put(d.offset(x, y), n.R, n.G, n.B, n.A)
}

func (d *RGB888) put(i int, r, g, b, a uint8) {
	d.pixels[i] = Premultiply(r, a)
	d.pixels[i+1] = Premultiply(g, a)
	d.pixels[i+2] = Premultiply(b, a)
}

// Premultiply returns round(c * a / 255) using integer arithmetic only.
func Premultiply(c, a uint8) uint8 {
	prod := uint32(c)*uint32(a) + 128
	return uint8((prod + prod>>8) >> 8)
}
