package bitmap

import (
	"image"
)

// Encode flattens src into the device frame format. Transparent pixels end up
// black; there is no way back to the alpha channel.
func Encode(src image.Image) []byte {
	b := src.Bounds()
	d := NewRGB888(b)

	if n, ok := src.(*image.NRGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				p := n.PixOffset(x, y)
				d.put(d.offset(x, y), n.Pix[p], n.Pix[p+1], n.Pix[p+2], n.Pix[p+3])
			}
		}
		return d.pixels
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d.Set(x, y, src.At(x, y))
		}
	}

	return d.pixels
}
