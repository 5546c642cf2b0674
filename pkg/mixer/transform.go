package mixer

import (
	"image"
	"math"

	"golang.org/x/image/math/f64"
)

// placement builds the source-to-canvas matrix: scale first, then rotate by
// degrees around the middle of the placed rectangle, then move to (x, y).
// The pivot is the placed box itself, so an off-center placement spins in
// place instead of orbiting the canvas center.
func placement(x, y int, sx, sy, degrees float64, sr image.Rectangle) f64.Aff3 {
	w := sx * float64(sr.Dx())
	h := sy * float64(sr.Dy())
	cx, cy := w/2, h/2

	sin, cos := math.Sincos(degrees * math.Pi / 180)

	a, b := cos*sx, -sin*sy
	d, e := sin*sx, cos*sy

	tx := cx - (cos*cx - sin*cy) + float64(x)
	ty := cy - (sin*cx + cos*cy) + float64(y)

	// sources with a non-zero origin are measured from their own corner
	mx, my := float64(sr.Min.X), float64(sr.Min.Y)
	tx -= a*mx + b*my
	ty -= d*mx + e*my

	return f64.Aff3{a, b, tx, d, e, ty}
}

func invert(m f64.Aff3) (f64.Aff3, bool) {
	det := m[0]*m[4] - m[1]*m[3]
	if math.Abs(det) < 1e-12 {
		return f64.Aff3{}, false
	}

	ia, ib := m[4]/det, -m[1]/det
	id, ie := -m[3]/det, m[0]/det

	return f64.Aff3{
		ia, ib, -(ia*m[2] + ib*m[5]),
		id, ie, -(id*m[2] + ie*m[5]),
	}, true
}

func apply(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}
