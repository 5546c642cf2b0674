package mixer

import (
	"image"
)

// EffectWipe reveals the image left to right in columns of width pixels.
func EffectWipe(width int) Effect {
	if width < 1 {
		width = 1
	}
	return &wipe{width: width}
}

type wipe struct {
	width int
}

func (e *wipe) Name() string {
	return "wipe"
}

func (e *wipe) Process(img Image) []Write {
	r := img.Bounds()

	var ws []Write
	for x := r.Min.X; x < r.Max.X; x += e.width {
		ws = append(ws, Write{
			At:  image.Pt(x-r.Min.X, 0),
			Img: img.SubImage(image.Rect(x, r.Min.Y, x+e.width, r.Max.Y).Intersect(r)),
		})
	}
	return ws
}
