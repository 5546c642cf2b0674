package mixer

import (
	"image"

	"github.com/samber/lo"
)

// EffectBlock cuts the image into size x size blocks, row by row or shuffled.
func EffectBlock(size int, shuffle bool) Effect {
	if size < 1 {
		size = 1
	}
	return &block{
		size:    size,
		shuffle: shuffle,
	}
}

type block struct {
	size    int
	shuffle bool
}

func (e *block) Name() string {
	return lo.Ternary(e.shuffle, "random", "block")
}

func (e *block) Process(img Image) []Write {
	r := img.Bounds()

	var ws []Write
	for y := r.Min.Y; y < r.Max.Y; y += e.size {
		for x := r.Min.X; x < r.Max.X; x += e.size {
			ws = append(ws, Write{
				At:  image.Pt(x-r.Min.X, y-r.Min.Y),
				Img: img.SubImage(image.Rect(x, y, x+e.size, y+e.size).Intersect(r)),
			})
		}
	}

	if e.shuffle {
		lo.Shuffle(ws)
	}

	return ws
}
