package source

import (
	"bytes"
	"image"
	"image/draw"
	"image/gif"
	"time"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Sequence is a decoded source: one frame for stills, every frame of an
// animated GIF otherwise.
type Sequence struct {
	Frames []image.Image
	// Delay is the first frame delay of a GIF, zero for stills.
	Delay time.Duration
}

func (s *Sequence) Animated() bool {
	return len(s.Frames) > 1
}

func (s *Sequence) Bounds() image.Rectangle {
	if len(s.Frames) == 0 {
		return image.Rectangle{}
	}
	return s.Frames[0].Bounds()
}

var gifMagic = []byte("GIF8")

// Decode reads a GIF, PNG or JPEG. Stills are rotated per their EXIF
// orientation.
func Decode(bs []byte) (*Sequence, error) {
	if bytes.HasPrefix(bs, gifMagic) {
		return decodeGIF(bs)
	}

	img, err := imaging.Decode(bytes.NewReader(bs), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "image decode failed")
	}

	return &Sequence{Frames: []image.Image{img}}, nil
}

// decodeGIF composes every frame on the logical screen so each one is a full
// picture, honoring the frame disposal methods.
func decodeGIF(bs []byte) (*Sequence, error) {
	g, err := gif.DecodeAll(bytes.NewReader(bs))
	if err != nil {
		return nil, errors.Wrap(err, "gif decode failed")
	}
	if len(g.Image) == 0 {
		return nil, errors.New("gif has no frames")
	}

	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if screen.Empty() {
		screen = g.Image[0].Bounds()
	}

	seq := &Sequence{}
	if len(g.Delay) > 0 {
		seq.Delay = time.Duration(g.Delay[0]) * 10 * time.Millisecond
	}

	canvas := image.NewNRGBA(screen)
	for i, frame := range g.Image {
		var restore *image.NRGBA
		disposal := byte(gif.DisposalNone)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			restore = imaging.Clone(canvas)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		seq.Frames = append(seq.Frames, imaging.Clone(canvas))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = restore
		}
	}

	return seq, nil
}
