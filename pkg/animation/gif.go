package animation

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Image decodes frame index back into an opaque RGBA image. Alpha was already
// folded into the colors on export, so transparent pixels come back black.
func (a *Animation) Image(index int) (*image.RGBA, bool) {
	data, ok := a.Frames[index]
	if !ok || len(data) != a.Size*a.Size*3 {
		return nil, false
	}

	img := image.NewRGBA(image.Rect(0, 0, a.Size, a.Size))
	for i, j := 0, 0; i < len(data); i, j = i+3, j+4 {
		img.Pix[j] = data[i]
		img.Pix[j+1] = data[i+1]
		img.Pix[j+2] = data[i+2]
		img.Pix[j+3] = 0xFF
	}
	return img, true
}

// SaveGIF writes a preview of the animation, one GIF frame per exported frame.
func (a *Animation) SaveGIF(w io.Writer) error {
	if a.FrameCount == 0 {
		return errors.New("animation has no frames")
	}

	// GIF delays are in 100ths of a second
	delay := a.SpeedMs() / 10
	if delay < 1 {
		delay = 1
	}

	out := &gif.GIF{}
	for _, i := range a.Offsets() {
		img, ok := a.Image(i)
		if !ok {
			return errors.Errorf("frame %d has invalid length", i)
		}

		p := image.NewPaletted(img.Bounds(), append(color.Palette{}, palette.Plan9...))
		draw.Draw(p, p.Rect, img, image.Point{}, draw.Src)

		out.Image = append(out.Image, p)
		out.Delay = append(out.Delay, delay)
	}

	return errors.Wrap(gif.EncodeAll(w, out), "encode gif")
}

// WriteGIF saves the preview to name on fs.
func (a *Animation) WriteGIF(fs afero.Fs, name string) error {
	f, err := fs.Create(name)
	if err != nil {
		return errors.Wrapf(err, "create %s", name)
	}

	if err := a.SaveGIF(f); err != nil {
		_ = f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "close %s", name)
}
