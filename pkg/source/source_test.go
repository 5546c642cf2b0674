package source

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pixoo/pkg/mixer"
)

var pal = color.Palette{color.Transparent, color.NRGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 255}}

func testGIF(t *testing.T) []byte {
	t.Helper()

	full := image.NewPaletted(image.Rect(0, 0, 4, 4), pal)
	for i := range full.Pix {
		full.Pix[i] = 1
	}
	// second frame only paints one blue pixel, the rest must come from frame 0
	patch := image.NewPaletted(image.Rect(1, 1, 2, 2), pal)
	patch.Pix[0] = 2

	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, &gif.GIF{
		Image:    []*image.Paletted{full, patch},
		Delay:    []int{5, 5},
		Disposal: []byte{gif.DisposalNone, gif.DisposalNone},
		Config:   image.Config{ColorModel: pal, Width: 4, Height: 4},
	}))
	return buf.Bytes()
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+1], img.Pix[i+3] = 255, 255
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeGIFComposesFrames(t *testing.T) {
	seq, err := Decode(testGIF(t))
	require.NoError(t, err)

	require.Len(t, seq.Frames, 2)
	assert.True(t, seq.Animated())
	assert.Equal(t, 50*time.Millisecond, seq.Delay)
	assert.Equal(t, image.Rect(0, 0, 4, 4), seq.Bounds())

	r, _, _, _ := seq.Frames[1].At(0, 0).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	_, _, b, _ := seq.Frames[1].At(1, 1).RGBA()
	assert.Equal(t, uint32(0xFFFF), b)
}

func TestDecodeStill(t *testing.T) {
	seq, err := Decode(testPNG(t))
	require.NoError(t, err)
	assert.False(t, seq.Animated())
	assert.Equal(t, image.Rect(0, 0, 8, 4), seq.Bounds())

	_, err = Decode([]byte("not an image"))
	assert.Error(t, err)
}

func TestLoader(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.gif", testGIF(t), 0644))

	seq, err := NewLoader(fs).Load("a.gif")
	require.NoError(t, err)
	assert.Len(t, seq.Frames, 2)

	_, err = NewLoader(fs).Load("missing.png")
	assert.Error(t, err)
}

func TestDownloaderUsesCache(t *testing.T) {
	var hits int32
	body := testPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path != "/img.png" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	dl := NewDownloader(zap.NewNop(), WithCache(NewCache(afero.NewMemMapFs())))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		seq, err := dl.Load(ctx, srv.URL+"/img.png")
		require.NoError(t, err)
		assert.Equal(t, 8, seq.Bounds().Dx())
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	_, err := dl.Get(ctx, srv.URL+"/missing")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	seq, err := Decode(testGIF(t))
	require.NoError(t, err)

	anim, err := Render(seq, 16, mixer.Stretch, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, anim.FrameCount)
	assert.Equal(t, 50, anim.SpeedMs())
	assert.Len(t, anim.Frames[0], 16*16*3)

	_, err = Render(seq, 20, mixer.Stretch, 0)
	assert.Error(t, err)

	_, err = Render(&Sequence{}, 16, mixer.Stretch, 0)
	assert.Error(t, err)
}

func TestReveal(t *testing.T) {
	seq, err := Decode(testGIF(t))
	require.NoError(t, err)

	anim, err := Reveal(seq, 16, mixer.Stretch, 0, mixer.EffectWipe(2), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, anim.FrameCount)
	assert.Equal(t, 100, anim.SpeedMs())

	_, err = Reveal(seq, 16, mixer.Stretch, 0, mixer.EffectWipe(2), 0)
	assert.Error(t, err)
}
