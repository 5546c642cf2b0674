package animation

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixoo/pkg/mixer"
)

func TestDrawTransitionWipe(t *testing.T) {
	b, err := New(16, 100*time.Millisecond)
	require.NoError(t, err)

	blue := color.NRGBA{B: 255, A: 255}
	red := color.NRGBA{R: 255, A: 255}

	b.BuildFrame(0).Draw(solid(16, blue))
	b.DrawTransition(solid(16, red), 1, 4, mixer.Stretch, mixer.EffectWipe(1))
	require.Equal(t, 5, b.FrameCount())

	// 16 columns over 4 frames, 4 more per frame
	half := b.Frame(2)
	assertNear(t, red, half.NRGBAAt(7, 3))
	assertNear(t, blue, half.NRGBAAt(8, 3))

	last := b.Frame(4)
	for x := 0; x < 16; x++ {
		assertNear(t, red, last.NRGBAAt(x, 15))
	}

	// the first frame is left alone
	assertNear(t, blue, b.Frame(0).NRGBAAt(15, 0))
}

func TestDrawTransitionFromStart(t *testing.T) {
	b, err := New(16, 100*time.Millisecond)
	require.NoError(t, err)

	red := color.NRGBA{R: 255, A: 255}
	b.DrawTransition(solid(16, red), 0, 3, mixer.Stretch, mixer.EffectBlock(4, true))
	require.Equal(t, 3, b.FrameCount())

	assert.False(t, b.Frame(0).Transparent())
	assertNear(t, red, b.Frame(2).NRGBAAt(0, 0))
	assertNear(t, red, b.Frame(2).NRGBAAt(15, 15))

	b.DrawTransition(solid(16, red), 3, 0, mixer.Stretch, mixer.EffectWipe(1))
	assert.Equal(t, 3, b.FrameCount())
}

func assertNear(t *testing.T, want, got color.NRGBA) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1)
	assert.InDelta(t, want.G, got.G, 1)
	assert.InDelta(t, want.B, got.B, 1)
	assert.InDelta(t, want.A, got.A, 1)
}
