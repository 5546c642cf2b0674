package mixer

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectsCoverImage(t *testing.T) {
	src := solid(16, 16, red)

	for _, name := range EffectNames() {
		e, err := ParseEffect(name)
		require.NoError(t, err)
		assert.Equal(t, name, e.Name())

		writes := e.Process(src)
		require.NotEmpty(t, writes, name)

		c := newCanvas(t, 16)
		NewFrameBuilder(c).Apply(writes)
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				assertPixel(t, c, x, y, red)
			}
		}
	}
}

func TestEffectPrefixIsPartial(t *testing.T) {
	writes := EffectWipe(4).Process(solid(16, 16, red))
	require.Len(t, writes, 4)

	c := newCanvas(t, 16)
	NewFrameBuilder(c).Apply(writes[:1])

	assertPixel(t, c, 3, 8, red)
	assertPixel(t, c, 4, 8, color.NRGBA{})
}

func TestBlockClipsUnevenEdges(t *testing.T) {
	writes := EffectBlock(5, false).Process(solid(16, 16, red))
	assert.Len(t, writes, 16)
	assert.Equal(t, 1, writes[3].Img.Bounds().Dx())

	_, err := ParseEffect("dissolve")
	assert.Error(t, err)
}
