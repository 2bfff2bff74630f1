package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 40, G: 160, B: 60, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestToWebP_ShrinksLongestSide(t *testing.T) {
	out, err := ToWebP(bytes.NewReader(pngOf(t, 400, 200)), 100, DefaultQuality)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestToWebP_KeepsSmallImages(t *testing.T) {
	out, err := ToWebP(bytes.NewReader(pngOf(t, 30, 60)), DefaultMaxSide, DefaultQuality)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, 60, cfg.Height)
}

func TestToWebP_RejectsNonImages(t *testing.T) {
	_, err := ToWebP(strings.NewReader("definitely not an image"), DefaultMaxSide, DefaultQuality)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}
