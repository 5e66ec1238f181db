package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderSource(t *testing.T) {
	for _, name := range []string{"shape2d.vert", "shape2d.frag", "sprite2d.vert", "sprite2d.frag"} {
		src, err := ShaderSource(name)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(src, "#version 330 core"), name)
		assert.True(t, strings.HasSuffix(src, "\x00"), name)
	}

	_, err := ShaderSource("nope.vert")
	assert.Error(t, err)
}

func TestLoadPNG(t *testing.T) {
	// NRGBA source forces the RGBA conversion path.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "atlas.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	w, h, pix, err := LoadPNG(path)
	require.NoError(t, err)
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}, pix)
}

func TestLoadPNGMissingFile(t *testing.T) {
	_, _, _, err := LoadPNG(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
