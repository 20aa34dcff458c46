package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRasterizerRequiresSurfaceProvider(t *testing.T) {
	r, err := NewRasterizer(nil)

	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrEnvironment)
}

func TestRasterizePNG(t *testing.T) {
	g := checkerGrid(21)
	s := NewStyle(21)
	require.Equal(t, 2100.0, s.TotalSize())

	r, err := NewRasterizer(MemorySurfaces{})
	require.NoError(t, err)

	raw, err := r.RasterizePNG(GenerateSVG(g, 55, s), 400)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestRasterizeDataURL(t *testing.T) {
	r, err := NewRasterizer(MemorySurfaces{})
	require.NoError(t, err)

	encoded, err := r.Rasterize(GenerateSVG(checkerGrid(21), 55, NewStyle(21)), 128)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "data:image/png;base64,"))
	assert.Greater(t, len(encoded), len("data:image/png;base64,"))
}

func TestRasterizeDefaultsToDocumentSize(t *testing.T) {
	g := NewGrid(5)
	s := NewStyle(5)

	r, err := NewRasterizer(MemorySurfaces{})
	require.NoError(t, err)

	raw, err := r.RasterizePNG(GenerateSVG(g, 0, s), 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 500, img.Bounds().Dx())
}

func TestRasterizeDegenerateMarkupSize(t *testing.T) {
	r, err := NewRasterizer(MemorySurfaces{})
	require.NoError(t, err)

	// A 0-side grid declares a 0-size document; with no explicit output
	// size that is a markup problem, not an environment one.
	_, err = r.RasterizePNG(GenerateSVG(NewGrid(0), 0, NewStyle(0)), 0)
	assert.ErrorIs(t, err, ErrRender)
	assert.NotErrorIs(t, err, ErrEnvironment)
}

func TestRasterizeMalformedMarkup(t *testing.T) {
	r, err := NewRasterizer(MemorySurfaces{})
	require.NoError(t, err)

	_, err = r.RasterizePNG(`<svg><rect</svg>`, 100)
	assert.ErrorIs(t, err, ErrRender)
}

type failingSurfaces struct{}

func (failingSurfaces) Surface(width, height int) (*image.RGBA, error) {
	return nil, errors.New("no surface")
}

func TestRasterizeSurfaceFailure(t *testing.T) {
	r, err := NewRasterizer(failingSurfaces{})
	require.NoError(t, err)

	_, err = r.RasterizePNG(GenerateSVG(NewGrid(5), 0, NewStyle(5)), 50)
	assert.ErrorIs(t, err, ErrEnvironment)
}
