package imageio_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/katalvlaran/gbseg/gridgraph"
	"github.com/katalvlaran/gbseg/imageio"
	"github.com/katalvlaran/gbseg/pixel"
)

func checker(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 200})
			}
		}
	}

	return img
}

func TestGrid_Gray(t *testing.T) {
	g, err := imageio.Grid(checker(3, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 200.0, g.Value(0, 0))
	assert.Equal(t, 0.0, g.Value(0, 1))
	assert.Equal(t, 0.0, g.Value(1, 0))
	assert.Equal(t, 200.0, g.Value(1, 1))
}

func TestGrid_OffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 14, 23))
	img.Set(10, 20, color.RGBA{R: 255, A: 255})
	img.Set(13, 22, color.RGBA{G: 255, B: 255, A: 255})

	g, err := imageio.Grid(img)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, 4, g.Width)
	assert.InDelta(t, pixel.Luminance(255, 0, 0), g.Value(0, 0), 1e-9)
	assert.InDelta(t, pixel.Luminance(0, 255, 255), g.Value(2, 3), 1e-9)
	assert.Equal(t, 0.0, g.Value(1, 1))
}

func TestGrid_Empty(t *testing.T) {
	_, err := imageio.Grid(image.NewGray(image.Rect(0, 0, 0, 5)))
	assert.ErrorIs(t, err, gridgraph.ErrInvalidImage)

	_, err = imageio.Grid(nil)
	assert.ErrorIs(t, err, gridgraph.ErrInvalidImage)
}

func TestDecode_Formats(t *testing.T) {
	src := checker(4, 4)

	var pngBuf, bmpBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, src))
	require.NoError(t, bmp.Encode(&bmpBuf, src))

	cases := []struct {
		name   string
		data   []byte
		format string
	}{
		{"png", pngBuf.Bytes(), "png"},
		{"bmp", bmpBuf.Bytes(), "bmp"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img, format, err := imageio.Decode(bytes.NewReader(tc.data))
			require.NoError(t, err)
			assert.Equal(t, tc.format, format)
			assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())

			g, err := imageio.Grid(img)
			require.NoError(t, err)
			assert.InDelta(t, 200.0, g.Value(0, 0), 1e-6)
			assert.InDelta(t, 0.0, g.Value(0, 1), 1e-6)
		})
	}
}

func TestDecode_Garbage(t *testing.T) {
	_, _, err := imageio.Decode(bytes.NewReader([]byte("not an image")))
	assert.ErrorIs(t, err, imageio.ErrDecode)
}

func TestSavePNG_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	src := checker(5, 3)
	require.NoError(t, imageio.SavePNG(path, src))

	img, format, err := imageio.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, src.Bounds(), img.Bounds())
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, pixel.FromColor(src.At(x, y)), pixel.FromColor(img.At(x, y)))
		}
	}
}

func TestLoad_Missing(t *testing.T) {
	_, _, err := imageio.Load(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}
