package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/gbseg/gridgraph"
	"github.com/katalvlaran/gbseg/pixel"
)

// ErrDecode indicates input that no registered decoder accepts.
var ErrDecode = errors.New("imageio: cannot decode image")

// Load opens and decodes the image at path. It returns the decoded image
// and the format name reported by the decoder.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	return img, format, nil
}

// Decode reads one image from r with any registered decoder.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return img, format, nil
}

// Grid wraps img as a gridgraph.Grid. Pixel (row, col) maps to
// img.At(Min.X+col, Min.Y+row). Empty bounds return gridgraph.ErrInvalidImage.
func Grid(img image.Image) (*gridgraph.Grid, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", gridgraph.ErrInvalidImage)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty bounds %v", gridgraph.ErrInvalidImage, b)
	}

	var value gridgraph.ValueFunc
	switch src := img.(type) {
	case *image.Gray:
		// Direct access avoids a color.Color allocation per pixel.
		value = func(row, col int) float64 {
			return float64(src.Pix[src.PixOffset(b.Min.X+col, b.Min.Y+row)])
		}
	default:
		value = func(row, col int) float64 {
			return pixel.FromColor(img.At(b.Min.X+col, b.Min.Y+row))
		}
	}

	return gridgraph.NewGrid(b.Dy(), b.Dx(), value)
}

// SavePNG encodes img as PNG at path, replacing any existing file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	if err = png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}

	return f.Close()
}
