package captioner

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// encodeRGB reads the image at path, flattens it to full-color RGB and
// returns JPEG bytes ready for model input. Grayscale, paletted and alpha
// images are all normalized; alpha is composited onto white.
func encodeRGB(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open image: %v", ErrCaption, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %v", ErrCaption, err)
	}

	bounds := src.Bounds()
	rgb := image.NewRGBA(bounds)
	draw.Draw(rgb, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(rgb, bounds, src, bounds.Min, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, rgb, nil); err != nil {
		return nil, fmt.Errorf("%w: encode image: %v", ErrCaption, err)
	}

	return buf.Bytes(), nil
}
