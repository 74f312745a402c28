package captioner

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			// Half-transparent red so alpha flattening is exercised.
			img.Set(x, y, color.NRGBA{R: 200, A: 128})
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEncodeRGBProducesJPEG(t *testing.T) {
	data, err := encodeRGB(writeTestPNG(t))
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a decodable JPEG: %v", err)
	}

	if b := decoded.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("bounds = %v, want 8x8", b)
	}

	// Alpha composited onto white must lighten the pixel.
	r, g, b, _ := decoded.At(4, 4).RGBA()
	if g < 0x4000 || b < 0x4000 || r <= g {
		t.Errorf("pixel = (%d, %d, %d), expected red over white", r>>8, g>>8, b>>8)
	}
}

func TestEncodeRGBMissingFile(t *testing.T) {
	_, err := encodeRGB(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, ErrCaption) {
		t.Errorf("err = %v, want wrapped %v", err, ErrCaption)
	}
}

func TestEncodeRGBNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("plain text"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := encodeRGB(path)
	if !errors.Is(err, ErrCaption) {
		t.Errorf("err = %v, want wrapped %v", err, ErrCaption)
	}
}
