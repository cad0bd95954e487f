package icon_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/srlehn/iconresize/icon"
	"github.com/srlehn/iconresize/internal/encoder/encpng"
	_ "github.com/srlehn/iconresize/resize/all"
)

// gradient returns an opaque image with distinct pixels.
func gradient(w, h int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}
	return m
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeFile(t *testing.T, dir, name string, b []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), b, 0o644))
}

func writePNG(t *testing.T, dir, name string, img image.Image) {
	t.Helper()
	writeFile(t, dir, name, encodePNG(t, img))
}

func newGenerator(t *testing.T, dir string, opts ...icon.Option) (*icon.Generator, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	g, err := icon.NewGenerator(append([]icon.Option{
		icon.SetDir(dir),
		icon.SetEncoder(&encpng.PngEncoder{}),
		icon.SetOutput(&out),
	}, opts...)...)
	require.NoError(t, err)
	return g, &out
}

func decodeFile(t *testing.T, dir, name string) (image.Image, string) {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	img, format, err := image.Decode(f)
	require.NoError(t, err)
	return img, format
}
