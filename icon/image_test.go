package icon_test

import (
	"image"
	"image/color"
	"image/color/palette"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/iconresize/icon"
	"github.com/srlehn/iconresize/internal/errors"
)

func TestImageNormalize(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 7, 5))
	gray.SetGray(3, 2, color.Gray{Y: 99})
	ycc := image.NewYCbCr(image.Rect(0, 0, 8, 6), image.YCbCrSubsampleRatio420)
	pal := image.NewPaletted(image.Rect(0, 0, 4, 4), palette.Plan9)
	rgba := image.NewRGBA(image.Rect(0, 0, 3, 3))
	rgba.SetRGBA(1, 1, color.RGBA{R: 50, A: 128})
	cmyk := image.NewCMYK(image.Rect(0, 0, 2, 9))
	offset := image.NewNRGBA(image.Rect(10, 20, 15, 24))

	cases := map[string]image.Image{
		`gray`:          gray,
		`ycbcr`:         ycc,
		`paletted`:      pal,
		`rgba`:          rgba,
		`cmyk`:          cmyk,
		`nrgba offset`:  offset,
		`gray16`:        image.NewGray16(image.Rect(0, 0, 1, 1)),
		`nrgba64 small`: image.NewNRGBA64(image.Rect(0, 0, 1, 1)),
	}
	for name, src := range cases {
		img := icon.NewImage(src)
		n, err := img.Normalize()
		require.NoError(t, err, name)
		assert.True(t, icon.HasAlpha(n.ColorModel()), name)
		assert.Equal(t, image.Point{}, n.Bounds().Min, name)
		assert.Equal(t, src.Bounds().Size(), n.Bounds().Size(), name)
		assert.Same(t, n, img.Normalized, name)
	}

	// opaque stays opaque
	n, err := icon.NewImage(gray).Normalize()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 99, G: 99, B: 99, A: 255}, n.NRGBAAt(3, 2))
}

func TestImageNormalizeKeepsNRGBA(t *testing.T) {
	src := gradient(9, 4)
	n, err := icon.NewImage(src).Normalize()
	require.NoError(t, err)
	assert.Same(t, src, n)
}

func TestHasAlpha(t *testing.T) {
	assert.False(t, icon.HasAlpha(color.GrayModel))
	assert.False(t, icon.HasAlpha(color.YCbCrModel))
	assert.False(t, icon.HasAlpha(color.CMYKModel))
	assert.False(t, icon.HasAlpha(color.Palette{color.Black, color.White}))
	assert.True(t, icon.HasAlpha(color.Palette{color.Black, color.Transparent}))
	assert.True(t, icon.HasAlpha(color.NRGBAModel))
	assert.True(t, icon.HasAlpha(color.RGBAModel))
}

func TestImageDecodeBytes(t *testing.T) {
	img := icon.NewImageBytes(encodePNG(t, gradient(6, 3)))
	require.NoError(t, img.Decode())
	assert.Equal(t, `png`, img.Format)
	assert.Equal(t, image.Rect(0, 0, 6, 3), img.Bounds())
}

func TestImageDecodeInvalid(t *testing.T) {
	img := icon.NewImageBytes([]byte(`this is not an image`))
	err := img.Decode()
	require.Error(t, err)
	assert.True(t, errors.Is(err, icon.ErrDecode))

	// lazy accessors don't panic on failure
	assert.Equal(t, image.Rectangle{}, img.Bounds())
	assert.Equal(t, color.NRGBA{}, img.At(0, 0))
}

func TestImageDecodeMissingFile(t *testing.T) {
	err := icon.NewImageFilename(`/nonexistent/icon_source.png`).Decode()
	require.Error(t, err)
	assert.True(t, errors.Is(err, icon.ErrDecode))
}

func TestImageResize(t *testing.T) {
	img := icon.NewImage(gradient(200, 100))
	m, err := img.Resize(icon.GetRegResizerByName(`default`), 128)
	require.NoError(t, err)
	assert.Equal(t, image.Point{X: 128, Y: 128}, m.Bounds().Size())

	_, err = img.Resize(icon.GetRegResizerByName(`default`), 0)
	assert.True(t, errors.Is(err, icon.ErrInvalidSize))

	_, err = img.Resize(nil, 16)
	assert.True(t, errors.Is(err, icon.ErrMissingCapability))
}

type shortResizer struct{}

func (shortResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return image.NewNRGBA(image.Rect(0, 0, size.X, size.Y-1)), nil
}

func TestImageResizeRejectsWrongSize(t *testing.T) {
	_, err := icon.NewImage(gradient(10, 10)).Resize(shortResizer{}, 16)
	require.Error(t, err)
	assert.True(t, errors.Is(err, icon.ErrInvalidSize))
}
